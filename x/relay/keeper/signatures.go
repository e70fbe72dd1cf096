package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/x/relay/types"
)

// verifySignatures counts distinct oracle signatures over digest and requires at least min.
// Any signature not recovering to an oracle, or a repeated signer, rejects the whole set.
func (k Keeper) verifySignatures(ctx context.Context, digest common.Hash, signatures [][]byte, threshold uint32) error {
	seen := make(map[common.Address]struct{}, len(signatures))

	for i, sig := range signatures {
		signer, err := types.RecoverSigner(digest, sig)
		if err != nil {
			return errors.Wrapf(types.ErrInvalidSignature, "signature %d: %s", i, err)
		}

		isOracle, err := k.IsOracle(ctx, signer)
		if err != nil {
			return err
		}
		if !isOracle {
			return errors.Wrapf(types.ErrInvalidSignature, "signature %d: %s is not an oracle", i, signer.Hex())
		}

		if _, dup := seen[signer]; dup {
			return errors.Wrapf(types.ErrDuplicateSignature, "signature %d: %s", i, signer.Hex())
		}
		seen[signer] = struct{}{}
	}

	if uint32(len(seen)) < threshold {
		return errors.Wrapf(types.ErrNotEnoughSignatures, "got %d, need %d", len(seen), threshold)
	}
	return nil
}
