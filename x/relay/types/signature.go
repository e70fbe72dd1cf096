package types

import (
	"crypto/ecdsa"

	"cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// SignDigest produces an EIP-191 personal-sign signature over digest with v in {27, 28}.
func SignDigest(digest common.Hash, key *ecdsa.PrivateKey) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(digest.Bytes()), key)
	if err != nil {
		return nil, err
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// RecoverSigner returns the address that produced an EIP-191 signature over digest.
func RecoverSigner(digest common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, errors.Wrapf(ErrMalformedSignature, "expected %d bytes, got %d", crypto.SignatureLength, len(sig))
	}

	normalized := make([]byte, crypto.SignatureLength)
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash(digest.Bytes()), normalized)
	if err != nil {
		return common.Address{}, errors.Wrap(ErrMalformedSignature, err.Error())
	}
	return crypto.PubkeyToAddress(*pub), nil
}
