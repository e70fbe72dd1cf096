package attest

import (
	"crypto/ecdsa"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"

	oerrors "github.com/acurast/hyperdrive-relay/oracle/errors"
	"github.com/acurast/hyperdrive-relay/oracle/store"
	relaytypes "github.com/acurast/hyperdrive-relay/x/relay/types"
)

// Store persists signed attestations.
type Store interface {
	SaveAttestation(a *store.Attestation) error
}

// Signer signs relay digests with one oracle key and records the result.
type Signer struct {
	key    *ecdsa.PrivateKey
	addr   common.Address
	chain  string
	store  Store
	logger zerolog.Logger
}

func NewSigner(key *ecdsa.PrivateKey, chain string, s Store, logger zerolog.Logger) *Signer {
	return &Signer{
		key:    key,
		addr:   crypto.PubkeyToAddress(key.PublicKey),
		chain:  chain,
		store:  s,
		logger: logger.With().Str("component", "signer").Logger(),
	}
}

// Address is the oracle address signatures recover to.
func (s *Signer) Address() common.Address {
	return s.addr
}

// AttestReceipt signs an incoming envelope and stores the attestation.
func (s *Signer) AttestReceipt(env Envelope) (*store.Attestation, error) {
	if env.Recipient == (common.Address{}) {
		return nil, oerrors.NewValidationError(s.chain, "envelope recipient is the zero address")
	}
	return s.attest(store.KindReceipt, env.ID(), env.Digest(), env)
}

// AttestDelivery signs a delivery confirmation and stores the attestation.
func (s *Signer) AttestDelivery(d Delivery) (*store.Attestation, error) {
	if d.Confirmer == (common.Address{}) {
		return nil, oerrors.NewValidationError(s.chain, "confirmer is the zero address")
	}
	return s.attest(store.KindDelivery, d.ID(), d.Digest(), d)
}

func (s *Signer) attest(kind string, id, digest common.Hash, v any) (*store.Attestation, error) {
	sig, err := relaytypes.SignDigest(digest, s.key)
	if err != nil {
		return nil, oerrors.NewSigningError(s.chain, "failed to sign digest", err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, oerrors.Wrap(err, oerrors.ErrCodeInternal, s.chain, "failed to encode attestation data")
	}

	a := &store.Attestation{
		Kind:      kind,
		MessageID: id.Hex(),
		Signer:    s.addr.Hex(),
		Digest:    digest.Hex(),
		Signature: sig,
		Data:      data,
		Status:    store.StatusSigned,
	}
	if err := s.store.SaveAttestation(a); err != nil {
		return nil, oerrors.NewDatabaseError(s.chain, "failed to store attestation", err)
	}

	s.logger.Info().
		Str("kind", kind).
		Str("message_id", a.MessageID).
		Str("digest", a.Digest).
		Msg("attestation signed")
	return a, nil
}
