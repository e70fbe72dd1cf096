package attest

import (
	"encoding/json"
	"errors"
	"testing"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	oerrors "github.com/acurast/hyperdrive-relay/oracle/errors"
	"github.com/acurast/hyperdrive-relay/oracle/store"
	relaytypes "github.com/acurast/hyperdrive-relay/x/relay/types"
)

type memStore struct {
	saved []*store.Attestation
	err   error
}

func (m *memStore) SaveAttestation(a *store.Attestation) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, a)
	return nil
}

func newSigner(t *testing.T, s Store) *Signer {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return NewSigner(key, "acurast", s, zerolog.Nop())
}

func testEnvelope() Envelope {
	return Envelope{
		OriginChain:    relaytypes.ChainAcurast,
		Sender:         common.HexToHash("0x6d6f646c687970746f6b656e"),
		Nonce:          common.HexToHash("0x01"),
		RecipientChain: relaytypes.ChainEthereum,
		Recipient:      common.HexToAddress("0x00000000000000000000000000000000000000e1"),
		Payload:        []byte{0x00, 0x00, 0x00, 0x01, 0x01},
	}
}

func TestAttestReceipt(t *testing.T) {
	s := &memStore{}
	signer := newSigner(t, s)
	env := testEnvelope()

	a, err := signer.AttestReceipt(env)
	require.NoError(t, err)
	require.Len(t, s.saved, 1)

	require.Equal(t, store.KindReceipt, a.Kind)
	require.Equal(t, relaytypes.IncomingMessageID(env.Sender, env.Nonce).Hex(), a.MessageID)
	require.Equal(t, signer.Address().Hex(), a.Signer)
	require.Equal(t, store.StatusSigned, a.Status)

	recovered, err := relaytypes.RecoverSigner(env.Digest(), a.Signature)
	require.NoError(t, err)
	require.Equal(t, signer.Address(), recovered)

	var decoded Envelope
	require.NoError(t, json.Unmarshal(a.Data, &decoded))
	require.Equal(t, env, decoded)
}

func TestAttestDelivery(t *testing.T) {
	s := &memStore{}
	signer := newSigner(t, s)

	d := Delivery{
		Message: relaytypes.OutgoingMessage{
			Sender:           common.HexToAddress("0x00000000000000000000000000000000000000b1"),
			Nonce:            common.HexToHash("0x07"),
			DestinationChain: relaytypes.ChainAcurast,
			Recipient:        common.HexToHash("0x6d6f646c687970746f6b656e"),
			Payload:          []byte{0x01},
			Fee:              math.ZeroInt(),
			TTL:              100,
			Status:           relaytypes.StatusPending,
		},
		Confirmer: common.HexToAddress("0x00000000000000000000000000000000000000c1"),
	}

	a, err := signer.AttestDelivery(d)
	require.NoError(t, err)
	require.Equal(t, store.KindDelivery, a.Kind)
	require.Equal(t, d.Message.ID().Hex(), a.MessageID)

	recovered, err := relaytypes.RecoverSigner(relaytypes.DeliveryDigest(d.Message, d.Confirmer), a.Signature)
	require.NoError(t, err)
	require.Equal(t, signer.Address(), recovered)
}

func TestAttestValidation(t *testing.T) {
	signer := newSigner(t, &memStore{})

	env := testEnvelope()
	env.Recipient = common.Address{}
	_, err := signer.AttestReceipt(env)
	require.True(t, oerrors.HasCode(err, oerrors.ErrCodeValidation))

	_, err = signer.AttestDelivery(Delivery{})
	require.True(t, oerrors.HasCode(err, oerrors.ErrCodeValidation))
}

func TestAttestStoreFailure(t *testing.T) {
	signer := newSigner(t, &memStore{err: errors.New("database is locked")})

	_, err := signer.AttestReceipt(testEnvelope())
	require.True(t, oerrors.HasCode(err, oerrors.ErrCodeDatabase))
	require.True(t, oerrors.IsRetryable(err))
}
