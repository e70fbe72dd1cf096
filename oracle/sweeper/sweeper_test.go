package sweeper

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/acurast/hyperdrive-relay/oracle/db"
	"github.com/acurast/hyperdrive-relay/oracle/store"
)

func setup(t *testing.T) (*db.DB, *Sweeper) {
	t.Helper()
	d, err := db.OpenInMemoryDB(true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	for _, id := range []string{"0xaa", "0xbb", "0xcc"} {
		require.NoError(t, d.SaveAttestation(&store.Attestation{
			Kind:      store.KindReceipt,
			MessageID: id,
			Signer:    "0x01",
			Digest:    "0x01",
			Signature: []byte{0x01},
		}))
	}
	require.NoError(t, d.MarkSubmitted(db.MessageKey{Kind: store.KindReceipt, MessageID: "0xaa"}))
	require.NoError(t, d.MarkFailed(db.MessageKey{Kind: store.KindReceipt, MessageID: "0xbb"}, "rejected"))

	s := NewSweeper(d, Config{Interval: 10 * time.Millisecond, Retention: time.Hour}, zerolog.Nop())
	return d, s
}

func TestSweep(t *testing.T) {
	d, s := setup(t)

	deleted, err := s.Sweep()
	require.NoError(t, err)
	require.Zero(t, deleted)

	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	deleted, err = s.Sweep()
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	counts, err := d.CountByStatus()
	require.NoError(t, err)
	require.Equal(t, map[string]int64{store.StatusSigned: 1}, counts)
}

func TestStartStop(t *testing.T) {
	d, s := setup(t)
	s.cfg.Retention = 0
	s.now = func() time.Time { return time.Now().Add(time.Second) }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx)
	defer s.Stop()

	counts, err := d.CountByStatus()
	require.NoError(t, err)
	require.Equal(t, map[string]int64{store.StatusSigned: 1}, counts)
}
