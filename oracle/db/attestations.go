package db

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/acurast/hyperdrive-relay/oracle/store"
)

// MessageKey identifies the submission a group of attestations belongs to.
type MessageKey struct {
	Kind      string
	MessageID string
}

// SaveAttestation stores a signed attestation. Re-signing the same message
// with the same key is a no-op.
func (d *DB) SaveAttestation(a *store.Attestation) error {
	if a.Status == "" {
		a.Status = store.StatusSigned
	}
	err := d.client.Clauses(clause.OnConflict{DoNothing: true}).Create(a).Error
	return errors.Wrap(err, "failed to save attestation")
}

// GetAttestations returns every attestation for key ordered by signer.
func (d *DB) GetAttestations(key MessageKey) ([]store.Attestation, error) {
	var out []store.Attestation
	err := d.client.
		Where("kind = ? AND message_id = ?", key.Kind, key.MessageID).
		Order("signer ASC").
		Find(&out).Error
	return out, errors.Wrap(err, "failed to get attestations")
}

// PendingMessages returns up to limit distinct messages with signed,
// unsubmitted attestations, oldest first.
func (d *DB) PendingMessages(limit int) ([]MessageKey, error) {
	var keys []MessageKey
	err := d.client.Model(&store.Attestation{}).
		Select("kind, message_id").
		Where("status = ?", store.StatusSigned).
		Group("kind, message_id").
		Order("MIN(id) ASC").
		Limit(limit).
		Scan(&keys).Error
	return keys, errors.Wrap(err, "failed to list pending messages")
}

// MarkSubmitted finalizes every signed attestation of key.
func (d *DB) MarkSubmitted(key MessageKey) error {
	return d.updateSigned(key, map[string]any{
		"status":    store.StatusSubmitted,
		"error_msg": "",
	})
}

// MarkFailed finalizes every signed attestation of key with reason.
func (d *DB) MarkFailed(key MessageKey, reason string) error {
	return d.updateSigned(key, map[string]any{
		"status":    store.StatusFailed,
		"error_msg": reason,
	})
}

// RecordAttempt bumps the attempt counter of key and returns the new maximum.
func (d *DB) RecordAttempt(key MessageKey, reason string) (int, error) {
	err := d.updateSigned(key, map[string]any{
		"attempts":  gorm.Expr("attempts + 1"),
		"error_msg": reason,
	})
	if err != nil {
		return 0, err
	}

	var attempts int
	err = d.client.Model(&store.Attestation{}).
		Select("COALESCE(MAX(attempts), 0)").
		Where("kind = ? AND message_id = ?", key.Kind, key.MessageID).
		Scan(&attempts).Error
	return attempts, errors.Wrap(err, "failed to read attempts")
}

// DeleteFinalizedBefore removes submitted or failed attestations last updated
// before cutoff and returns how many were removed.
func (d *DB) DeleteFinalizedBefore(cutoff time.Time) (int64, error) {
	res := d.client.Unscoped().
		Where("status IN ? AND updated_at < ?", []string{store.StatusSubmitted, store.StatusFailed}, cutoff).
		Delete(&store.Attestation{})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "failed to delete finalized attestations")
	}
	return res.RowsAffected, nil
}

// CountByStatus returns the number of attestations per status.
func (d *DB) CountByStatus() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := d.client.Model(&store.Attestation{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count attestations")
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Count
	}
	return out, nil
}

// Checkpoint truncates the WAL after large deletions.
func (d *DB) Checkpoint() error {
	return errors.Wrap(d.client.Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error, "failed to checkpoint WAL")
}

func (d *DB) updateSigned(key MessageKey, updates map[string]any) error {
	err := d.client.Model(&store.Attestation{}).
		Where("kind = ? AND message_id = ? AND status = ?", key.Kind, key.MessageID, store.StatusSigned).
		Updates(updates).Error
	return errors.Wrap(err, "failed to update attestations")
}
