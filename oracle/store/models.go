// Package store contains GORM-backed SQLite models used by the oracle.
//
// Database Structure (database file: attestations.db):
//
//	attestations   one row per (kind, message id, signer)
package store

import (
	"gorm.io/gorm"
)

// Attestation kinds.
const (
	KindReceipt  = "RECEIPT"  // incoming message observed on the remote chain
	KindDelivery = "DELIVERY" // outgoing message delivered on the remote chain
)

// Attestation statuses.
const (
	StatusSigned    = "SIGNED"    // awaiting submission
	StatusSubmitted = "SUBMITTED" // accepted by the relay ledger
	StatusFailed    = "FAILED"    // rejected or out of attempts
)

// Attestation is a digest signed by a local oracle key together with what is
// needed to submit it.
type Attestation struct {
	gorm.Model
	Kind      string `gorm:"uniqueIndex:idx_kind_message_signer;not null"`
	MessageID string `gorm:"uniqueIndex:idx_kind_message_signer;not null"` // 0x-prefixed relay message id
	Signer    string `gorm:"uniqueIndex:idx_kind_message_signer;not null"` // 0x-prefixed oracle address
	Digest    string `gorm:"not null"`                                     // 0x-prefixed digest that was signed
	Signature []byte `gorm:"not null"`                                     // 65-byte EIP-191 signature
	Data      []byte // Raw JSON-encoded envelope needed for submission
	Status    string `gorm:"index;not null"`
	Attempts  int
	ErrorMsg  string `gorm:"type:text"` // Last submission error
}

// TableName specifies the table name for Attestation.
func (Attestation) TableName() string {
	return "attestations"
}
