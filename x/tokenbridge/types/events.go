package types

import (
	"encoding/json"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeTransferSent         = "transfer_sent"
	EventTypeTransferReceived     = "transfer_received"
	EventTypeTransfersEnabled     = "transfers_enabled"
	EventTypeRelayContractUpdated = "relay_contract_updated"
	EventTypePalletAccountUpdated = "pallet_account_updated"
	EventTypeOutgoingTTLUpdated   = "outgoing_ttl_updated"
	EventTypeOwnershipTransferred = "ownership_transferred"
)

type TransferSentEvent struct {
	Amount    string `json:"amount"`
	Fee       string `json:"fee"`
	Dest      string `json:"dest"`
	Nonce     uint64 `json:"nonce"`
	Sender    string `json:"sender"`
	MessageID string `json:"message_id"`
	Retry     bool   `json:"retry"`
}

type TransferReceivedEvent struct {
	Amount    string `json:"amount"`
	Recipient string `json:"recipient"`
	Nonce     uint32 `json:"nonce"`
}

type TransfersEnabledEvent struct {
	Sender string `json:"sender"`
}

// UpdatedEvent carries the old and new value of an admin-updated setting.
type UpdatedEvent struct {
	Old string `json:"old"`
	New string `json:"new"`
}

func newEvent(eventType string, v any, attrs ...sdk.Attribute) (sdk.Event, error) {
	bz, err := json.Marshal(v)
	if err != nil {
		return sdk.Event{}, fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}
	attrs = append(attrs, sdk.NewAttribute("data", string(bz)))
	return sdk.NewEvent(eventType, attrs...), nil
}

func NewTransferSentEvent(e TransferSentEvent) (sdk.Event, error) {
	return newEvent(EventTypeTransferSent, e,
		sdk.NewAttribute("amount", e.Amount),
		sdk.NewAttribute("fee", e.Fee),
		sdk.NewAttribute("dest", e.Dest),
		sdk.NewAttribute("nonce", strconv.FormatUint(e.Nonce, 10)),
	)
}

func NewTransferReceivedEvent(e TransferReceivedEvent) (sdk.Event, error) {
	return newEvent(EventTypeTransferReceived, e,
		sdk.NewAttribute("amount", e.Amount),
		sdk.NewAttribute("recipient", e.Recipient),
		sdk.NewAttribute("nonce", strconv.FormatUint(uint64(e.Nonce), 10)),
	)
}

func NewTransfersEnabledEvent(e TransfersEnabledEvent) (sdk.Event, error) {
	return newEvent(EventTypeTransfersEnabled, e)
}

// NewUpdatedEvent builds one of the admin update events.
func NewUpdatedEvent(eventType string, e UpdatedEvent) (sdk.Event, error) {
	return newEvent(eventType, e,
		sdk.NewAttribute("old", e.Old),
		sdk.NewAttribute("new", e.New),
	)
}
