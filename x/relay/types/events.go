package types

import (
	"encoding/json"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeMessageReadyToSend = "message_ready_to_send"
	EventTypeMessageProcessed   = "message_processed"
	EventTypeMessageDelivered   = "message_delivered"
	EventTypeConfigUpdated      = "config_updated"
	EventTypeOracleAdded        = "oracle_added"
	EventTypeOracleRemoved      = "oracle_removed"
	EventTypeIncomingCleaned    = "incoming_cleaned"
)

// MessageReadyToSendEvent carries everything an oracle needs to countersign an outgoing message.
type MessageReadyToSendEvent struct {
	ID               string `json:"id"`
	Sender           string `json:"sender"`
	Nonce            string `json:"nonce"`
	DestinationChain uint8  `json:"destination_chain"`
	Recipient        string `json:"recipient"`
	Payload          string `json:"payload"`
	TTL              uint64 `json:"ttl"`
	Fee              string `json:"fee"`
	SentAtHeight     int64  `json:"sent_at_height"`
}

type MessageProcessedEvent struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Nonce     string `json:"nonce"`
	Recipient string `json:"recipient"`
	Relayer   string `json:"relayer"`
	RelayerID string `json:"relayer_id"`
}

type MessageDeliveredEvent struct {
	ID        string `json:"id"`
	Confirmer string `json:"confirmer"`
}

type ConfigUpdatedEvent struct {
	Config Config `json:"config"`
}

type OracleEvent struct {
	Oracle string `json:"oracle"`
}

type IncomingCleanedEvent struct {
	Removed uint64 `json:"removed"`
	Height  int64  `json:"height"`
}

func newEvent(eventType string, v any, attrs ...sdk.Attribute) (sdk.Event, error) {
	bz, err := json.Marshal(v)
	if err != nil {
		return sdk.Event{}, fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}
	attrs = append(attrs, sdk.NewAttribute("data", string(bz))) // full JSON payload for indexers
	return sdk.NewEvent(eventType, attrs...), nil
}

func NewMessageReadyToSendEvent(e MessageReadyToSendEvent) (sdk.Event, error) {
	return newEvent(EventTypeMessageReadyToSend, e,
		sdk.NewAttribute("id", e.ID),
		sdk.NewAttribute("sender", e.Sender),
		sdk.NewAttribute("nonce", e.Nonce),
		sdk.NewAttribute("recipient", e.Recipient),
		sdk.NewAttribute("ttl", strconv.FormatUint(e.TTL, 10)),
		sdk.NewAttribute("fee", e.Fee),
	)
}

func NewMessageProcessedEvent(e MessageProcessedEvent) (sdk.Event, error) {
	return newEvent(EventTypeMessageProcessed, e,
		sdk.NewAttribute("id", e.ID),
		sdk.NewAttribute("sender", e.Sender),
		sdk.NewAttribute("nonce", e.Nonce),
		sdk.NewAttribute("recipient", e.Recipient),
		sdk.NewAttribute("relayer", e.Relayer),
	)
}

func NewMessageDeliveredEvent(e MessageDeliveredEvent) (sdk.Event, error) {
	return newEvent(EventTypeMessageDelivered, e,
		sdk.NewAttribute("id", e.ID),
		sdk.NewAttribute("confirmer", e.Confirmer),
	)
}

func NewConfigUpdatedEvent(e ConfigUpdatedEvent) (sdk.Event, error) {
	return newEvent(EventTypeConfigUpdated, e)
}

// NewOracleEvent builds an oracle_added or oracle_removed event.
func NewOracleEvent(eventType string, e OracleEvent) (sdk.Event, error) {
	return newEvent(eventType, e, sdk.NewAttribute("oracle", e.Oracle))
}

func NewIncomingCleanedEvent(e IncomingCleanedEvent) (sdk.Event, error) {
	return newEvent(EventTypeIncomingCleaned, e,
		sdk.NewAttribute("removed", strconv.FormatUint(e.Removed, 10)),
	)
}
