package types

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeTransfer          = "transfer"
	EventTypeApproval          = "approval"
	EventTypeCrosschainMint    = "crosschain_mint"
	EventTypeCrosschainBurn    = "crosschain_burn"
	EventTypeRestrictorUpdated = "restrictor_updated"
	EventTypeRoleGranted       = "role_granted"
	EventTypeRoleRevoked       = "role_revoked"
)

// TransferEvent is emitted for transfers, mints (zero From) and burns (zero To).
type TransferEvent struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type ApprovalEvent struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}

type CrosschainEvent struct {
	Account string `json:"account"`
	Amount  string `json:"amount"`
	Sender  string `json:"sender"`
}

type RestrictorUpdatedEvent struct {
	Old string `json:"old"`
	New string `json:"new"`
}

type RoleEvent struct {
	Role    string `json:"role"`
	Account string `json:"account"`
	Sender  string `json:"sender"`
}

func newEvent(eventType string, v any, attrs ...sdk.Attribute) (sdk.Event, error) {
	bz, err := json.Marshal(v)
	if err != nil {
		return sdk.Event{}, fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}
	attrs = append(attrs, sdk.NewAttribute("data", string(bz)))
	return sdk.NewEvent(eventType, attrs...), nil
}

func NewTransferEvent(e TransferEvent) (sdk.Event, error) {
	return newEvent(EventTypeTransfer, e,
		sdk.NewAttribute("from", e.From),
		sdk.NewAttribute("to", e.To),
		sdk.NewAttribute("amount", e.Amount),
	)
}

func NewApprovalEvent(e ApprovalEvent) (sdk.Event, error) {
	return newEvent(EventTypeApproval, e,
		sdk.NewAttribute("owner", e.Owner),
		sdk.NewAttribute("spender", e.Spender),
	)
}

// NewCrosschainEvent builds a crosschain_mint or crosschain_burn event.
func NewCrosschainEvent(eventType string, e CrosschainEvent) (sdk.Event, error) {
	return newEvent(eventType, e,
		sdk.NewAttribute("account", e.Account),
		sdk.NewAttribute("amount", e.Amount),
	)
}

func NewRestrictorUpdatedEvent(e RestrictorUpdatedEvent) (sdk.Event, error) {
	return newEvent(EventTypeRestrictorUpdated, e,
		sdk.NewAttribute("old", e.Old),
		sdk.NewAttribute("new", e.New),
	)
}

// NewRoleEvent builds a role_granted or role_revoked event.
func NewRoleEvent(eventType string, e RoleEvent) (sdk.Event, error) {
	return newEvent(eventType, e,
		sdk.NewAttribute("role", e.Role),
		sdk.NewAttribute("account", e.Account),
	)
}
