package types

import (
	sdkerrors "cosmossdk.io/errors"
)

var (
	ErrInvalidAddress          = sdkerrors.Register(ModuleName, 2, "Invalid address")
	ErrSupplyOverflow          = sdkerrors.Register(ModuleName, 3, "supply overflow")
	ErrTransferRestricted      = sdkerrors.Register(ModuleName, 4, "transfer restricted")
	ErrInvalidReceiver         = sdkerrors.Register(ModuleName, 5, "invalid receiver")
	ErrInvalidSender           = sdkerrors.Register(ModuleName, 6, "invalid sender")
	ErrInsufficientBalance     = sdkerrors.Register(ModuleName, 7, "insufficient balance")
	ErrInsufficientAllowance   = sdkerrors.Register(ModuleName, 8, "insufficient allowance")
	ErrMissingRole             = sdkerrors.Register(ModuleName, 9, "missing role")
	ErrRestrictorNotCallable   = sdkerrors.Register(ModuleName, 10, "restrictor not callable")
	ErrInvalidAmount           = sdkerrors.Register(ModuleName, 11, "invalid amount")
	ErrInvalidMetadata         = sdkerrors.Register(ModuleName, 12, "invalid metadata")
	ErrRestrictorAlreadyExists = sdkerrors.Register(ModuleName, 13, "restrictor already registered")
)
