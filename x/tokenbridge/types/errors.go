package types

import (
	sdkerrors "cosmossdk.io/errors"
)

var (
	ErrZeroAmount              = sdkerrors.Register(ModuleName, 2, "Cannot transfer 0 amount")
	ErrInsufficientBalance     = sdkerrors.Register(ModuleName, 3, "Insufficient ACU balance")
	ErrTransferNotFound        = sdkerrors.Register(ModuleName, 4, "Transfer not found")
	ErrUnauthorizedOrigin      = sdkerrors.Register(ModuleName, 5, "Unauthorized origin")
	ErrInvalidAction           = sdkerrors.Register(ModuleName, 6, "Invalid action")
	ErrUnauthorizedSender      = sdkerrors.Register(ModuleName, 7, "Unauthorized sender")
	ErrInvalidActionPayload    = sdkerrors.Register(ModuleName, 8, "Invalid action payload")
	ErrUnsupportedAsset        = sdkerrors.Register(ModuleName, 9, "Unsupported assetId")
	ErrInvalidRecipient        = sdkerrors.Register(ModuleName, 10, "Invalid recipient")
	ErrTransferAlreadyReceived = sdkerrors.Register(ModuleName, 11, "Transfer already received")
	ErrInvalidEnableFlag       = sdkerrors.Register(ModuleName, 12, "Invalid enable flag")
	ErrUnsupportedAction       = sdkerrors.Register(ModuleName, 13, "Unsupported action")
	ErrInvalidRelayContract    = sdkerrors.Register(ModuleName, 14, "Invalid IBC contract address")
	ErrOutgoingTTLTooSmall     = sdkerrors.Register(ModuleName, 15, "OutgoingTTL too small")
	ErrOutgoingTTLTooLarge     = sdkerrors.Register(ModuleName, 16, "OutgoingTTL too large")
	ErrReentrantCall           = sdkerrors.Register(ModuleName, 17, "Reentrant call")
	ErrInvalidAddress          = sdkerrors.Register(ModuleName, 18, "invalid address")
	ErrAmountOverflow          = sdkerrors.Register(ModuleName, 19, "amount exceeds 128 bits")
	ErrNonceOverflow           = sdkerrors.Register(ModuleName, 20, "transfer nonce exceeds 32 bits")
)
