package types

import (
	sdkerrors "cosmossdk.io/errors"
)

var (
	ErrTTLTooSmall         = sdkerrors.Register(ModuleName, 2, "TTL too small")
	ErrTTLTooLarge         = sdkerrors.Register(ModuleName, 3, "TTL too large")
	ErrMessagePending      = sdkerrors.Register(ModuleName, 4, "Message with same nonce pending")
	ErrMessageDelivered    = sdkerrors.Register(ModuleName, 5, "Message already delivered")
	ErrMessageReceived     = sdkerrors.Register(ModuleName, 6, "Message already received")
	ErrInvalidSignature    = sdkerrors.Register(ModuleName, 7, "Invalid signature")
	ErrDuplicateSignature  = sdkerrors.Register(ModuleName, 8, "Duplicate signature detected")
	ErrNotEnoughSignatures = sdkerrors.Register(ModuleName, 9, "Not enough signatures")
	ErrMessageNotFound     = sdkerrors.Register(ModuleName, 10, "Message not found")
	ErrRecipientNotFound   = sdkerrors.Register(ModuleName, 11, "Recipient not registered")
	ErrReentrantCall       = sdkerrors.Register(ModuleName, 12, "Reentrant call")
	ErrInvalidConfig       = sdkerrors.Register(ModuleName, 13, "invalid config")
	ErrInvalidAddress      = sdkerrors.Register(ModuleName, 14, "invalid address")
	ErrInvalidFee          = sdkerrors.Register(ModuleName, 15, "invalid fee")
	ErrRecipientRegistered = sdkerrors.Register(ModuleName, 16, "recipient already registered")
	ErrOracleAlreadyExists = sdkerrors.Register(ModuleName, 17, "oracle already exists")
	ErrOracleNotFound      = sdkerrors.Register(ModuleName, 18, "oracle not found")
	ErrMalformedSignature  = sdkerrors.Register(ModuleName, 19, "malformed signature")
	ErrWrongRecipientChain = sdkerrors.Register(ModuleName, 20, "message addressed to another chain")
)
