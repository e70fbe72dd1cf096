package types

import (
	"cosmossdk.io/collections"
)

var (
	// ParamsKey saves the current module params.
	ParamsKey = collections.NewPrefix(0)

	// ParamsName is the name of the params collection.
	ParamsName = "params"

	// OutgoingTransfersKey saves outgoing transfers by nonce.
	OutgoingTransfersKey = collections.NewPrefix(1)

	// OutgoingTransfersName is the name of the outgoing transfers collection.
	OutgoingTransfersName = "outgoing_transfers"

	// NextTransferNonceKey saves the nonce assigned to the next outgoing transfer.
	NextTransferNonceKey = collections.NewPrefix(2)

	// NextTransferNonceName is the name of the transfer nonce sequence.
	NextTransferNonceName = "next_transfer_nonce"

	// IncomingTransferNoncesKey saves the nonces of processed incoming transfers.
	IncomingTransferNoncesKey = collections.NewPrefix(3)

	// IncomingTransferNoncesName is the name of the incoming nonce set.
	IncomingTransferNoncesName = "incoming_transfer_nonces"
)

const (
	ModuleName = "tokenbridge"

	StoreKey = ModuleName

	QuerierRoute = ModuleName
)
