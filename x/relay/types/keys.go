package types

import (
	"cosmossdk.io/collections"
)

var (
	// ParamsKey saves the current module params.
	ParamsKey = collections.NewPrefix(0)

	// ParamsName is the name of the params collection.
	ParamsName = "params"

	// ConfigKey saves the relay configuration.
	ConfigKey = collections.NewPrefix(1)

	// ConfigName is the name of the config collection.
	ConfigName = "config"

	// OraclesKey saves the oracle set.
	OraclesKey = collections.NewPrefix(2)

	// OraclesName is the name of the oracles collection.
	OraclesName = "oracles"

	// OutgoingKey saves outgoing messages by id.
	OutgoingKey = collections.NewPrefix(3)

	// OutgoingName is the name of the outgoing collection.
	OutgoingName = "outgoing"

	// IncomingKey saves incoming messages by id.
	IncomingKey = collections.NewPrefix(4)

	// IncomingName is the name of the incoming collection.
	IncomingName = "incoming"
)

const (
	ModuleName = "relay"

	StoreKey = ModuleName

	QuerierRoute = ModuleName
)
