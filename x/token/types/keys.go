package types

import (
	"cosmossdk.io/collections"
)

var (
	// ParamsKey saves the current module params.
	ParamsKey = collections.NewPrefix(0)

	// ParamsName is the name of the params collection.
	ParamsName = "params"

	// MetadataKey saves the token metadata.
	MetadataKey = collections.NewPrefix(1)

	// MetadataName is the name of the metadata collection.
	MetadataName = "metadata"

	// BalancesKey saves the per-account balances.
	BalancesKey = collections.NewPrefix(2)

	// BalancesName is the name of the balances collection.
	BalancesName = "balances"

	// AllowancesKey saves owner/spender allowances.
	AllowancesKey = collections.NewPrefix(3)

	// AllowancesName is the name of the allowances collection.
	AllowancesName = "allowances"

	// TotalSupplyKey saves the total supply.
	TotalSupplyKey = collections.NewPrefix(4)

	// TotalSupplyName is the name of the total supply collection.
	TotalSupplyName = "total_supply"

	// RolesKey saves (role, account) grants.
	RolesKey = collections.NewPrefix(5)

	// RolesName is the name of the roles collection.
	RolesName = "roles"

	// RestrictorKey saves the address of the active transfer restrictor.
	RestrictorKey = collections.NewPrefix(6)

	// RestrictorName is the name of the restrictor collection.
	RestrictorName = "restrictor"
)

const (
	ModuleName = "token"

	StoreKey = ModuleName

	QuerierRoute = ModuleName
)
