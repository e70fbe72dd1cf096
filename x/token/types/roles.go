package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// RoleTokenBridge may mint and burn through the crosschain surface.
	RoleTokenBridge = crypto.Keccak256Hash([]byte("TOKEN_BRIDGE"))

	// RoleRestrictorUpdater may swap the active transfer restrictor.
	RoleRestrictorUpdater = crypto.Keccak256Hash([]byte("RESTRICTOR_UPDATER"))
)

// RoleName returns a readable label for well-known roles.
func RoleName(role common.Hash) string {
	switch role {
	case RoleTokenBridge:
		return "TOKEN_BRIDGE"
	case RoleRestrictorUpdater:
		return "RESTRICTOR_UPDATER"
	default:
		return role.Hex()
	}
}
