// Package keys manages the oracle's secp256k1 signing key on disk.
package keys

import (
	"crypto/ecdsa"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

const (
	keysSubdir  = "keys"
	keyFileName = "oracle.key"

	keysDirPermissions = 0o700
)

// ErrKeyExists is returned when a key is already present at the target path.
var ErrKeyExists = errors.New("oracle key already exists")

// Path returns the key file location under home.
func Path(home string) string {
	return filepath.Join(home, keysSubdir, keyFileName)
}

// Generate creates a fresh key and writes it under home. An existing key is
// only replaced when overwrite is set.
func Generate(home string, overwrite bool) (*ecdsa.PrivateKey, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate key")
	}
	if err := Save(home, key, overwrite); err != nil {
		return nil, err
	}
	return key, nil
}

// Import writes a hex-encoded private key under home.
func Import(home, hexKey string, overwrite bool) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(trimHexPrefix(hexKey))
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	if err := Save(home, key, overwrite); err != nil {
		return nil, err
	}
	return key, nil
}

// Save persists key as hex under home.
func Save(home string, key *ecdsa.PrivateKey, overwrite bool) error {
	path := Path(home)
	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.Wrap(ErrKeyExists, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), keysDirPermissions); err != nil {
		return errors.Wrap(err, "failed to create keys directory")
	}
	if err := crypto.SaveECDSA(path, key); err != nil {
		return errors.Wrap(err, "failed to write key")
	}
	return nil
}

// Load reads the key stored under home.
func Load(home string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.LoadECDSA(Path(home))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load oracle key")
	}
	return key, nil
}

// Address returns the oracle address of key.
func Address(key *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(key.PublicKey)
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
