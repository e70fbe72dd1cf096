package types

import (
	"strings"

	"cosmossdk.io/errors"
)

var chainNames = map[ChainTag]string{
	ChainAcurast:  "acurast",
	ChainEthereum: "ethereum",
}

// String returns the lowercase chain name.
func (c ChainTag) String() string {
	if name, ok := chainNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseChainTag resolves a chain name to its tag.
func ParseChainTag(name string) (ChainTag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for tag, n := range chainNames {
		if n == name {
			return tag, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidConfig, "unknown chain %q", name)
}
