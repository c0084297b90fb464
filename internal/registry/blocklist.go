// Package registry loads operator-maintained account lists from disk.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Blocklist defines the interface for buyer blocklist operations
//
//go:generate mockgen -source=blocklist.go -destination=../mocks/blocklist.go -package=mocks -mock_names=Blocklist=MockBlocklist
type Blocklist interface {
	// IsBlocked checks if a ledger account address is blocked from purchasing
	IsBlocked(address string) bool
}

// BlocklistData represents the structure of the blocklist.json file:
// a list of ledger account addresses
type BlocklistData struct {
	Addresses []string `json:"addresses"`
}

// blocklist is the internal implementation of the Blocklist interface
type blocklist struct {
	// Fast lookup map: lowercased address -> true
	addresses map[string]bool
}

// LoadBlocklist loads the buyer blocklist from a JSON file
func LoadBlocklist(filePath string) (Blocklist, error) {
	// Read the file using the absolute path
	data, err := os.ReadFile(filePath) //nolint:gosec,G304 // This should be a trusted file
	if err != nil {
		return nil, fmt.Errorf("failed to read blocklist file: %w", err)
	}

	// Parse JSON
	var blocklistData BlocklistData
	if err := json.Unmarshal(data, &blocklistData); err != nil {
		return nil, fmt.Errorf("failed to parse blocklist JSON: %w", err)
	}

	// Build lookup map
	bl := &blocklist{
		addresses: make(map[string]bool),
	}
	for _, addr := range blocklistData.Addresses {
		bl.addresses[strings.ToLower(addr)] = true
	}

	return bl, nil
}

// IsBlocked checks if a ledger account address is blocked from purchasing
func (b *blocklist) IsBlocked(address string) bool {
	if b == nil {
		return false
	}
	return b.addresses[strings.ToLower(address)]
}
