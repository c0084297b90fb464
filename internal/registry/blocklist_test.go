package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundclave/sc-broker/internal/registry"
)

func writeBlocklist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blocklist.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadBlocklist(t *testing.T) {
	path := writeBlocklist(t, `{"addresses": ["rBADACTORxxxxxxxxxxxxxxxxxxxxxxxxx", "rSCAMMERxxxxxxxxxxxxxxxxxxxxxxxxxx"]}`)

	bl, err := registry.LoadBlocklist(path)
	require.NoError(t, err)

	assert.True(t, bl.IsBlocked("rBADACTORxxxxxxxxxxxxxxxxxxxxxxxxx"))
	assert.True(t, bl.IsBlocked("rSCAMMERxxxxxxxxxxxxxxxxxxxxxxxxxx"))
	assert.False(t, bl.IsBlocked("rHONESTxxxxxxxxxxxxxxxxxxxxxxxxxxx"))
}

func TestLoadBlocklist_CaseInsensitive(t *testing.T) {
	path := writeBlocklist(t, `{"addresses": ["rBadActorXYZ"]}`)

	bl, err := registry.LoadBlocklist(path)
	require.NoError(t, err)

	assert.True(t, bl.IsBlocked("rbadactorxyz"))
	assert.True(t, bl.IsBlocked("RBADACTORXYZ"))
	assert.True(t, bl.IsBlocked("rBadActorXYZ"))
}

func TestLoadBlocklist_Empty(t *testing.T) {
	path := writeBlocklist(t, `{"addresses": []}`)

	bl, err := registry.LoadBlocklist(path)
	require.NoError(t, err)
	assert.False(t, bl.IsBlocked("rANYONExxxxxxxxxxxxxxxxxxxxxxxxxxx"))
}

func TestLoadBlocklist_MissingFile(t *testing.T) {
	_, err := registry.LoadBlocklist(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read blocklist file")
}

func TestLoadBlocklist_InvalidJSON(t *testing.T) {
	path := writeBlocklist(t, `{"addresses": [`)

	_, err := registry.LoadBlocklist(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse blocklist JSON")
}
