package smbios

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadFileRoundTrip(t *testing.T) {
	raw := fixtureTable()
	version := Version{Major: 3, Minor: 2}
	path := filepath.Join(t.TempDir(), "smbios.bin")

	ep := NewEntryPoint64(version, len(raw))
	require.NoError(t, WriteFile(path, ep, raw))

	table, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, version, table.Version)
	assert.Len(t, table.All(), 4)

	system, ok := First[*SystemInformation](table)
	require.True(t, ok)
	product, ok := system.ProductName()
	require.True(t, ok)
	assert.Equal(t, "Frame X1", product)
}

func TestReadFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.bin")
	require.NoError(t, os.WriteFile(path, []byte("not an smbios dump"), 0o644))

	_, err := ReadFile(path)
	assert.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.bin"))
	assert.Error(t, err)
}
