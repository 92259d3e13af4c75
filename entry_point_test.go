package smbios

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry32Bytes(t *testing.T) []byte {
	t.Helper()

	ep := &EntryPoint32{
		Length:             entry32Len,
		MajorVersion:       2,
		MinorVersion:       8,
		TableLength:        0x1234,
		TableAddress:       0x000F1000,
		NumberOfStructures: 42,
		BCDRevision:        0x28,
	}
	copy(ep.AnchorString[:], anchor32)
	copy(ep.IntermediateAnchorString[:], anchorDMI)

	data, err := ep.MarshalBinary()
	require.NoError(t, err)
	data[0x15] = checksum(data[0x10:0x1F], 0x05)
	data[0x04] = checksum(data, 0x04)
	return data
}

func TestParseEntryPoint32(t *testing.T) {
	ep, err := ParseEntryPoint(bytes.NewReader(entry32Bytes(t)))
	require.NoError(t, err)

	ep32, ok := ep.(*EntryPoint32)
	require.True(t, ok)

	addr, length := ep32.Table()
	assert.Equal(t, 0x000F1000, addr)
	assert.Equal(t, 0x1234, length)
	assert.Equal(t, Version{Major: 2, Minor: 8}, ep32.Version())
}

func TestParseEntryPoint32BadChecksum(t *testing.T) {
	data := entry32Bytes(t)
	data[0x06] = 3 // changing the major version breaks the checksum

	_, err := ParseEntryPoint(bytes.NewReader(data))
	assert.ErrorContains(t, err, "checksum")
}

func TestParseEntryPointBadAnchor(t *testing.T) {
	_, err := ParseEntryPoint(bytes.NewReader([]byte("_XX_\x00\x00\x00\x00")))
	assert.ErrorContains(t, err, "anchor")
}

func TestEntryPoint64RoundTrip(t *testing.T) {
	ep := NewEntryPoint64(Version{Major: 3, Minor: 5}, 0x2000)

	data, err := ep.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, entry64Len)

	parsed, err := ParseEntryPoint(bytes.NewReader(data))
	require.NoError(t, err)

	ep64, ok := parsed.(*EntryPoint64)
	require.True(t, ok)
	assert.Equal(t, Version{Major: 3, Minor: 5}, ep64.Version())

	addr, length := ep64.Table()
	assert.Equal(t, dumpTableOffset, addr)
	assert.Equal(t, 0x2000, length)
}

func TestEntryPoint64BadLength(t *testing.T) {
	ep := NewEntryPoint64(Version{Major: 3, Minor: 0}, 64)
	data, err := ep.MarshalBinary()
	require.NoError(t, err)
	data[0x06] = 0x30 // declared entry point length must be 0x18

	err = new(EntryPoint64).UnmarshalBinary(data)
	assert.ErrorContains(t, err, "length")
}
