package smbios

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func systemFixture(t *testing.T, uuidBytes []byte) *SystemInformation {
	t.Helper()
	body := []byte{0x01, 0x02, 0x03, 0x04} // manufacturer, product, version, serial
	body = append(body, uuidBytes...)
	body = append(body,
		0x06,       // wake-up type: power switch
		0x05, 0x06, // SKU, family
	)
	ts := decodeOne(t, 1, body,
		"Examplecorp", "Frame X1", "Rev B", "EX1-0042", "SKU-17", "Frame")
	sys, ok := As[*SystemInformation](ts)
	require.True(t, ok)
	return sys
}

func TestSystemInformation(t *testing.T) {
	raw := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
	}
	sys := systemFixture(t, raw)

	manufacturer, ok := sys.Manufacturer()
	require.True(t, ok)
	assert.Equal(t, "Examplecorp", manufacturer)

	serial, ok := sys.SerialNumber()
	require.True(t, ok)
	assert.Equal(t, "EX1-0042", serial)

	sku, ok := sys.SKUNumber()
	require.True(t, ok)
	assert.Equal(t, "SKU-17", sku)

	family, ok := sys.Family()
	require.True(t, ok)
	assert.Equal(t, "Frame", family)

	wake, ok := sys.WakeUpType()
	require.True(t, ok)
	assert.Equal(t, WakeUpPowerSwitch, wake)
	assert.Equal(t, "Power Switch", wake.String())
}

func TestSystemUUIDByteSwap(t *testing.T) {
	raw := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
	}
	sys := systemFixture(t, raw)

	got, ok := sys.UUIDBytes()
	require.True(t, ok)
	assert.Equal(t, raw, got[:])

	// The first three fields are stored little-endian on the wire.
	id, ok := sys.UUID()
	require.True(t, ok)
	assert.Equal(t, "33221100-5544-7766-8899-aabbccddeeff", id.String())
}

func TestSystemUUIDSentinels(t *testing.T) {
	sys := systemFixture(t, make([]byte, 16))
	_, ok := sys.UUIDBytes()
	assert.False(t, ok, "all-zero UUID is not present")
	_, ok = sys.UUID()
	assert.False(t, ok)

	raw, ok := sys.RawUUIDBytes()
	require.True(t, ok, "the raw field stays readable")
	assert.True(t, bytes.Equal(raw[:], make([]byte, 16)))

	sys = systemFixture(t, bytes.Repeat([]byte{0xFF}, 16))
	_, ok = sys.UUIDBytes()
	assert.False(t, ok, "all-FF UUID is not settable")
}

func TestSystemShortStructureGatesFields(t *testing.T) {
	// A 2.0 layout structure ends after the serial number index.
	ts := decodeOne(t, 1, []byte{0x01, 0x02, 0x00, 0x03},
		"Examplecorp", "Frame X1", "EX1-0042")
	sys, ok := As[*SystemInformation](ts)
	require.True(t, ok)

	manufacturer, ok := sys.Manufacturer()
	require.True(t, ok)
	assert.Equal(t, "Examplecorp", manufacturer)

	_, ok = sys.Version()
	assert.False(t, ok, "index byte zero means no string")

	_, ok = sys.UUIDBytes()
	assert.False(t, ok)
	_, ok = sys.WakeUpType()
	assert.False(t, ok)
	_, ok = sys.SKUNumber()
	assert.False(t, ok)
}
