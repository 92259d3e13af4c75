package smbios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryDeviceFixture(t *testing.T, sizeWord uint16, extra ...byte) *MemoryDevice {
	t.Helper()
	body := []byte{
		0x00, 0x10, // physical memory array handle
		0xFE, 0xFF, // no error information
		0x48, 0x00, // total width 72
		0x40, 0x00, // data width 64
		byte(sizeWord), byte(sizeWord >> 8),
		0x09,       // form factor: DIMM
		0x00,       // device set
		0x01, 0x02, // device locator, bank locator
		0x1A,       // memory type: DDR4
		0x80, 0x00, // type detail: synchronous
		0x6A, 0x0A, // speed 2666 MT/s
		0x03, 0x00, // manufacturer, no serial
	}
	body = append(body, extra...)
	ts := decodeOne(t, 17, body, "DIMM A1", "BANK 0", "Examplecorp Memory")
	dev, ok := As[*MemoryDevice](ts)
	require.True(t, ok)
	return dev
}

func TestMemoryDevice(t *testing.T) {
	dev := memoryDeviceFixture(t, 0x4000) // 16 GB in MB units

	handle, ok := dev.PhysicalMemoryArrayHandle()
	require.True(t, ok)
	assert.Equal(t, Handle(0x1000), handle)

	_, ok = dev.ErrorInformationHandle()
	assert.False(t, ok, "0xFFFE means not provided")

	size, ok := dev.Size()
	require.True(t, ok)
	assert.Equal(t, uint64(16)*1024*1024*1024, size)

	populated, ok := dev.Populated()
	require.True(t, ok)
	assert.True(t, populated)

	locator, ok := dev.DeviceLocator()
	require.True(t, ok)
	assert.Equal(t, "DIMM A1", locator)

	mt, ok := dev.MemoryType()
	require.True(t, ok)
	assert.Equal(t, "DDR4", mt.String())

	speed, ok := dev.Speed()
	require.True(t, ok)
	assert.Equal(t, uint32(2666), speed)

	_, ok = dev.SerialNumber()
	assert.False(t, ok)
}

func TestMemoryDeviceSizeEncodings(t *testing.T) {
	// Bit 15 selects kilobyte granularity.
	dev := memoryDeviceFixture(t, 0x8000|512)
	size, ok := dev.Size()
	require.True(t, ok)
	assert.Equal(t, uint64(512)*1024, size)

	// Empty socket.
	dev = memoryDeviceFixture(t, 0)
	_, ok = dev.Size()
	assert.False(t, ok)
	populated, ok := dev.Populated()
	require.True(t, ok)
	assert.False(t, populated)

	// Unknown size.
	dev = memoryDeviceFixture(t, 0xFFFF)
	_, ok = dev.Size()
	assert.False(t, ok)
}

func TestMemoryDeviceExtendedSize(t *testing.T) {
	// 0x7FFF redirects to the extended dword at 0x1C, in MB units. The
	// extra bytes cover asset tag, part number and attributes first, then
	// the extended size of 32768 MB.
	extra := []byte{0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00}
	dev := memoryDeviceFixture(t, 0x7FFF, extra...)

	size, ok := dev.Size()
	require.True(t, ok)
	assert.Equal(t, uint64(32)*1024*1024*1024, size)
}
