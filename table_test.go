package smbios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureTable assembles a small but realistic table: system information,
// a physical memory array, one memory device pointing back at the array,
// and the end-of-table marker.
func fixtureTable() []byte {
	sysBody := []byte{0x01, 0x02, 0x00, 0x03} // manufacturer, product, version, serial
	// UUID field.
	sysBody = append(sysBody, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF)
	sysBody = append(sysBody, 0x06) // wake-up type: power switch
	system := structBytes(1, 0x0100, sysBody, "Examplecorp", "Frame X1", "EX1-0042")

	array := structBytes(16, 0x1000, []byte{
		0x03,                   // location: motherboard
		0x03,                   // use: system memory
		0x06,                   // ECC: multi-bit
		0x00, 0x00, 0x00, 0x02, // maximum capacity 32 GB in KB
		0xFE, 0xFF,             // no error information
		0x02, 0x00,             // two device slots
	})

	device := structBytes(17, 0x1100, []byte{
		0x00, 0x10, // physical memory array handle
		0xFE, 0xFF, // no error information
		0x48, 0x00, // total width
		0x40, 0x00, // data width
		0x00, 0x40, // size: 16 GB in MB units
		0x09,       // form factor: DIMM
		0x00,       // device set
		0x01, 0x02, // device locator, bank locator
		0x1A,       // memory type: DDR4
		0x80, 0x00, // type detail: synchronous
		0x66, 0x0A, // speed 2666 MT/s
		0x03, 0x04, // manufacturer, serial number
	}, "DIMM A1", "BANK 0", "Examplecorp Memory", "123456789")

	var data []byte
	data = append(data, system...)
	data = append(data, array...)
	data = append(data, device...)
	data = append(data, endOfTableBytes(0x7F00)...)
	return data
}

func TestDecodeTable(t *testing.T) {
	table, err := Decode(fixtureTable(), Version{Major: 3, Minor: 2})
	require.NoError(t, err)
	require.Len(t, table.All(), 4)
	assert.Equal(t, "3.2.0", table.Version.String())

	system, ok := First[*SystemInformation](table)
	require.True(t, ok)
	manufacturer, ok := system.Manufacturer()
	require.True(t, ok)
	assert.Equal(t, "Examplecorp", manufacturer)

	devices := Collect[*MemoryDevice](table)
	require.Len(t, devices, 1)
	size, ok := devices[0].Size()
	require.True(t, ok)
	assert.Equal(t, uint64(16*1024*1024*1024), size)
}

func TestFindByHandle(t *testing.T) {
	table, err := Decode(fixtureTable(), Version{Major: 3, Minor: 2})
	require.NoError(t, err)

	device, ok := First[*MemoryDevice](table)
	require.True(t, ok)

	arrayHandle, ok := device.PhysicalMemoryArrayHandle()
	require.True(t, ok)

	ts, ok := table.FindByHandle(arrayHandle)
	require.True(t, ok)
	array, ok := As[*PhysicalMemoryArray](ts)
	require.True(t, ok)

	capacity, ok := array.MaximumCapacity()
	require.True(t, ok)
	assert.Equal(t, uint64(32*1024*1024*1024), capacity)

	// Dangling references are a normal miss.
	_, ok = table.FindByHandle(0xBEEF)
	assert.False(t, ok)
}

func TestDecodePartialTable(t *testing.T) {
	data := fixtureTable()
	data = data[:len(data)-6] // drop the end-of-table structure
	// A declared length far past the remaining bytes stops the walk.
	data = append(data, 0x04, 0x60, 0x00, 0x50, 0, 0)

	table, err := Decode(data, Version{Major: 3, Minor: 2})
	require.ErrorIs(t, err, ErrStructureTruncated)
	require.NotNil(t, table)
	assert.Len(t, table.All(), 3)

	// Everything before the failure point stays queryable.
	_, ok := First[*MemoryDevice](table)
	assert.True(t, ok)
}

func TestDuplicateHandleFirstWins(t *testing.T) {
	var data []byte
	data = append(data, structBytes(11, 0x0100, []byte{1}, "first")...)
	data = append(data, structBytes(12, 0x0100, []byte{1}, "second")...)
	data = append(data, endOfTableBytes(0x7F00)...)

	table, err := Decode(data, Version{Major: 2, Minor: 8})
	require.NoError(t, err)
	require.Len(t, table.All(), 3)

	ts, ok := table.FindByHandle(0x0100)
	require.True(t, ok)
	_, ok = As[*OEMStrings](ts)
	assert.True(t, ok)
}

func TestFirstMiss(t *testing.T) {
	table, err := Decode(endOfTableBytes(0x7F00), Version{Major: 3, Minor: 2})
	require.NoError(t, err)

	_, ok := First[*BIOSInformation](table)
	assert.False(t, ok)
	assert.Empty(t, Collect[*MemoryDevice](table))
}
