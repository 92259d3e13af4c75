package smbios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func processorFixture(t *testing.T, family uint8, family2 uint16) *ProcessorInformation {
	t.Helper()
	body := []byte{
		0x01,   // socket designation
		0x03,   // type: central processor
		family, // family
		0x02,   // manufacturer
	}
	body = append(body, 0xE3, 0x06, 0x08, 0x00, 0xFF, 0xFB, 0xEB, 0xBF) // ID
	body = append(body,
		0x03,       // version
		0x8B,       // voltage: 1.1 V
		0x64, 0x00, // external clock 100 MHz
		0x10, 0x0E, // max speed 3600 MHz
		0x60, 0x09, // current speed 2400 MHz
		0x41,       // status: populated, enabled
		0x01,       // upgrade: other
		0x05, 0x00, // L1 cache handle
		0x06, 0x00, // L2 cache handle
		0xFF, 0xFF, // no L3 cache
		// No serial number, asset tag or part number strings.
		0x00, 0x00, 0x00,
		0x08,       // core count
		0x08,       // cores enabled
		0x10,       // thread count
		0xEC, 0x00, // characteristics
	)
	body = append(body, byte(family2), byte(family2>>8))
	ts := decodeOne(t, 4, body, "CPU0", "Examplecorp", "Examplecorp Core X8")
	cpu, ok := As[*ProcessorInformation](ts)
	require.True(t, ok)
	return cpu
}

func TestProcessorInformation(t *testing.T) {
	cpu := processorFixture(t, 0xC6, 0)

	socket, ok := cpu.SocketDesignation()
	require.True(t, ok)
	assert.Equal(t, "CPU0", socket)

	family, ok := cpu.Family()
	require.True(t, ok)
	assert.Equal(t, ProcessorFamily(198), family)
	assert.Equal(t, "Intel Core i7", family.String())

	voltage, ok := cpu.Voltage()
	require.True(t, ok)
	assert.InDelta(t, 1.1, voltage, 0.001)

	speed, ok := cpu.MaxSpeed()
	require.True(t, ok)
	assert.Equal(t, uint16(3600), speed)

	populated, ok := cpu.SocketPopulated()
	require.True(t, ok)
	assert.True(t, populated)

	l1, ok := cpu.L1CacheHandle()
	require.True(t, ok)
	assert.Equal(t, Handle(0x0005), l1)

	_, ok = cpu.L3CacheHandle()
	assert.False(t, ok, "0xFFFF means no cache structure")

	cores, ok := cpu.CoreCount()
	require.True(t, ok)
	assert.Equal(t, uint16(8), cores)

	threads, ok := cpu.ThreadCount()
	require.True(t, ok)
	assert.Equal(t, uint16(16), threads)

	_, ok = cpu.SerialNumber()
	assert.False(t, ok)
}

func TestProcessorFamilyRedirect(t *testing.T) {
	// Family byte 0xFE redirects to the Family2 word.
	cpu := processorFixture(t, 0xFE, 257)

	family, ok := cpu.Family()
	require.True(t, ok)
	assert.Equal(t, ProcessorFamily(257), family)
	assert.Equal(t, "ARMv8", family.String())
}

func TestProcessorLegacyVoltage(t *testing.T) {
	cpu := processorFixture(t, 0xC6, 0)
	s := cpu.Structure()

	s.Formatted[0x11] = 0x02 // legacy encoding: 3.3 V
	voltage, ok := cpu.Voltage()
	require.True(t, ok)
	assert.InDelta(t, 3.3, voltage, 0.001)

	s.Formatted[0x11] = 0x03 // ambiguous legacy bits
	_, ok = cpu.Voltage()
	assert.False(t, ok)
}
