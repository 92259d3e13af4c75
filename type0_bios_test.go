package smbios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func biosFixture(t *testing.T, romByte uint8, extra ...byte) *BIOSInformation {
	t.Helper()
	body := []byte{
		0x01,       // vendor
		0x02,       // version
		0x00, 0xE8, // starting address segment
		0x03,       // release date
		romByte,    // ROM size
	}
	// Characteristics: PCI, PNP, upgradeable, boot from CD, selectable boot.
	body = append(body, 0x80, 0x8A, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00)
	body = append(body,
		0x03,       // extension byte 1: ACPI, USB legacy
		0x09,       // extension byte 2: boot spec, UEFI
		0x01, 0x05, // system BIOS release 1.5
		0xFF, 0xFF, // no EC firmware
	)
	body = append(body, extra...)
	ts := decodeOne(t, 0, body, "Examplecorp", "1.5.0", "03/14/2024")
	bios, ok := As[*BIOSInformation](ts)
	require.True(t, ok)
	return bios
}

func TestBIOSInformation(t *testing.T) {
	bios := biosFixture(t, 0x0F)

	vendor, ok := bios.Vendor()
	require.True(t, ok)
	assert.Equal(t, "Examplecorp", vendor)

	version, ok := bios.Version()
	require.True(t, ok)
	assert.Equal(t, "1.5.0", version)

	date, ok := bios.ReleaseDate()
	require.True(t, ok)
	assert.Equal(t, "03/14/2024", date)

	seg, ok := bios.StartingAddressSegment()
	require.True(t, ok)
	assert.Equal(t, uint16(0xE800), seg)

	size, ok := bios.ROMSize()
	require.True(t, ok)
	assert.Equal(t, uint64(1024*1024), size)

	char, ok := bios.Characteristics()
	require.True(t, ok)
	assert.NotZero(t, char&BIOSCharPCI)
	assert.NotZero(t, char&BIOSCharSelectableBoot)
	assert.Zero(t, char&BIOSCharISA)
	assert.Contains(t, char.String(), "PCI is supported")

	ext1, ok := bios.CharacteristicsExt1()
	require.True(t, ok)
	assert.NotZero(t, ext1&BIOSCharExt1ACPI)

	ext2, ok := bios.CharacteristicsExt2()
	require.True(t, ok)
	assert.NotZero(t, ext2&BIOSCharExt2UEFI)

	major, minor, ok := bios.SystemBIOSRelease()
	require.True(t, ok)
	assert.Equal(t, uint8(1), major)
	assert.Equal(t, uint8(5), minor)

	_, _, ok = bios.ECFirmwareRelease()
	assert.False(t, ok)
}

func TestBIOSROMSizeExtended(t *testing.T) {
	// 0xFF redirects to the extended word: 16 in MB units.
	bios := biosFixture(t, 0xFF, 0x10, 0x00)
	size, ok := bios.ROMSize()
	require.True(t, ok)
	assert.Equal(t, uint64(16*1024*1024), size)

	// Unit bits 01 select GB.
	bios = biosFixture(t, 0xFF, 0x40, 0x40)
	size, ok = bios.ROMSize()
	require.True(t, ok)
	assert.Equal(t, uint64(64)*1024*1024*1024, size)

	// 0xFF with no extended field present reports absent.
	bios = biosFixture(t, 0xFF)
	_, ok = bios.ROMSize()
	assert.False(t, ok)
}
