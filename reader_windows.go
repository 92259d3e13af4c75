package smbios

import (
	"context"
	"encoding/binary"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// 'RSMB' packed into a uint32 selects the raw SMBIOS firmware table
// provider.
const firmwareProviderRSMB = 0x52534D42

// rawHeaderSize is the fixed prefix of the RawSMBIOSData struct the call
// writes: calling method, major, minor, DMI revision, then a uint32 table
// length.
const rawHeaderSize = 8

var (
	kernel32                   = windows.NewLazySystemDLL("kernel32.dll")
	procGetSystemFirmwareTable = kernel32.NewProc("GetSystemFirmwareTable")
)

// readRaw fetches the RawSMBIOSData blob via GetSystemFirmwareTable and
// strips its header.
func readRaw(ctx context.Context) (Version, []byte, error) {
	if err := ctx.Err(); err != nil {
		return Version{}, nil, err
	}

	// First call with a nil buffer reports the required size.
	size, _, callErr := procGetSystemFirmwareTable.Call(firmwareProviderRSMB, 0, 0, 0)
	if size == 0 {
		return Version{}, nil, errors.Wrap(callErr, "querying firmware table size")
	}
	if size < rawHeaderSize {
		return Version{}, nil, errors.Errorf("firmware table size %d below header size", size)
	}

	buf := make([]byte, size)
	written, _, callErr := procGetSystemFirmwareTable.Call(
		firmwareProviderRSMB,
		0,
		uintptr(unsafe.Pointer(&buf[0])),
		size,
	)
	if written == 0 || written > size {
		return Version{}, nil, errors.Wrap(callErr, "reading firmware table")
	}
	buf = buf[:written]

	tableLen := binary.LittleEndian.Uint32(buf[4:8])
	if rawHeaderSize+int(tableLen) > len(buf) {
		return Version{}, nil, errors.Errorf("reported table length %d exceeds buffer", tableLen)
	}

	version := Version{Major: buf[1], Minor: buf[2], Revision: buf[3]}
	return version, buf[rawHeaderSize : rawHeaderSize+tableLen], nil
}
