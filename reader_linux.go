package smbios

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	sysfsTable      = "/sys/firmware/dmi/tables/DMI"
	sysfsEntryPoint = "/sys/firmware/dmi/tables/smbios_entry_point"
	devMem          = "/dev/mem"

	memStart      = 0x000F0000
	memEnd        = 0x00100000
	paragraphSize = 0x10
)

// ErrEntryPointNotFound reports that no anchor string was found in the
// legacy BIOS search region of /dev/mem.
var ErrEntryPointNotFound = errors.New("entry point not found")

// readRaw prefers the sysfs export; kernels without it fall back to the
// /dev/mem anchor scan.
func readRaw(ctx context.Context) (Version, []byte, error) {
	if _, err := os.Stat(sysfsEntryPoint); err == nil {
		return readSysfs(ctx)
	}
	return readDevMem(ctx)
}

func readSysfs(ctx context.Context) (Version, []byte, error) {
	if err := ctx.Err(); err != nil {
		return Version{}, nil, err
	}

	epFile, err := os.Open(sysfsEntryPoint)
	if err != nil {
		return Version{}, nil, errors.Wrap(err, "opening entry point")
	}
	defer epFile.Close()

	ep, err := ParseEntryPoint(epFile)
	if err != nil {
		return Version{}, nil, errors.Wrap(err, sysfsEntryPoint)
	}

	tableFile, err := os.Open(sysfsTable)
	if err != nil {
		return Version{}, nil, errors.Wrap(err, "opening table")
	}
	defer tableFile.Close()

	data, err := io.ReadAll(io.LimitReader(tableFile, maxTableSize))
	if err != nil {
		return Version{}, nil, errors.Wrap(err, sysfsTable)
	}
	return ep.Version(), data, nil
}

func readDevMem(ctx context.Context) (Version, []byte, error) {
	if err := ctx.Err(); err != nil {
		return Version{}, nil, err
	}

	mem, err := os.Open(devMem)
	if err != nil {
		return Version{}, nil, errors.Wrap(err, "opening physical memory")
	}
	defer mem.Close()

	region, err := readAt(mem, memStart, memEnd-memStart)
	if err != nil {
		return Version{}, nil, err
	}

	offset, err := findAnchor(ctx, region)
	if err != nil {
		return Version{}, nil, err
	}

	ep, err := ParseEntryPoint(bytes.NewReader(region[offset:]))
	if err != nil {
		return Version{}, nil, errors.Wrapf(err, "entry point at %#x", memStart+offset)
	}

	addr, length := ep.Table()
	if err := validateTableLocation(addr, length); err != nil {
		return Version{}, nil, err
	}

	data, err := readAt(mem, int64(addr), length)
	if err != nil {
		return Version{}, nil, err
	}
	return ep.Version(), data, nil
}

// findAnchor scans the legacy search region on paragraph boundaries for
// a 32-bit or 64-bit anchor string.
func findAnchor(ctx context.Context, region []byte) (int, error) {
	for offset := 0; offset+paragraphSize <= len(region); offset += paragraphSize {
		if offset&0xFFF == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		chunk := region[offset:]
		if bytes.HasPrefix(chunk, []byte(anchor64)) || bytes.HasPrefix(chunk, []byte(anchor32)) {
			return offset, nil
		}
	}
	return 0, errors.Wrapf(ErrEntryPointNotFound, "scanned %#x-%#x", memStart, memEnd)
}

func readAt(f *os.File, offset int64, length int) ([]byte, error) {
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "seeking to %#x", offset)
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, errors.Wrapf(err, "reading %d bytes at %#x", length, offset)
	}
	return data, nil
}

func validateTableLocation(addr, length int) error {
	if addr <= 0 || int64(addr)+int64(length) > 0xFFFFFFFF {
		return errors.Errorf("invalid table address %#x", addr)
	}
	if length <= 0 || length > maxTableSize {
		return errors.Errorf("invalid table length %d", length)
	}
	return nil
}
