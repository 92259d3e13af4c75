package smbios

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
)

// dumpTableOffset is where the structure table starts in a binary dump:
// the entry point padded to 32 bytes, as dmidecode --dump-bin lays it
// out.
const dumpTableOffset = 0x20

// ReadFile decodes a binary dump holding an entry point followed by the
// structure table. The entry point's table address is honored when it
// fits inside the file; dumps that carry the original physical address
// fall back to the conventional 32-byte offset.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading dump")
	}

	ep, err := ParseEntryPoint(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	addr, length := ep.Table()
	start := dumpTableOffset
	if addr > 0 && addr+length <= len(data) {
		start = addr
	}
	if start >= len(data) {
		return nil, errors.Errorf("dump %s holds no table data", path)
	}

	end := start + length
	if length == 0 || end > len(data) {
		end = len(data)
	}
	return Decode(data[start:end], ep.Version())
}

// WriteFile writes the entry point and raw table bytes in the binary
// dump layout ReadFile expects.
func WriteFile(path string, ep EntryPoint, table []byte) error {
	epData, err := ep.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "encoding entry point")
	}

	out := make([]byte, dumpTableOffset, dumpTableOffset+len(table))
	copy(out, epData)
	out = append(out, table...)

	return errors.Wrap(os.WriteFile(path, out, 0o644), "writing dump")
}
