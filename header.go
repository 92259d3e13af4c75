package smbios

import (
	"encoding/binary"
	"fmt"
)

// headerLength is the fixed prefix shared by every structure.
const headerLength = 4

// Handle identifies a structure within one decoded table. It is only
// meaningful in the context of that table and is not guaranteed to resolve:
// firmware routinely emits references to handles that were never dumped.
type Handle uint16

func (h Handle) String() string {
	return fmt.Sprintf("%#04x", uint16(h))
}

// Header is the fixed 4-byte prefix of every SMBIOS structure. Length counts
// the header plus the formatted area and excludes the trailing string-set.
type Header struct {
	Type   uint8
	Length uint8
	Handle Handle
}

func parseHeader(b []byte) Header {
	return Header{
		Type:   b[0],
		Length: b[1],
		Handle: Handle(binary.LittleEndian.Uint16(b[2:4])),
	}
}

func (h Header) String() string {
	return fmt.Sprintf("type %d, length %d, handle %s", h.Type, h.Length, h.Handle)
}
