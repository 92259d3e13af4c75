package smbios

import (
	"encoding/binary"
	"fmt"
)

const defaultStructureCap = 64

// Structure is one raw record sliced out of the structure table: the fixed
// header, the formatted area, and the string-set that trails it.
//
// Formatted holds a copy of the header plus the body, exactly Header.Length
// bytes, so field offsets match the ones documented in the SMBIOS
// specification (offset 0x00 is the type byte). Strings holds the trailing
// string-set in order; body fields reference it by 1-based index.
type Structure struct {
	Header
	Formatted []byte
	Strings   []string
}

// DecodeStructures walks a raw structure table buffer front to back and
// slices out every structure it contains.
//
// The walk stops cleanly at the end-of-table structure (type 127, included
// in the result, trailing bytes ignored) or when the buffer is exactly
// exhausted. A malformed table stops the walk with ErrStructureTruncated,
// ErrStringsUnterminated or ErrTableTruncated; structures decoded before the
// failure point are still returned alongside the error.
func DecodeStructures(data []byte) ([]*Structure, error) {
	ss := make([]*Structure, 0, defaultStructureCap)

	pos := 0
	for pos < len(data) {
		rem := len(data) - pos
		if rem < headerLength {
			return ss, fmt.Errorf("%w: %d trailing bytes at offset %#x", ErrTableTruncated, rem, pos)
		}

		h := parseHeader(data[pos:])
		if int(h.Length) < headerLength {
			return ss, fmt.Errorf("%w: declared length %d shorter than header at offset %#x",
				ErrStructureTruncated, h.Length, pos)
		}
		if int(h.Length) > rem {
			return ss, fmt.Errorf("%w: declared length %d, %d bytes remain at offset %#x",
				ErrStructureTruncated, h.Length, rem, pos)
		}

		formatted := make([]byte, h.Length)
		copy(formatted, data[pos:pos+int(h.Length)])

		strs, next, terminated := parseStringSet(data, pos+int(h.Length))
		if !terminated {
			// Anything after the end-of-table structure is ignored, so a
			// missing terminator there is not an error.
			if h.Type == uint8(EndOfTable) {
				ss = append(ss, &Structure{Header: h, Formatted: formatted})
				return ss, nil
			}
			return ss, fmt.Errorf("%w: structure at offset %#x", ErrStringsUnterminated, pos)
		}

		ss = append(ss, &Structure{Header: h, Formatted: formatted, Strings: strs})
		if h.Type == uint8(EndOfTable) {
			return ss, nil
		}
		pos = next
	}

	return ss, nil
}

// parseStringSet reads the NUL-delimited strings starting at pos up to and
// including the double-NUL terminator. It returns the strings, the offset of
// the byte following the terminator, and whether the terminator was found.
func parseStringSet(data []byte, pos int) ([]string, int, bool) {
	if pos+2 <= len(data) && data[pos] == 0 && data[pos+1] == 0 {
		return nil, pos + 2, true
	}

	var ss []string
	start := pos
	for i := pos; i < len(data); i++ {
		if data[i] != 0 {
			continue
		}
		ss = append(ss, string(data[start:i]))
		if i+1 < len(data) && data[i+1] == 0 {
			return ss, i + 2, true
		}
		start = i + 1
	}

	return nil, len(data), false
}

// ByteAt returns the byte at the given offset of the formatted area, or
// false when the structure's declared length does not reach the offset.
func (s *Structure) ByteAt(off int) (uint8, bool) {
	if off < 0 || off+1 > len(s.Formatted) {
		return 0, false
	}
	return s.Formatted[off], true
}

// WordAt returns the little-endian uint16 at the given offset.
func (s *Structure) WordAt(off int) (uint16, bool) {
	if off < 0 || off+2 > len(s.Formatted) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(s.Formatted[off : off+2]), true
}

// DwordAt returns the little-endian uint32 at the given offset.
func (s *Structure) DwordAt(off int) (uint32, bool) {
	if off < 0 || off+4 > len(s.Formatted) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(s.Formatted[off : off+4]), true
}

// QwordAt returns the little-endian uint64 at the given offset.
func (s *Structure) QwordAt(off int) (uint64, bool) {
	if off < 0 || off+8 > len(s.Formatted) {
		return 0, false
	}
	return binary.LittleEndian.Uint64(s.Formatted[off : off+8]), true
}

// HandleAt returns the structure handle referenced at the given offset.
// The handle is not guaranteed to resolve within the table.
func (s *Structure) HandleAt(off int) (Handle, bool) {
	w, ok := s.WordAt(off)
	return Handle(w), ok
}

// BytesAt returns a copy of length bytes starting at the given offset.
func (s *Structure) BytesAt(off, length int) ([]byte, bool) {
	if off < 0 || length < 0 || off+length > len(s.Formatted) {
		return nil, false
	}
	b := make([]byte, length)
	copy(b, s.Formatted[off:off+length])
	return b, true
}

// StringAt resolves the 1-based string index stored at the given offset
// against the structure's string-set. Index zero means "no string" and an
// out-of-range index is treated the same way.
func (s *Structure) StringAt(off int) (string, bool) {
	idx, ok := s.ByteAt(off)
	if !ok || idx == 0 || int(idx) > len(s.Strings) {
		return "", false
	}
	return s.Strings[idx-1], true
}

func (s *Structure) String() string {
	return fmt.Sprintf("structure %s, %d strings", s.Header, len(s.Strings))
}
