package smbios

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	anchor32     = "_SM_"
	anchor64     = "_SM3_"
	anchorDMI    = "_DMI_"
	entry32Len   = 0x1F
	entry64Len   = 0x18
	maxTableSize = 1 << 20
)

// EntryPoint locates the structure table in physical memory and carries
// the SMBIOS version the table was written against.
type EntryPoint interface {
	// Table returns the physical address and length of the structure table.
	Table() (address, length int)
	// Version returns the SMBIOS version advertised by the entry point.
	Version() Version
	MarshalBinary() ([]byte, error)
	UnmarshalBinary([]byte) error
}

// ParseEntryPoint reads and validates a 32-bit or 64-bit entry point,
// selected by the anchor string at the start of the stream.
func ParseEntryPoint(r io.Reader) (EntryPoint, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(5)
	if err != nil {
		return nil, fmt.Errorf("peeking anchor: %w", err)
	}

	var ep EntryPoint
	var data []byte
	switch {
	case bytes.Equal(peek, []byte(anchor64)):
		data = make([]byte, entry64Len)
		ep = &EntryPoint64{}
	case bytes.Equal(peek[:4], []byte(anchor32)):
		data = make([]byte, entry32Len)
		ep = &EntryPoint32{}
	default:
		return nil, fmt.Errorf("invalid anchor string %q", peek)
	}

	if _, err := io.ReadFull(br, data); err != nil {
		return nil, err
	}
	if err := ep.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return ep, nil
}

// checksum computes the value that makes the byte at skipIndex balance
// the sum of data to zero.
func checksum(data []byte, skipIndex int) uint8 {
	var sum uint8
	for i, b := range data {
		if i == skipIndex {
			continue
		}
		sum += b
	}
	return uint8(0x100 - int(sum))
}

// EntryPoint32 is the 32-bit ("_SM_") entry point of SMBIOS 2.1+.
type EntryPoint32 struct {
	AnchorString             [4]uint8
	Checksum                 uint8
	Length                   uint8
	MajorVersion             uint8
	MinorVersion             uint8
	MaximumStructureSize     uint16
	Revision                 uint8
	FormattedArea            [5]uint8
	IntermediateAnchorString [5]uint8
	IntermediateChecksum     uint8
	TableLength              uint16
	TableAddress             uint32
	NumberOfStructures       uint16
	BCDRevision              uint8
}

func (e *EntryPoint32) Table() (int, int) {
	return int(e.TableAddress), int(e.TableLength)
}

func (e *EntryPoint32) Version() Version {
	return Version{Major: e.MajorVersion, Minor: e.MinorVersion}
}

func (e *EntryPoint32) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *EntryPoint32) UnmarshalBinary(data []byte) error {
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, e); err != nil {
		return err
	}
	if !bytes.Equal(e.AnchorString[:], []byte(anchor32)) {
		return fmt.Errorf("invalid anchor string %q", e.AnchorString[:])
	}
	if e.Length != entry32Len {
		return fmt.Errorf("invalid entry point length %d", e.Length)
	}
	if e.Checksum != checksum(data, 0x04) {
		return fmt.Errorf("invalid checksum %#02x", e.Checksum)
	}
	if !bytes.Equal(e.IntermediateAnchorString[:], []byte(anchorDMI)) {
		return fmt.Errorf("invalid intermediate anchor string %q", e.IntermediateAnchorString[:])
	}
	if e.IntermediateChecksum != checksum(data[0x10:0x1F], 0x05) {
		return fmt.Errorf("invalid intermediate checksum %#02x", e.IntermediateChecksum)
	}
	return nil
}

// NewEntryPoint64 builds a valid 64-bit entry point describing a table
// of the given length at the conventional dump offset.
func NewEntryPoint64(v Version, tableLen int) *EntryPoint64 {
	ep := &EntryPoint64{
		Length:                entry64Len,
		MajorVersion:          v.Major,
		MinorVersion:          v.Minor,
		DocumentationRevision: v.Revision,
		Revision:              0x01,
		TableMaximumSize:      uint32(tableLen),
		TableAddress:          dumpTableOffset,
	}
	copy(ep.AnchorString[:], anchor64)
	data, _ := ep.MarshalBinary()
	ep.Checksum = checksum(data, 0x05)
	return ep
}

// EntryPoint64 is the 64-bit ("_SM3_") entry point of SMBIOS 3.0+.
type EntryPoint64 struct {
	AnchorString          [5]uint8
	Checksum              uint8
	Length                uint8
	MajorVersion          uint8
	MinorVersion          uint8
	DocumentationRevision uint8
	Revision              uint8
	Reserved              uint8
	TableMaximumSize      uint32
	TableAddress          uint64
}

func (e *EntryPoint64) Table() (int, int) {
	return int(e.TableAddress), int(e.TableMaximumSize)
}

func (e *EntryPoint64) Version() Version {
	return Version{
		Major:    e.MajorVersion,
		Minor:    e.MinorVersion,
		Revision: e.DocumentationRevision,
	}
}

func (e *EntryPoint64) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *EntryPoint64) UnmarshalBinary(data []byte) error {
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, e); err != nil {
		return err
	}
	if !bytes.Equal(e.AnchorString[:], []byte(anchor64)) {
		return fmt.Errorf("invalid anchor string %q", e.AnchorString[:])
	}
	if e.Length != entry64Len {
		return fmt.Errorf("invalid entry point length %d", e.Length)
	}
	if e.Checksum != checksum(data, 0x05) {
		return fmt.Errorf("invalid checksum %#02x", e.Checksum)
	}
	return nil
}
