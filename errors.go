package smbios

import "errors"

// Table-level decode failures. Field accessors never return errors; a field
// that cannot be read reports ok=false instead.
var (
	// ErrStructureTruncated means a structure header declared more formatted
	// bytes than the buffer has left.
	ErrStructureTruncated = errors.New("smbios: structure length exceeds remaining table data")

	// ErrStringsUnterminated means the double-NUL terminating a structure's
	// string-set was not found before the end of the buffer.
	ErrStringsUnterminated = errors.New("smbios: unterminated string-set")

	// ErrTableTruncated means the buffer ended mid-header without an
	// end-of-table structure.
	ErrTableTruncated = errors.New("smbios: table truncated before end-of-table structure")
)
