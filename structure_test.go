package smbios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// structBytes builds one raw structure: header, body, string-set with
// terminator.
func structBytes(typ uint8, handle uint16, body []byte, strs ...string) []byte {
	b := []byte{typ, uint8(headerLength + len(body)), byte(handle), byte(handle >> 8)}
	b = append(b, body...)
	if len(strs) == 0 {
		return append(b, 0, 0)
	}
	for _, s := range strs {
		b = append(b, s...)
		b = append(b, 0)
	}
	return append(b, 0)
}

func endOfTableBytes(handle uint16) []byte {
	return structBytes(127, handle, nil)
}

// decodeOne decodes a single structure and runs it through the catalog.
func decodeOne(t *testing.T, typ uint8, body []byte, strs ...string) TypedStructure {
	t.Helper()
	ss, err := DecodeStructures(structBytes(typ, 0x0100, body, strs...))
	require.NoError(t, err)
	require.Len(t, ss, 1)
	return classify(ss[0])
}

func TestDecodeStructuresWalk(t *testing.T) {
	var data []byte
	data = append(data, structBytes(11, 0x0100, []byte{2}, "first", "second")...)
	data = append(data, structBytes(200, 0x0200, []byte{0xDE, 0xAD})...)
	data = append(data, endOfTableBytes(0x0300)...)

	ss, err := DecodeStructures(data)
	require.NoError(t, err)
	require.Len(t, ss, 3)

	assert.Equal(t, uint8(11), ss[0].Header.Type)
	assert.Equal(t, Handle(0x0100), ss[0].Handle)
	assert.Equal(t, []string{"first", "second"}, ss[0].Strings)
	assert.Equal(t, int(ss[0].Header.Length), len(ss[0].Formatted))

	assert.Equal(t, uint8(200), ss[1].Header.Type)
	assert.Equal(t, []byte{200, 6, 0x00, 0x02, 0xDE, 0xAD}, ss[1].Formatted)
	assert.Empty(t, ss[1].Strings)

	assert.Equal(t, uint8(127), ss[2].Header.Type)
}

func TestDecodeStructuresStopsAtEndOfTable(t *testing.T) {
	var data []byte
	data = append(data, endOfTableBytes(0x0000)...)
	data = append(data, 0xAA, 0xBB, 0xCC) // trailing garbage is ignored

	ss, err := DecodeStructures(data)
	require.NoError(t, err)
	require.Len(t, ss, 1)
	assert.Equal(t, uint8(127), ss[0].Header.Type)
}

func TestDecodeStructuresEndOfTableWithoutTerminator(t *testing.T) {
	// Some firmware emits the end-of-table header with no string-set at all.
	data := []byte{127, 4, 0x00, 0x03}

	ss, err := DecodeStructures(data)
	require.NoError(t, err)
	require.Len(t, ss, 1)
	assert.Equal(t, uint8(127), ss[0].Header.Type)
}

func TestDecodeStructuresTruncatedHeader(t *testing.T) {
	var data []byte
	data = append(data, structBytes(11, 0x0100, nil, "s")...)
	data = append(data, 0x01, 0x02) // not enough bytes for a header

	ss, err := DecodeStructures(data)
	require.ErrorIs(t, err, ErrTableTruncated)
	require.Len(t, ss, 1)
	assert.Equal(t, uint8(11), ss[0].Header.Type)
}

func TestDecodeStructuresDeclaredLengthOverrun(t *testing.T) {
	var data []byte
	data = append(data, structBytes(11, 0x0100, nil, "s")...)
	data = append(data, 4, 0x40, 0x00, 0x02, 0, 0) // length 0x40, 6 bytes remain

	ss, err := DecodeStructures(data)
	require.ErrorIs(t, err, ErrStructureTruncated)
	require.Len(t, ss, 1)
}

func TestDecodeStructuresDeclaredLengthBelowHeader(t *testing.T) {
	data := []byte{4, 2, 0x00, 0x01, 0, 0}

	ss, err := DecodeStructures(data)
	require.ErrorIs(t, err, ErrStructureTruncated)
	assert.Empty(t, ss)
}

func TestDecodeStructuresUnterminatedStrings(t *testing.T) {
	data := []byte{11, 4, 0x00, 0x01, 'a', 'b', 'c', 0} // single NUL, buffer ends

	ss, err := DecodeStructures(data)
	require.ErrorIs(t, err, ErrStringsUnterminated)
	assert.Empty(t, ss)
}

func TestDecodeStructuresEmptyBuffer(t *testing.T) {
	ss, err := DecodeStructures(nil)
	require.NoError(t, err)
	assert.Empty(t, ss)
}

func TestFieldAccessors(t *testing.T) {
	body := []byte{
		0x11,                   // 0x04
		0x22, 0x33,             // 0x05 word
		0x44, 0x55, 0x66, 0x77, // 0x07 dword
		0x01,                   // 0x0B string index
		0x09,                   // 0x0C out-of-range string index
		0x00,                   // 0x0D string index zero
	}
	data := structBytes(11, 0x0042, body, "only")
	ss, err := DecodeStructures(append(data, endOfTableBytes(0x0043)...))
	require.NoError(t, err)
	s := ss[0]

	b, ok := s.ByteAt(0x04)
	require.True(t, ok)
	assert.Equal(t, uint8(0x11), b)

	w, ok := s.WordAt(0x05)
	require.True(t, ok)
	assert.Equal(t, uint16(0x3322), w)

	d, ok := s.DwordAt(0x07)
	require.True(t, ok)
	assert.Equal(t, uint32(0x77665544), d)

	q, ok := s.QwordAt(0x04)
	require.True(t, ok)
	assert.Equal(t, uint64(0x0177665544332211), q)

	h, ok := s.HandleAt(0x02)
	require.True(t, ok)
	assert.Equal(t, Handle(0x0042), h)

	raw, ok := s.BytesAt(0x05, 2)
	require.True(t, ok)
	assert.Equal(t, []byte{0x22, 0x33}, raw)

	str, ok := s.StringAt(0x0B)
	require.True(t, ok)
	assert.Equal(t, "only", str)

	// Out-of-range index and index zero both mean "no string".
	_, ok = s.StringAt(0x0C)
	assert.False(t, ok)
	_, ok = s.StringAt(0x0D)
	assert.False(t, ok)

	// Reads past the declared length report absent, not garbage.
	_, ok = s.ByteAt(int(s.Header.Length))
	assert.False(t, ok)
	_, ok = s.WordAt(int(s.Header.Length) - 1)
	assert.False(t, ok)
	_, ok = s.ByteAt(-1)
	assert.False(t, ok)
}

func TestParseStringSet(t *testing.T) {
	strs, next, ok := parseStringSet([]byte{0, 0, 0xFF}, 0)
	require.True(t, ok)
	assert.Empty(t, strs)
	assert.Equal(t, 2, next)

	strs, next, ok = parseStringSet([]byte{'a', 0, 'b', 0, 0}, 0)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, strs)
	assert.Equal(t, 5, next)

	_, _, ok = parseStringSet([]byte{'a', 0}, 0)
	assert.False(t, ok)
}
