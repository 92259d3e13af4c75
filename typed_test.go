package smbios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKnownTypes(t *testing.T) {
	cases := []struct {
		typ  uint8
		want TypedStructure
	}{
		{0, &BIOSInformation{}},
		{1, &SystemInformation{}},
		{4, &ProcessorInformation{}},
		{17, &MemoryDevice{}},
		{32, &SystemBoot{}},
		{43, &TPMDevice{}},
		{44, &ProcessorAdditional{}},
		{126, &InactiveStructure{}},
		{127, &EndOfTableStructure{}},
	}

	for _, c := range cases {
		s := &Structure{Header: Header{Type: c.typ, Length: 4}}
		got := classify(s)
		assert.IsType(t, c.want, got, "type %d", c.typ)
		assert.Same(t, s, got.Structure())
	}
}

func TestClassifyOEMRange(t *testing.T) {
	for _, typ := range []uint8{128, 200, 255} {
		s := &Structure{Header: Header{Type: typ, Length: 4}}
		_, ok := classify(s).(*Undefined)
		assert.True(t, ok, "type %d", typ)
	}
}

func TestClassifyReservedWithoutDecoder(t *testing.T) {
	// Reserved below 128 but past the known catalog.
	s := &Structure{Header: Header{Type: 90, Length: 4}}
	_, ok := classify(s).(*Undefined)
	assert.True(t, ok)
}

func TestUndefinedPreservesRawBytes(t *testing.T) {
	body := []byte{0xCA, 0xFE, 0xBA, 0xBE}
	data := structBytes(222, 0x8000, body, "vendor blob")

	table, err := Decode(append(data, endOfTableBytes(0x7F00)...), Version{Major: 2, Minor: 8})
	require.NoError(t, err)

	u, ok := First[*Undefined](table)
	require.True(t, ok)
	s := u.Structure()
	assert.Equal(t, uint8(222), s.Header.Type)
	assert.Equal(t, append([]byte{222, 8, 0x00, 0x80}, body...), s.Formatted)
	assert.Equal(t, []string{"vendor blob"}, s.Strings)
}

func TestAsDowncast(t *testing.T) {
	s := &Structure{Header: Header{Type: 0, Length: 4}}
	ts := classify(s)

	bios, ok := As[*BIOSInformation](ts)
	require.True(t, ok)
	assert.Same(t, s, bios.Structure())

	_, ok = As[*SystemInformation](ts)
	assert.False(t, ok)
}
