package smbios

// AdditionalInformation decodes an Additional Information structure
// (type 40): variable-length entries that extend fields of other
// structures.
type AdditionalInformation struct {
	s *Structure
}

func (a *AdditionalInformation) Structure() *Structure { return a.s }

// Entries returns the additional information entries. Each entry names a
// referenced structure handle and field offset plus an optional string
// and raw value bytes.
func (a *AdditionalInformation) Entries() ([]AdditionalInformationEntry, bool) {
	n, ok := a.s.ByteAt(0x04)
	if !ok {
		return nil, false
	}
	entries := make([]AdditionalInformationEntry, 0, n)
	pos := 0x05
	for i := 0; i < int(n); i++ {
		length, ok := a.s.ByteAt(pos)
		if !ok || length < 6 {
			break
		}
		handle, ok := a.s.HandleAt(pos + 1)
		if !ok {
			break
		}
		offset, ok := a.s.ByteAt(pos + 3)
		if !ok {
			break
		}
		str, _ := a.s.StringAt(pos + 4)
		value, _ := a.s.BytesAt(pos+5, int(length)-5)
		entries = append(entries, AdditionalInformationEntry{
			ReferencedHandle: handle,
			ReferencedOffset: offset,
			String:           str,
			Value:            value,
		})
		pos += int(length)
	}
	return entries, true
}

// AdditionalInformationEntry is one entry of a type 40 structure.
type AdditionalInformationEntry struct {
	ReferencedHandle Handle
	ReferencedOffset uint8
	String           string
	Value            []byte
}
