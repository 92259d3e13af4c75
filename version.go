package smbios

import "fmt"

// Version is the SMBIOS specification version reported by the entry point.
// Several structure fields only exist from a given revision onward; the
// structure's own declared length is the authoritative per-field signal, so
// Version is carried for display and for the few decoders that need it.
type Version struct {
	Major    uint8
	Minor    uint8
	Revision uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// AtLeast reports whether v is the given major.minor version or newer.
func (v Version) AtLeast(major, minor uint8) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}
