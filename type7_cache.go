package smbios

// CacheInformation decodes a Cache Information structure (type 7).
type CacheInformation struct {
	s *Structure
}

func (c *CacheInformation) Structure() *Structure { return c.s }

func (c *CacheInformation) SocketDesignation() (string, bool) {
	return c.s.StringAt(0x04)
}

// Configuration returns the raw cache configuration word: level (bits 0-2,
// zero based), socketed (bit 3), location (bits 5-6), enabled (bit 7),
// operational mode (bits 8-9).
func (c *CacheInformation) Configuration() (uint16, bool) {
	return c.s.WordAt(0x05)
}

// Level returns the 1-based cache level.
func (c *CacheInformation) Level() (uint8, bool) {
	v, ok := c.s.WordAt(0x05)
	return uint8(v&0x07) + 1, ok
}

func (c *CacheInformation) Enabled() (bool, bool) {
	v, ok := c.s.WordAt(0x05)
	return v&0x80 != 0, ok
}

// MaximumSize returns the maximum cache size in bytes, preferring the
// 32-bit field (3.1+) when the 16-bit field carries the 64K-granularity
// overflow encoding.
func (c *CacheInformation) MaximumSize() (uint64, bool) {
	return c.cacheSize(0x07, 0x13)
}

// InstalledSize returns the installed cache size in bytes.
func (c *CacheInformation) InstalledSize() (uint64, bool) {
	return c.cacheSize(0x09, 0x17)
}

// cacheSize decodes the 2.0 word encoding (bit 15 selects 1K or 64K
// granularity) and falls back to the 3.1 dword encoding for values the word
// cannot express.
func (c *CacheInformation) cacheSize(off, off2 int) (uint64, bool) {
	w, ok := c.s.WordAt(off)
	if !ok {
		return 0, false
	}
	if w == 0xFFFF {
		d, ok := c.s.DwordAt(off2)
		if !ok {
			return 0, false
		}
		gran := uint64(1024)
		if d&0x80000000 != 0 {
			gran = 64 * 1024
		}
		return uint64(d&0x7FFFFFFF) * gran, true
	}
	gran := uint64(1024)
	if w&0x8000 != 0 {
		gran = 64 * 1024
	}
	return uint64(w&0x7FFF) * gran, true
}

func (c *CacheInformation) SupportedSRAMType() (uint16, bool) {
	return c.s.WordAt(0x0B)
}

func (c *CacheInformation) CurrentSRAMType() (uint16, bool) {
	return c.s.WordAt(0x0D)
}

// Speed returns the cache module speed in nanoseconds. Zero means unknown.
func (c *CacheInformation) Speed() (uint8, bool) {
	v, ok := c.s.ByteAt(0x0F)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

func (c *CacheInformation) ErrorCorrectionType() (CacheErrorCorrection, bool) {
	v, ok := c.s.ByteAt(0x10)
	return CacheErrorCorrection(v), ok
}

func (c *CacheInformation) SystemCacheType() (SystemCacheType, bool) {
	v, ok := c.s.ByteAt(0x11)
	return SystemCacheType(v), ok
}

func (c *CacheInformation) Associativity() (CacheAssociativity, bool) {
	v, ok := c.s.ByteAt(0x12)
	return CacheAssociativity(v), ok
}

// CacheErrorCorrection is the error correction type enumeration.
type CacheErrorCorrection uint8

const (
	CacheErrorCorrectionOther CacheErrorCorrection = iota + 1
	CacheErrorCorrectionUnknown
	CacheErrorCorrectionNone
	CacheErrorCorrectionParity
	CacheErrorCorrectionSingleBitECC
	CacheErrorCorrectionMultiBitECC
)

var cacheErrorCorrectionStrings = map[CacheErrorCorrection]string{
	CacheErrorCorrectionOther:        "Other",
	CacheErrorCorrectionUnknown:      "Unknown",
	CacheErrorCorrectionNone:         "None",
	CacheErrorCorrectionParity:       "Parity",
	CacheErrorCorrectionSingleBitECC: "Single-bit ECC",
	CacheErrorCorrectionMultiBitECC:  "Multi-bit ECC",
}

func (e CacheErrorCorrection) String() string {
	if s, ok := cacheErrorCorrectionStrings[e]; ok {
		return s
	}
	return unrecognized(uint8(e))
}

// SystemCacheType is the logical cache type enumeration.
type SystemCacheType uint8

const (
	SystemCacheTypeOther SystemCacheType = iota + 1
	SystemCacheTypeUnknown
	SystemCacheTypeInstruction
	SystemCacheTypeData
	SystemCacheTypeUnified
)

var systemCacheTypeStrings = map[SystemCacheType]string{
	SystemCacheTypeOther:       "Other",
	SystemCacheTypeUnknown:     "Unknown",
	SystemCacheTypeInstruction: "Instruction",
	SystemCacheTypeData:        "Data",
	SystemCacheTypeUnified:     "Unified",
}

func (t SystemCacheType) String() string {
	if s, ok := systemCacheTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}

// CacheAssociativity is the associativity enumeration.
type CacheAssociativity uint8

const (
	CacheAssociativityOther CacheAssociativity = iota + 1
	CacheAssociativityUnknown
	CacheAssociativityDirectMapped
	CacheAssociativity2Way
	CacheAssociativity4Way
	CacheAssociativityFully
	CacheAssociativity8Way
	CacheAssociativity16Way
	CacheAssociativity12Way
	CacheAssociativity24Way
	CacheAssociativity32Way
	CacheAssociativity48Way
	CacheAssociativity64Way
	CacheAssociativity20Way
)

var cacheAssociativityStrings = map[CacheAssociativity]string{
	CacheAssociativityOther:        "Other",
	CacheAssociativityUnknown:      "Unknown",
	CacheAssociativityDirectMapped: "Direct Mapped",
	CacheAssociativity2Way:         "2-way Set-associative",
	CacheAssociativity4Way:         "4-way Set-associative",
	CacheAssociativityFully:        "Fully Associative",
	CacheAssociativity8Way:         "8-way Set-associative",
	CacheAssociativity16Way:        "16-way Set-associative",
	CacheAssociativity12Way:        "12-way Set-associative",
	CacheAssociativity24Way:        "24-way Set-associative",
	CacheAssociativity32Way:        "32-way Set-associative",
	CacheAssociativity48Way:        "48-way Set-associative",
	CacheAssociativity64Way:        "64-way Set-associative",
	CacheAssociativity20Way:        "20-way Set-associative",
}

func (a CacheAssociativity) String() string {
	if s, ok := cacheAssociativityStrings[a]; ok {
		return s
	}
	return unrecognized(uint8(a))
}
