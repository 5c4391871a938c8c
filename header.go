package id3

// WriteVersion is the ID3v2 major version this library writes. Older
// tags are upgraded on encode; see the frame Write contracts.
const WriteVersion byte = 4

const (
	tagHeaderLength     = 10
	frameHeaderLength   = 10
	frameHeaderLengthV2 = 6
)

// HeaderFlags is the flag byte of the tag header.
type HeaderFlags byte

func (f HeaderFlags) Unsynchronisation() bool { return f&0x80 > 0 }
func (f HeaderFlags) ExtendedHeader() bool    { return f&0x40 > 0 }
func (f HeaderFlags) Experimental() bool      { return f&0x20 > 0 }
func (f HeaderFlags) Footer() bool            { return f&0x10 > 0 }

// TagHeader is the fixed ten-byte header introducing an ID3v2 tag.
type TagHeader struct {
	Version  byte // major version on disk (2, 3 or 4)
	Revision byte // minor version, must be 0
	Flags    HeaderFlags
	Size     int // tag size excluding this header (and any footer)
}

// FrameFlags are the decoded status and format flags of a single
// frame. The two on-disk flag bytes place the same semantic flags at
// different bit positions in v2.3 and v2.4; parseFrameFlags and
// encode translate between the two layouts and this neutral form.
type FrameFlags struct {
	DiscardOnTagAlter   bool
	DiscardOnFileAlter  bool
	ReadOnly            bool
	Compressed          bool
	Encrypted           bool
	Grouping            bool
	Unsynchronised      bool // v2.4 only
	DataLengthIndicator bool // v2.4 only
}

func parseFrameFlags(bits uint16, version byte) FrameFlags {
	if version >= 4 {
		return FrameFlags{
			DiscardOnTagAlter:   bits&0x4000 > 0,
			DiscardOnFileAlter:  bits&0x2000 > 0,
			ReadOnly:            bits&0x1000 > 0,
			Grouping:            bits&0x0040 > 0,
			Compressed:          bits&0x0008 > 0,
			Encrypted:           bits&0x0004 > 0,
			Unsynchronised:      bits&0x0002 > 0,
			DataLengthIndicator: bits&0x0001 > 0,
		}
	}

	return FrameFlags{
		DiscardOnTagAlter:  bits&0x8000 > 0,
		DiscardOnFileAlter: bits&0x4000 > 0,
		ReadOnly:           bits&0x2000 > 0,
		Compressed:         bits&0x0080 > 0,
		Encrypted:          bits&0x0040 > 0,
		Grouping:           bits&0x0020 > 0,
	}
}

func (f FrameFlags) encode(version byte) uint16 {
	var bits uint16
	if version >= 4 {
		if f.DiscardOnTagAlter {
			bits |= 0x4000
		}
		if f.DiscardOnFileAlter {
			bits |= 0x2000
		}
		if f.ReadOnly {
			bits |= 0x1000
		}
		if f.Grouping {
			bits |= 0x0040
		}
		if f.Compressed {
			bits |= 0x0008
		}
		if f.Encrypted {
			bits |= 0x0004
		}
		if f.Unsynchronised {
			bits |= 0x0002
		}
		if f.DataLengthIndicator {
			bits |= 0x0001
		}
		return bits
	}

	if f.DiscardOnTagAlter {
		bits |= 0x8000
	}
	if f.DiscardOnFileAlter {
		bits |= 0x4000
	}
	if f.ReadOnly {
		bits |= 0x2000
	}
	if f.Compressed {
		bits |= 0x0080
	}
	if f.Encrypted {
		bits |= 0x0040
	}
	if f.Grouping {
		bits |= 0x0020
	}
	return bits
}

// extraHeaderSize is the number of bytes the set flags append to the
// fixed ten-byte frame header: a decompressed size, an encryption
// method, a group identifier and a data length indicator.
func (f FrameFlags) extraHeaderSize() int {
	n := 0
	if f.Compressed {
		n += 4
	}
	if f.Encrypted {
		n++
	}
	if f.Grouping {
		n++
	}
	if f.DataLengthIndicator {
		n += 4
	}
	return n
}
