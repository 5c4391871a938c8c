package id3

import (
	"encoding/binary"
	"io"
)

// numericalTextFrames are the text frames whose content must be a
// numeric string. TRCK and TPOS are deliberately absent: they may
// carry a slash-separated total ("4/9").
var numericalTextFrames = map[FrameID]bool{
	"TBPM": true,
	"TDAT": true,
	"TDLY": true,
	"TIME": true,
	"TLEN": true,
	"TORY": true,
	"TYER": true,
}

// FrameFactory produces one Frame per byte offset inside an open,
// already validated tag region. The underlying stream is owned and
// sequenced by the caller; the factory only seeks and reads, and must
// not be shared between goroutines.
//
// The factory never fails with an error: every unreadable, oversized
// or otherwise unrecoverable frame degrades to a null UnknownFrame,
// so a caller scanning a corrupt tag can skip the bad frame and keep
// whatever parsed before it.
type FrameFactory struct {
	r       io.ReadSeeker
	version byte
	tagEnd  int64
}

// NewFrameFactory wraps an open stream containing a tag of the given
// major version. tagEnd is the validated end-of-tag byte offset;
// frames claiming to extend past it produce null frames.
func NewFrameFactory(r io.ReadSeeker, version byte, tagEnd int64) *FrameFactory {
	return &FrameFactory{r: r, version: version, tagEnd: tagEnd}
}

// CreateAt reads the frame starting at the given byte offset. The
// result is never nil; check Null before trusting its fields.
func (ff *FrameFactory) CreateAt(offset int64) Frame {
	frame, _ := ff.createAt(offset)
	return frame
}

// CreatePairAt is CreateAt returning the frame keyed by its canonical
// identifier.
func (ff *FrameFactory) CreatePairAt(offset int64) (FrameID, Frame) {
	frame, _ := ff.createAt(offset)
	return frame.ID(), frame
}

func (ff *FrameFactory) nullFrame() *UnknownFrame {
	return &UnknownFrame{frameBase: frameBase{
		id:       FrameIDUnknown,
		version:  ff.version,
		null:     true,
		fromFile: true,
	}}
}

// createAt additionally returns the number of on-disk bytes the frame
// occupied, which differs from the materialized buffer length for
// v2.2 input.
func (ff *FrameFactory) createAt(offset int64) (Frame, int64) {
	headerLen := int64(frameHeaderLength)
	if ff.version < 3 {
		headerLen = frameHeaderLengthV2
	}

	if ff.r == nil || offset < 0 || offset+headerLen > ff.tagEnd {
		return ff.nullFrame(), 0
	}
	if _, err := ff.r.Seek(offset, io.SeekStart); err != nil {
		return ff.nullFrame(), 0
	}

	header := make([]byte, headerLen)
	if _, err := io.ReadFull(ff.r, header); err != nil {
		return ff.nullFrame(), 0
	}

	if ff.version < 3 {
		return ff.createLegacy(offset, header)
	}

	id := LookupFrameID(string(header[:4]), ff.version)
	flags := parseFrameFlags(binary.BigEndian.Uint16(header[8:10]), ff.version)
	size := decodeInt(header[4:8], ff.version >= 4)
	if size == 0 || offset+int64(size)+headerLen > ff.tagEnd {
		return ff.nullFrame(), 0
	}

	data := make([]byte, headerLen+int64(size))
	copy(data, header)
	if _, err := io.ReadFull(ff.r, data[headerLen:]); err != nil {
		return ff.nullFrame(), 0
	}

	frame := newFrame(id, ff.version, flags, data)
	frame.read()
	return frame, headerLen + int64(size)
}

// createLegacy handles ID3v2.2 input: 3-byte identifier, 3-byte plain
// size, no flags. A synthetic v2.4-shaped header is built in memory
// (converted identifier, synchsafe size, discard-on-tag-alter set) so
// that the variant decoders see one uniform header shape regardless
// of origin version.
func (ff *FrameFactory) createLegacy(offset int64, header []byte) (Frame, int64) {
	id := LookupFrameID(string(header[:3]), ff.version)
	size := decodeInt(header[3:6], false)
	if size == 0 || offset+int64(size)+frameHeaderLengthV2 > ff.tagEnd {
		return ff.nullFrame(), 0
	}

	flags := FrameFlags{DiscardOnTagAlter: true}

	data := make([]byte, frameHeaderLength+int64(size))
	copy(data, id)
	copy(data[4:8], encodeInt(size, 4, true))
	binary.BigEndian.PutUint16(data[8:10], flags.encode(WriteVersion))
	if _, err := io.ReadFull(ff.r, data[frameHeaderLength:]); err != nil {
		return ff.nullFrame(), 0
	}

	frame := newFrame(id, WriteVersion, flags, data)
	frame.read()
	return frame, frameHeaderLengthV2 + int64(size)
}

// newFrame classifies the canonical identifier into a semantic class
// and constructs the matching variant around the raw buffer. The
// caller triggers the self-decode.
func newFrame(id FrameID, version byte, flags FrameFlags, data []byte) Frame {
	base := frameBase{id: id, version: version, flags: flags, data: data, fromFile: true}

	if opts, ok := descriptiveFrameOptions[id]; ok {
		return &DescriptiveTextFrame{
			TextFrame: TextFrame{frameBase: base},
			opts:      opts,
		}
	}

	switch id {
	case "APIC":
		return &PictureFrame{frameBase: base}
	case "PCNT":
		return &PlayCountFrame{frameBase: base}
	case "POPM":
		return &PopularimeterFrame{PlayCountFrame: PlayCountFrame{frameBase: base}}
	case "ETCO":
		return &EventTimingFrame{frameBase: base}
	}

	switch {
	case numericalTextFrames[id]:
		return &NumericalTextFrame{TextFrame{frameBase: base}}
	case id.Known() && id[0] == 'T':
		return &TextFrame{frameBase: base}
	case id.Known() && id[0] == 'W':
		return &URLTextFrame{TextFrame{frameBase: base}}
	}

	f := &UnknownFrame{frameBase: base}
	f.null = len(data) <= f.headerSize()
	return f
}
