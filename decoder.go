package id3

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Decoder parses an ID3v2 tag from a stream. The whole tag region is
// pulled into memory once; frame decoding after that is pure
// byte-buffer work through the FrameFactory.
type Decoder struct {
	r io.ReadSeeker
	h TagHeader
}

func NewDecoder(r io.ReadSeeker) *Decoder {
	return &Decoder{r: r}
}

// Check reports whether r is positioned at an ID3v2 tag. The stream
// position is restored.
func Check(r io.ReadSeeker) (bool, error) {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return false, err
	}

	var magic [3]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = nil
		}
		_, _ = r.Seek(pos, io.SeekStart)
		return false, err
	}

	if _, err := r.Seek(pos, io.SeekStart); err != nil {
		return false, err
	}
	return magic == [3]byte{'I', 'D', '3'}, nil
}

// ParseHeader parses only the tag header, leaving the stream
// positioned at the first byte after it.
func (d *Decoder) ParseHeader() (TagHeader, error) {
	var raw struct {
		Magic   [3]byte
		Version [2]byte
		Flags   byte
		Size    [4]byte
	}

	if err := binary.Read(d.r, binary.BigEndian, &raw); err != nil {
		return TagHeader{}, err
	}
	if raw.Magic != [3]byte{'I', 'D', '3'} {
		return TagHeader{}, notATagHeader{raw.Magic}
	}
	if raw.Version[0] < 2 || raw.Version[0] > 4 || raw.Version[1] != 0 {
		return TagHeader{}, UnsupportedVersion{raw.Version[0], raw.Version[1]}
	}

	d.h = TagHeader{
		Version:  raw.Version[0],
		Revision: raw.Version[1],
		Flags:    HeaderFlags(raw.Flags),
		Size:     int(decodeInt(raw.Size[:], true)),
	}
	return d.h, nil
}

// Parse parses a full tag. Frame scanning is tolerant: the first
// frame the factory reports as null ends the scan, keeping every
// frame parsed before it (corrupt tags are an expected input, not an
// error).
func (d *Decoder) Parse() (*Tag, error) {
	tag := NewTag()

	header, err := d.ParseHeader()
	if err != nil {
		return tag, err
	}
	tag.Header = header

	body := make([]byte, header.Size)
	if _, err := io.ReadFull(d.r, body); err != nil {
		return tag, err
	}

	if header.Flags.ExtendedHeader() {
		body = skipExtendedHeader(body, header.Version)
	}

	// In v2.3 unsynchronisation applies to the tag as a whole; from
	// v2.4 on it is a per-frame flag handled by the variants.
	if header.Version < 4 && header.Flags.Unsynchronisation() {
		body = removeUnsynchronisation(body, 0)
	}

	factory := NewFrameFactory(bytes.NewReader(body), header.Version, int64(len(body)))

	var offset int64
	for offset < int64(len(body)) {
		if body[offset] == 0 {
			// Padding. Not every tagger honors the padding contract,
			// so a zero byte in ID position ends the scan.
			break
		}

		frame, consumed := factory.createAt(offset)
		if frame.Null() || consumed == 0 {
			Logging.Println("stopping frame scan at offset", offset)
			break
		}
		tag.addParsed(frame)
		offset += consumed
	}

	return tag, nil
}

// skipExtendedHeader drops the extended header from the front of the
// tag body. Its contents carry no semantics for this library.
func skipExtendedHeader(body []byte, version byte) []byte {
	if len(body) < 4 {
		return nil
	}

	if version >= 4 {
		// Size is synchsafe and includes the four size bytes.
		size := int(decodeInt(body[:4], true))
		if size < 4 || size > len(body) {
			return nil
		}
		return body[size:]
	}

	// v2.3: the size field excludes itself.
	size := int(decodeInt(body[:4], false))
	if size < 0 || size+4 > len(body) {
		return nil
	}
	return body[size+4:]
}
