package id3

import (
	"bytes"
	"errors"
	"io"

	gomp4 "github.com/abema/go-mp4"
)

// ErrNoMP4Tag is returned when an MP4 container carries no ID32 box.
var ErrNoMP4Tag = errors.New("id3: no ID32 box in MP4 container")

var id32BoxType = gomp4.StrToBoxType("ID32")

// DecodeMP4 scans an MP4 container for an embedded ID3v2 tag (the
// ID32 box under moov.udta.meta) and decodes it with the regular
// Decoder. The box's version/flags word and packed language code are
// skipped; the language of the tag as a whole carries no frame
// semantics.
func DecodeMP4(r io.ReadSeeker) (*Tag, error) {
	var payload []byte

	_, err := gomp4.ReadBoxStructure(r, func(h *gomp4.ReadHandle) (interface{}, error) {
		switch h.BoxInfo.Type {
		case gomp4.BoxTypeMoov(), gomp4.BoxTypeUdta(), gomp4.BoxTypeMeta():
			return h.Expand()
		case id32BoxType:
			if payload != nil {
				return nil, nil
			}
			var buf bytes.Buffer
			if _, err := h.ReadData(&buf); err != nil {
				return nil, err
			}
			payload = buf.Bytes()
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, ErrNoMP4Tag
	}

	// 4 bytes version and flags, 2 bytes packed ISO-639-2 language.
	if len(payload) < 6 {
		return nil, ErrNoMP4Tag
	}
	return NewDecoder(bytes.NewReader(payload[6:])).Parse()
}
