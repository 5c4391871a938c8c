package id3

import (
	"io"
)

// Padding is the number of zero bytes written after the last frame,
// so that future tag growth does not force rewriting the audio data.
var Padding = 2048

// Encoder serializes tags and frames in ID3v2.4 form.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// WriteFrame encodes a single frame. Null and empty frames write
// nothing.
func (e *Encoder) WriteFrame(f Frame) error {
	b := f.Write()
	if len(b) == 0 {
		return nil
	}
	_, err := e.w.Write(b)
	return err
}

// WriteTag writes the tag header, every frame and the trailing
// padding. Frames are written in insertion order, so re-encoding an
// untouched tag is byte stable.
func (e *Encoder) WriteTag(t *Tag) error {
	var size int
	encoded := make([][]byte, 0, len(t.frames))
	for _, frame := range t.frames {
		b := frame.Write()
		if len(b) == 0 {
			continue
		}
		encoded = append(encoded, b)
		size += len(b)
	}

	header := make([]byte, 0, tagHeaderLength)
	header = append(header, "ID3"...)
	header = append(header, WriteVersion, 0, 0)
	header = append(header, encodeInt(uint64(size+Padding), 4, true)...)

	if _, err := e.w.Write(header); err != nil {
		return err
	}
	for _, b := range encoded {
		if _, err := e.w.Write(b); err != nil {
			return err
		}
	}
	_, err := e.w.Write(make([]byte, Padding))
	return err
}

// Encode writes the tag to w in ID3v2.4 form.
func (t *Tag) Encode(w io.Writer) error {
	return NewEncoder(w).WriteTag(t)
}
