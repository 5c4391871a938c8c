package id3

import (
	"io"
	"os"
)

// File couples an open audio file with its parsed tag.
type File struct {
	f           *os.File
	fileSize    int64
	audioOffset int64
	hasTag      bool

	Tag *Tag
}

// NewFile wraps an existing *os.File and Tag. If you plan to save
// tags the file needs to be opened read and write.
func NewFile(file *os.File, tag *Tag) (*File, error) {
	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	f := &File{
		f:        file,
		fileSize: stat.Size(),
		Tag:      tag,
	}
	if tag.Header.Size > 0 {
		f.hasTag = true
		f.audioOffset = tagHeaderSize(tag.Header)
	}
	return f, nil
}

func tagHeaderSize(h TagHeader) int64 {
	size := int64(tagHeaderLength) + int64(h.Size)
	if h.Flags.Footer() {
		size += tagHeaderLength
	}
	return size
}

// Open opens the named file in RW mode and parses its tag. A file
// without an ID3v2 tag is not an error; the result has an empty tag,
// populated from a trailing ID3v1 tag when one exists. Call Close
// when done.
func Open(name string) (*File, error) {
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	tag, err := NewDecoder(f).Parse()
	if err != nil {
		if _, ok := err.(notATagHeader); !ok && err != io.EOF && err != io.ErrUnexpectedEOF {
			f.Close()
			return nil, err
		}
		// No v2 tag; fall back to a trailing v1 tag.
		if v1, v1err := ParseV1(f); v1err == nil {
			Logging.Println("no ID3v2 tag, synthesizing from ID3v1")
			tag = v1.Tag()
		}
	}

	file, err := NewFile(f, tag)
	if err != nil {
		f.Close()
		return nil, err
	}
	return file, nil
}

// HasTag reports whether the underlying file had an ID3v2 tag when it
// was opened.
func (f *File) HasTag() bool {
	return f.hasTag
}

// AudioReader returns a reader over the audio data following the tag.
func (f *File) AudioReader() *io.SectionReader {
	return io.NewSectionReader(f.f, f.audioOffset, f.fileSize-f.audioOffset)
}

// Save writes the tag back to the file, rewriting the audio data
// after it. The whole audio payload passes through memory; callers
// with giant files should write to a fresh file via Encode instead.
func (f *File) Save() error {
	audio, err := io.ReadAll(f.AudioReader())
	if err != nil {
		return err
	}

	if err := truncate(f.f); err != nil {
		return err
	}
	if err := f.Tag.Encode(f.f); err != nil {
		return err
	}
	if _, err := f.f.Write(audio); err != nil {
		return err
	}
	if err := f.f.Sync(); err != nil {
		return err
	}

	stat, err := f.f.Stat()
	if err != nil {
		return err
	}
	f.fileSize = stat.Size()
	f.audioOffset = f.fileSize - int64(len(audio))
	f.hasTag = true
	return nil
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}

func truncate(f *os.File) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	_, err := f.Seek(0, io.SeekStart)
	return err
}
