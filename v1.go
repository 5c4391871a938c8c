package id3

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// ErrNoV1Tag is returned when the stream does not end in an ID3v1
// tag.
var ErrNoV1Tag = errors.New("id3: no ID3v1 tag")

const (
	v1TagSize         = 128
	v1ExtendedTagSize = 227
)

// Genres is the ID3v1 genre table, including the Winamp extensions.
// TCON frames reference entries by index.
var Genres = []string{
	"Blues", "Classic Rock", "Country", "Dance", "Disco", "Funk",
	"Grunge", "Hip-Hop", "Jazz", "Metal", "New Age", "Oldies",
	"Other", "Pop", "R&B", "Rap", "Reggae", "Rock", "Techno",
	"Industrial", "Alternative", "Ska", "Death Metal", "Pranks",
	"Soundtrack", "Euro-Techno", "Ambient", "Trip-Hop", "Vocal",
	"Jazz+Funk", "Fusion", "Trance", "Classical", "Instrumental",
	"Acid", "House", "Game", "Sound Clip", "Gospel", "Noise",
	"Alternative Rock", "Bass", "Soul", "Punk", "Space",
	"Meditative", "Instrumental Pop", "Instrumental Rock", "Ethnic",
	"Gothic", "Darkwave", "Techno-Industrial", "Electronic",
	"Pop-Folk", "Eurodance", "Dream", "Southern Rock", "Comedy",
	"Cult", "Gangsta", "Top 40", "Christian Rap", "Pop/Funk",
	"Jungle", "Native American", "Cabaret", "New Wave",
	"Psychedelic", "Rave", "Showtunes", "Trailer", "Lo-Fi",
	"Tribal", "Acid Punk", "Acid Jazz", "Polka", "Retro",
	"Musical", "Rock & Roll", "Hard Rock",
	// Winamp extensions
	"Folk", "Folk-Rock", "National Folk", "Swing", "Fast Fusion",
	"Bebop", "Latin", "Revival", "Celtic", "Bluegrass",
	"Avantgarde", "Gothic Rock", "Progressive Rock",
	"Psychedelic Rock", "Symphonic Rock", "Slow Rock", "Big Band",
	"Chorus", "Easy Listening", "Acoustic", "Humour", "Speech",
	"Chanson", "Opera", "Chamber Music", "Sonata", "Symphony",
	"Booty Bass", "Primus", "Porn Groove", "Satire", "Slow Jam",
	"Club", "Tango", "Samba", "Folklore", "Ballad", "Power Ballad",
	"Rhythmic Soul", "Freestyle", "Duet", "Punk Rock", "Drum Solo",
	"A cappella", "Euro-House", "Dance Hall", "Goa", "Drum & Bass",
	"Club-House", "Hardcore", "Terror", "Indie", "BritPop",
	"Negerpunk", "Polsk Punk", "Beat", "Christian Gangsta Rap",
	"Heavy Metal", "Black Metal", "Crossover",
	"Contemporary Christian", "Christian Rock", "Merengue",
	"Salsa", "Thrash Metal", "Anime", "JPop", "Synthpop",
}

// V1Tag holds the fields of a trailing ID3v1 (or v1.1 / v1-Extended)
// tag.
type V1Tag struct {
	Title   string
	Artist  string
	Album   string
	Year    string
	Comment string
	Track   int  // v1.1 only; 0 when absent
	Genre   byte // index into Genres; 0xFF when unset

	// v1-Extended ("TAG+") fields.
	Extended  bool
	Speed     byte
	GenreName string
	StartTime string
	EndTime   string
}

// v1Field extracts a fixed-width, NUL- or space-padded string field.
func v1Field(b []byte) string {
	end := len(b)
	for end > 0 && (b[end-1] == 0 || b[end-1] == ' ') {
		end--
	}
	s := decodeText(EncodingLatin1, b[:end])
	return strings.TrimRight(s, "\x00 ")
}

// ParseV1 reads the trailing ID3v1 tag, plus the "TAG+" extended
// block when present. The stream position is left undefined.
func ParseV1(r io.ReadSeeker) (*V1Tag, error) {
	if _, err := r.Seek(-v1TagSize, io.SeekEnd); err != nil {
		return nil, ErrNoV1Tag
	}

	buf := make([]byte, v1TagSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, ErrNoV1Tag
	}
	if string(buf[:3]) != "TAG" {
		return nil, ErrNoV1Tag
	}

	tag := &V1Tag{
		Title:   v1Field(buf[3:33]),
		Artist:  v1Field(buf[33:63]),
		Album:   v1Field(buf[63:93]),
		Year:    v1Field(buf[93:97]),
		Comment: v1Field(buf[97:127]),
		Genre:   buf[127],
	}

	// v1.1: a zero byte at comment position 28 turns position 29 into
	// the track number.
	if buf[125] == 0 && buf[126] != 0 {
		tag.Comment = v1Field(buf[97:125])
		tag.Track = int(buf[126])
	}

	tag.parseExtended(r)
	return tag, nil
}

// parseExtended merges the 227-byte "TAG+" block preceding the v1
// tag, when present. Extended fields continue the fixed v1 fields, so
// they are appended only where the v1 value was truncated.
func (t *V1Tag) parseExtended(r io.ReadSeeker) {
	if _, err := r.Seek(-(v1TagSize + v1ExtendedTagSize), io.SeekEnd); err != nil {
		return
	}
	buf := make([]byte, v1ExtendedTagSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return
	}
	if string(buf[:4]) != "TAG+" {
		return
	}

	t.Extended = true
	t.Title += v1Field(buf[4:64])
	t.Artist += v1Field(buf[64:124])
	t.Album += v1Field(buf[124:184])
	t.Speed = buf[184]
	t.GenreName = v1Field(buf[185:215])
	t.StartTime = v1Field(buf[215:221])
	t.EndTime = v1Field(buf[221:227])
}

// GenreString resolves the genre to a string, preferring the extended
// free-text genre over the table index.
func (t *V1Tag) GenreString() string {
	if t.GenreName != "" {
		return t.GenreName
	}
	if int(t.Genre) < len(Genres) {
		return Genres[t.Genre]
	}
	return ""
}

// Tag synthesizes an ID3v2 tag equivalent to the v1 fields, through
// the in-memory frame constructors.
func (t *V1Tag) Tag() *Tag {
	tag := NewTag()
	if t.Title != "" {
		tag.Add(NewTextFrame("TIT2", t.Title))
	}
	if t.Artist != "" {
		tag.Add(NewTextFrame("TPE1", t.Artist))
	}
	if t.Album != "" {
		tag.Add(NewTextFrame("TALB", t.Album))
	}
	if t.Year != "" {
		tag.Add(NewNumericalTextFrame("TYER", t.Year))
	}
	if t.Comment != "" {
		tag.Add(NewDescriptiveTextFrame("COMM", t.Comment, "", ""))
	}
	if t.Track > 0 {
		tag.Add(NewTextFrame("TRCK", strconv.Itoa(t.Track)))
	}
	if genre := t.GenreString(); genre != "" {
		tag.Add(NewTextFrame("TCON", genre))
	}
	return tag
}
