package id3

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// rawV1 assembles a 128-byte trailing ID3v1 tag.
func rawV1(title, artist, album, year, comment string, track int, genre byte) []byte {
	buf := make([]byte, v1TagSize)
	copy(buf, "TAG")
	copy(buf[3:33], title)
	copy(buf[33:63], artist)
	copy(buf[63:93], album)
	copy(buf[93:97], year)
	copy(buf[97:127], comment)
	if track > 0 {
		buf[125] = 0
		buf[126] = byte(track)
	}
	buf[127] = genre
	return buf
}

func TestParseV1(t *testing.T) {
	audio := append([]byte("some audio"), rawV1("Title", "Artist", "Album", "1986", "a comment", 0, 13)...)

	tag, err := ParseV1(bytes.NewReader(audio))
	require.NoError(t, err)
	require.Equal(t, "Title", tag.Title)
	require.Equal(t, "Artist", tag.Artist)
	require.Equal(t, "Album", tag.Album)
	require.Equal(t, "1986", tag.Year)
	require.Equal(t, "a comment", tag.Comment)
	require.Equal(t, 0, tag.Track)
	require.Equal(t, "Pop", tag.GenreString())
	require.False(t, tag.Extended)
}

func TestParseV1Track(t *testing.T) {
	audio := rawV1("Title", "", "", "", "", 7, 0xFF)

	tag, err := ParseV1(bytes.NewReader(audio))
	require.NoError(t, err)
	require.Equal(t, 7, tag.Track)
	require.Equal(t, "", tag.GenreString())
}

func TestParseV1NoTag(t *testing.T) {
	_, err := ParseV1(bytes.NewReader([]byte("just audio, no trailer")))
	require.Equal(t, ErrNoV1Tag, err)

	_, err = ParseV1(bytes.NewReader(make([]byte, v1TagSize)))
	require.Equal(t, ErrNoV1Tag, err)
}

func TestParseV1Extended(t *testing.T) {
	ext := make([]byte, v1ExtendedTagSize)
	copy(ext, "TAG+")
	copy(ext[4:64], "ne Hundred Twenty Eight Bytes")
	copy(ext[185:215], "Shoegaze")

	v1 := rawV1("A Title Far Too Long For The O", "", "", "", "", 0, 13)
	audio := append(ext, v1...)

	tag, err := ParseV1(bytes.NewReader(audio))
	require.NoError(t, err)
	require.True(t, tag.Extended)
	require.Equal(t, "A Title Far Too Long For The One Hundred Twenty Eight Bytes", tag.Title)
	require.Equal(t, "Shoegaze", tag.GenreString(), "free-text genre wins over the table index")
}

func TestV1FieldTrimsPadding(t *testing.T) {
	require.Equal(t, "padded", v1Field([]byte("padded\x00\x00\x00")))
	require.Equal(t, "padded", v1Field([]byte("padded    ")))
	require.Equal(t, "", v1Field(make([]byte, 10)))
}

func TestV1TagSynthesis(t *testing.T) {
	v1 := &V1Tag{
		Title:  "Title",
		Artist: "Artist",
		Year:   "1986",
		Track:  7,
		Genre:  13,
	}

	tag := v1.Tag()
	require.Equal(t, "Title", tag.Title())
	require.Equal(t, "Artist", tag.Artist())
	require.Equal(t, 1986, tag.Year())
	require.Equal(t, "7", tag.Track())
	require.Equal(t, "Pop", tag.Genre())
	require.False(t, tag.HasFrame("TALB"))
	require.False(t, tag.HasFrame("COMM"))
}
