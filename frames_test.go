package id3

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// reparse encodes a frame and decodes the resulting buffer as a
// standalone one-frame tag region.
func reparse(t *testing.T, f Frame) Frame {
	t.Helper()
	buf := f.Write()
	require.NotEmpty(t, buf)
	ff := NewFrameFactory(bytes.NewReader(buf), WriteVersion, int64(len(buf)))
	out := ff.CreateAt(0)
	require.False(t, out.Null())
	return out
}

func TestTextFrameRoundTrip(t *testing.T) {
	f := NewTextFrame("TIT2", "Hello, World")
	require.False(t, f.Null())
	require.False(t, f.Empty())
	require.Equal(t, byte(4), f.Version())

	out := reparse(t, f).(*TextFrame)
	require.Equal(t, FrameID("TIT2"), out.ID())
	require.Equal(t, "Hello, World", out.Content())
	require.True(t, out.FromFile())
}

func TestTextFrameNonASCIIRoundTrip(t *testing.T) {
	f := NewTextFrame("TALB", "Ágætis byrjun")
	out := reparse(t, f).(*TextFrame)
	require.Equal(t, "Ágætis byrjun", out.Content())
}

func TestTextFrameValues(t *testing.T) {
	f := NewTextFrame("TPE1", "First\x00Second")
	require.Equal(t, []string{"First", "Second"}, f.Values())

	empty := NewTextFrame("TPE1", "")
	require.Nil(t, empty.Values())
	require.True(t, empty.Empty())
	require.Empty(t, empty.Write())
}

func TestTextFrameRevert(t *testing.T) {
	f := reparse(t, NewTextFrame("TIT2", "Original")).(*TextFrame)
	f.SetContent("Changed")
	require.True(t, f.Edited())
	require.Equal(t, "Changed", f.Content())

	f.Revert()
	require.False(t, f.Edited())
	require.Equal(t, "Original", f.Content())
}

func TestNumericalTextFrame(t *testing.T) {
	f := NewNumericalTextFrame("TYER", "1986")
	require.Equal(t, "1986", f.Content())

	bad := NewNumericalTextFrame("TYER", "12a3")
	require.Equal(t, "", bad.Content())
	require.True(t, bad.Empty())
	require.Empty(t, bad.Write())
}

func TestNumericalTextFrameSetInts(t *testing.T) {
	f := NewNumericalTextFrame("TLEN", "")
	f.SetInts([]uint64{1986, 12})
	require.Equal(t, []string{"1986", "12"}, f.Values())

	out := reparse(t, f).(*NumericalTextFrame)
	require.Equal(t, []string{"1986", "12"}, out.Values())
}

func TestDescriptiveTextFrameRoundTrip(t *testing.T) {
	f := NewDescriptiveTextFrame("COMM", "a comment", "note", "eng")
	out := reparse(t, f).(*DescriptiveTextFrame)
	require.Equal(t, "a comment", out.Content())
	require.Equal(t, "note", out.Description())
	require.Equal(t, "eng", out.Language())
}

func TestDescriptiveTextFrameLanguagePlaceholder(t *testing.T) {
	f := NewDescriptiveTextFrame("COMM", "text", "", "en")
	require.Equal(t, "", f.Language())

	out := reparse(t, f).(*DescriptiveTextFrame)
	require.Equal(t, "xxx", out.Language())
}

func TestTermsOfUseHasNoDescription(t *testing.T) {
	f := NewDescriptiveTextFrame("USER", "All rights reserved", "dropped", "eng")
	out := reparse(t, f).(*DescriptiveTextFrame)
	require.Equal(t, "All rights reserved", out.Content())
	require.Equal(t, "", out.Description())
	require.Equal(t, "eng", out.Language())
}

func TestUserURLFrameLatin1Content(t *testing.T) {
	f := NewDescriptiveTextFrame("WXXX", "http://example.com/ö", "homepage", "")
	out := reparse(t, f).(*DescriptiveTextFrame)
	require.Equal(t, "http://example.com/ö", out.Content())
	require.Equal(t, "homepage", out.Description())
}

func TestURLTextFrameRoundTrip(t *testing.T) {
	f := NewURLTextFrame("WOAR", "http://example.com/artist")
	out := reparse(t, f).(*URLTextFrame)
	require.Equal(t, "http://example.com/artist", out.Content())
}

func TestPictureFrameRoundTrip(t *testing.T) {
	img := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	f := NewPictureFrame("image/png", PictureCoverFront, "front cover", img)
	require.False(t, f.Null())

	out := reparse(t, f).(*PictureFrame)
	require.Equal(t, "image/png", out.MIMEType())
	require.Equal(t, PictureCoverFront, out.PictureType())
	require.Equal(t, "front cover", out.Description())
	require.Equal(t, img, out.Picture())
}

func TestPictureFrameRejectsMIMEType(t *testing.T) {
	f := NewPictureFrame("text/plain", PictureCoverFront, "", []byte{1})
	require.True(t, f.Null())
	require.Empty(t, f.Write())

	ok := NewPictureFrame("image/jpeg", PictureCoverBack, "", []byte{1})
	require.False(t, ok.Null())

	ok.SetMIMEType("application/pdf")
	require.True(t, ok.Null())
}

func TestPictureFrameCoercesPictureType(t *testing.T) {
	f := NewPictureFrame("png", PictureType(200), "", []byte{1})
	require.Equal(t, PictureOther, f.PictureType())
}

func TestPlayCountFrame(t *testing.T) {
	f := NewPlayCountFrame(5)
	require.False(t, f.Empty(), "a play counter is never empty")
	require.Equal(t, "5", f.Value())
	require.Equal(t, []byte{0, 0, 0, 5}, f.Bytes()[frameHeaderLength:])

	out := reparse(t, f).(*PlayCountFrame)
	require.Equal(t, uint64(5), out.PlayCount())

	out.Increment()
	require.Equal(t, uint64(6), out.PlayCount())
	require.True(t, out.Edited())
}

func TestPlayCountFrameZeroIsMeaningful(t *testing.T) {
	f := NewPlayCountFrame(0)
	require.NotEmpty(t, f.Bytes())

	out := reparse(t, f).(*PlayCountFrame)
	require.Equal(t, uint64(0), out.PlayCount())
}

func TestPlayCountFrameWideCounter(t *testing.T) {
	f := NewPlayCountFrame(1 << 32)
	require.Equal(t, []byte{1, 0, 0, 0, 0}, f.Bytes()[frameHeaderLength:])

	out := reparse(t, f).(*PlayCountFrame)
	require.Equal(t, uint64(1)<<32, out.PlayCount())
}

func TestPopularimeterRatingMapping(t *testing.T) {
	tests := []struct {
		in   byte
		want uint8
	}{
		{0, 0},
		{1, 1}, {31, 1},
		{32, 2}, {95, 2},
		{96, 3}, {159, 3},
		{160, 4}, {223, 4},
		{224, 5}, {255, 5},
	}
	for _, test := range tests {
		require.Equal(t, test.want, starsFromByte(test.in), "byte %d", test.in)
	}

	// The representative byte for every star count maps back to itself.
	for stars, b := range byteFromStars {
		require.Equal(t, uint8(stars), starsFromByte(b))
	}
}

func TestPopularimeterRoundTrip(t *testing.T) {
	f := NewPopularimeterFrame("a@b.com", 3, 42)
	out := reparse(t, f).(*PopularimeterFrame)
	require.Equal(t, "a@b.com", out.Email())
	require.Equal(t, uint8(3), out.Rating())
	require.Equal(t, uint64(42), out.PlayCount())
}

func TestPopularimeterClampsRating(t *testing.T) {
	f := NewPopularimeterFrame("a@b.com", 9, 0)
	require.Equal(t, uint8(5), f.Rating())
}

func TestEventTimingFrame(t *testing.T) {
	f := NewEventTimingFrame(TimestampMilliseconds)
	require.True(t, f.Empty())

	f.SetEvent(TimingAudioEnd, 180000)
	f.SetEvent(TimingIntroStart, 1500)
	f.SetEvent(TimingCode(0xE0), 7) // user defined, allowed

	out := reparse(t, f).(*EventTimingFrame)
	require.Equal(t, TimestampMilliseconds, out.Format())
	require.Equal(t, []TimingCode{TimingIntroStart, TimingCode(0xE0), TimingAudioEnd}, out.Events())

	offset, ok := out.Event(TimingIntroStart)
	require.True(t, ok)
	require.Equal(t, uint32(1500), offset)
}

func TestEventTimingFrameIgnoresReservedCodes(t *testing.T) {
	f := NewEventTimingFrame(TimestampMPEGFrames)
	f.SetEvent(TimingCode(0x17), 1)
	f.SetEvent(TimingCode(0xDF), 1)
	f.SetEvent(TimingCode(0xF0), 1)
	f.SetEvent(TimingCode(0xFF), 1)
	require.True(t, f.Empty())

	f.SetEvent(TimingProfanityEnd, 1) // 0x16, last defined before the gap
	require.Equal(t, []TimingCode{TimingProfanityEnd}, f.Events())
}

func TestEventTimingFrameRejectsFormat(t *testing.T) {
	f := NewEventTimingFrame(TimestampFormat(9))
	require.True(t, f.Null())
	require.Empty(t, f.Write())
}

func TestUnknownFrame(t *testing.T) {
	body := []byte{1, 2, 3, 4}
	data := make([]byte, frameHeaderLength, frameHeaderLength+len(body))
	copy(data, "PRIV")
	copy(data[4:8], encodeInt(uint64(len(body)), 4, true))
	data = append(data, body...)

	f := NewUnknownFrame("PRIV", data)
	require.False(t, f.Null())
	require.Equal(t, data, f.Write())

	f.flags.DiscardOnTagAlter = true
	require.Empty(t, f.Write())
}

func TestUnknownFrameHeaderOnlyIsNull(t *testing.T) {
	f := NewUnknownFrame("PRIV", make([]byte, frameHeaderLength))
	require.True(t, f.Null())
}
