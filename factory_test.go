package id3

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// rawFrame assembles an on-disk v2.3/v2.4 frame buffer.
func rawFrame(id string, size uint64, flags uint16, synchsafe bool, body []byte) []byte {
	buf := make([]byte, frameHeaderLength, frameHeaderLength+len(body))
	copy(buf, id)
	copy(buf[4:8], encodeInt(size, 4, synchsafe))
	binary.BigEndian.PutUint16(buf[8:10], flags)
	return append(buf, body...)
}

func newFactory(data []byte, version byte) *FrameFactory {
	return NewFrameFactory(bytes.NewReader(data), version, int64(len(data)))
}

func TestFactoryTextFrame(t *testing.T) {
	data := rawFrame("TIT2", 6, 0, true, []byte{byte(EncodingLatin1), 'H', 'e', 'l', 'l', 'o'})

	id, frame := newFactory(data, 4).CreatePairAt(0)
	require.Equal(t, FrameID("TIT2"), id)
	require.False(t, frame.Null())
	require.False(t, frame.Empty())
	require.True(t, frame.FromFile())

	text, ok := frame.(*TextFrame)
	require.True(t, ok)
	require.Equal(t, "Hello", text.Content())
}

func TestFactoryPlainSizeForV23(t *testing.T) {
	body := []byte{byte(EncodingLatin1), 'H', 'i'}
	data := rawFrame("TIT2", uint64(len(body)), 0, false, body)

	frame := newFactory(data, 3).CreateAt(0)
	require.False(t, frame.Null())
	require.Equal(t, "Hi", frame.(*TextFrame).Content())
}

func TestFactoryOversizedFrameIsNull(t *testing.T) {
	data := rawFrame("TIT2", 1000, 0, true, []byte{byte(EncodingLatin1), 'H', 'i'})

	frame := newFactory(data, 4).CreateAt(0)
	require.True(t, frame.Null())
	require.Equal(t, FrameIDUnknown, frame.ID())
	require.IsType(t, &UnknownFrame{}, frame)
}

func TestFactoryZeroSizeFrameIsNull(t *testing.T) {
	data := rawFrame("TIT2", 0, 0, true, nil)
	require.True(t, newFactory(data, 4).CreateAt(0).Null())
}

func TestFactoryOffsetOutOfRangeIsNull(t *testing.T) {
	data := rawFrame("TIT2", 6, 0, true, []byte{byte(EncodingLatin1), 'H', 'e', 'l', 'l', 'o'})
	ff := newFactory(data, 4)
	require.True(t, ff.CreateAt(-1).Null())
	require.True(t, ff.CreateAt(int64(len(data))).Null())
	require.True(t, ff.CreateAt(int64(len(data))-4).Null())
}

func TestFactoryUnrecognizedFrameIsOpaque(t *testing.T) {
	data := rawFrame("ZZZZ", 3, 0, true, []byte{1, 2, 3})

	frame := newFactory(data, 4).CreateAt(0)
	require.False(t, frame.Null(), "an intact unrecognized frame is carried, not dropped")
	require.Equal(t, FrameIDUnknown, frame.ID())
	require.IsType(t, &UnknownFrame{}, frame)
	require.Equal(t, data, frame.Bytes())
}

func TestFactoryCompressedFrameIsNull(t *testing.T) {
	body := []byte{byte(EncodingLatin1), 'H', 'i'}
	data := rawFrame("TIT2", uint64(len(body)), 0x0008, true, body)

	frame := newFactory(data, 4).CreateAt(0)
	require.True(t, frame.Null())
	require.True(t, frame.Flags().Compressed)
}

func TestFactoryUnsynchronisedFrame(t *testing.T) {
	// On-disk body with a false sync 0xFF 0x61 split by an inserted
	// 0x00; the size field counts the on-disk bytes.
	body := []byte{byte(EncodingLatin1), 0xFF, 0x00, 0x61}
	data := rawFrame("TIT2", uint64(len(body)), 0x0002, true, body)

	frame := newFactory(data, 4).CreateAt(0)
	require.False(t, frame.Null())
	require.True(t, frame.Flags().Unsynchronised)
	require.Equal(t, "ÿa", frame.(*TextFrame).Content())

	// A rewrite emits a plain body, so the flag must not survive it:
	// a re-decode honoring a stale flag would mangle the content.
	out := frame.Write()
	rewritten := newFactory(out, 4).CreateAt(0)
	require.False(t, rewritten.Flags().Unsynchronised)
	require.Equal(t, "ÿa", rewritten.(*TextFrame).Content())
}

func TestFactoryGroupedFrameRewrite(t *testing.T) {
	// Grouping adds one extra header byte (the group identifier)
	// before the body.
	body := []byte{0x01, byte(EncodingLatin1), 'H', 'i'}
	data := rawFrame("TIT2", uint64(len(body)), 0x0040, true, body)

	frame := newFactory(data, 4).CreateAt(0)
	require.False(t, frame.Null())
	require.True(t, frame.Flags().Grouping)
	require.Equal(t, "Hi", frame.(*TextFrame).Content())

	// The rewritten header has no group identifier slot; advertising
	// one would shift the body on the next decode.
	out := frame.Write()
	rewritten := newFactory(out, 4).CreateAt(0)
	require.False(t, rewritten.Null())
	require.False(t, rewritten.Flags().Grouping)
	require.Equal(t, "Hi", rewritten.(*TextFrame).Content())
}

func TestFactoryDataLengthIndicatorRewrite(t *testing.T) {
	// The data length indicator occupies four extra header bytes.
	body := []byte{0, 0, 0, 3, byte(EncodingLatin1), 'H', 'i'}
	data := rawFrame("TIT2", uint64(len(body)), 0x0001, true, body)

	frame := newFactory(data, 4).CreateAt(0)
	require.False(t, frame.Null())
	require.Equal(t, "Hi", frame.(*TextFrame).Content())

	rewritten := newFactory(frame.Write(), 4).CreateAt(0)
	require.False(t, rewritten.Flags().DataLengthIndicator)
	require.Equal(t, "Hi", rewritten.(*TextFrame).Content())
}

func TestFactoryLegacyFrame(t *testing.T) {
	data := []byte{'T', 'T', '2', 0, 0, 3, byte(EncodingLatin1), 'H', 'i'}

	frame := newFactory(data, 2).CreateAt(0)
	require.False(t, frame.Null())
	require.Equal(t, FrameID("TIT2"), frame.ID())
	require.Equal(t, WriteVersion, frame.Version())
	require.True(t, frame.Flags().DiscardOnTagAlter)
	require.Equal(t, "Hi", frame.(*TextFrame).Content())

	// The materialized buffer carries a rebuilt ten-byte header.
	require.Len(t, frame.Bytes(), frameHeaderLength+3)
}

func TestFactoryLegacyUnknownIDIsOpaque(t *testing.T) {
	data := []byte{'Z', 'Z', 'Z', 0, 0, 3, 1, 2, 3}
	frame := newFactory(data, 2).CreateAt(0)
	require.Equal(t, FrameIDUnknown, frame.ID())
}

func TestFactoryClassification(t *testing.T) {
	tests := []struct {
		id   FrameID
		want Frame
	}{
		{"TIT2", &TextFrame{}},
		{"TYER", &NumericalTextFrame{}},
		{"COMM", &DescriptiveTextFrame{}},
		{"TXXX", &DescriptiveTextFrame{}},
		{"WOAR", &URLTextFrame{}},
		{"WXXX", &DescriptiveTextFrame{}},
		{"APIC", &PictureFrame{}},
		{"PCNT", &PlayCountFrame{}},
		{"POPM", &PopularimeterFrame{}},
		{"ETCO", &EventTimingFrame{}},
		{FrameIDUnknown, &UnknownFrame{}},
	}

	for _, test := range tests {
		frame := newFrame(test.id, 4, FrameFlags{}, make([]byte, frameHeaderLength+1))
		require.IsType(t, test.want, frame, "id %s", test.id)
	}
}
