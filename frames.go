package id3

import (
	"encoding/binary"
	"sort"
	"strconv"
	"strings"
)

// Frame is the capability set shared by every decoded or constructed
// ID3v2 frame. A frame owns its raw byte buffer (header included) and
// its typed fields; the two are reconciled by read (decode, called on
// construction) and Write (encode).
//
// Frames never signal malformed input through errors. A frame that
// failed structural validation is "null": Null reports true and every
// typed accessor returns its zero value. Callers must check Null
// before trusting accessor output.
type Frame interface {
	// ID returns the canonical frame identifier.
	ID() FrameID
	// Version returns the ID3v2 major version in effect at the last
	// decode or encode.
	Version() byte
	// Flags returns the frame's status and format flags.
	Flags() FrameFlags
	// Null reports whether the frame failed structural validation or
	// was created invalid.
	Null() bool
	// Empty reports whether the frame has no meaningful content. The
	// definition is variant-specific; play counters are never empty.
	Empty() bool
	// Edited reports whether the frame was mutated since the last
	// decode or encode.
	Edited() bool
	// FromFile reports whether the frame was decoded from file bytes
	// rather than constructed in memory.
	FromFile() bool
	// Bytes returns the raw buffer (header and body) as currently
	// materialized.
	Bytes() []byte
	// Value returns a string rendering of the frame's content, for
	// display.
	Value() string
	// Write re-encodes the typed fields into the raw buffer, upgrades
	// the stored version to WriteVersion and clears the edited flag.
	// Null and empty frames (play counters excepted) write a
	// zero-length buffer. The buffer is returned.
	Write() []byte
	// Revert discards edits by re-decoding the raw buffer.
	Revert()

	read()
}

// frameBase carries the bookkeeping shared by all variants.
type frameBase struct {
	id       FrameID
	version  byte
	flags    FrameFlags
	data     []byte
	null     bool
	edited   bool
	fromFile bool
}

func (f *frameBase) ID() FrameID       { return f.id }
func (f *frameBase) Version() byte     { return f.version }
func (f *frameBase) Flags() FrameFlags { return f.flags }
func (f *frameBase) Null() bool        { return f.null }
func (f *frameBase) Edited() bool      { return f.edited }
func (f *frameBase) FromFile() bool    { return f.fromFile }
func (f *frameBase) Bytes() []byte     { return f.data }

func (f *frameBase) headerSize() int {
	return frameHeaderLength + f.flags.extraHeaderSize()
}

// body validates the buffer against the computed header size and
// returns the frame body, with unsynchronisation removed when the
// frame is flagged as unsynchronised (v2.4 only). Compressed and
// encrypted frames are unreadable.
func (f *frameBase) body() ([]byte, bool) {
	if f.flags.Compressed || f.flags.Encrypted {
		return nil, false
	}
	hs := f.headerSize()
	if len(f.data) <= hs {
		return nil, false
	}
	data := f.data
	if f.version >= 4 && f.flags.Unsynchronised {
		data = removeUnsynchronisation(data, hs)
	}
	return data[hs:], true
}

// finish materializes the header for the given body, stamps the frame
// with WriteVersion and clears the edited flag. A nil body clears the
// buffer entirely.
//
// The rebuilt frame carries a bare ten-byte header and a plain body:
// whatever compression, encryption, grouping or unsynchronisation the
// source frame had does not survive a rewrite, so the format flags are
// dropped with their extra header bytes.
func (f *frameBase) finish(body []byte) []byte {
	f.flags.Compressed = false
	f.flags.Encrypted = false
	f.flags.Grouping = false
	f.flags.Unsynchronised = false
	f.flags.DataLengthIndicator = false

	if body == nil {
		f.data = nil
	} else {
		header := make([]byte, frameHeaderLength, frameHeaderLength+len(body))
		copy(header, f.id)
		copy(header[4:8], encodeInt(uint64(len(body)), 4, true))
		binary.BigEndian.PutUint16(header[8:10], f.flags.encode(WriteVersion))
		f.data = append(header, body...)
	}
	f.version = WriteVersion
	f.edited = false
	return f.data
}

func (f *frameBase) markEdited() { f.edited = true }

// slashSeparated are the frames that packed multiple values with a
// slash before v2.4 introduced NUL separation.
var slashSeparated = map[FrameID]bool{
	"TCOM": true,
	"TCON": true,
	"TEXT": true,
	"TLAN": true,
	"TOLY": true,
	"TOPE": true,
	"TPE1": true,
}

// TextFrame is a plain text information frame (most "T" frames).
type TextFrame struct {
	frameBase
	content string
}

// NewTextFrame constructs an in-memory text frame.
func NewTextFrame(id FrameID, text string) *TextFrame {
	f := &TextFrame{frameBase: frameBase{id: id, version: WriteVersion}}
	f.content = text
	f.Write()
	return f
}

// separator is the character this frame packs multiple values with: a
// slash for the legacy multi-value frames under v2.3, NUL from v2.4
// on, nothing otherwise.
func (f *TextFrame) separator() string {
	switch {
	case f.version >= 4:
		return "\x00"
	case f.version == 3 && slashSeparated[f.id]:
		return "/"
	}
	return ""
}

func (f *TextFrame) read() {
	f.null, f.content = false, ""
	body, ok := f.body()
	if !ok || len(body) < 2 {
		f.null = true
		return
	}
	f.content = decodeText(Encoding(body[0]), body[1:])
}

// Content returns the decoded text. Multiple logical values are packed
// into one string; see Values.
func (f *TextFrame) Content() string { return f.content }

// Values splits the content at the version-specific separator.
func (f *TextFrame) Values() []string {
	if f.content == "" {
		return nil
	}
	sep := f.separator()
	if sep == "" {
		return []string{f.content}
	}
	return strings.Split(f.content, sep)
}

// SetContent replaces the text and marks the frame edited.
func (f *TextFrame) SetContent(text string) {
	f.content = text
	f.null = false
	f.markEdited()
}

func (f *TextFrame) Empty() bool   { return f.content == "" }
func (f *TextFrame) Value() string { return f.content }

func (f *TextFrame) Write() []byte {
	if f.null || f.Empty() {
		return f.finish(nil)
	}
	content := f.content
	if sep := f.separator(); sep != "" && sep != "\x00" {
		content = strings.ReplaceAll(content, sep, "\x00")
	}
	f.content = content
	return f.finish(encodeTextBody(content))
}

func (f *TextFrame) Revert() {
	f.read()
	f.edited = false
}

// encodeTextBody renders a text body as one encoding byte plus
// content: Latin-1 when the text is pure 7-bit ASCII, UTF-8 otherwise.
func encodeTextBody(content string) []byte {
	enc := EncodingUTF8
	if ascii(content) {
		enc = EncodingLatin1
	}
	body := make([]byte, 0, len(content)+1)
	body = append(body, byte(enc))
	return append(body, content...)
}

// NumericalTextFrame is a text frame whose content must be a numeric
// string (TYER, TBPM, TDAT, TLEN, TDLY, TIME, TORY). Track and disc
// numbers stay plain text frames because they may carry a
// slash-separated total.
type NumericalTextFrame struct {
	TextFrame
}

// NewNumericalTextFrame constructs an in-memory numerical text frame.
// Non-numeric input is coerced to the empty string.
func NewNumericalTextFrame(id FrameID, text string) *NumericalTextFrame {
	f := &NumericalTextFrame{TextFrame{frameBase: frameBase{id: id, version: WriteVersion}}}
	f.SetContent(text)
	f.Write()
	return f
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (f *NumericalTextFrame) read() {
	f.TextFrame.read()
	if f.null {
		return
	}
	// Sub-values that fail the all-digit rule are dropped silently.
	sep := f.separator()
	if sep == "" {
		if !allDigits(f.content) {
			f.content = ""
		}
		return
	}
	var kept []string
	for _, v := range strings.Split(f.content, sep) {
		if allDigits(v) {
			kept = append(kept, v)
		}
	}
	f.content = strings.Join(kept, sep)
}

// SetContent stores text only if every separator-split sub-value is
// all digits; any other input silently coerces to the empty string.
func (f *NumericalTextFrame) SetContent(text string) {
	sep := f.separator()
	values := []string{text}
	if sep != "" && text != "" {
		values = strings.Split(text, sep)
	}
	for _, v := range values {
		if !allDigits(v) {
			text = ""
			break
		}
	}
	f.TextFrame.SetContent(text)
}

// SetInts joins the given values with the version-specific separator.
func (f *NumericalTextFrame) SetInts(values []uint64) {
	sep := f.separator()
	if sep == "" {
		sep = "\x00"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatUint(v, 10)
	}
	f.TextFrame.SetContent(strings.Join(parts, sep))
}

func (f *NumericalTextFrame) Revert() {
	f.read()
	f.edited = false
}

// descriptiveOptions fix the decode and encode shape of a
// DescriptiveTextFrame at construction time.
type descriptiveOptions struct {
	hasLanguage   bool // a 3-byte language code follows the encoding byte
	latin1Content bool // body text is Latin-1 regardless of the encoding byte
	noDescription bool // no description field at all
}

// frames routed to DescriptiveTextFrame, with their shapes.
var descriptiveFrameOptions = map[FrameID]descriptiveOptions{
	"COMM": {hasLanguage: true},
	"USLT": {hasLanguage: true},
	"USER": {hasLanguage: true, noDescription: true},
	"TXXX": {},
	"WXXX": {latin1Content: true},
}

// DescriptiveTextFrame is a text frame with a description and,
// depending on the frame, a language code (COMM, USLT, USER, TXXX,
// WXXX).
type DescriptiveTextFrame struct {
	TextFrame
	description string
	language    string
	opts        descriptiveOptions
}

// NewDescriptiveTextFrame constructs an in-memory descriptive text
// frame. The description and language fields are used only as far as
// the frame's shape has them; an empty language is written as the
// placeholder "xxx".
func NewDescriptiveTextFrame(id FrameID, text, description, language string) *DescriptiveTextFrame {
	f := &DescriptiveTextFrame{
		TextFrame: TextFrame{frameBase: frameBase{id: id, version: WriteVersion}},
		opts:      descriptiveFrameOptions[id],
	}
	f.content = text
	f.description = description
	f.SetLanguage(language)
	f.Write()
	return f
}

func (f *DescriptiveTextFrame) read() {
	f.null, f.content, f.description, f.language = false, "", "", ""
	body, ok := f.body()
	if !ok {
		f.null = true
		return
	}

	enc := Encoding(body[0])
	rest := body[1:]

	if f.opts.hasLanguage {
		if len(rest) < 3 {
			f.null = true
			return
		}
		f.language = string(rest[:3])
		rest = rest[3:]
	}

	if !f.opts.noDescription {
		head, tail, found := splitTerminated(enc, rest)
		if found {
			f.description = decodeText(enc, head)
			rest = tail
		}
		// Without a terminator the frame is read as having an empty
		// description and the remainder is all content.
	}

	if f.opts.latin1Content {
		f.content = decodeText(EncodingLatin1, rest)
	} else {
		f.content = decodeText(enc, rest)
	}
}

// Description returns the frame's description field.
func (f *DescriptiveTextFrame) Description() string { return f.description }

// SetDescription replaces the description and marks the frame edited.
func (f *DescriptiveTextFrame) SetDescription(description string) {
	f.description = description
	f.markEdited()
}

// Language returns the frame's 3-character language code, if the frame
// has one.
func (f *DescriptiveTextFrame) Language() string { return f.language }

// SetLanguage replaces the language code. Values that are not exactly
// three characters are coerced to the empty string, which writes as
// the "xxx" placeholder.
func (f *DescriptiveTextFrame) SetLanguage(language string) {
	if len(language) != 3 {
		language = ""
	}
	f.language = language
	f.markEdited()
}

func (f *DescriptiveTextFrame) Write() []byte {
	if f.null || f.Empty() {
		return f.finish(nil)
	}

	body := []byte{byte(EncodingUTF8)}
	if f.opts.hasLanguage {
		lang := f.language
		if lang == "" {
			lang = "xxx"
		}
		body = append(body, lang...)
	}
	if !f.opts.noDescription {
		body = append(body, f.description...)
		body = append(body, 0)
	}
	if f.opts.latin1Content {
		body = append(body, encodeLatin1(f.content)...)
	} else {
		body = append(body, f.content...)
	}
	return f.finish(body)
}

func (f *DescriptiveTextFrame) Revert() {
	f.read()
	f.edited = false
}

// URLTextFrame is a URL link frame ("W" frames): Latin-1 content, no
// encoding byte.
type URLTextFrame struct {
	TextFrame
}

// NewURLTextFrame constructs an in-memory URL link frame.
func NewURLTextFrame(id FrameID, url string) *URLTextFrame {
	f := &URLTextFrame{TextFrame{frameBase: frameBase{id: id, version: WriteVersion}}}
	f.content = url
	f.Write()
	return f
}

func (f *URLTextFrame) read() {
	f.null, f.content = false, ""
	body, ok := f.body()
	if !ok {
		f.null = true
		return
	}
	f.content = decodeText(EncodingLatin1, body)
}

func (f *URLTextFrame) Write() []byte {
	if f.null || f.Empty() {
		return f.finish(nil)
	}
	return f.finish(encodeLatin1(f.content))
}

func (f *URLTextFrame) Revert() {
	f.read()
	f.edited = false
}

// PictureType classifies an attached picture.
type PictureType byte

const (
	PictureOther         PictureType = 0
	PictureFileIcon      PictureType = 1
	PictureCoverFront    PictureType = 3
	PictureCoverBack     PictureType = 4
	PictureLeadArtist    PictureType = 7
	PictureBandLogo      PictureType = 19
	PicturePublisherLogo PictureType = 20
)

// PictureTypes are the standard picture classifications, indexed by
// type byte.
var PictureTypes = []string{
	"Other",
	"32x32 pixels 'file icon' (PNG only)",
	"Other file icon",
	"Cover (front)",
	"Cover (back)",
	"Leaflet page",
	"Media (e.g. label side of CD)",
	"Lead artist/lead performer/soloist",
	"Artist/performer",
	"Conductor",
	"Band/Orchestra",
	"Composer",
	"Lyricist/text writer",
	"Recording Location",
	"During recording",
	"During performance",
	"Movie/video screen capture",
	"A bright coloured fish",
	"Illustration",
	"Band/artist logotype",
	"Publisher/Studio logotype",
}

func (p PictureType) String() string {
	if int(p) >= len(PictureTypes) {
		return ""
	}
	return PictureTypes[p]
}

// allowedPictureMIMETypes is the closed set of MIME strings a picture
// frame accepts. Anything else makes the frame null.
var allowedPictureMIMETypes = map[string]bool{
	"png":        true,
	"jpeg":       true,
	"image/png":  true,
	"image/jpeg": true,
}

// PictureFrame is an attached picture (APIC). The image payload is
// carried verbatim and never validated as a well-formed image.
type PictureFrame struct {
	frameBase
	mimeType    string
	pictureType PictureType
	description string
	picture     []byte
}

// NewPictureFrame constructs an in-memory picture frame. A MIME type
// outside the allowed set yields a null frame.
func NewPictureFrame(mimeType string, pictureType PictureType, description string, picture []byte) *PictureFrame {
	f := &PictureFrame{frameBase: frameBase{id: "APIC", version: WriteVersion}}
	f.pictureType = pictureType
	if int(pictureType) >= len(PictureTypes) {
		f.pictureType = PictureOther
	}
	f.description = description
	f.picture = picture
	f.mimeType = mimeType
	if !allowedPictureMIMETypes[mimeType] {
		f.null = true
	}
	f.Write()
	return f
}

func (f *PictureFrame) read() {
	f.null, f.mimeType, f.pictureType, f.description, f.picture = false, "", 0, "", nil
	body, ok := f.body()
	if !ok {
		f.null = true
		return
	}

	enc := Encoding(body[0])
	mime, rest, found := splitTerminated(EncodingLatin1, body[1:])
	if !found || len(rest) < 1 {
		f.null = true
		return
	}
	f.mimeType = string(mime)
	if !allowedPictureMIMETypes[f.mimeType] {
		f.null = true
		return
	}

	f.pictureType = PictureType(rest[0])
	if int(f.pictureType) >= len(PictureTypes) {
		f.pictureType = PictureOther
	}

	desc, img, found := splitTerminated(enc, rest[1:])
	if !found {
		f.null = true
		return
	}
	f.description = decodeText(enc, desc)
	f.picture = img
}

// MIMEType returns the picture's MIME type string.
func (f *PictureFrame) MIMEType() string { return f.mimeType }

// SetMIMEType replaces the MIME type. A value outside the allowed set
// makes the frame null.
func (f *PictureFrame) SetMIMEType(mimeType string) {
	f.mimeType = mimeType
	f.null = !allowedPictureMIMETypes[mimeType]
	f.markEdited()
}

// PictureType returns the picture classification.
func (f *PictureFrame) PictureType() PictureType { return f.pictureType }

// SetPictureType replaces the classification; unrecognized values
// coerce to PictureOther.
func (f *PictureFrame) SetPictureType(p PictureType) {
	if int(p) >= len(PictureTypes) {
		p = PictureOther
	}
	f.pictureType = p
	f.markEdited()
}

// Description returns the picture description.
func (f *PictureFrame) Description() string { return f.description }

// SetDescription replaces the picture description.
func (f *PictureFrame) SetDescription(description string) {
	f.description = description
	f.markEdited()
}

// Picture returns the raw image payload.
func (f *PictureFrame) Picture() []byte { return f.picture }

// SetPicture replaces the raw image payload.
func (f *PictureFrame) SetPicture(picture []byte) {
	f.picture = picture
	f.markEdited()
}

func (f *PictureFrame) Empty() bool   { return len(f.picture) == 0 }
func (f *PictureFrame) Value() string { return f.mimeType + " (" + f.pictureType.String() + ")" }

func (f *PictureFrame) Write() []byte {
	if f.null || f.Empty() {
		return f.finish(nil)
	}
	body := []byte{byte(EncodingUTF8)}
	body = append(body, f.mimeType...)
	body = append(body, 0)
	body = append(body, byte(f.pictureType))
	body = append(body, f.description...)
	body = append(body, 0)
	body = append(body, f.picture...)
	return f.finish(body)
}

func (f *PictureFrame) Revert() {
	f.read()
	f.edited = false
}

// PlayCountFrame is the play counter (PCNT): one unsigned big-endian
// integer of whatever width the body has, written with a minimum
// width of four bytes. A play counter is never empty; zero plays is a
// meaningful value.
type PlayCountFrame struct {
	frameBase
	count uint64
}

// NewPlayCountFrame constructs an in-memory play counter.
func NewPlayCountFrame(count uint64) *PlayCountFrame {
	f := &PlayCountFrame{frameBase: frameBase{id: "PCNT", version: WriteVersion}}
	f.count = count
	f.Write()
	return f
}

func (f *PlayCountFrame) read() {
	f.null, f.count = false, 0
	body, ok := f.body()
	if !ok {
		f.null = true
		return
	}
	f.count = decodeInt(body, false)
}

// PlayCount returns the stored play count.
func (f *PlayCountFrame) PlayCount() uint64 { return f.count }

// SetPlayCount replaces the play count.
func (f *PlayCountFrame) SetPlayCount(count uint64) {
	f.count = count
	f.null = false
	f.markEdited()
}

// Increment adds one play.
func (f *PlayCountFrame) Increment() {
	f.count++
	f.null = false
	f.markEdited()
}

func (f *PlayCountFrame) Empty() bool   { return false }
func (f *PlayCountFrame) Value() string { return strconv.FormatUint(f.count, 10) }

// playCountBytes renders a count big-endian, left-padded to at least
// four bytes.
func playCountBytes(count uint64) []byte {
	b := encodeInt(count, 0, false)
	for len(b) < 4 {
		b = append([]byte{0}, b...)
	}
	return b
}

func (f *PlayCountFrame) Write() []byte {
	if f.null {
		return f.finish(nil)
	}
	return f.finish(playCountBytes(f.count))
}

func (f *PlayCountFrame) Revert() {
	f.read()
	f.edited = false
}

// starsFromByte maps the on-disk popularimeter rating byte to 0-5
// stars.
func starsFromByte(b byte) uint8 {
	switch {
	case b == 0:
		return 0
	case b <= 31:
		return 1
	case b <= 95:
		return 2
	case b <= 159:
		return 3
	case b <= 223:
		return 4
	}
	return 5
}

// byteFromStars maps 0-5 stars back to a representative rating byte.
var byteFromStars = [6]byte{0, 1, 64, 128, 196, 255}

// PopularimeterFrame is the popularimeter (POPM): an email address, a
// 0-5 star rating and a play count.
type PopularimeterFrame struct {
	PlayCountFrame
	email  string
	rating uint8
}

// NewPopularimeterFrame constructs an in-memory popularimeter. Ratings
// above five stars are clamped.
func NewPopularimeterFrame(email string, rating uint8, count uint64) *PopularimeterFrame {
	f := &PopularimeterFrame{PlayCountFrame: PlayCountFrame{frameBase: frameBase{id: "POPM", version: WriteVersion}}}
	f.email = email
	f.SetRating(rating)
	f.count = count
	f.Write()
	return f
}

func (f *PopularimeterFrame) read() {
	f.null, f.email, f.rating, f.count = false, "", 0, 0
	body, ok := f.body()
	if !ok {
		f.null = true
		return
	}

	email, rest, found := splitTerminated(EncodingLatin1, body)
	if !found || len(rest) < 1 {
		f.null = true
		return
	}
	f.email = decodeText(EncodingLatin1, email)
	f.rating = starsFromByte(rest[0])
	f.count = decodeInt(rest[1:], false)
}

// Email returns the rater's email address.
func (f *PopularimeterFrame) Email() string { return f.email }

// SetEmail replaces the rater's email address.
func (f *PopularimeterFrame) SetEmail(email string) {
	f.email = email
	f.null = false
	f.markEdited()
}

// Rating returns the rating in stars, 0 through 5.
func (f *PopularimeterFrame) Rating() uint8 { return f.rating }

// SetRating replaces the rating; values above 5 are clamped.
func (f *PopularimeterFrame) SetRating(rating uint8) {
	if rating > 5 {
		rating = 5
	}
	f.rating = rating
	f.null = false
	f.markEdited()
}

func (f *PopularimeterFrame) Value() string { return f.email }

func (f *PopularimeterFrame) Write() []byte {
	if f.null {
		return f.finish(nil)
	}
	body := encodeLatin1(f.email)
	body = append(body, 0, byteFromStars[f.rating])
	body = append(body, playCountBytes(f.count)...)
	return f.finish(body)
}

func (f *PopularimeterFrame) Revert() {
	f.read()
	f.edited = false
}

// TimestampFormat selects the unit of event timing offsets.
type TimestampFormat byte

const (
	TimestampMPEGFrames   TimestampFormat = 1
	TimestampMilliseconds TimestampFormat = 2
)

func (t TimestampFormat) String() string {
	switch t {
	case TimestampMPEGFrames:
		return "MPEG frames"
	case TimestampMilliseconds:
		return "milliseconds"
	}
	return "unknown"
}

// TimingCode identifies a timed event in an ETCO frame.
type TimingCode byte

const (
	TimingPadding             TimingCode = 0x00
	TimingEndOfInitialSilence TimingCode = 0x01
	TimingIntroStart          TimingCode = 0x02
	TimingMainPartStart       TimingCode = 0x03
	TimingOutroStart          TimingCode = 0x04
	TimingOutroEnd            TimingCode = 0x05
	TimingVerseStart          TimingCode = 0x06
	TimingRefrainStart        TimingCode = 0x07
	TimingInterludeStart      TimingCode = 0x08
	TimingThemeStart          TimingCode = 0x09
	TimingVariationStart      TimingCode = 0x0A
	TimingKeyChange           TimingCode = 0x0B
	TimingTimeChange          TimingCode = 0x0C
	TimingMomentaryNoise      TimingCode = 0x0D
	TimingSustainedNoise      TimingCode = 0x0E
	TimingSustainedNoiseEnd   TimingCode = 0x0F
	TimingIntroEnd            TimingCode = 0x10
	TimingMainPartEnd         TimingCode = 0x11
	TimingVerseEnd            TimingCode = 0x12
	TimingRefrainEnd          TimingCode = 0x13
	TimingThemeEnd            TimingCode = 0x14
	TimingProfanity           TimingCode = 0x15
	TimingProfanityEnd        TimingCode = 0x16
	TimingAudioEnd            TimingCode = 0xFD
	TimingFileEnd             TimingCode = 0xFE
)

// reserved reports whether the code falls in one of the two reserved
// blocks or is the reserved "one more byte follows" singleton. Codes
// 0xE0-0xEF are user defined and allowed.
func (c TimingCode) reserved() bool {
	switch {
	case c >= 0x17 && c <= 0xDF:
		return true
	case c >= 0xF0 && c <= 0xFC:
		return true
	case c == 0xFF:
		return true
	}
	return false
}

// EventTimingFrame is the event timing codes frame (ETCO): a timestamp
// format and a mapping from timing code to event offset.
type EventTimingFrame struct {
	frameBase
	format TimestampFormat
	events map[TimingCode]uint32
}

// NewEventTimingFrame constructs an in-memory event timing frame. A
// format other than TimestampMPEGFrames or TimestampMilliseconds
// yields a null frame.
func NewEventTimingFrame(format TimestampFormat) *EventTimingFrame {
	f := &EventTimingFrame{
		frameBase: frameBase{id: "ETCO", version: WriteVersion},
		events:    make(map[TimingCode]uint32),
	}
	f.format = format
	if format != TimestampMPEGFrames && format != TimestampMilliseconds {
		f.null = true
	}
	f.Write()
	return f
}

func (f *EventTimingFrame) read() {
	f.null, f.format = false, 0
	f.events = make(map[TimingCode]uint32)
	body, ok := f.body()
	if !ok {
		f.null = true
		return
	}

	f.format = TimestampFormat(body[0])
	if f.format != TimestampMPEGFrames && f.format != TimestampMilliseconds {
		f.null = true
		return
	}

	rest := body[1:]
	for len(rest) >= 5 {
		code := TimingCode(rest[0])
		if !code.reserved() {
			f.events[code] = binary.BigEndian.Uint32(rest[1:5])
		}
		rest = rest[5:]
	}
}

// Format returns the frame's timestamp format.
func (f *EventTimingFrame) Format() TimestampFormat { return f.format }

// Event returns the offset recorded for the given timing code.
func (f *EventTimingFrame) Event(code TimingCode) (uint32, bool) {
	v, ok := f.events[code]
	return v, ok
}

// SetEvent records an offset for the given timing code. Reserved codes
// are ignored.
func (f *EventTimingFrame) SetEvent(code TimingCode, offset uint32) {
	if code.reserved() {
		return
	}
	f.events[code] = offset
	f.markEdited()
}

// RemoveEvent drops the entry for the given timing code.
func (f *EventTimingFrame) RemoveEvent(code TimingCode) {
	delete(f.events, code)
	f.markEdited()
}

// Events returns the recorded timing codes in ascending order.
func (f *EventTimingFrame) Events() []TimingCode {
	codes := make([]TimingCode, 0, len(f.events))
	for code := range f.events {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

func (f *EventTimingFrame) Empty() bool { return len(f.events) == 0 }

func (f *EventTimingFrame) Value() string { return f.format.String() }

func (f *EventTimingFrame) Write() []byte {
	if f.null || f.Empty() {
		return f.finish(nil)
	}
	body := []byte{byte(f.format)}
	// Emitted sorted by code so that re-encoding is byte stable.
	for _, code := range f.Events() {
		body = append(body, byte(code))
		var offset [4]byte
		binary.BigEndian.PutUint32(offset[:], f.events[code])
		body = append(body, offset[:]...)
	}
	return f.finish(body)
}

func (f *EventTimingFrame) Revert() {
	f.read()
	f.edited = false
}

// UnknownFrame carries the verbatim bytes of a frame this library does
// not interpret. It is also the universal fallback for anything the
// factory could not decode; such frames are null.
type UnknownFrame struct {
	frameBase
}

// NewUnknownFrame constructs an in-memory opaque frame from a raw
// buffer (header included).
func NewUnknownFrame(id FrameID, data []byte) *UnknownFrame {
	f := &UnknownFrame{frameBase: frameBase{id: id, version: WriteVersion, data: data}}
	f.null = len(data) <= frameHeaderLength
	return f
}

func (f *UnknownFrame) read() {}

func (f *UnknownFrame) Empty() bool { return len(f.data) <= f.headerSize() }

func (f *UnknownFrame) Value() string { return "" }

// Write does not rebuild an unknown frame from typed fields; it has
// none. A discardable, null or empty frame clears its buffer. A
// buffer that still carries a v2.3 header gets its size field
// rewritten in place to the synchsafe form.
func (f *UnknownFrame) Write() []byte {
	if f.flags.DiscardOnTagAlter || f.null || f.Empty() {
		return f.finish(nil)
	}
	if f.version == 3 && len(f.data) >= frameHeaderLength {
		size := decodeInt(f.data[4:8], false)
		copy(f.data[4:8], encodeInt(size, 4, true))
	}
	f.version = WriteVersion
	f.edited = false
	return f.data
}

func (f *UnknownFrame) Revert() {
	f.edited = false
}
