package id3

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Enables logging if set to true.
var Logging LogFlag

type LogFlag bool

func (l LogFlag) Println(args ...interface{}) {
	if l {
		log.Println(args...)
	}
}

const TimeFormat = "2006-01-02T15:04:05"

var timeFormats = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02",
	"2006-01",
	"2006",
}

type notATagHeader struct {
	Magic [3]byte
}

func (err notATagHeader) Error() string {
	return fmt.Sprintf("not an ID3v2 header: %q", err.Magic)
}

// UnsupportedVersion is returned for tags whose version this library
// cannot read (anything outside v2.2 through v2.4, or a non-zero
// revision).
type UnsupportedVersion struct {
	Major    byte
	Revision byte
}

func (err UnsupportedVersion) Error() string {
	return fmt.Sprintf("unsupported version: ID3v2.%d.%d", err.Major, err.Revision)
}

// Tag is a collection of frames keyed by FrameID, preserving insertion
// order. Multiple frames per identifier are permitted only for
// identifiers whose class allows repetition.
type Tag struct {
	Header TagHeader
	frames []Frame
}

// NewTag returns an empty tag.
func NewTag() *Tag {
	return &Tag{Header: TagHeader{Version: WriteVersion}}
}

// Frames returns the tag's frames in insertion order. The slice is
// shared; do not mutate it.
func (t *Tag) Frames() []Frame {
	return t.frames
}

// Len returns the number of frames in the tag.
func (t *Tag) Len() int {
	return len(t.frames)
}

// Lookup returns the first frame with the given identifier, or nil.
func (t *Tag) Lookup(id FrameID) Frame {
	for _, f := range t.frames {
		if f.ID() == id {
			return f
		}
	}
	return nil
}

// All returns every frame with the given identifier, in insertion
// order.
func (t *Tag) All(id FrameID) []Frame {
	var out []Frame
	for _, f := range t.frames {
		if f.ID() == id {
			out = append(out, f)
		}
	}
	return out
}

// HasFrame reports whether the tag contains a frame with the given
// identifier.
func (t *Tag) HasFrame(id FrameID) bool {
	return t.Lookup(id) != nil
}

// Add inserts a frame. When the identifier does not allow multiple
// instances, an existing frame with the same identifier is replaced
// in place instead.
func (t *Tag) Add(f Frame) {
	if f == nil {
		return
	}
	if !f.ID().AllowsMultiple() {
		for i, existing := range t.frames {
			if existing.ID() == f.ID() {
				t.frames[i] = f
				return
			}
		}
	}
	t.frames = append(t.frames, f)
}

// addParsed inserts a frame coming from the decode loop, with the
// same repetition rule as Add.
func (t *Tag) addParsed(f Frame) {
	t.Add(f)
}

// RemoveFrames drops every frame with the given identifier.
func (t *Tag) RemoveFrames(id FrameID) {
	kept := t.frames[:0]
	for _, f := range t.frames {
		if f.ID() != id {
			kept = append(kept, f)
		}
	}
	t.frames = kept
}

// Clear removes all frames from the tag.
func (t *Tag) Clear() {
	t.frames = nil
}

// textContent is satisfied by every frame variant carrying text.
type textContent interface {
	Frame
	Content() string
}

// GetTextFrame returns the content of the first text-bearing frame
// with the given identifier, or "" when there is none (or it is
// null).
func (t *Tag) GetTextFrame(id FrameID) string {
	f := t.Lookup(id)
	if f == nil || f.Null() {
		return ""
	}
	tf, ok := f.(textContent)
	if !ok {
		return ""
	}
	return tf.Content()
}

// GetUserTextFrame returns the content of the TXXX frame with the
// given description.
func (t *Tag) GetUserTextFrame(description string) string {
	for _, f := range t.All("TXXX") {
		if df, ok := f.(*DescriptiveTextFrame); ok && !df.Null() && df.Description() == description {
			return df.Content()
		}
	}
	return ""
}

func (t *Tag) GetTextFrameNumber(id FrameID) int {
	s := t.GetTextFrame(id)
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}

func (t *Tag) GetTextFrameSlice(id FrameID) []string {
	f := t.Lookup(id)
	if f == nil || f.Null() {
		return nil
	}
	tf, ok := f.(interface{ Values() []string })
	if !ok {
		return nil
	}
	return tf.Values()
}

func (t *Tag) GetTextFrameTime(id FrameID) time.Time {
	s := t.GetTextFrame(id)
	if s == "" {
		return time.Time{}
	}
	ft, err := parseTime(s)
	if err != nil {
		Logging.Println("unparseable time in", id, ":", s)
		return time.Time{}
	}
	return ft
}

// SetTextFrame stores value under the given identifier, reusing the
// existing frame when there is one. Numerical frames reject
// non-numeric values to "".
func (t *Tag) SetTextFrame(id FrameID, value string) {
	if f := t.Lookup(id); f != nil {
		if tf, ok := f.(interface{ SetContent(string) }); ok {
			tf.SetContent(value)
			return
		}
	}
	if numericalTextFrames[id] {
		t.Add(NewNumericalTextFrame(id, value))
		return
	}
	if id.Known() && id[0] == 'W' && id != "WXXX" {
		t.Add(NewURLTextFrame(id, value))
		return
	}
	t.Add(NewTextFrame(id, value))
}

// SetUserTextFrame stores value in the TXXX frame with the given
// description, creating it if needed.
func (t *Tag) SetUserTextFrame(description, value string) {
	for _, f := range t.All("TXXX") {
		if df, ok := f.(*DescriptiveTextFrame); ok && df.Description() == description {
			df.SetContent(value)
			return
		}
	}
	t.Add(NewDescriptiveTextFrame("TXXX", value, description, ""))
}

func (t *Tag) SetTextFrameNumber(id FrameID, value int) {
	t.SetTextFrame(id, strconv.Itoa(value))
}

func (t *Tag) SetTextFrameSlice(id FrameID, values []string) {
	t.SetTextFrame(id, strings.Join(values, "\x00"))
}

func (t *Tag) SetTextFrameTime(id FrameID, value time.Time) {
	t.SetTextFrame(id, value.Format(TimeFormat))
}

func (t *Tag) Album() string {
	return t.GetTextFrame("TALB")
}

func (t *Tag) SetAlbum(album string) {
	t.SetTextFrame("TALB", album)
}

func (t *Tag) Artists() []string {
	return t.GetTextFrameSlice("TPE1")
}

func (t *Tag) SetArtists(artists []string) {
	t.SetTextFrameSlice("TPE1", artists)
}

func (t *Tag) Artist() string {
	artists := t.Artists()
	if len(artists) > 0 {
		return artists[0]
	}
	return ""
}

func (t *Tag) SetArtist(artist string) {
	t.SetTextFrame("TPE1", artist)
}

func (t *Tag) Band() string {
	return t.GetTextFrame("TPE2")
}

func (t *Tag) SetBand(band string) {
	t.SetTextFrame("TPE2", band)
}

func (t *Tag) Conductor() string {
	return t.GetTextFrame("TPE3")
}

func (t *Tag) SetConductor(name string) {
	t.SetTextFrame("TPE3", name)
}

func (t *Tag) BPM() int {
	return t.GetTextFrameNumber("TBPM")
}

func (t *Tag) SetBPM(bpm int) {
	t.SetTextFrameNumber("TBPM", bpm)
}

func (t *Tag) Composers() []string {
	return t.GetTextFrameSlice("TCOM")
}

func (t *Tag) SetComposers(composers []string) {
	t.SetTextFrameSlice("TCOM", composers)
}

func (t *Tag) Composer() string {
	composers := t.Composers()
	if len(composers) > 0 {
		return composers[0]
	}
	return ""
}

func (t *Tag) SetComposer(composer string) {
	t.SetTextFrame("TCOM", composer)
}

func (t *Tag) Title() string {
	return t.GetTextFrame("TIT2")
}

func (t *Tag) SetTitle(title string) {
	t.SetTextFrame("TIT2", title)
}

func (t *Tag) Length() time.Duration {
	return time.Duration(t.GetTextFrameNumber("TLEN")) * time.Millisecond
}

func (t *Tag) SetLength(d time.Duration) {
	t.SetTextFrameNumber("TLEN", int(d.Nanoseconds()/1e6))
}

func (t *Tag) Languages() []string {
	return t.GetTextFrameSlice("TLAN")
}

func (t *Tag) Language() string {
	langs := t.Languages()
	if len(langs) == 0 {
		return ""
	}
	return langs[0]
}

func (t *Tag) SetLanguages(langs []string) {
	t.SetTextFrameSlice("TLAN", langs)
}

func (t *Tag) SetLanguage(lang string) {
	t.SetTextFrame("TLAN", lang)
}

func (t *Tag) Publisher() string {
	return t.GetTextFrame("TPUB")
}

func (t *Tag) SetPublisher(publisher string) {
	t.SetTextFrame("TPUB", publisher)
}

func (t *Tag) Owner() string {
	return t.GetTextFrame("TOWN")
}

func (t *Tag) SetOwner(owner string) {
	t.SetTextFrame("TOWN", owner)
}

func (t *Tag) RecordingTime() time.Time {
	return t.GetTextFrameTime("TDRC")
}

func (t *Tag) SetRecordingTime(rt time.Time) {
	t.SetTextFrameTime("TDRC", rt)
}

func (t *Tag) Year() int {
	if year := t.GetTextFrameNumber("TYER"); year != 0 {
		return year
	}
	if rt := t.RecordingTime(); !rt.IsZero() {
		return rt.Year()
	}
	return 0
}

func (t *Tag) ISRC() string {
	return t.GetTextFrame("TSRC")
}

func (t *Tag) SetISRC(isrc string) {
	t.SetTextFrame("TSRC", isrc)
}

func (t *Tag) Mood() string {
	return t.GetTextFrame("TMOO")
}

func (t *Tag) SetMood(mood string) {
	t.SetTextFrame("TMOO", mood)
}

func (t *Tag) Track() string {
	return t.GetTextFrame("TRCK")
}

func (t *Tag) SetTrack(track string) {
	t.SetTextFrame("TRCK", track)
}

// genreRef matches an ID3v1 genre reference like "(13)" inside a TCON
// content string.
var genreRef = regexp.MustCompile(`\((\d+)\)`)

// Genre returns the content type, with ID3v1 numeric genre references
// expanded ("(13)" becomes "Pop"). References outside the genre table
// are dropped.
func (t *Tag) Genre() string {
	raw := t.GetTextFrame("TCON")
	if raw == "" {
		return ""
	}

	expanded := genreRef.ReplaceAllStringFunc(raw, func(ref string) string {
		n, err := strconv.Atoi(ref[1 : len(ref)-1])
		if err != nil || n < 0 || n >= len(Genres) {
			return ""
		}
		return Genres[n]
	})
	return strings.TrimSpace(expanded)
}

func (t *Tag) SetGenre(genre string) {
	t.SetTextFrame("TCON", genre)
}

// Comment is the decoded content of one COMM frame.
type Comment struct {
	Language    string
	Description string
	Text        string
}

func (t *Tag) Comments() []Comment {
	frames := t.All("COMM")
	comments := make([]Comment, 0, len(frames))
	for _, f := range frames {
		df, ok := f.(*DescriptiveTextFrame)
		if !ok || df.Null() {
			continue
		}
		comments = append(comments, Comment{
			Language:    df.Language(),
			Description: df.Description(),
			Text:        df.Content(),
		})
	}
	return comments
}

func (t *Tag) SetComments(comments []Comment) {
	t.RemoveFrames("COMM")
	for _, c := range comments {
		t.Add(NewDescriptiveTextFrame("COMM", c.Text, c.Description, c.Language))
	}
}

// Pictures returns every attached picture frame.
func (t *Tag) Pictures() []*PictureFrame {
	var out []*PictureFrame
	for _, f := range t.All("APIC") {
		if pf, ok := f.(*PictureFrame); ok && !pf.Null() {
			out = append(out, pf)
		}
	}
	return out
}

// AttachPicture adds a picture frame to the tag.
func (t *Tag) AttachPicture(p *PictureFrame) {
	t.Add(p)
}

// PlayCount returns the tag's play counter value, zero when there is
// none.
func (t *Tag) PlayCount() uint64 {
	if pc, ok := t.Lookup("PCNT").(*PlayCountFrame); ok && !pc.Null() {
		return pc.PlayCount()
	}
	return 0
}

func (t *Tag) SetPlayCount(count uint64) {
	if pc, ok := t.Lookup("PCNT").(*PlayCountFrame); ok {
		pc.SetPlayCount(count)
		return
	}
	t.Add(NewPlayCountFrame(count))
}

// IncrementPlayCount adds one play, creating the counter frame if
// needed.
func (t *Tag) IncrementPlayCount() {
	if pc, ok := t.Lookup("PCNT").(*PlayCountFrame); ok {
		pc.Increment()
		return
	}
	t.Add(NewPlayCountFrame(1))
}

// Popularimeters returns every POPM frame.
func (t *Tag) Popularimeters() []*PopularimeterFrame {
	var out []*PopularimeterFrame
	for _, f := range t.All("POPM") {
		if pf, ok := f.(*PopularimeterFrame); ok && !pf.Null() {
			out = append(out, pf)
		}
	}
	return out
}

// Rate stores a 0-5 star rating for the given email, reusing that
// email's POPM frame when present.
func (t *Tag) Rate(email string, rating uint8) {
	for _, pf := range t.Popularimeters() {
		if pf.Email() == email {
			pf.SetRating(rating)
			return
		}
	}
	t.Add(NewPopularimeterFrame(email, rating, 0))
}

// EventTimings returns the tag's event timing frame, or nil.
func (t *Tag) EventTimings() *EventTimingFrame {
	if f, ok := t.Lookup("ETCO").(*EventTimingFrame); ok && !f.Null() {
		return f
	}
	return nil
}

func parseTime(input string) (res time.Time, err error) {
	for _, format := range timeFormats {
		res, err = time.Parse(format, input)
		if err == nil {
			break
		}
	}
	return
}
