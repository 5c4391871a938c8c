package id3

import "strings"

// FrameID is the canonical four-character identifier of a frame class.
// Construction through LookupFrameID guarantees that two spellings of
// the same frame (differently cased, padded, or the legacy ID3v2.2
// three-letter form) end up equal, and that anything unrecognized ends
// up as FrameIDUnknown.
type FrameID string

// FrameIDUnknown is the canonical identifier of every unrecognized
// frame.
const FrameIDUnknown FrameID = "XXXX"

// FrameNames maps every known frame identifier to its description per
// the ID3v2.3/v2.4 informal standards.
var FrameNames = map[FrameID]string{
	"AENC": "Audio encryption",
	"APIC": "Attached picture",
	"ASPI": "Audio seek point index",
	"COMM": "Comments",
	"COMR": "Commercial frame",

	"ENCR": "Encryption method registration",
	"EQU2": "Equalisation (2)",
	"ETCO": "Event timing codes",

	"GEOB": "General encapsulated object",
	"GRID": "Group identification registration",

	"LINK": "Linked information",

	"MCDI": "Music CD identifier",
	"MLLT": "MPEG location lookup table",

	"OWNE": "Ownership frame",

	"PRIV": "Private frame",
	"PCNT": "Play counter",
	"POPM": "Popularimeter",
	"POSS": "Position synchronisation frame",

	"RBUF": "Recommended buffer size",
	"RVA2": "Relative volume adjustment (2)",
	"RVRB": "Reverb",

	"SEEK": "Seek frame",
	"SIGN": "Signature frame",
	"SYLT": "Synchronised lyric/text",
	"SYTC": "Synchronised tempo codes",

	"TALB": "Album/Movie/Show title",
	"TBPM": "BPM (beats per minute)",
	"TCOM": "Composer",
	"TCON": "Content type",
	"TCOP": "Copyright message",
	"TDAT": "Date", // v2.3
	"TDEN": "Encoding time",
	"TDLY": "Playlist delay",
	"TDOR": "Original release time",
	"TDRC": "Recording time",
	"TDRL": "Release time",
	"TDTG": "Tagging time",
	"TENC": "Encoded by",
	"TEXT": "Lyricist/Text writer",
	"TFLT": "File type",
	"TIME": "Time", // v2.3
	"TIPL": "Involved people list",
	"TIT1": "Content group description",
	"TIT2": "Title/songname/content description",
	"TIT3": "Subtitle/Description refinement",
	"TKEY": "Initial key",
	"TLAN": "Language(s)",
	"TLEN": "Length",
	"TMCL": "Musician credits list",
	"TMED": "Media type",
	"TMOO": "Mood",
	"TOAL": "Original album/movie/show title",
	"TOFN": "Original filename",
	"TOLY": "Original lyricist(s)/text writer(s)",
	"TORY": "Original release year", // v2.3
	"TOPE": "Original artist(s)/performer(s)",
	"TOWN": "File owner/licensee",
	"TPE1": "Lead performer(s)/Soloist(s)",
	"TPE2": "Band/orchestra/accompaniment",
	"TPE3": "Conductor/performer refinement",
	"TPE4": "Interpreted, remixed, or otherwise modified by",
	"TPOS": "Part of a set",
	"TPRO": "Produced notice",
	"TPUB": "Publisher",
	"TRCK": "Track number/Position in set",
	"TRDA": "Recording dates", // v2.3
	"TRSN": "Internet radio station name",
	"TRSO": "Internet radio station owner",
	"TSIZ": "Size", // v2.3
	"TSOA": "Album sort order",
	"TSOP": "Performer sort order",
	"TSOT": "Title sort order",
	"TSO2": "Album Artist sort order", // iTunes extension
	"TSOC": "Composer sort order",     // iTunes extension
	"TSRC": "ISRC (international standard recording code)",
	"TSSE": "Software/Hardware and settings used for encoding",
	"TSST": "Set subtitle",
	"TYER": "Year", // v2.3
	"TXXX": "User defined text information frame",

	"UFID": "Unique file identifier",
	"USER": "Terms of use",
	"USLT": "Unsynchronised lyric/text transcription",

	"WCOM": "Commercial information",
	"WCOP": "Copyright/Legal information",
	"WOAF": "Official audio file webpage",
	"WOAR": "Official artist/performer webpage",
	"WOAS": "Official audio source webpage",
	"WORS": "Official Internet radio station homepage",
	"WPAY": "Payment",
	"WPUB": "Publishers official webpage",
	"WXXX": "User defined URL link frame",
}

// v22FrameIDs converts the three-letter ID3v2.2 identifiers to their
// modern four-letter equivalents. Frames without a v2.3/v2.4
// counterpart (CRM, EQU, RVA, TSI) are absent and therefore classify
// as unknown.
var v22FrameIDs = map[string]FrameID{
	"BUF": "RBUF",
	"CNT": "PCNT",
	"COM": "COMM",
	"CRA": "AENC",
	"ETC": "ETCO",
	"GEO": "GEOB",
	"IPL": "TIPL",
	"LNK": "LINK",
	"MCI": "MCDI",
	"MLL": "MLLT",
	"PIC": "APIC",
	"POP": "POPM",
	"REV": "RVRB",
	"SLT": "SYLT",
	"STC": "SYTC",
	"TAL": "TALB",
	"TBP": "TBPM",
	"TCM": "TCOM",
	"TCO": "TCON",
	"TCR": "TCOP",
	"TDA": "TDAT",
	"TDY": "TDLY",
	"TEN": "TENC",
	"TFT": "TFLT",
	"TIM": "TIME",
	"TKE": "TKEY",
	"TLA": "TLAN",
	"TLE": "TLEN",
	"TMT": "TMED",
	"TOA": "TOPE",
	"TOF": "TOFN",
	"TOL": "TOLY",
	"TOR": "TORY",
	"TOT": "TOAL",
	"TP1": "TPE1",
	"TP2": "TPE2",
	"TP3": "TPE3",
	"TP4": "TPE4",
	"TPA": "TPOS",
	"TPB": "TPUB",
	"TRC": "TSRC",
	"TRD": "TRDA",
	"TRK": "TRCK",
	"TSS": "TSSE",
	"TT1": "TIT1",
	"TT2": "TIT2",
	"TT3": "TIT3",
	"TXT": "TEXT",
	"TXX": "TXXX",
	"TYE": "TYER",
	"UFI": "UFID",
	"ULT": "USLT",
	"WAF": "WOAF",
	"WAR": "WOAR",
	"WAS": "WOAS",
	"WCM": "WCOM",
	"WCP": "WCOP",
	"WPB": "WPUB",
	"WXX": "WXXX",
}

// multipleAllowed is the closed set of frames that may appear more
// than once in a tag.
var multipleAllowed = map[FrameID]bool{
	"AENC": true,
	"APIC": true,
	"COMM": true,
	"COMR": true,
	"ENCR": true,
	"EQU2": true,
	"GEOB": true,
	"GRID": true,
	"LINK": true,
	"POPM": true,
	"PRIV": true,
	"RVA2": true,
	"SIGN": true,
	"SYLT": true,
	"TXXX": true,
	"UFID": true,
	"USLT": true,
	"WCOM": true,
	"WOAR": true,
	"WXXX": true,
}

// LookupFrameID canonicalizes a raw frame identifier read from a tag
// of the given major version. Identifiers from v2.2 tags (version < 3)
// are translated through the legacy table first. Anything that does
// not end up in the known table canonicalizes to FrameIDUnknown.
func LookupFrameID(raw string, version byte) FrameID {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if version < 3 {
		converted, ok := v22FrameIDs[s]
		if !ok {
			return FrameIDUnknown
		}
		s = string(converted)
	}

	if _, ok := FrameNames[FrameID(s)]; !ok {
		return FrameIDUnknown
	}
	return FrameID(s)
}

// Known reports whether the identifier names a standard ID3v2.3/v2.4
// frame.
func (id FrameID) Known() bool {
	_, ok := FrameNames[id]
	return ok
}

// AllowsMultiple reports whether a tag may contain more than one frame
// with this identifier.
func (id FrameID) AllowsMultiple() bool {
	return multipleAllowed[id]
}

// String returns the human-readable frame description, or the
// identifier itself when there is none.
func (id FrameID) String() string {
	v, ok := FrameNames[id]
	if ok {
		return v
	}
	return string(id)
}
