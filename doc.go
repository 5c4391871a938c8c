/*
Package id3 reads and writes ID3 metadata tags in MP3 and MP4 audio
files.

# Supported versions

The library reads ID3v2.2, v2.3 and v2.4 tags, as well as the trailing
ID3v1, v1.1 and v1-Extended structs, but only writes v2.4 tags.

The primary reason for not writing older versions is that they cannot
represent all data that is available with v2.4, and designing the API
in a way that's both user friendly and able to reject data is not
worth the trouble.

# Automatic upgrading

The internal representation of frames matches v2.4. Tags with an older
version are converted while reading: v2.2 frame headers are rebuilt in
their v2.4 shape (modern identifiers, synchsafe sizes), and writing
any frame re-encodes it in v2.4 form, including the replacement of the
legacy slash separator for multi-valued text frames with null bytes.
One consequence is that reading a file with v2.3 tags and immediately
saving it produces a file with valid v2.4 tags.

# Malformed input

Corrupt and foreign files are an expected input, not an error. A frame
that cannot be decoded is represented by a null frame (Null reports
true and the typed accessors return zero values), and a frame scan
stops at the first structurally invalid frame, keeping everything
parsed before it. The package never panics on malformed input.

# Accessing and manipulating frames

There are two ways to work with a tag: the typed getter and setter
methods on Tag (one for every common frame), or the frames themselves,
obtained from Tag.Frames, Tag.Lookup or a FrameFactory and asserted to
their concrete variant.
*/
package id3
