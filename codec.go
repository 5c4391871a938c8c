package id3

// Integer and buffer primitives shared by the frame codec. ID3v2 sizes
// come in two flavours: plain big-endian and "synchsafe", where every
// byte carries only its low 7 bits so that no byte of the encoded size
// can look like an MPEG sync marker.

// decodeInt accumulates b as a big-endian unsigned integer. When
// synchsafe is set only the low 7 bits of every byte contribute; the
// high bit is ignored rather than validated. An empty slice decodes
// to 0.
func decodeInt(b []byte, synchsafe bool) uint64 {
	shift := uint(8)
	mask := byte(0xFF)
	if synchsafe {
		shift = 7
		mask = 0x7F
	}

	var n uint64
	for _, c := range b {
		n = n<<shift | uint64(c&mask)
	}
	return n
}

// encodeInt distributes v big-endian over length bytes, 7 bits per
// byte when synchsafe. A length of 0 produces the minimal number of
// bytes needed. A value that does not fit the requested width is
// clamped to the maximum representable value; the truncation is lossy
// by contract, not an error.
func encodeInt(v uint64, length int, synchsafe bool) []byte {
	shift := uint(8)
	mask := byte(0xFF)
	if synchsafe {
		shift = 7
		mask = 0x7F
	}

	if length == 0 {
		length = 1
		for rest := v >> shift; rest > 0; rest >>= shift {
			length++
		}
	}

	if bits := uint(length) * shift; bits < 64 && v >= 1<<bits {
		v = 1<<bits - 1
	}

	out := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		out[i] = byte(v) & mask
		v >>= shift
	}
	return out
}

// removeUnsynchronisation reverses the unsynchronisation scheme on a
// materialized frame buffer, scanning from the end of the fixed header
// at from. Whenever a false sync (0xFF, 0x00, b) with b&0xE0 != 0 is
// found, the inserted 0x00 is dropped.
func removeUnsynchronisation(b []byte, from int) []byte {
	if from < 0 {
		from = 0
	}
	if from > len(b) {
		from = len(b)
	}

	out := make([]byte, 0, len(b))
	out = append(out, b[:from]...)

	for i := from; i < len(b); i++ {
		if i+2 < len(b) && b[i] == 0xFF && b[i+1] == 0x00 && b[i+2]&0xE0 != 0 {
			out = append(out, b[i], b[i+2])
			i += 2
			continue
		}
		out = append(out, b[i])
	}
	return out
}
