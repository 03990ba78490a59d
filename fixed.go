package mingzip

// Fixed Huffman code lengths for the literal/length alphabet, RFC 1951
// §3.2.6: 288 symbols split into four length tiers. fixedLitLenLengths
// feeds buildHuffman on the decode side; fixedLiteralLengthCode below
// computes the same codes by closed form on the encode side, since the
// encoder never needs an actual decode table for a fixed block.
var fixedLitLenLengths = func() []int {
	lens := make([]int, 288)
	for i := 0; i <= 143; i++ {
		lens[i] = 8
	}
	for i := 144; i <= 255; i++ {
		lens[i] = 9
	}
	for i := 256; i <= 279; i++ {
		lens[i] = 7
	}
	for i := 280; i <= 287; i++ {
		lens[i] = 8
	}
	return lens
}()

// fixedDistLengths is the fixed distance alphabet: 32 uniform 5-bit codes
// (only the first 30 are ever produced; 30 and 31 exist so the code is
// complete).
var fixedDistLengths = func() []int {
	lens := make([]int, 32)
	for i := range lens {
		lens[i] = 5
	}
	return lens
}()

// fixedLiteralLengthCode returns the canonical (pre-reversal) fixed code
// and bit length for literal/length symbol sym (RFC 1951 §3.2.6).
func fixedLiteralLengthCode(sym int) (code uint32, bits uint) {
	switch {
	case sym <= 143:
		return 0x30 + uint32(sym), 8
	case sym <= 255:
		return 0x190 + uint32(sym-144), 9
	case sym <= 279:
		return 0x00 + uint32(sym-256), 7
	default:
		return 0xC0 + uint32(sym-280), 8
	}
}

// fixedDistanceCode returns the canonical fixed distance code: a flat
// 5-bit code numbered by symbol.
func fixedDistanceCode(sym int) (code uint32, bits uint) {
	return uint32(sym), 5
}

// sendLiteral emits literal byte b as a fixed-Huffman code, bit-reversed
// so the LSB-first bitstream reconstructs the MSB-first canonical code.
func sendLiteral(bw *bitWriter, b byte) {
	code, bits := fixedLiteralLengthCode(int(b))
	bw.putBits(reverseBits(code, bits), bits)
}

// sendEOB emits the end-of-block symbol (256).
func sendEOB(bw *bitWriter) {
	code, bits := fixedLiteralLengthCode(256)
	bw.putBits(reverseBits(code, bits), bits)
}

// sendLength emits a length/distance pair's length half: the fixed code
// for length's length-code symbol, bit-reversed, followed by the raw
// (non-reversed) extra bits.
func sendLength(bw *bitWriter, length int) {
	lcode, extra, extraBits := lengthCodeFor(length)
	code, bits := fixedLiteralLengthCode(257 + lcode)
	bw.putBits(reverseBits(code, bits), bits)
	if extraBits > 0 {
		bw.putBits(extra, extraBits)
	}
}

// sendDistance emits a length/distance pair's distance half.
func sendDistance(bw *bitWriter, dist int) {
	dcode, extra, extraBits := distCodeFor(dist)
	code, bits := fixedDistanceCode(dcode)
	bw.putBits(reverseBits(code, bits), bits)
	if extraBits > 0 {
		bw.putBits(extra, extraBits)
	}
}
