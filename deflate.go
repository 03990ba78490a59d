package mingzip

import "io"

// encodeBlock emits the single final fixed-Huffman block this encoder
// always produces: BFINAL=1, BTYPE=01, then a greedy LZ77 scan over mf
// driving the fixed Huffman encoder, terminated by the end-of-block
// symbol and zero-bit byte alignment.
func encodeBlock(bw *bitWriter, mf *matchFinder, crc *crc32Writer) error {
	bw.putBits(1, 1) // BFINAL
	bw.putBits(1, 2) // BTYPE = 01 (fixed Huffman)

	if err := mf.fillWindow(); err != nil {
		return err
	}
	for mf.lookahead > 0 {
		if mf.findMatch() {
			length := mf.matchLength
			distance := int(mf.wpos - mf.matchStart)
			sendLength(bw, length)
			sendDistance(bw, distance)
			for i := 0; i < length; i++ {
				crc.update(mf.currentByte())
				mf.advance()
			}
		} else {
			crc.update(mf.currentByte())
			sendLiteral(bw, mf.currentByte())
			mf.advance()
		}
		if err := mf.fillWindow(); err != nil {
			return err
		}
	}

	sendEOB(bw)
	bw.flushBits()
	return nil
}

// compressStream reads all of src, writes a complete gzip member to dst:
// header (with basename in FNAME), the single fixed-Huffman DEFLATE block,
// and the CRC-32/ISIZE trailer.
func compressStream(dst io.Writer, src io.Reader, basename string) error {
	if err := writeHeader(dst, basename); err != nil {
		return err
	}
	bw := newBitWriter(dst)
	mf := newMatchFinder(src)
	crc := newCRC32()
	if err := encodeBlock(bw, mf, crc); err != nil {
		return err
	}
	writeTrailer(bw, crc.sum(), mf.consumed)
	return bw.flush()
}
