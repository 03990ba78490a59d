package mingzip

import "io"

// decodeWindowSize is the decoder's 32 KiB sliding window.
const decodeWindowSize = 32768

// decodeWindow is the decode-side sliding window: a ring buffer plus a
// write cursor, forwarding every output byte to the byte sink and to a
// running CRC-32 as it goes.
type decodeWindow struct {
	buf   [decodeWindowSize]byte
	wpos  uint
	total uint64 // total bytes output so far, across the whole stream
	sink  io.Writer
	crc   *crc32Writer
	one   [1]byte
}

func newDecodeWindow(sink io.Writer, crc *crc32Writer) *decodeWindow {
	return &decodeWindow{sink: sink, crc: crc}
}

// outputByte writes b at the current cursor, advances the cursor, updates
// the CRC, and forwards b to the byte sink.
func (d *decodeWindow) outputByte(b byte) error {
	d.buf[d.wpos] = b
	d.wpos++
	if d.wpos == decodeWindowSize {
		d.wpos = 0
	}
	d.total++
	d.crc.update(b)
	d.one[0] = b
	if _, err := d.sink.Write(d.one[:]); err != nil {
		return err
	}
	return nil
}

// copyMatch replays a back-reference of the given length and distance,
// one byte at a time through outputByte, so that self-overlapping
// references (distance < length, e.g. a run-length-style distance=1)
// replicate correctly: each source byte is read immediately before the
// byte it produces is written.
func (d *decodeWindow) copyMatch(length, distance int) error {
	if distance < 1 || uint64(distance) > d.total || distance > decodeWindowSize {
		return ErrBadReference
	}
	for i := 0; i < length; i++ {
		from := d.wpos + decodeWindowSize - uint(distance)
		if from >= decodeWindowSize {
			from -= decodeWindowSize
		}
		if err := d.outputByte(d.buf[from]); err != nil {
			return err
		}
	}
	return nil
}
