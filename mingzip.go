/*
Package mingzip implements a minimal gzip compressor/decompressor pair:
byte streams in the gzip container format (RFC 1952) wrapping
DEFLATE-compressed data (RFC 1951).

The decoder uses a 32 KiB sliding window and will inflate any valid
DEFLATE bitstream (stored, fixed-Huffman, or dynamic-Huffman blocks). The
encoder is deliberately simpler: it uses a 4 KiB window with a
hash-chained match finder and always emits a single final fixed-Huffman
block, trading compression ratio for a small, auditable implementation.

For example, to compress data to a buffer:

	var b bytes.Buffer
	w := mingzip.NewWriter(&b, "greeting.txt")
	w.Write([]byte("hello, hello, hello"))
	w.Close()

and to decompress it back:

	r, err := mingzip.NewReader(&b)
	io.Copy(os.Stdout, r)
	r.Close()
*/
package mingzip

import (
	"bytes"
	"io"
)

// Compress reads all of src and writes one complete gzip member to dst.
// basename populates the gzip header's FNAME field.
func Compress(dst io.Writer, src io.Reader, basename string) error {
	return compressStream(dst, src, basename)
}

// Decompress reads one complete gzip member from src and writes its
// decompressed payload to dst, verifying the trailer's CRC-32 and ISIZE.
func Decompress(dst io.Writer, src io.Reader) error {
	return decompressStream(dst, src)
}

// Writer accumulates written bytes and compresses them to an underlying
// io.Writer on Close. Writes are never rejected or partially accepted;
// the actual single-pass encode happens all at once in Close.
type Writer struct {
	w        io.Writer
	basename string
	buf      bytes.Buffer
}

// NewWriter creates a Writer. Writes to it are compressed and written to
// w once Close is called. basename populates the gzip header's FNAME
// field.
func NewWriter(w io.Writer, basename string) *Writer {
	return &Writer{w: w, basename: basename}
}

// Write buffers p for compression at Close. It never returns a short
// write or an error.
func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Close compresses everything written so far and flushes it to the
// underlying writer.
func (w *Writer) Close() error {
	return Compress(w.w, &w.buf, w.basename)
}

// Reader serves the decompressed payload of a single gzip member. Unlike
// a streaming inflate, it decompresses everything eagerly inside
// NewReader into a buffer, then serves Read calls from that buffer.
type Reader struct {
	data []byte
	pos  int
}

// NewReader decompresses one gzip member read from r and returns a Reader
// serving its payload.
func NewReader(r io.Reader) (*Reader, error) {
	var out bytes.Buffer
	if err := Decompress(&out, r); err != nil {
		return nil, err
	}
	return &Reader{data: out.Bytes()}, nil
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// Close releases the Reader's buffered payload. It never returns an
// error; the underlying source is not owned by Reader.
func (r *Reader) Close() error {
	r.data = nil
	return nil
}
