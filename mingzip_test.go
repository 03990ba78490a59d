package mingzip_test

import (
	"bytes"
	"hash/crc32"
	"io"
	"strings"
	"testing"

	"github.com/JoshVarga/mingzip"
)

func roundTrip(t *testing.T, data []byte) []byte {
	t.Helper()
	var compressed bytes.Buffer
	if err := mingzip.Compress(&compressed, bytes.NewReader(data), "test.txt"); err != nil {
		t.Fatalf("Compress: %v", err)
	}
	var decompressed bytes.Buffer
	if err := mingzip.Decompress(&decompressed, bytes.NewReader(compressed.Bytes())); err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(decompressed.Bytes(), data) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", decompressed.Len(), len(data))
	}
	return compressed.Bytes()
}

func TestRoundTripEmpty(t *testing.T) {
	out := roundTrip(t, nil)
	// Header (10 + len("test.txt") + 1 NUL) + one fixed block containing
	// only EOB, padded to a byte, + 8-byte trailer.
	if len(out) == 0 {
		t.Fatal("expected non-empty gzip member for empty input")
	}
	r, err := mingzip.NewReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty payload, got %d bytes", len(got))
	}
}

func TestRoundTripRunLength(t *testing.T) {
	// "AAAAAAAA": one literal followed by a length=7 distance=1 match.
	roundTrip(t, []byte("AAAAAAAA"))
}

func TestRoundTripRepeatingPattern(t *testing.T) {
	roundTrip(t, []byte("abcabcabcabc"))
}

func TestRoundTripForcesWindowSlide(t *testing.T) {
	// Larger than the 4 KiB encoder window, forcing at least one slide.
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 400)
	roundTrip(t, data)
}

func TestRoundTripBinaryData(t *testing.T) {
	data := make([]byte, 5000)
	x := uint32(12345)
	for i := range data {
		x = x*1664525 + 1013904223
		data[i] = byte(x >> 24)
	}
	roundTrip(t, data)
}

func TestCRCAndSize(t *testing.T) {
	data := []byte("hello, gzip")
	var compressed bytes.Buffer
	if err := mingzip.Compress(&compressed, bytes.NewReader(data), "x"); err != nil {
		t.Fatal(err)
	}
	b := compressed.Bytes()
	trailer := b[len(b)-8:]
	gotCRC := uint32(trailer[0]) | uint32(trailer[1])<<8 | uint32(trailer[2])<<16 | uint32(trailer[3])<<24
	gotISize := uint32(trailer[4]) | uint32(trailer[5])<<8 | uint32(trailer[6])<<16 | uint32(trailer[7])<<24
	if want := crc32.ChecksumIEEE(data); gotCRC != want {
		t.Fatalf("CRC = %x, want %x", gotCRC, want)
	}
	if int(gotISize) != len(data) {
		t.Fatalf("ISIZE = %d, want %d", gotISize, len(data))
	}
}

func TestFixedCodeBitExactnessSingleByte(t *testing.T) {
	var compressed bytes.Buffer
	if err := mingzip.Compress(&compressed, bytes.NewReader([]byte{0x00}), ""); err != nil {
		t.Fatal(err)
	}
	b := compressed.Bytes()
	// Header is 10 fixed bytes plus a lone NUL terminator (FNAME empty).
	const headerLen = 11
	if len(b) < headerLen+1 {
		t.Fatalf("compressed output too short: %d bytes", len(b))
	}
	block := b[headerLen]
	// Bit 0: BFINAL=1. Bits 1-2: BTYPE=01 -> underlying 2-bit value 1.
	// Bits 3-10: bit-reversed 8-bit fixed code for literal 0 (0x30),
	// which is 0b00110000 reversed to 0b00001100.
	// LSB-first byte layout: bit0=BFINAL, bit1-2=BTYPE, bit3.. = literal code.
	if block&0x01 != 1 {
		t.Fatalf("expected BFINAL=1, got byte %08b", block)
	}
	btype := (block >> 1) & 0x03
	if btype != 1 {
		t.Fatalf("expected BTYPE=01, got %02b", btype)
	}
	// Bits 11-17: the 7-bit EOB code 0, then zero padding. The 18 block
	// bits therefore pack into exactly 0x63 0x00 0x00.
	if len(b) < headerLen+3 || b[headerLen] != 0x63 || b[headerLen+1] != 0x00 || b[headerLen+2] != 0x00 {
		t.Fatalf("expected block bytes 63 00 00, got % x", b[headerLen:])
	}
}

func TestGzipHeaderWithFNAMEAndFCOMMENT(t *testing.T) {
	var payload bytes.Buffer
	if err := mingzip.Compress(&payload, strings.NewReader("hi"), "ignored"); err != nil {
		t.Fatal(err)
	}
	raw := payload.Bytes()

	// Splice in a synthetic header carrying both FNAME and FCOMMENT ahead
	// of the same DEFLATE bitstream and trailer the real encoder produced
	// (everything after the original 10+len("ignored")+1 byte header).
	origHeaderLen := 10 + len("ignored") + 1
	rest := raw[origHeaderLen:]

	var member bytes.Buffer
	member.Write([]byte{0x1F, 0x8B, 0x08, 0x08 | 0x10, 0, 0, 0, 0, 4, 3})
	member.WriteString("name.txt\x00")
	member.WriteString("a comment\x00")
	member.Write(rest)

	var out bytes.Buffer
	if err := mingzip.Decompress(&out, bytes.NewReader(member.Bytes())); err != nil {
		t.Fatalf("Decompress with FNAME+FCOMMENT: %v", err)
	}
	if out.String() != "hi" {
		t.Fatalf("got %q, want %q", out.String(), "hi")
	}
}

func TestStoredBlockDecode(t *testing.T) {
	data := []byte("stored block payload")
	var member bytes.Buffer
	member.Write([]byte{0x1F, 0x8B, 0x08, 0x08, 0, 0, 0, 0, 4, 3})
	member.WriteString("s\x00")

	member.WriteByte(0x01) // BFINAL=1, BTYPE=00 in the first two bits: 1 | (0<<1)
	length := len(data)
	member.WriteByte(byte(length))
	member.WriteByte(byte(length >> 8))
	nlen := ^uint16(length)
	member.WriteByte(byte(nlen))
	member.WriteByte(byte(nlen >> 8))
	member.Write(data)

	crc := crc32.ChecksumIEEE(data)
	var trailer [8]byte
	trailer[0] = byte(crc)
	trailer[1] = byte(crc >> 8)
	trailer[2] = byte(crc >> 16)
	trailer[3] = byte(crc >> 24)
	trailer[4] = byte(length)
	trailer[5] = byte(length >> 8)
	trailer[6] = byte(length >> 16)
	trailer[7] = byte(length >> 24)
	member.Write(trailer[:])

	var out bytes.Buffer
	if err := mingzip.Decompress(&out, bytes.NewReader(member.Bytes())); err != nil {
		t.Fatalf("Decompress stored block: %v", err)
	}
	if out.String() != string(data) {
		t.Fatalf("got %q, want %q", out.String(), string(data))
	}
}

func TestStoredBlockBadLengthRejected(t *testing.T) {
	var member bytes.Buffer
	member.Write([]byte{0x1F, 0x8B, 0x08, 0x08, 0, 0, 0, 0, 4, 3})
	member.WriteString("s\x00")
	member.WriteByte(0x01)
	member.Write([]byte{0x05, 0x00, 0x00, 0x00}) // NLEN should be ~LEN, isn't

	var out bytes.Buffer
	err := mingzip.Decompress(&out, bytes.NewReader(member.Bytes()))
	if err != mingzip.ErrBadStored {
		t.Fatalf("expected ErrBadStored, got %v", err)
	}
}

func TestBadMagicRejected(t *testing.T) {
	var out bytes.Buffer
	err := mingzip.Decompress(&out, bytes.NewReader([]byte{0x00, 0x00, 0x08, 0x08, 0, 0, 0, 0, 4, 3, 0}))
	if err != mingzip.ErrBadMagic {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}

func TestUnsupportedMethodRejected(t *testing.T) {
	var out bytes.Buffer
	err := mingzip.Decompress(&out, bytes.NewReader([]byte{0x1F, 0x8B, 0x09, 0x08, 0, 0, 0, 0, 4, 3, 0}))
	if err != mingzip.ErrUnsupportedMethod {
		t.Fatalf("expected ErrUnsupportedMethod, got %v", err)
	}
}

func TestWriterReaderAPI(t *testing.T) {
	var b bytes.Buffer
	w := mingzip.NewWriter(&b, "greeting.txt")
	if _, err := w.Write([]byte("hello, hello, hello")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := mingzip.NewReader(&b)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello, hello, hello" {
		t.Fatalf("got %q", got)
	}
}

func TestConcurrentIndependentInstances(t *testing.T) {
	inputs := [][]byte{
		[]byte("first stream"),
		[]byte("second, different stream"),
		bytes.Repeat([]byte("x"), 9000),
	}
	done := make(chan error, len(inputs))
	for _, in := range inputs {
		in := in
		go func() {
			var c bytes.Buffer
			if err := mingzip.Compress(&c, bytes.NewReader(in), "f"); err != nil {
				done <- err
				return
			}
			var d bytes.Buffer
			if err := mingzip.Decompress(&d, bytes.NewReader(c.Bytes())); err != nil {
				done <- err
				return
			}
			if !bytes.Equal(d.Bytes(), in) {
				done <- errMismatch
				return
			}
			done <- nil
		}()
	}
	for range inputs {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}

var errMismatch = errString("round trip mismatch across concurrent instances")

type errString string

func (e errString) Error() string { return string(e) }
