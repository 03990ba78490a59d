package mingzip

import (
	"encoding/binary"
	"io"
)

// Gzip header flag bits (RFC 1952 §2.3.1).
const (
	flgFTEXT    = 0x01
	flgFHCRC    = 0x02
	flgFEXTRA   = 0x04
	flgFNAME    = 0x08
	flgFCOMMENT = 0x10
)

const (
	gzipMagic1 = 0x1F
	gzipMagic2 = 0x8B
	gzipCM     = 8 // deflate
)

// writeHeader writes the 10 fixed gzip header bytes plus a NUL-terminated
// FNAME field. MTIME is left zero (unknown), matching gzip's own
// convention when the modification time is not tracked.
func writeHeader(w io.Writer, basename string) error {
	hdr := [10]byte{
		gzipMagic1, gzipMagic2, gzipCM,
		flgFNAME,
		0, 0, 0, 0, // MTIME
		4, // XFL: fastest
		3, // OS: Unix
	}
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := io.WriteString(w, basename); err != nil {
		return err
	}
	_, err := w.Write([]byte{0})
	return err
}

// readHeader validates the gzip magic and compression method, then skips
// every optional field present per the FLG byte: FEXTRA, FNAME, FCOMMENT,
// FHCRC. It must be called before any bit is pulled through getBits, since
// it reads directly off the byte source via br.readByte.
func readHeader(br *bitReader) error {
	magic1, err := br.readByte()
	if err != nil {
		return err
	}
	magic2, err := br.readByte()
	if err != nil {
		return err
	}
	if magic1 != gzipMagic1 || magic2 != gzipMagic2 {
		return ErrBadMagic
	}
	cm, err := br.readByte()
	if err != nil {
		return err
	}
	if cm != gzipCM {
		return ErrUnsupportedMethod
	}
	flg, err := br.readByte()
	if err != nil {
		return err
	}
	for i := 0; i < 6; i++ { // MTIME(4) + XFL(1) + OS(1)
		if _, err := br.readByte(); err != nil {
			return err
		}
	}
	if flg&flgFEXTRA != 0 {
		lo, err := br.readByte()
		if err != nil {
			return err
		}
		hi, err := br.readByte()
		if err != nil {
			return err
		}
		n := int(lo) | int(hi)<<8
		for i := 0; i < n; i++ {
			if _, err := br.readByte(); err != nil {
				return err
			}
		}
	}
	if flg&flgFNAME != 0 {
		if err := skipCString(br); err != nil {
			return err
		}
	}
	if flg&flgFCOMMENT != 0 {
		if err := skipCString(br); err != nil {
			return err
		}
	}
	if flg&flgFHCRC != 0 {
		if _, err := br.readByte(); err != nil {
			return err
		}
		if _, err := br.readByte(); err != nil {
			return err
		}
	}
	return nil
}

func skipCString(br *bitReader) error {
	for {
		b, err := br.readByte()
		if err != nil {
			return err
		}
		if b == 0 {
			return nil
		}
	}
}

// writeTrailer emits the 4-byte little-endian CRC-32 followed by the
// 4-byte little-endian ISIZE, through the bit writer so that both land
// byte-aligned by virtue of the block encoder's trailing zero padding.
func writeTrailer(bw *bitWriter, crc uint32, size uint64) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], crc)
	for _, c := range b {
		bw.writeByte(c)
	}
	binary.LittleEndian.PutUint32(b[:], uint32(size))
	for _, c := range b {
		bw.writeByte(c)
	}
}

// readTrailer discards the current bit position's unread padding bits
// (which are the encoder's zero byte-alignment padding, not data) and
// reads the two little-endian trailer fields.
func readTrailer(br *bitReader) (crc uint32, isize uint32, err error) {
	br.align()
	var b [4]byte
	for i := range b {
		if b[i], err = br.readByte(); err != nil {
			return 0, 0, err
		}
	}
	crc = binary.LittleEndian.Uint32(b[:])
	for i := range b {
		if b[i], err = br.readByte(); err != nil {
			return 0, 0, err
		}
	}
	isize = binary.LittleEndian.Uint32(b[:])
	return crc, isize, nil
}
