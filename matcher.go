package mingzip

import "io"

// Encoder-side tuning constants. WSIZE and HASH_SIZE are correctness-
// relevant (they fix the encoder's addressable back-reference range and
// the window-slide threshold); chainLength and clearing the hash table on
// slide are throughput/ratio knobs and may be tuned without affecting
// round-trip correctness.
const (
	wsizeEnc      = 4096
	hashSizeEnc   = 2048
	minLookahead  = 262
	maxMatchLen   = 258
	minMatchLen   = 3
	chainLength   = 128
	matcherBufLen = 2 * wsizeEnc
)

// matchFinder is the encoder's hash-chained LZ77 match finder: a 2*WSIZE
// byte window, a hash table mapping 3-byte prefixes to the most recent
// window position where they occurred, and a prev[] chain linking each
// position back to the next older position sharing the same hash. Each
// position is inserted into its chain as the window advances, rather than
// sorted in one pass over a fully loaded block.
type matchFinder struct {
	src       io.Reader
	window    [matcherBufLen]byte
	wpos      uint
	lookahead uint
	eof       bool

	hashHead [hashSizeEnc]int32
	prev     [wsizeEnc]int32

	matchStart  uint
	matchLength int

	consumed uint64 // total input bytes advanced over, across the whole stream
}

func newMatchFinder(src io.Reader) *matchFinder {
	m := &matchFinder{src: src}
	for i := range m.hashHead {
		m.hashHead[i] = -1
	}
	for i := range m.prev {
		m.prev[i] = -1
	}
	return m
}

func (m *matchFinder) hashAt(p uint) uint32 {
	return ((uint32(m.window[p]) << 10) ^ (uint32(m.window[p+1]) << 5) ^ uint32(m.window[p+2])) & 0x7FF
}

// insertString records the current position in the hash chain for its
// 3-byte prefix, if at least 3 bytes of lookahead remain to hash.
func (m *matchFinder) insertString() {
	if m.lookahead >= 3 {
		h := m.hashAt(m.wpos)
		m.prev[m.wpos%wsizeEnc] = m.hashHead[h]
		m.hashHead[h] = int32(m.wpos)
	}
}

// currentByte returns the byte at the current window position.
func (m *matchFinder) currentByte() byte {
	return m.window[m.wpos]
}

// advance records the current position in the hash chain (if it still has
// a full 3-byte prefix of lookahead) and moves the cursor forward one
// byte. Called once per byte consumed, whether that byte was emitted as a
// literal or as part of a length/distance match.
func (m *matchFinder) advance() {
	m.insertString()
	m.wpos++
	m.lookahead--
	m.consumed++
}

// findMatch searches the hash chain rooted at the current position for
// the longest prior occurrence of the upcoming bytes, bounded by
// chainLength links and by the WSIZE addressable range. Ties are broken in
// favor of the most recently inserted (first found walking the chain)
// candidate. Returns true iff the best match is at least minMatchLen long.
func (m *matchFinder) findMatch() bool {
	m.matchLength = 0
	if m.lookahead < 3 {
		return false
	}

	limit := 0
	if int(m.wpos) > wsizeEnc {
		limit = int(m.wpos) - wsizeEnc
	}

	maxLen := m.lookahead
	if maxLen > maxMatchLen {
		maxLen = maxMatchLen
	}

	curMatch := m.hashHead[m.hashAt(m.wpos)]
	chain := chainLength
	bestLen := 0
	var bestStart uint

	for curMatch >= 0 && chain > 0 {
		cm := uint(curMatch)
		chain--
		if cm >= m.wpos || int(cm) < limit {
			curMatch = m.prev[cm%wsizeEnc]
			continue
		}
		if bestLen > 0 {
			hi := cm + uint(bestLen)
			hi2 := m.wpos + uint(bestLen)
			if hi >= matcherBufLen || hi2 >= matcherBufLen || m.window[hi] != m.window[hi2] || m.window[cm] != m.window[m.wpos] {
				curMatch = m.prev[cm%wsizeEnc]
				continue
			}
		} else if m.window[cm] != m.window[m.wpos] {
			curMatch = m.prev[cm%wsizeEnc]
			continue
		}

		l := uint(0)
		for l < maxLen && cm+l < matcherBufLen && m.wpos+l < matcherBufLen && m.window[cm+l] == m.window[m.wpos+l] {
			l++
		}
		if int(l) > bestLen {
			bestLen = int(l)
			bestStart = cm
			if bestLen >= maxMatchLen {
				break
			}
		}
		curMatch = m.prev[cm%wsizeEnc]
	}

	if bestLen >= minMatchLen {
		m.matchLength = bestLen
		m.matchStart = bestStart
		return true
	}
	return false
}

// fillWindow slides the window down when the cursor has moved past the
// lower half and free space has dropped below minLookahead, then reads as
// much new input as fits. Sliding clears the hash table rather than
// rewriting every prev[]/hashHead[] entry by the slide offset, trading a
// shorter effective match range right after a slide for a much cheaper
// slide operation.
func (m *matchFinder) fillWindow() error {
	free := uint(matcherBufLen) - (m.wpos + m.lookahead)
	if free < minLookahead && m.wpos >= wsizeEnc {
		copy(m.window[0:wsizeEnc], m.window[wsizeEnc:matcherBufLen])
		m.wpos -= wsizeEnc
		if m.matchStart >= wsizeEnc {
			m.matchStart -= wsizeEnc
		} else {
			m.matchStart = 0
		}
		for i := range m.hashHead {
			m.hashHead[i] = -1
		}
		for i := range m.prev {
			m.prev[i] = -1
		}
		free = uint(matcherBufLen) - (m.wpos + m.lookahead)
	}

	if m.eof {
		return nil
	}
	for free > 0 {
		n, err := m.src.Read(m.window[m.wpos+m.lookahead : m.wpos+m.lookahead+free])
		if n > 0 {
			m.lookahead += uint(n)
			free -= uint(n)
		}
		if err != nil {
			if err == io.EOF {
				m.eof = true
				return nil
			}
			return err
		}
		if n == 0 {
			return nil
		}
	}
	return nil
}
