package mingzip

// maxBits is the longest canonical Huffman code length DEFLATE allows
// (RFC 1951 §3.2.2).
const maxBits = 15

// huffmanTable is a canonical Huffman decoding table: count[L] is the
// number of symbols of code length L, and symbol[] lists the symbols in
// ascending (length, symbol) order.
type huffmanTable struct {
	count  [maxBits + 1]int
	symbol []int
}

// buildHuffman constructs a canonical Huffman decoding table from a flat
// array of per-symbol code lengths (0 meaning "symbol unused"). An
// all-zero lengths array produces a legal empty table (any decode against
// it fails at decode time, not at build time). Over-subscribed code length
// sets are rejected; under-subscribed ("incomplete") sets are accepted
// only when they amount to the single-symbol special case the DEFLATE
// format allows for degenerate one-symbol alphabets, since the decoder
// here never tolerates an incomplete code past that.
func buildHuffman(lengths []int) (*huffmanTable, error) {
	h := &huffmanTable{symbol: make([]int, len(lengths))}

	for _, l := range lengths {
		if l < 0 || l > maxBits {
			return nil, ErrBadBlock
		}
		h.count[l]++
	}
	if h.count[0] == len(lengths) {
		// Empty code: legal, decode() will fail if ever used.
		return h, nil
	}

	// Detect over- or under-subscription.
	left := 1
	for l := 1; l <= maxBits; l++ {
		left <<= 1
		left -= h.count[l]
		if left < 0 {
			return nil, ErrBadBlock
		}
	}
	if left > 0 && !(h.count[1] == 1 && len(lengths)-h.count[0] == 1) {
		// Incomplete and not the singleton special case: the singleton
		// exception only applies when the one length-1 symbol is the
		// entire non-empty alphabet, not merely present alongside others.
		return nil, ErrBadBlock
	}

	var offs [maxBits + 2]int
	for l := 1; l <= maxBits; l++ {
		offs[l+1] = offs[l] + h.count[l]
	}
	for sym, l := range lengths {
		if l != 0 {
			h.symbol[offs[l]] = sym
			offs[l]++
		}
	}
	return h, nil
}

// decode reads one symbol from r using h, one bit at a time, maintaining
// the running canonical code, the first code of the current length, and
// the symbol-table offset for the current length.
func decode(r *bitReader, h *huffmanTable) (int, error) {
	code, first, index := 0, 0, 0
	for length := uint(1); length <= maxBits; length++ {
		bit, err := r.getBits(1)
		if err != nil {
			return 0, err
		}
		code |= int(bit)
		count := h.count[length]
		if code-first < count {
			return h.symbol[index+(code-first)], nil
		}
		index += count
		first += count
		first <<= 1
		code <<= 1
	}
	return 0, ErrBadCode
}
