package mingzip

// RFC 1951 §3.2.5 length and distance tables, shared by the block decoder
// and block encoder. Index i corresponds to length/distance code 257+i or
// 0+i respectively.
var lengthBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtra = [29]uint{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

var distBase = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145,
	8193, 12289, 16385, 24577,
}

var distExtra = [30]uint{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// codeLengthOrder is the permutation in which the HCLEN code-length
// code-lengths appear in a dynamic block header (RFC 1951 §3.2.7).
var codeLengthOrder = [19]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// lengthCodeFor finds the length code whose base range contains length,
// and the extra bits to emit alongside it. The 258 entry sits at index 28,
// so the maximum match length always terminates inside the table instead
// of falling through.
func lengthCodeFor(length int) (code int, extra uint32, extraBits uint) {
	for i := len(lengthBase) - 1; i >= 0; i-- {
		if length >= lengthBase[i] {
			return i, uint32(length - lengthBase[i]), lengthExtra[i]
		}
	}
	return 0, 0, 0
}

// distCodeFor is the distance-table twin of lengthCodeFor, over 30
// entries.
func distCodeFor(dist int) (code int, extra uint32, extraBits uint) {
	for i := len(distBase) - 1; i >= 0; i-- {
		if dist >= distBase[i] {
			return i, uint32(dist - distBase[i]), distExtra[i]
		}
	}
	return 0, 0, 0
}
