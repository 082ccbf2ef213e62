package font

// Transpose swaps the row and column axes of a glyph bitmap.
//
// rows holds h row words, top row first; column c of a row is bit w-1-c, so
// the leftmost column is the most significant of the w used bits. The result
// holds w column words, leftmost column first, where row r is bit r.
func Transpose(rows []byte, w int) []byte {
	cols := make([]byte, w)
	for r, row := range rows {
		for c := 0; c < w; c++ {
			if row&(1<<uint(w-1-c)) != 0 {
				cols[c] |= 1 << uint(r)
			}
		}
	}
	return cols
}

// FlipVertical reverses the bit order of a column word, turning a column
// authored bottom row first into one with the top row at bit 0.
func FlipVertical(b byte) byte {
	b = b>>4 | b<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}
