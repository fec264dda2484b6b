package helpers

// Index returns the offset of cell (i, j) in a row-major n×n matrix.
func Index(i, j, n int) int {
	return j + i*n
}

// Transposed returns the offset of cell (j, i), the mirror of (i, j).
func Transposed(i, j, n int) int {
	return i + j*n
}

// TrianglePairs returns the number of unordered pairs of n points,
// which is the size of the strict upper triangle of an n×n matrix.
func TrianglePairs(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// RowCell returns the (row, column) of a row-major offset.
func RowCell(offset, n int) (int, int) {
	return offset / n, offset % n
}
