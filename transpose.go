package pixbuf

// TransposeTile is the block side at which the recursive transpose stops
// subdividing and swaps pixels directly.
const TransposeTile = 4

// transposeDiag transposes the size x size block on the diagonal at (pos, pos).
func transposeDiag(pix []byte, stride, c, pos, size int) {
	if size > TransposeTile {
		half := size / 2
		transposeDiag(pix, stride, c, pos, half)
		transposeTile(pix, stride, c, pos, pos+half, half)
		transposeDiag(pix, stride, c, pos+half, half)
		return
	}
	for i := 1; i < size; i++ {
		for j := range i {
			swapPixels(pix, (pos+i)*stride+(pos+j), (pos+j)*stride+(pos+i), c)
		}
	}
}

// transposeTile swaps the size x size block at (row, col) with its mirror
// block at (col, row), transposing both.
func transposeTile(pix []byte, stride, c, row, col, size int) {
	if size > TransposeTile {
		half := size / 2
		transposeTile(pix, stride, c, row, col, half)
		transposeTile(pix, stride, c, row, col+half, half)
		transposeTile(pix, stride, c, row+half, col, half)
		transposeTile(pix, stride, c, row+half, col+half, half)
		return
	}
	for i := range size {
		for j := range size {
			swapPixels(pix, (row+i)*stride+(col+j), (col+j)*stride+(row+i), c)
		}
	}
}

func transposeNaive(pix []byte, n, c int) {
	for i := range n {
		for j := i + 1; j < n; j++ {
			swapPixels(pix, i*n+j, j*n+i, c)
		}
	}
}
