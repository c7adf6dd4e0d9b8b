// Package wavelet implements a Haar-like pyramidal discrete wavelet
// transform over a 2-D matrix of float32 samples: a 1-D lifting step, a 2-D
// driver that applies it across shrinking active regions, a per-level
// scalar quantizer, and the band linearization order the entropy stage
// consumes.
package wavelet

// Matrix is a rectangular array of float32 samples addressed row-major as
// T[row][col]. Pipelines own one for the lifetime of an encode or decode.
type Matrix struct {
	H, W int
	T    [][]float32
}

// NewMatrix allocates a zeroed h×w matrix.
func NewMatrix(h, w int) *Matrix {
	t := make([][]float32, h)
	for i := range t {
		t[i] = make([]float32, w)
	}
	return &Matrix{H: h, W: w, T: t}
}

func ceilHalf(n int) int { return (n + 1) / 2 }

// step1DForward applies the lifting step in place to a[0:n]: the even-index
// averages land in the low-pass half, the differences in the high-pass
// half, and an unpaired trailing sample (n odd) sits between them
// untouched.
func step1DForward(a []float32, n int) {
	b := make([]float32, n)
	half := n / 2
	for i := 0; i < half; i++ {
		b[i] = (a[2*i] + a[2*i+1]) / 2
		b[ceilHalf(n)+i] = (a[2*i] - a[2*i+1]) / 2
	}
	if n%2 == 1 {
		b[n/2] = a[n-1]
	}
	copy(a[:n], b)
}

// step1DInverse is the exact inverse of step1DForward.
func step1DInverse(b []float32, n int) {
	a := make([]float32, n)
	half := n / 2
	for i := 0; i < half; i++ {
		a[2*i] = b[i] + b[ceilHalf(n)+i]
		a[2*i+1] = b[i] - b[ceilHalf(n)+i]
	}
	if n%2 == 1 {
		a[n-1] = b[n/2]
	}
	copy(b[:n], a)
}

// levelSizes returns the sequence of active-region sizes
// (H_0,W_0),(H_1,W_1),...,(H_D,W_D) that the forward transform visits,
// ending at the first size where both dimensions are 1. The inverse
// transform replays this exact sequence in reverse rather than
// recomputing it by inverse ceil-halving, which would lose level parity
// whenever exactly one dimension has already reached 1.
func levelSizes(h, w int) [][2]int {
	sizes := [][2]int{{h, w}}
	for h > 1 || w > 1 {
		if w > 1 {
			w = ceilHalf(w)
		}
		if h > 1 {
			h = ceilHalf(h)
		}
		sizes = append(sizes, [2]int{h, w})
	}
	return sizes
}

// Forward applies the pyramidal 2-D transform in place over m.
func Forward(m *Matrix) {
	h, w := m.H, m.W
	for h*w > 1 {
		for r := 0; r < h; r++ {
			step1DForward(m.T[r], w)
		}
		col := make([]float32, h)
		for c := 0; c < w; c++ {
			for r := 0; r < h; r++ {
				col[r] = m.T[r][c]
			}
			step1DForward(col, h)
			for r := 0; r < h; r++ {
				m.T[r][c] = col[r]
			}
		}
		if w > 1 {
			w = ceilHalf(w)
		}
		if h > 1 {
			h = ceilHalf(h)
		}
	}
}

// Inverse undoes Forward in place over m.
func Inverse(m *Matrix) {
	sizes := levelSizes(m.H, m.W)
	for k := len(sizes) - 2; k >= 0; k-- {
		h, w := sizes[k][0], sizes[k][1]
		col := make([]float32, h)
		for c := 0; c < w; c++ {
			for r := 0; r < h; r++ {
				col[r] = m.T[r][c]
			}
			step1DInverse(col, h)
			for r := 0; r < h; r++ {
				m.T[r][c] = col[r]
			}
		}
		for r := 0; r < h; r++ {
			step1DInverse(m.T[r], w)
		}
	}
}

// Quantize divides every coefficient by its level-dependent step
// q(i,j) = coef(i,j) / (1 + (i+j+1)*quality/100). quality approaching 0
// approaches lossless.
func Quantize(m *Matrix, quality float64) {
	for i := 0; i < m.H; i++ {
		for j := 0; j < m.W; j++ {
			step := 1 + float64(i+j+1)*quality/100
			m.T[i][j] = float32(float64(m.T[i][j]) / step)
		}
	}
}

// Dequantize is the inverse of Quantize.
func Dequantize(m *Matrix, quality float64) {
	for i := 0; i < m.H; i++ {
		for j := 0; j < m.W; j++ {
			step := 1 + float64(i+j+1)*quality/100
			m.T[i][j] = float32(float64(m.T[i][j]) * step)
		}
	}
}

// Linearize walks the decomposed matrix from the finest band to the
// coarsest, emitting each level's high-frequency coefficients in row-major
// order before finally emitting the single DC coefficient at (0,0). The
// returned slice is the order the RLE/entropy stage consumes on encode.
func Linearize(m *Matrix) []float32 {
	out := make([]float32, 0, m.H*m.W)
	h, w := m.H, m.W
	for h != 1 || w != 1 {
		hh, hw := ceilHalf(h), ceilHalf(w)
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				if j >= hh || i >= hw {
					out = append(out, m.T[j][i])
				}
			}
		}
		h, w = hh, hw
	}
	out = append(out, m.T[0][0])
	return out
}

// Delinearize is the inverse of Linearize: it fills m's coefficients back
// in, reading from coeffs in the identical traversal order.
func Delinearize(m *Matrix, coeffs []float32) {
	pos := 0
	h, w := m.H, m.W
	for h != 1 || w != 1 {
		hh, hw := ceilHalf(h), ceilHalf(w)
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				if j >= hh || i >= hw {
					m.T[j][i] = coeffs[pos]
					pos++
				}
			}
		}
		h, w = hh, hw
	}
	m.T[0][0] = coeffs[pos]
}
