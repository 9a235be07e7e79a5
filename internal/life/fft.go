package life

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"lifelike/internal/core"
)

// fftCounter counts neighbors as a 2D convolution: a real FFT over each row
// followed by a complex FFT over each column. The board is zero padded by two
// rows and columns so the circular convolution never wraps across an edge.
type fftCounter struct {
	w, h       int
	rows, cols int
	halfC      int
	normInv    float64

	realFFT    *fourier.FFT
	cmplxFFT   *fourier.CmplxFFT
	kernelFreq []complex128
	freqBuf    []complex128
	colBuf     []complex128
	realBuf    []float64
}

func (f *fftCounter) init(w, h int) {
	f.w, f.h = w, h
	f.rows, f.cols = h+2, w+2
	f.halfC = f.cols/2 + 1
	f.normInv = 1.0 / float64(f.rows*f.cols)
	f.realFFT = fourier.NewFFT(f.cols)
	f.cmplxFFT = fourier.NewCmplxFFT(f.rows)
	f.freqBuf = make([]complex128, f.rows*f.halfC)
	f.colBuf = make([]complex128, f.rows)
	f.realBuf = make([]float64, f.cols)
	f.kernelFreq = make([]complex128, f.rows*f.halfC)

	kernel := make([]float64, f.rows*f.cols)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ky := (dy + f.rows) % f.rows
			kx := (dx + f.cols) % f.cols
			kernel[ky*f.cols+kx] = 1
		}
	}
	for y := 0; y < f.rows; y++ {
		f.realFFT.Coefficients(f.kernelFreq[y*f.halfC:(y+1)*f.halfC], kernel[y*f.cols:(y+1)*f.cols])
	}
	f.columns(f.kernelFreq, f.cmplxFFT.Coefficients)
}

// columns applies a complex transform to every column of buf in place.
func (f *fftCounter) columns(buf []complex128, transform func(dst, seq []complex128) []complex128) {
	for x := 0; x < f.halfC; x++ {
		for y := 0; y < f.rows; y++ {
			f.colBuf[y] = buf[y*f.halfC+x]
		}
		transform(f.colBuf, f.colBuf)
		for y := 0; y < f.rows; y++ {
			buf[y*f.halfC+x] = f.colBuf[y]
		}
	}
}

func (f *fftCounter) Count(b *core.Board, counts []uint8) {
	if f.realFFT == nil || f.w != b.W || f.h != b.H {
		f.init(b.W, b.H)
	}
	cells := b.Cells()
	for y := 0; y < f.rows; y++ {
		for x := range f.realBuf {
			f.realBuf[x] = 0
			if y < b.H && x < b.W {
				f.realBuf[x] = float64(cells[y*b.W+x])
			}
		}
		f.realFFT.Coefficients(f.freqBuf[y*f.halfC:(y+1)*f.halfC], f.realBuf)
	}
	f.columns(f.freqBuf, f.cmplxFFT.Coefficients)

	for i := range f.freqBuf {
		f.freqBuf[i] *= f.kernelFreq[i]
	}

	f.columns(f.freqBuf, f.cmplxFFT.Sequence)
	for y := 0; y < b.H; y++ {
		f.realFFT.Sequence(f.realBuf, f.freqBuf[y*f.halfC:(y+1)*f.halfC])
		for x := 0; x < b.W; x++ {
			counts[y*b.W+x] = uint8(math.Round(f.realBuf[x] * f.normInv))
		}
	}
}
