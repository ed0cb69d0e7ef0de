package fft

import (
	"github.com/mjibson/go-dsp/fft"
)

// FFTProcessor is the one FFT operation the diagnostics package drives:
// a one-dimensional forward transform over a real-valued signal sampled
// from the grid's column occupancy.
type FFTProcessor interface {
	FFT1D(input []complex128) []complex128
}

// CPUFFTProcessor implements FFTProcessor over go-dsp's CPU FFT.
type CPUFFTProcessor struct{}

// NewFFTProcessor creates a new FFT processor.
func NewFFTProcessor() FFTProcessor {
	return &CPUFFTProcessor{}
}

// FFT1D performs a one-dimensional forward FFT.
func (p *CPUFFTProcessor) FFT1D(input []complex128) []complex128 {
	return fft.FFT(input)
}
