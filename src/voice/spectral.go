package voice

import (
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/floats"
)

const DefaultFrameSize = 512

// spectrum computes the spectral metric of a segment: its spectral centroid
// averaged over hann-windowed frames and scaled by the nyquist bin, so the
// result is in [0, 1]. Silent segments score 0.
type spectrum struct {
	size  int
	fft   *fourier.FFT
	frame []float64
	coeff []complex128
	mag   []float64
}

func newSpectrum(size int) *spectrum {
	if size < 2 {
		size = DefaultFrameSize
	}
	return &spectrum{
		size:  size,
		fft:   fourier.NewFFT(size),
		frame: make([]float64, size),
		mag:   make([]float64, size/2+1),
	}
}

func (s *spectrum) metric(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	hop := s.size / 2
	total := 0.0
	frames := 0
	for at := 0; ; at += hop {
		for i := range s.frame {
			s.frame[i] = 0
		}
		copy(s.frame, samples[at:])
		window.Hann(s.frame)

		if c, ok := s.centroid(); ok {
			total += c
			frames++
		}

		if at+s.size >= len(samples) {
			break
		}
	}

	if frames == 0 {
		return 0
	}
	return total / float64(frames)
}

func (s *spectrum) centroid() (float64, bool) {
	s.coeff = s.fft.Coefficients(s.coeff, s.frame)
	for k, c := range s.coeff {
		s.mag[k] = real(c)*real(c) + imag(c)*imag(c)
	}

	energy := floats.Sum(s.mag)
	if energy <= 1e-12 {
		return 0, false
	}

	weighted := 0.0
	for k, m := range s.mag {
		weighted += float64(k) * m
	}
	return weighted / energy / float64(len(s.mag)-1), true
}
