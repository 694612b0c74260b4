package eq

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// spectrumFloorDB clamps near-zero FFT bins so deep notches stay finite.
const spectrumFloorDB = -200.0

// Response computes the combined complex frequency response of all active
// bands at the given frequency (Hz). Bypassed bands are skipped, so an
// all-bypassed instance returns exactly 1.
func (e *Equalizer) Response(freqHz float64) complex128 {
	h := complex(1, 0)
	for i := range e.bands {
		if e.bands[i].bypass {
			continue
		}
		h *= e.bands[i].section.Coefficients.Response(freqHz, e.sampleRate)
	}

	return h
}

// MagnitudeDB returns the combined magnitude response in dB at freqHz.
// Per-band magnitudes use the closed-form expression, so the sum stays
// finite even where individual responses approach zero.
func (e *Equalizer) MagnitudeDB(freqHz float64) float64 {
	db := 0.0
	for i := range e.bands {
		if e.bands[i].bypass {
			continue
		}
		db += e.bands[i].section.Coefficients.MagnitudeDB(freqHz, e.sampleRate)
	}

	return db
}

// ImpulseResponse computes n samples of the cascade's impulse response.
// The delay-line state of every band is saved and restored, so calling
// this between Process calls does not disturb the audio path.
func (e *Equalizer) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	var saved [NumBands][2]float64
	for i := range e.bands {
		saved[i] = e.bands[i].section.State()
	}
	e.Reset()

	ir := make([]float64, n)
	ir[0] = e.Process(1)
	for i := 1; i < n; i++ {
		ir[i] = e.Process(0)
	}

	for i := range e.bands {
		e.bands[i].section.SetState(saved[i])
	}

	return ir
}

// SpectrumDB measures the cascade's magnitude response in dB by running an
// impulse through the filters and transforming the result. It returns
// fftSize/2+1 bins covering DC through Nyquist; bin k corresponds to
// k*sampleRate/fftSize Hz. fftSize must be a power of two.
//
// Unlike [Equalizer.MagnitudeDB] this measures the filters as implemented,
// delay lines included, which makes it the right tool for verifying the
// processing path against the analytic response.
func (e *Equalizer) SpectrumDB(fftSize int) ([]float64, error) {
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("eq: fft size %d is not a power of two", fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("eq: spectrum fft plan: %w", err)
	}

	ir := e.ImpulseResponse(fftSize)

	input := make([]complex128, fftSize)
	for i, v := range ir {
		input[i] = complex(v, 0)
	}

	output := make([]complex128, fftSize)
	if err := plan.Forward(output, input); err != nil {
		return nil, fmt.Errorf("eq: spectrum fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(output[i])
		im[i] = imag(output[i])
	}

	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	for i, m := range mags {
		db := 20 * math.Log10(m)
		if db < spectrumFloorDB || math.IsNaN(db) {
			db = spectrumFloorDB
		}
		mags[i] = db
	}

	return mags, nil
}
