package design

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// Errors returned by the designers.
var (
	ErrInvalidFrequency = errors.New("design: frequency must lie in (0, Nyquist)")
	ErrInvalidQ         = errors.New("design: Q must be positive and finite")
	ErrInvalidGain      = errors.New("design: gain must be finite")
	ErrInvalidCurve     = errors.New("design: unknown curve")
)

// Design computes the coefficients for one filter band. It dispatches on
// curve; gainDB is ignored by curves without gain. This is the single entry
// point the equalizer uses.
func Design(curve Curve, freqHz, q, gainDB, sampleRate float64) (biquad.Coefficients, error) {
	switch curve {
	case CurveLowpass:
		return Lowpass(freqHz, q, sampleRate)
	case CurveHighpass:
		return Highpass(freqHz, q, sampleRate)
	case CurveBandpass:
		return Bandpass(freqHz, q, sampleRate)
	case CurveNotch:
		return Notch(freqHz, q, sampleRate)
	case CurveAllpass:
		return Allpass(freqHz, q, sampleRate)
	case CurvePeak:
		return Peak(freqHz, gainDB, q, sampleRate)
	case CurveLowshelf:
		return LowShelf(freqHz, gainDB, q, sampleRate)
	case CurveHighshelf:
		return HighShelf(freqHz, gainDB, q, sampleRate)
	default:
		return biquad.Coefficients{}, ErrInvalidCurve
	}
}

// Validate checks the common parameter constraints without designing.
func Validate(freqHz, q, sampleRate float64) error {
	if _, err := normalizedW0(freqHz, sampleRate); err != nil {
		return err
	}
	return validateQ(q)
}

// Lowpass designs a lowpass biquad at freq (Hz) with quality factor q.
func Lowpass(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	_, cw, _, alpha, err := intermediates(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Highpass designs a highpass biquad at freq (Hz) with quality factor q.
func Highpass(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	_, cw, _, alpha, err := intermediates(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Bandpass designs a constant-skirt-gain bandpass biquad.
func Bandpass(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	_, cw, sw, alpha, err := intermediates(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	b0 := sw / 2
	b1 := 0.0
	b2 := -sw / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Notch designs a band-reject biquad centered at freq (Hz).
func Notch(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	_, cw, _, alpha, err := intermediates(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	b0 := 1.0
	b1 := -2 * cw
	b2 := 1.0
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Allpass designs an allpass biquad centered at freq (Hz).
func Allpass(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	_, cw, _, alpha, err := intermediates(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	b0 := 1 - alpha
	b1 := -2 * cw
	b2 := 1 + alpha
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Peak designs a peaking-EQ biquad with gain in dB. At gainDB = 0 the
// result is an exact unity-gain passthrough.
func Peak(freq, gainDB, q, sampleRate float64) (biquad.Coefficients, error) {
	_, cw, _, alpha, err := intermediates(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}
	a, err := linearAmplitude(gainDB)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cw
	a2 := 1 - alpha/a

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// LowShelf designs a low-shelf biquad with gain in dB.
func LowShelf(freq, gainDB, q, sampleRate float64) (biquad.Coefficients, error) {
	_, cw, _, alpha, err := intermediates(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}
	a, err := linearAmplitude(gainDB)
	if err != nil {
		return biquad.Coefficients{}, err
	}
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) - (a-1)*cw + beta)
	b1 := 2 * a * ((a - 1) - (a+1)*cw)
	b2 := a * ((a + 1) - (a-1)*cw - beta)
	a0 := (a + 1) + (a-1)*cw + beta
	a1 := -2 * ((a - 1) + (a+1)*cw)
	a2 := (a + 1) + (a-1)*cw - beta

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// HighShelf designs a high-shelf biquad with gain in dB.
func HighShelf(freq, gainDB, q, sampleRate float64) (biquad.Coefficients, error) {
	_, cw, _, alpha, err := intermediates(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}
	a, err := linearAmplitude(gainDB)
	if err != nil {
		return biquad.Coefficients{}, err
	}
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) + (a-1)*cw + beta)
	b1 := -2 * a * ((a - 1) + (a+1)*cw)
	b2 := a * ((a + 1) + (a-1)*cw - beta)
	a0 := (a + 1) - (a-1)*cw + beta
	a1 := 2 * ((a - 1) - (a+1)*cw)
	a2 := (a + 1) - (a-1)*cw - beta

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// intermediates validates freq/q and returns the shared cookbook terms
// w0 = 2*pi*f/sr, cos(w0), sin(w0) and alpha = sin(w0)/(2Q).
func intermediates(freq, q, sampleRate float64) (w0, cw, sw, alpha float64, err error) {
	w0, err = normalizedW0(freq, sampleRate)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	if err = validateQ(q); err != nil {
		return 0, 0, 0, 0, err
	}

	cw = math.Cos(w0)
	sw = math.Sin(w0)
	alpha = sw / (2 * q)

	return w0, cw, sw, alpha, nil
}

func normalizedW0(freq, sampleRate float64) (float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, ErrInvalidFrequency
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, ErrInvalidFrequency
	}

	return 2 * math.Pi * freq / sampleRate, nil
}

func validateQ(q float64) error {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return ErrInvalidQ
	}
	return nil
}

// linearAmplitude converts gain in dB to the cookbook amplitude
// A = 10^(gainDB/40).
func linearAmplitude(gainDB float64) (float64, error) {
	if math.IsNaN(gainDB) || math.IsInf(gainDB, 0) {
		return 0, ErrInvalidGain
	}
	return math.Pow(10, gainDB/40), nil
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) (biquad.Coefficients, error) {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Coefficients{}, ErrInvalidFrequency
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}, nil
}
