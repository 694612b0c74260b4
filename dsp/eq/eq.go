package eq

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// NumBands is the fixed number of filter slots in an Equalizer.
const NumBands = 32

// Errors returned by the configuration surface. Invalid filter parameters
// surface as the design package's sentinel errors.
var (
	ErrBandIndex         = errors.New("eq: band index out of range")
	ErrInvalidSampleRate = errors.New("eq: sample rate must be positive and finite")
)

// defaultQ is the Butterworth quality factor used for unconfigured bands.
const defaultQ = 1 / math.Sqrt2

// Parameters describes the design of a single band.
type Parameters struct {
	Curve     design.Curve
	Frequency float64 // center/corner frequency in Hz
	Q         float64
	GainDB    float64
}

// band is one filter slot: its design, its biquad section and a bypass flag.
type band struct {
	params  Parameters
	section biquad.Section
	bypass  bool
}

// Equalizer is a cascade of up to NumBands biquad filters processed in slot
// order. The zero value is not usable; construct with [New].
type Equalizer struct {
	bands      [NumBands]band
	sampleRate float64
}

// New constructs an Equalizer for the given sample rate. The rate is fixed
// for the instance's lifetime. All bands start bypassed with a neutral
// peak design (sampleRate/24 Hz, Butterworth Q, 0 dB).
func New(sampleRate float64) (*Equalizer, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, ErrInvalidSampleRate
	}

	e := &Equalizer{sampleRate: sampleRate}

	defaults := Parameters{
		Curve:     design.CurvePeak,
		Frequency: sampleRate / 24,
		Q:         defaultQ,
	}
	coeffs, err := design.Design(defaults.Curve, defaults.Frequency, defaults.Q, defaults.GainDB, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("eq: default band design: %w", err)
	}

	for i := range e.bands {
		e.bands[i] = band{
			params:  defaults,
			section: biquad.Section{Coefficients: coeffs},
			bypass:  true,
		}
	}

	return e, nil
}

// SampleRate returns the sample rate the Equalizer was constructed with.
func (e *Equalizer) SampleRate() float64 { return e.sampleRate }

// Set configures the band at idx and clears its bypass flag. The band's
// delay-line state is preserved so retuning a live band stays continuous.
// On error nothing is modified.
func (e *Equalizer) Set(idx int, curve design.Curve, freqHz, q, gainDB float64) error {
	if idx < 0 || idx >= NumBands {
		return ErrBandIndex
	}

	p := Parameters{Curve: curve, Frequency: freqHz, Q: q, GainDB: gainDB}
	if err := e.apply(idx, p); err != nil {
		return err
	}

	e.bands[idx].bypass = false
	return nil
}

// SetGain re-designs the band at idx with a new gain, keeping the other
// parameters and the bypass flag unchanged.
func (e *Equalizer) SetGain(idx int, gainDB float64) error {
	if idx < 0 || idx >= NumBands {
		return ErrBandIndex
	}

	p := e.bands[idx].params
	p.GainDB = gainDB
	return e.apply(idx, p)
}

// SetFrequency re-designs the band at idx with a new center/corner
// frequency, keeping the other parameters and the bypass flag unchanged.
func (e *Equalizer) SetFrequency(idx int, freqHz float64) error {
	if idx < 0 || idx >= NumBands {
		return ErrBandIndex
	}

	p := e.bands[idx].params
	p.Frequency = freqHz
	return e.apply(idx, p)
}

// SetResonance re-designs the band at idx with a new quality factor,
// keeping the other parameters and the bypass flag unchanged.
func (e *Equalizer) SetResonance(idx int, q float64) error {
	if idx < 0 || idx >= NumBands {
		return ErrBandIndex
	}

	p := e.bands[idx].params
	p.Q = q
	return e.apply(idx, p)
}

// SetCurve re-designs the band at idx with a new curve, keeping the other
// parameters and the bypass flag unchanged.
func (e *Equalizer) SetCurve(idx int, curve design.Curve) error {
	if idx < 0 || idx >= NumBands {
		return ErrBandIndex
	}

	p := e.bands[idx].params
	p.Curve = curve
	return e.apply(idx, p)
}

// apply designs p and, only on success, stores the new parameters and
// coefficients. Delay-line state is never touched here.
func (e *Equalizer) apply(idx int, p Parameters) error {
	coeffs, err := design.Design(p.Curve, p.Frequency, p.Q, p.GainDB, e.sampleRate)
	if err != nil {
		return err
	}

	e.bands[idx].params = p
	e.bands[idx].section.Coefficients = coeffs
	return nil
}

// SetBypass toggles the band at idx without altering its design or state.
func (e *Equalizer) SetBypass(idx int, bypass bool) error {
	if idx < 0 || idx >= NumBands {
		return ErrBandIndex
	}

	e.bands[idx].bypass = bypass
	return nil
}

// BypassAll sets the bypass flag of every band.
func (e *Equalizer) BypassAll(bypass bool) {
	for i := range e.bands {
		e.bands[i].bypass = bypass
	}
}

// IsBypassed reports the bypass state of the band at idx.
func (e *Equalizer) IsBypassed(idx int) (bool, error) {
	if idx < 0 || idx >= NumBands {
		return false, ErrBandIndex
	}

	return e.bands[idx].bypass, nil
}

// Parameters returns the last accepted design of the band at idx.
func (e *Equalizer) Parameters(idx int) (Parameters, error) {
	if idx < 0 || idx >= NumBands {
		return Parameters{}, ErrBandIndex
	}

	return e.bands[idx].params, nil
}

// Reset zeroes the delay lines of all bands. Designs and bypass flags are
// unchanged.
func (e *Equalizer) Reset() {
	for i := range e.bands {
		e.bands[i].section.Reset()
	}
}

// Process filters one sample through all non-bypassed bands in slot order.
// It never fails and performs no allocation; bypassed bands contribute an
// exact identity and their state is not advanced.
func (e *Equalizer) Process(x float64) float64 {
	for i := range e.bands {
		if e.bands[i].bypass {
			continue
		}
		x = e.bands[i].section.ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block of samples in-place. Each active band runs
// its block kernel over the whole buffer before the next band, which is
// numerically identical to per-sample cascading.
func (e *Equalizer) ProcessBlock(buf []float64) {
	for i := range e.bands {
		if e.bands[i].bypass {
			continue
		}
		e.bands[i].section.ProcessBlock(buf)
	}
}
