// Package biquad provides the second-order IIR filter runtime used by the
// equalizer.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. The equalizer in dsp/eq
// cascades up to 32 sections in series. Coefficient design (shelving, peak,
// notch, etc.) lives in dsp/filter/design.
package biquad
