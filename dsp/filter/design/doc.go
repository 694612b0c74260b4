// Package design computes biquad coefficients for the equalizer's filter
// curves using the Robert Bristow-Johnson audio EQ cookbook formulas.
//
// All designers are pure functions: they validate their parameters, derive
// the five normalized coefficients (a0 = 1) and return them without touching
// any state. Invalid parameters (frequency outside (0, Nyquist), Q <= 0,
// non-finite values) are rejected with sentinel errors so callers can apply
// configuration all-or-nothing.
package design
