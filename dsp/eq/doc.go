// Package eq implements a 32-band parametric equalizer.
//
// An [Equalizer] owns a fixed sample rate and 32 filter slots applied in
// series, in slot order. Each slot holds one biquad section designed from
// its last accepted parameters plus a bypass flag. All slots start bypassed,
// so a fresh instance passes audio through unchanged.
//
// Configuration is all-or-nothing: if a Set call fails validation the
// previous design, coefficients, bypass flag and delay-line state of the
// targeted band are left untouched. Reconfiguring a live band preserves its
// delay-line state so parameter sweeps do not produce clicks.
//
// The Equalizer is not safe for concurrent use. Hosts that configure from a
// control thread while processing on an audio thread must either serialize
// the calls externally or publish a fully configured instance through a
// single-writer handoff (for example an atomic pointer swap).
package eq
