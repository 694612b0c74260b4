package design

import "fmt"

// Curve identifies the frequency-response shape of a filter band.
type Curve int

// Supported filter curves. Gain applies to Peak, Lowshelf and Highshelf;
// the remaining curves ignore it.
const (
	CurveLowpass Curve = iota
	CurveHighpass
	CurveBandpass
	CurveNotch
	CurveAllpass
	CurvePeak
	CurveLowshelf
	CurveHighshelf
)

var curveNames = map[Curve]string{
	CurveLowpass:   "lowpass",
	CurveHighpass:  "highpass",
	CurveBandpass:  "bandpass",
	CurveNotch:     "notch",
	CurveAllpass:   "allpass",
	CurvePeak:      "peak",
	CurveLowshelf:  "lowshelf",
	CurveHighshelf: "highshelf",
}

// String returns the lowercase curve name.
func (c Curve) String() string {
	if name, ok := curveNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Curve(%d)", int(c))
}

// Valid reports whether c is one of the defined curves.
func (c Curve) Valid() bool {
	_, ok := curveNames[c]
	return ok
}

// HasGain reports whether the curve's response depends on the gain parameter.
func (c Curve) HasGain() bool {
	switch c {
	case CurvePeak, CurveLowshelf, CurveHighshelf:
		return true
	default:
		return false
	}
}

// ParseCurve returns the Curve named by s (as produced by String).
func ParseCurve(s string) (Curve, error) {
	for c, name := range curveNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("design: unknown curve %q", s)
}
