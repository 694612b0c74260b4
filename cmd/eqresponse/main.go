// Command eqresponse prints the frequency response of a parametric EQ chain.
//
// Usage:
//
//	eqresponse [flags] [band-spec ...]
//
// A band spec has the form curve:freq:q[:gain] with freq in Hz and gain in
// dB. Bands are assigned to slots in argument order. Without arguments it
// prints the flat response of an empty equalizer.
//
// Examples:
//
//	eqresponse peak:1000:1:6
//	eqresponse -rate 44100 lowshelf:100:1:4 peak:3000:2:-6 highshelf:8000:1:3
//	eqresponse -points 16 -min 50 -max 16000 notch:60:10
//	eqresponse -fft 4096 peak:1000:1:6
//	eqresponse -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

func main() {
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	points := flag.Int("points", 32, "number of response points (log-spaced)")
	minFreq := flag.Float64("min", 20, "lowest response frequency in Hz")
	maxFreq := flag.Float64("max", 20000, "highest response frequency in Hz")
	fftSize := flag.Int("fft", 0, "also measure the response via FFT of the impulse response (power-of-two size)")
	list := flag.Bool("list", false, "list available curve names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqresponse [flags] [band-spec ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the magnitude and phase response of a parametric EQ chain.\n")
		fmt.Fprintf(os.Stderr, "A band spec is curve:freq:q[:gain], e.g. peak:1000:1:6.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  eqresponse peak:1000:1:6\n")
		fmt.Fprintf(os.Stderr, "  eqresponse -rate 44100 lowshelf:100:1:4 highshelf:8000:1:3\n")
		fmt.Fprintf(os.Stderr, "  eqresponse -fft 4096 notch:60:10\n")
		fmt.Fprintf(os.Stderr, "  eqresponse -list\n")
	}
	flag.Parse()

	if *list {
		printCurves()
		return
	}

	specs := flag.Args()
	if len(specs) > eq.NumBands {
		fmt.Fprintf(os.Stderr, "error: %d band specs exceed the %d available slots\n", len(specs), eq.NumBands)
		os.Exit(1)
	}

	e, err := eq.New(*rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for i, spec := range specs {
		p, err := parseBandSpec(spec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: band %d: %v\n", i, err)
			os.Exit(1)
		}
		if err := e.Set(i, p.Curve, p.Frequency, p.Q, p.GainDB); err != nil {
			fmt.Fprintf(os.Stderr, "error: band %d (%s): %v\n", i, spec, err)
			os.Exit(1)
		}
	}

	printBands(e, len(specs))
	printResponse(e, *points, *minFreq, *maxFreq)

	if *fftSize > 0 {
		if err := printSpectrum(e, *fftSize); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printCurves() {
	for c := design.CurveLowpass; c <= design.CurveHighshelf; c++ {
		if c.HasGain() {
			fmt.Printf("%s (gain-bearing)\n", c)
		} else {
			fmt.Println(c)
		}
	}
}

// parseBandSpec parses curve:freq:q[:gain]. The gain part is optional and
// defaults to 0 dB, matching curves without gain.
func parseBandSpec(spec string) (eq.Parameters, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return eq.Parameters{}, fmt.Errorf("%q: want curve:freq:q[:gain]", spec)
	}

	curve, err := design.ParseCurve(strings.ToLower(strings.TrimSpace(parts[0])))
	if err != nil {
		return eq.Parameters{}, err
	}

	freq, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return eq.Parameters{}, fmt.Errorf("invalid frequency %q", parts[1])
	}

	q, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return eq.Parameters{}, fmt.Errorf("invalid Q %q", parts[2])
	}

	gain := 0.0
	if len(parts) == 4 {
		gain, err = strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return eq.Parameters{}, fmt.Errorf("invalid gain %q", parts[3])
		}
	}

	return eq.Parameters{Curve: curve, Frequency: freq, Q: q, GainDB: gain}, nil
}

func printBands(e *eq.Equalizer, n int) {
	if n == 0 {
		fmt.Println("No bands configured; response is flat.")
		fmt.Println()
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Band\tCurve\tFreq [Hz]\tQ\tGain [dB]\n")
	fmt.Fprintf(tw, "----\t-----\t---------\t-\t---------\n")
	for i := 0; i < n; i++ {
		p, err := e.Parameters(i)
		if err != nil {
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%.3f\t%+.1f\n", i, p.Curve, p.Frequency, p.Q, p.GainDB)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Println()
}

func printResponse(e *eq.Equalizer, points int, minFreq, maxFreq float64) {
	if points < 2 {
		points = 2
	}
	nyquist := e.SampleRate() / 2
	if maxFreq >= nyquist {
		maxFreq = nyquist * 0.999
	}
	if minFreq <= 0 {
		minFreq = 1
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\tMagnitude [dB]\tPhase [deg]\n")
	fmt.Fprintf(tw, "---------\t--------------\t-----------\n")

	ratio := math.Pow(maxFreq/minFreq, 1/float64(points-1))
	freq := minFreq
	for i := 0; i < points; i++ {
		h := e.Response(freq)
		phase := math.Atan2(imag(h), real(h)) * 180 / math.Pi
		fmt.Fprintf(tw, "%.1f\t%+.2f\t%+.1f\n", freq, e.MagnitudeDB(freq), phase)
		freq *= ratio
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSpectrum(e *eq.Equalizer, fftSize int) error {
	spec, err := e.SpectrumDB(fftSize)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("FFT-measured response (%d bins):\n", len(spec))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\tMeasured [dB]\n")
	fmt.Fprintf(tw, "---------\t-------------\n")

	binHz := e.SampleRate() / float64(fftSize)
	// Print a log-ish subset: every bin would flood the terminal.
	step := len(spec) / 32
	if step < 1 {
		step = 1
	}
	for k := 0; k < len(spec); k += step {
		fmt.Fprintf(tw, "%.1f\t%+.2f\n", float64(k)*binHz, spec[k])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
