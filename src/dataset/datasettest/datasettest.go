// Package datasettest writes voice directory fixtures for tests.
package datasettest

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
)

const SampleRate = 16000

// Phone is a labelled span measured in samples.
type Phone struct {
	Label   string
	Samples int
}

// Tone returns n samples of a sine at freq Hz.
func Tone(n int, freq float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/SampleRate)
	}
	return out
}

// WriteWav encodes mono 16-bit samples in [-1, 1].
func WriteWav(t testing.TB, path string, samples []float64) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	data := make([]int, len(samples))
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		data[i] = int(s * 32767)
	}

	enc := wav.NewEncoder(f, SampleRate, 16, 1, 1)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{SampleRate: SampleRate, NumChannels: 1},
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())
}

// TextGrid renders a long-format TextGrid with one interval tier.
func TextGrid(tier string, phones []Phone) string {
	total := 0
	for _, p := range phones {
		total += p.Samples
	}
	end := float64(total) / SampleRate

	var b strings.Builder
	fmt.Fprintf(&b, "File type = \"ooTextFile\"\nObject class = \"TextGrid\"\n\n")
	fmt.Fprintf(&b, "xmin = 0 \nxmax = %g \ntiers? <exists> \nsize = 1 \nitem []: \n", end)
	fmt.Fprintf(&b, "    item [1]:\n        class = \"IntervalTier\" \n        name = \"%s\" \n", tier)
	fmt.Fprintf(&b, "        xmin = 0 \n        xmax = %g \n        intervals: size = %d \n", end, len(phones))
	at := 0
	for i, p := range phones {
		fmt.Fprintf(&b, "        intervals [%d]:\n", i+1)
		fmt.Fprintf(&b, "            xmin = %g \n", float64(at)/SampleRate)
		at += p.Samples
		fmt.Fprintf(&b, "            xmax = %g \n", float64(at)/SampleRate)
		fmt.Fprintf(&b, "            text = \"%s\" \n", p.Label)
	}
	return b.String()
}

// WriteWord writes <dir>/<word>.wav and <dir>/<word>.TextGrid. Each phone gets
// its own tone so segments are distinguishable.
func WriteWord(t testing.TB, dir, word string, phones []Phone) {
	t.Helper()

	var samples []float64
	for i, p := range phones {
		samples = append(samples, Tone(p.Samples, 200+float64(i)*150)...)
	}
	WriteWav(t, filepath.Join(dir, word+".wav"), samples)
	require.NoError(t, os.WriteFile(filepath.Join(dir, word+".TextGrid"), []byte(TextGrid("phonetic", phones)), 0o644))
}
