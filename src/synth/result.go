package synth

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/admiralbulldogtv/splicer/src/matcher"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/orcaman/writerseeker"
)

// wav format tag for integer pcm
const pcmFormat = 1

type Result struct {
	Voice      string
	SampleRate int
	BitDepth   int
	Samples    []float64
	Plan       matcher.Plan
	Overlaps   []int
}

func (r *Result) Duration() float64 {
	if r.SampleRate == 0 {
		return 0
	}
	return float64(len(r.Samples)) / float64(r.SampleRate)
}

func (r *Result) bitDepth() int {
	if r.BitDepth <= 0 || r.BitDepth > 32 {
		return 16
	}
	return r.BitDepth
}

// PCM converts the samples to clipped integers at the voice's bit depth.
func (r *Result) PCM() *audio.IntBuffer {
	bd := r.bitDepth()
	peak := float64(int64(1)<<uint(bd-1)) - 1
	offset := 0
	if bd == 8 {
		offset = 128
	}

	data := make([]int, len(r.Samples))
	for i, s := range r.Samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		data[i] = int(s*peak) + offset
	}

	return &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{SampleRate: r.SampleRate, NumChannels: 1},
		SourceBitDepth: bd,
	}
}

// Encode writes a mono wav file.
func (r *Result) Encode(w io.WriteSeeker) error {
	encoder := wav.NewEncoder(w, r.SampleRate, r.bitDepth(), 1, pcmFormat)
	if err := encoder.Write(r.PCM()); err != nil {
		return err
	}
	return encoder.Close()
}

func (r *Result) Bytes() ([]byte, error) {
	buf := &writerseeker.WriterSeeker{}
	if err := r.Encode(buf); err != nil {
		return nil, err
	}
	if err := buf.Close(); err != nil {
		return nil, err
	}
	return ioutil.ReadAll(buf.Reader())
}

// WriteFile encodes next to path and renames into place, so a failed write
// never leaves a partial file behind.
func (r *Result) WriteFile(path string) error {
	tmp, err := ioutil.TempFile(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := r.Encode(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode wav: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
