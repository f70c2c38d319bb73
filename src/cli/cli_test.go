package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/admiralbulldogtv/splicer/src/cli"
	"github.com/admiralbulldogtv/splicer/src/concat"
	"github.com/admiralbulldogtv/splicer/src/dataset"
	"github.com/admiralbulldogtv/splicer/src/dataset/datasettest"
	"github.com/admiralbulldogtv/splicer/src/matcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataDir(t *testing.T) string {
	t.Helper()

	data := t.TempDir()
	dir := filepath.Join(data, "bulldog")
	require.NoError(t, os.Mkdir(dir, 0o755))
	datasettest.WriteWord(t, dir, "sit", []datasettest.Phone{
		{Label: "S", Samples: 800},
		{Label: "IH1", Samples: 800},
		{Label: "T", Samples: 800},
	})
	return data
}

func run(args ...string) (string, error) {
	out := &bytes.Buffer{}
	root := cli.Root()
	root.SetOut(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSynth(t *testing.T) {
	data := dataDir(t)
	outfile := filepath.Join(t.TempDir(), "out.wav")

	_, err := run("synth", "--data-dir", data, "--voice", "bulldog", "--sentence", "sit", "-w", "0.5", "-o", outfile)
	require.NoError(t, err)

	a, err := dataset.ReadWavFile(outfile)
	require.NoError(t, err)
	assert.Len(t, a.Samples, 2400-800)

	hard := filepath.Join(t.TempDir(), "hard.wav")
	_, err = run("synth", "--data-dir", data, "--voice", "bulldog", "--phonemes", "T IH1 S", "--no-crossfade", "--no-dual-similarity", "-o", hard)
	require.NoError(t, err)

	a, err = dataset.ReadWavFile(hard)
	require.NoError(t, err)
	assert.Len(t, a.Samples, 2400)
}

func TestSynthErrors(t *testing.T) {
	data := dataDir(t)
	outfile := filepath.Join(t.TempDir(), "out.wav")

	_, err := run("synth", "--data-dir", data, "--voice", "bulldog", "--sentence", "sit", "-w", "1.5", "-o", outfile)
	var ip *concat.InvalidParameterError
	assert.True(t, errors.As(err, &ip))

	_, err = run("synth", "--data-dir", data, "--voice", "bulldog", "--phonemes", "S ZH", "-o", outfile)
	var nc *matcher.NoCandidateError
	assert.True(t, errors.As(err, &nc))

	_, err = os.Stat(outfile)
	assert.True(t, os.IsNotExist(err))
}

func TestVoices(t *testing.T) {
	data := dataDir(t)

	out, err := run("voices", "--data-dir", data)
	require.NoError(t, err)
	assert.Equal(t, "bulldog\n", out)

	out, err = run("voices", "--data-dir", data, "--load")
	require.NoError(t, err)
	assert.Contains(t, out, "words=1 phonemes=3")
	assert.Contains(t, out, "S IH T")
}
