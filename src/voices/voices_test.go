package voices_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/admiralbulldogtv/splicer/src/dataset/datasettest"
	"github.com/admiralbulldogtv/splicer/src/datastructures"
	"github.com/admiralbulldogtv/splicer/src/synth"
	"github.com/admiralbulldogtv/splicer/src/voices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVoice(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	datasettest.WriteWord(t, dir, "sit", []datasettest.Phone{
		{Label: "S", Samples: 400},
		{Label: "IH1", Samples: 400},
		{Label: "T", Samples: 400},
	})
}

func TestRegistry(t *testing.T) {
	data := t.TempDir()
	writeVoice(t, filepath.Join(data, "Bulldog"))
	writeVoice(t, filepath.Join(data, "retired"))
	elsewhere := filepath.Join(t.TempDir(), "guest")
	writeVoice(t, elsewhere)

	r, err := voices.New(voices.Options{DataDir: data, SpectralWeight: 1}, []datastructures.VoiceConfig{
		{Name: "bulldog", DisplayName: "Admiral Bulldog"},
		{Name: "retired", Disabled: true},
		{Name: "guest", Directory: elsewhere},
		{Name: "ghost"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"bulldog", "guest"}, r.Names())

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Admiral Bulldog", list[0].DisplayName)
	assert.False(t, list[0].Loaded)

	s, err := r.Get("BULLDOG")
	require.NoError(t, err)
	assert.Equal(t, "Bulldog", s.Voice().Name())

	list = r.List()
	assert.True(t, list[0].Loaded)
	assert.Equal(t, 1, list[0].Words)
	assert.Equal(t, 3, list[0].Instances)
	assert.Equal(t, []string{"S", "IH", "T"}, list[0].Symbols)

	g, err := r.Get("guest")
	require.NoError(t, err)
	assert.Equal(t, "guest", g.Voice().Name())

	_, err = r.Get("retired")
	assert.ErrorIs(t, err, voices.ErrUnknownVoice)
	_, err = r.Get("ghost")
	assert.ErrorIs(t, err, voices.ErrUnknownVoice)
}

func TestRegistryConcurrentGetAndReload(t *testing.T) {
	data := t.TempDir()
	writeVoice(t, filepath.Join(data, "bulldog"))

	r, err := voices.New(voices.Options{DataDir: data}, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	got := make([]*synth.Synthesizer, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := r.Get("bulldog")
			assert.NoError(t, err)
			got[i] = s
		}(i)
	}
	wg.Wait()

	for _, s := range got[1:] {
		assert.Same(t, got[0], s)
	}

	r.Reload("")
	s, err := r.Get("bulldog")
	require.NoError(t, err)
	assert.NotSame(t, got[0], s)
}

func TestRegistryLoadFailure(t *testing.T) {
	data := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(data, "empty"), 0o755))

	r, err := voices.New(voices.Options{DataDir: data}, nil)
	require.NoError(t, err)

	_, err = r.Get("empty")
	assert.Error(t, err)

	_, err = voices.New(voices.Options{DataDir: filepath.Join(data, "missing")}, nil)
	assert.Error(t, err)
}
