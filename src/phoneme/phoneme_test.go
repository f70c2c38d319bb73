package phoneme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceIdentityAndSymmetry(t *testing.T) {
	h := Default()
	symbols := h.Symbols()
	require.Len(t, symbols, 39)

	for _, a := range symbols {
		assert.Zero(t, h.Distance(a, a), a)
		for _, b := range symbols {
			assert.Equal(t, h.Distance(a, b), h.Distance(b, a), "%s/%s", a, b)
			if a != b {
				assert.Greater(t, h.Distance(a, b), 0.0, "%s/%s", a, b)
			}
		}
	}
}

func TestDistanceFollowsTree(t *testing.T) {
	h := Default()

	// siblings under unvoiced_stops
	assert.Equal(t, 2.0, h.Distance("P", "T"))
	// unvoiced_stops -> stops -> voiced_stops
	assert.Equal(t, 4.0, h.Distance("P", "B"))
	// stops vs fricatives meet at consonants
	assert.Equal(t, 6.0, h.Distance("T", "S"))
	assert.Less(t, h.Distance("T", "D"), h.Distance("T", "S"))
	assert.Less(t, h.Distance("T", "S"), h.Distance("T", "IY"))

	assert.Equal(t, 2.0, h.Distance("S", "fricatives"))
}

func TestDistanceNormalizesStress(t *testing.T) {
	h := Default()

	assert.Zero(t, h.Distance("AH0", "ah1"))
	assert.Equal(t, h.Distance("IY", "IH"), h.Distance("iy1", "ih0"))
}

func TestUnknownSymbols(t *testing.T) {
	h := Default()

	assert.Zero(t, h.Distance("Q", "Q"))
	assert.Equal(t, h.UnknownPenalty(), h.Distance("Q", "T"))
	assert.Equal(t, h.UnknownPenalty(), h.Distance("T", "Q"))
	assert.Greater(t, h.UnknownPenalty(), h.Distance("T", "OY"))
}

func TestTypeOf(t *testing.T) {
	h := Default()

	typ, ok := h.TypeOf("s")
	require.True(t, ok)
	assert.Equal(t, "unvoiced_fricatives", typ.Name)
	assert.Equal(t, 3, typ.Depth)

	typ, ok = h.TypeOf("AY1")
	require.True(t, ok)
	assert.Equal(t, "diphthongs", typ.Name)

	_, ok = h.TypeOf("fricatives")
	assert.False(t, ok)
	_, ok = h.TypeOf("XX")
	assert.False(t, ok)
}

func TestIsCompatible(t *testing.T) {
	h := Default()

	tests := []struct {
		symbol  string
		desired string
		want    bool
	}{
		{"S", "S", true},
		{"S", "Z", false},
		{"S", "fricatives", true},
		{"Z", "fricatives", true},
		{"S", "voiced_fricatives", false},
		{"S", "consonants", true},
		{"S", "phoneme", true},
		{"IY", "consonants", false},
		{"XX", "consonants", false},
		{"S", "nothing", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, h.IsCompatible(tt.symbol, tt.desired), "%s in %s", tt.symbol, tt.desired)
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New(Node{
		Name: "root",
		Children: []Node{
			{Name: "a", Symbols: []string{"X"}},
			{Name: "b", Symbols: []string{"X"}},
		},
	})
	require.Error(t, err)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "AH", Normalize("ah0"))
	assert.Equal(t, "UW", Normalize(" UW1 "))
	assert.Equal(t, "T", Normalize("t"))
}
