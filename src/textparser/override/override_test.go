package override_test

import (
	"testing"

	"github.com/admiralbulldogtv/splicer/src/textparser/override"
	"github.com/admiralbulldogtv/splicer/src/textparser/parts"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeOverride(t *testing.T) {
	got := override.NormalizeOverride([]parts.Part{{Value: "say `hh ah0, l ow1` twice `t uw1`"}})
	assert.Equal(t, []parts.Part{
		{Value: "say", Type: parts.PartTypeRaw},
		{Value: "hh ah0 l ow1", Type: parts.PartTypeOverride},
		{Value: "twice", Type: parts.PartTypeRaw},
		{Value: "t uw1", Type: parts.PartTypeOverride},
	}, got)

	got = override.NormalizeOverride([]parts.Part{{Value: "no \\` quotes"}})
	assert.Equal(t, []parts.Part{{Value: "no \\` quotes", Type: parts.PartTypeRaw}}, got)
}
