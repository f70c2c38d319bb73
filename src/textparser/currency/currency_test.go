package currency_test

import (
	"testing"

	"github.com/admiralbulldogtv/splicer/src/textparser/currency"
	"github.com/admiralbulldogtv/splicer/src/textparser/parts"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCurrency(t *testing.T) {
	cases := map[string][]parts.Part{
		"$3.50": {{Value: "3 dollars and 50 cents", Type: parts.PartTypeCurrency}},
		"£1":    {{Value: "1 pound", Type: parts.PartTypeCurrency}},
		"5€":    {{Value: "5 euros", Type: parts.PartTypeCurrency}},
		"$0.01": {{Value: "1 cent", Type: parts.PartTypeCurrency}},
		"-$2":   {{Value: "minus 2 dollars", Type: parts.PartTypeCurrency}},
		"pay $1,200 now": {
			{Value: "pay", Type: parts.PartTypeRaw},
			{Value: "1200 dollars", Type: parts.PartTypeCurrency},
			{Value: "now", Type: parts.PartTypeRaw},
		},
		"no money here": {{Value: "no money here", Type: parts.PartTypeRaw}},
	}

	for in, want := range cases {
		assert.Equal(t, want, currency.NormalizeCurrency([]parts.Part{{Value: in}}), in)
	}
}
