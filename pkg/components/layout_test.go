package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyWidth(t *testing.T) {
	cases := []struct {
		width    int
		expected WidthClass
	}{
		{0, WidthClassBelowMin},
		{79, WidthClassBelowMin},
		{80, WidthClassCompact},
		{119, WidthClassCompact},
		{120, WidthClassStandard},
		{139, WidthClassStandard},
		{140, WidthClassFull},
		{200, WidthClassFull},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, ClassifyWidth(tc.width), "width %d", tc.width)
	}
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, 60, ClampWidth(60, 100, 2))
	assert.Equal(t, 98, ClampWidth(120, 100, 2))
	assert.Equal(t, 0, ClampWidth(40, 1, 2))
}
