package pinnacle_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle"
)

func TestEstimateSegments(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		text string

		want pinnacle.SegmentEstimate
	}{
		"Empty text": {want: pinnacle.SegmentEstimate{Encoding: pinnacle.EncodingGSM7}},
		"Short GSM-7 text": {
			text: "Hello @ 5€",
			want: pinnacle.SegmentEstimate{Encoding: pinnacle.EncodingGSM7, Units: 11, Segments: 1},
		},
		"Full single GSM-7 segment": {
			text: strings.Repeat("a", 160),
			want: pinnacle.SegmentEstimate{Encoding: pinnacle.EncodingGSM7, Units: 160, Segments: 1},
		},
		"Concatenated GSM-7 text": {
			text: strings.Repeat("a", 161),
			want: pinnacle.SegmentEstimate{Encoding: pinnacle.EncodingGSM7, Units: 161, Segments: 2},
		},
		"Extension characters take two septets": {
			text: strings.Repeat("{", 81),
			want: pinnacle.SegmentEstimate{Encoding: pinnacle.EncodingGSM7, Units: 162, Segments: 2},
		},
		"Unsupported character switches to UTF-16": {
			text: "Cafça ok ✓ ✓",
			want: pinnacle.SegmentEstimate{Encoding: pinnacle.EncodingUTF16, Units: 12, Segments: 1, Unsupported: []rune{'ç', '✓'}},
		},
		"Characters outside the BMP take two code units": {
			text: "hi 👋",
			want: pinnacle.SegmentEstimate{Encoding: pinnacle.EncodingUTF16, Units: 5, Segments: 1, Unsupported: []rune{'👋'}},
		},
		"Concatenated UTF-16 text": {
			text: strings.Repeat("é", 70) + "ж",
			want: pinnacle.SegmentEstimate{Encoding: pinnacle.EncodingUTF16, Units: 71, Segments: 2, Unsupported: []rune{'ж'}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, pinnacle.EstimateSegments(tc.text))
		})
	}
}
