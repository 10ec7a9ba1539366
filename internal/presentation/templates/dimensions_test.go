package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaledDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		width      int
		height     int
		max        int
		wantWidth  int
		wantHeight int
	}{
		{
			name:  "within bound unchanged",
			width: 100, height: 50, max: 400,
			wantWidth: 100, wantHeight: 50,
		},
		{
			name:  "exactly at bound unchanged",
			width: 400, height: 400, max: 400,
			wantWidth: 400, wantHeight: 400,
		},
		{
			name:  "landscape scales width to max",
			width: 800, height: 400, max: 600,
			wantWidth: 600, wantHeight: 300,
		},
		{
			name:  "portrait scales height to max",
			width: 400, height: 800, max: 400,
			wantWidth: 200, wantHeight: 400,
		},
		{
			name:  "square over bound",
			width: 1000, height: 1000, max: 400,
			wantWidth: 400, wantHeight: 400,
		},
		{
			name:  "shorter side rounds to nearest",
			width: 799, height: 800, max: 600,
			wantWidth: 599, wantHeight: 600,
		},
		{
			name:  "zero max uses default cap",
			width: 800, height: 400, max: 0,
			wantWidth: 400, wantHeight: 200,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gotW, gotH := ScaledDimensions(tt.width, tt.height, tt.max)
			assert.Equal(t, tt.wantWidth, gotW)
			assert.Equal(t, tt.wantHeight, gotH)
		})
	}
}

func TestScaledDimensionsPreservesAspectRatio(t *testing.T) {
	t.Parallel()

	cases := []struct{ w, h, max int }{
		{1920, 1080, 600},
		{1080, 1920, 600},
		{3000, 450, 400},
		{450, 3000, 400},
		{640, 480, 300},
	}
	for _, c := range cases {
		gotW, gotH := ScaledDimensions(c.w, c.h, c.max)

		longer := gotW
		if gotH > longer {
			longer = gotH
		}
		assert.Equal(t, c.max, longer, "longer side must equal the cap for %dx%d", c.w, c.h)

		wantRatio := float64(c.w) / float64(c.h)
		gotRatio := float64(gotW) / float64(gotH)
		assert.InDelta(t, wantRatio, gotRatio, wantRatio*0.01, "aspect ratio drifted for %dx%d", c.w, c.h)
	}
}
