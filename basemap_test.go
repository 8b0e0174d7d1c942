package basemap_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/paulmach/orb"

	"github.com/twpayne/go-basemap"
)

func TestParseRegion(t *testing.T) {
	for _, tc := range []struct {
		region      string
		expected    basemap.BoundingBox
		expectedErr error
	}{
		{
			region:   "-70.3/-69.8/68.1/68.6",
			expected: basemap.BoundingBox{West: -70.3, East: -69.8, South: 68.1, North: 68.6},
		},
		{
			region:   " -1 / 1 / 60 / 60.25 ",
			expected: basemap.BoundingBox{West: -1, East: 1, South: 60, North: 60.25},
		},
		{
			region:      "-70.3/-69.8/68.1",
			expectedErr: basemap.ErrInvalidRegion,
		},
		{
			region:      "-70.3/-69.8/68.1/north",
			expectedErr: basemap.ErrInvalidRegion,
		},
		{
			region:      "-69.8/-70.3/68.1/68.6",
			expectedErr: basemap.ErrInvalidBoundingBox,
		},
	} {
		t.Run(tc.region, func(t *testing.T) {
			actual, err := basemap.ParseRegion(tc.region)
			if tc.expectedErr != nil {
				assert.IsError(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestBoundingBox(t *testing.T) {
	box := basemap.BoundingBox{West: -70.5, East: -69.5, South: 68, North: 68.75}
	assert.NoError(t, box.Validate())
	assert.Equal(t, 1.0, box.Width())
	assert.Equal(t, 0.75, box.Height())
	assert.Equal(t, "-70.5/-69.5/68/68.75", box.Region())
	assert.Equal(t, box.Region(), box.String())
	assert.Equal(t, orb.Bound{Min: orb.Point{-70.5, 68}, Max: orb.Point{-69.5, 68.75}}, box.Bound())
	assert.True(t, box.Contains(box))
	assert.True(t, box.Contains(basemap.BoundingBox{West: -70.3, East: -69.8, South: 68.1, North: 68.6}))
	assert.False(t, box.Contains(basemap.BoundingBox{West: -70.6, East: -69.8, South: 68.1, North: 68.6}))
}
