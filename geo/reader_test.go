// SPDX-License-Identifier: MIT

package geo_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/routematrix/geo"
	"github.com/stretchr/testify/require"
)

func TestReadTable_OutOfOrderIndices(t *testing.T) {
	t.Parallel()

	in := "id;lat;lon\n2;45.1;-73.2\n0;45.5;-73.6\n\n1;45.5;-73.6\n"
	tab, err := geo.ReadTable(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, tab.Size())
	require.Equal(t, geo.Coordinate{Lat: 45.5, Lon: -73.6}, tab.At(0))
	require.Equal(t, geo.Coordinate{Lat: 45.1, Lon: -73.2}, tab.At(2))
	require.Equal(t, 0, tab.Canonical(1))
}

func TestReadTable_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want error
	}{
		{"header only", "id;lat;lon\n", geo.ErrEmpty},
		{"nothing", "", geo.ErrEmpty},
		{"too few fields", "h\n0;1\n", geo.ErrMalformedLine},
		{"bad index", "h\nx;1;2\n", geo.ErrMalformedLine},
		{"comma decimal", "h\n0;1,5;2\n", geo.ErrMalformedLine},
		{"bad lon", "h\n0;1;east\n", geo.ErrMalformedLine},
		{"index out of range", "h\n0;1;2\n2;1;2\n", geo.ErrIndexOutOfRange},
		{"negative index", "h\n-1;1;2\n", geo.ErrIndexOutOfRange},
		{"duplicate index", "h\n0;1;2\n0;3;4\n", geo.ErrDuplicateIndex},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := geo.ReadTable(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadTable_ErrorMentionsLine(t *testing.T) {
	t.Parallel()

	_, err := geo.ReadTable(strings.NewReader("h\n0;1;2\n1;oops;2\n"))
	require.ErrorContains(t, err, "line 3")
}

func TestLoadTable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "coords.csv")
	require.NoError(t, os.WriteFile(path, []byte("id;lat;lon\r\n0;10.25;20.5\r\n1;11;21\r\n"), 0o600))

	tab, err := geo.LoadTable(path)
	require.NoError(t, err)
	require.Equal(t, 2, tab.Size())
	require.Equal(t, 10.25, tab.At(0).Lat)

	_, err = geo.LoadTable(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
}
