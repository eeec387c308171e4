//nolint:goconst // test files commonly repeat strings for test data
package playlists

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/playring/internal/playlist"
)

func song(name string, popularity int) playlist.Track {
	return playlist.Track{Name: name, Artist: "Artist", Year: 2001, Popularity: popularity}
}

func names(p *playlist.Playlist) []string {
	result := []string{}
	for t := range p.All() {
		result = append(result, t.Name)
	}
	return result
}

type staticSource struct {
	tracks []playlist.Track
	err    error
}

func (s staticSource) ReadAll() ([]playlist.Track, error) {
	return s.tracks, s.err
}

type countingSource struct {
	tracks []playlist.Track
	reads  int
}

func (s *countingSource) ReadAll() ([]playlist.Track, error) {
	s.reads++
	return s.tracks, nil
}

// newTestLibrary returns a library with three playlists:
// 0: A90 B70 C50, 1: X30, 2: E80 F40.
func newTestLibrary() *Library {
	lib := New(zerolog.Nop())
	lib.AddAt(0, playlist.New(song("A", 90), song("B", 70), song("C", 50)))
	lib.AddAt(1, playlist.New(song("X", 30)))
	lib.AddAt(2, playlist.New(song("E", 80), song("F", 40)))
	return lib
}

func playlistNames(t *testing.T, lib *Library, index int) []string {
	t.Helper()
	p, ok := lib.Get(index)
	require.True(t, ok, "Get(%d)", index)
	require.NoError(t, p.Validate())
	return names(p)
}

func TestLibrary_AddAt(t *testing.T) {
	lib := New(zerolog.Nop())
	a := playlist.New(song("A", 1))
	b := playlist.New(song("B", 1))
	c := playlist.New(song("C", 1))

	assert.True(t, lib.AddAt(5, a)) // past the end appends
	assert.True(t, lib.AddAt(0, b))
	assert.True(t, lib.AddAt(1, c))

	assert.Equal(t, 3, lib.Size())
	assert.Equal(t, []*playlist.Playlist{b, c, a}, lib.Playlists())
}

func TestLibrary_AddAt_Invalid(t *testing.T) {
	lib := New(zerolog.Nop())

	assert.False(t, lib.AddAt(-1, playlist.New()))
	assert.False(t, lib.AddAt(0, nil))
	assert.Equal(t, 0, lib.Size())
}

func TestLibrary_RemoveAt(t *testing.T) {
	lib := newTestLibrary()

	assert.True(t, lib.RemoveAt(1))
	assert.Equal(t, 2, lib.Size())
	assert.Equal(t, []string{"E", "F"}, playlistNames(t, lib, 1))

	for _, index := range []int{-1, 2, 10} {
		assert.False(t, lib.RemoveAt(index), "RemoveAt(%d)", index)
	}
	assert.Equal(t, 2, lib.Size())
}

func TestLibrary_Get(t *testing.T) {
	lib := newTestLibrary()

	_, ok := lib.Get(3)
	assert.False(t, ok)
	_, ok = lib.Get(-1)
	assert.False(t, ok)
	assert.Equal(t, []string{"X"}, playlistNames(t, lib, 1))
}

func TestLibrary_PlaylistsReturnsCopy(t *testing.T) {
	lib := newTestLibrary()

	ps := lib.Playlists()
	ps[0] = nil

	p, _ := lib.Get(0)
	assert.NotNil(t, p)
}

func TestLibrary_InsertSong(t *testing.T) {
	lib := newTestLibrary()

	assert.True(t, lib.InsertSong(0, 2, song("D", 60)))
	assert.Equal(t, []string{"A", "D", "B", "C"}, playlistNames(t, lib, 0))

	assert.False(t, lib.InsertSong(3, 1, song("D", 60)), "invalid playlist index")
	assert.False(t, lib.InsertSong(1, 3, song("D", 60)), "invalid position")
	assert.Equal(t, []string{"X"}, playlistNames(t, lib, 1))
}

func TestLibrary_InsertSong_EmptyPlaylist(t *testing.T) {
	lib := New(zerolog.Nop())
	lib.AddAt(0, playlist.New())

	assert.True(t, lib.InsertSong(0, 1, song("A", 1)))
	assert.Equal(t, []string{"A"}, playlistNames(t, lib, 0))
}

func TestLibrary_RemoveSong(t *testing.T) {
	lib := newTestLibrary()

	assert.True(t, lib.RemoveSong(0, song("B", 70)))
	assert.Equal(t, []string{"A", "C"}, playlistNames(t, lib, 0))

	assert.False(t, lib.RemoveSong(0, song("B", 70)))
	assert.False(t, lib.RemoveSong(7, song("A", 90)))
}

func TestLibrary_ReversePlaylist(t *testing.T) {
	lib := newTestLibrary()

	assert.True(t, lib.ReversePlaylist(0))
	assert.Equal(t, []string{"C", "B", "A"}, playlistNames(t, lib, 0))
	assert.False(t, lib.ReversePlaylist(3))
}

func TestLibrary_MergePlaylists(t *testing.T) {
	lib := newTestLibrary()

	require.True(t, lib.MergePlaylists(2, 0))

	assert.Equal(t, 2, lib.Size())
	assert.Equal(t, []string{"A", "E", "B", "C", "F"}, playlistNames(t, lib, 0))
	assert.Equal(t, []string{"X"}, playlistNames(t, lib, 1))
	p, _ := lib.Get(0)
	assert.Equal(t, 5, p.Len())
	last, _ := p.Last()
	assert.Equal(t, "F", last.Name)
}

func TestLibrary_MergePlaylists_TieFavorsLowerIndex(t *testing.T) {
	for _, args := range [][2]int{{0, 1}, {1, 0}} {
		lib := New(zerolog.Nop())
		lib.AddAt(0, playlist.New(song("low1", 50), song("low2", 10)))
		lib.AddAt(1, playlist.New(song("high1", 50), song("high2", 10)))

		require.True(t, lib.MergePlaylists(args[0], args[1]))

		assert.Equal(t, []string{"low1", "high1", "low2", "high2"}, playlistNames(t, lib, 0))
		assert.Equal(t, 1, lib.Size())
	}
}

func TestLibrary_MergePlaylists_ShiftsHigherIndexes(t *testing.T) {
	lib := newTestLibrary()

	require.True(t, lib.MergePlaylists(0, 1))

	assert.Equal(t, []string{"A", "B", "C", "X"}, playlistNames(t, lib, 0))
	assert.Equal(t, []string{"E", "F"}, playlistNames(t, lib, 1))
}

func TestLibrary_MergePlaylists_Invalid(t *testing.T) {
	tests := []struct {
		name string
		a, b int
	}{
		{"same index", 1, 1},
		{"negative", -1, 0},
		{"out of range", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := newTestLibrary()

			assert.False(t, lib.MergePlaylists(tt.a, tt.b))
			assert.Equal(t, 3, lib.Size())
			assert.Equal(t, []string{"A", "B", "C"}, playlistNames(t, lib, 0))
		})
	}
}

func TestLibrary_ShufflePlaylist(t *testing.T) {
	first := newTestLibrary()
	second := newTestLibrary()

	require.True(t, first.ShufflePlaylist(0, playlist.NewRand(2023)))
	require.True(t, second.ShufflePlaylist(0, playlist.NewRand(2023)))

	got := playlistNames(t, first, 0)
	assert.Equal(t, got, playlistNames(t, second, 0))
	assert.ElementsMatch(t, []string{"A", "B", "C"}, got)

	assert.False(t, first.ShufflePlaylist(5, playlist.NewRand(1)))
	assert.False(t, first.ShufflePlaylist(0, nil))
}

func TestLibrary_SortPlaylist(t *testing.T) {
	lib := New(zerolog.Nop())
	lib.AddAt(0, playlist.New(song("C", 5), song("A", 50), song("B", 20)))

	assert.True(t, lib.SortPlaylist(0))
	assert.Equal(t, []string{"A", "B", "C"}, playlistNames(t, lib, 0))
	assert.False(t, lib.SortPlaylist(1))
}

func TestLibrary_AddFromSource(t *testing.T) {
	lib := newTestLibrary()

	err := lib.AddFromSource(1, staticSource{tracks: []playlist.Track{song("N", 1)}})
	require.NoError(t, err)

	assert.Equal(t, 4, lib.Size())
	assert.Equal(t, []string{"N"}, playlistNames(t, lib, 1))
	assert.Equal(t, []string{"X"}, playlistNames(t, lib, 2))
}

func TestLibrary_AddFromSource_Error(t *testing.T) {
	lib := newTestLibrary()
	readErr := errors.New("boom")

	err := lib.AddFromSource(0, staticSource{err: readErr})

	assert.ErrorIs(t, err, readErr)
	assert.Equal(t, 3, lib.Size())
}

func TestLibrary_AddFromSource_NegativeIndex(t *testing.T) {
	var buf bytes.Buffer
	lib := New(zerolog.New(&buf).Level(zerolog.DebugLevel))
	src := &countingSource{tracks: []playlist.Track{song("A", 1)}}

	err := lib.AddFromSource(-1, src)

	require.ErrorIs(t, err, ErrInvalidIndex)
	assert.Contains(t, err.Error(), "-1")
	assert.Equal(t, 0, lib.Size())
	assert.Zero(t, src.reads, "source should not be read")
	assert.NotContains(t, buf.String(), "playlist added")
}

func TestLibrary_AddAllFromSources(t *testing.T) {
	lib := newTestLibrary()

	err := lib.AddAllFromSources(
		staticSource{tracks: []playlist.Track{song("P", 2), song("Q", 1)}},
		staticSource{},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, lib.Size())
	assert.Equal(t, []string{"P", "Q"}, playlistNames(t, lib, 0))
	assert.Empty(t, playlistNames(t, lib, 1))
}

func TestLibrary_AddAllFromSources_ErrorKeepsLibrary(t *testing.T) {
	lib := newTestLibrary()

	err := lib.AddAllFromSources(staticSource{}, staticSource{err: errors.New("bad file")})

	require.Error(t, err)
	assert.Equal(t, 3, lib.Size())
}

func TestLibrary_LogsMerge(t *testing.T) {
	var buf bytes.Buffer
	lib := New(zerolog.New(&buf).Level(zerolog.DebugLevel))
	lib.AddAt(0, playlist.New(song("A", 2)))
	lib.AddAt(1, playlist.New(song("B", 1)))

	lib.MergePlaylists(0, 1)

	assert.Contains(t, buf.String(), `"message":"playlists merged"`)
	assert.Contains(t, buf.String(), `"tracks":2`)
}
