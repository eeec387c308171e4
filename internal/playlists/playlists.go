// Package playlists manages an ordered, index-addressable collection of playlists.
package playlists

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/llehouerou/playring/internal/playlist"
)

// ErrInvalidIndex is returned when a playlist cannot be placed at the requested index.
var ErrInvalidIndex = errors.New("invalid playlist index")

// Source yields the tracks of one playlist, already in decreasing popularity order.
type Source interface {
	ReadAll() ([]playlist.Track, error)
}

// Library holds playlists addressed by 0-based index.
// It is not safe for concurrent use.
type Library struct {
	playlists []*playlist.Playlist
	log       zerolog.Logger
}

// New creates an empty library.
func New(log zerolog.Logger) *Library {
	return &Library{log: log}
}

// Size returns the number of playlists.
func (l *Library) Size() int {
	return len(l.playlists)
}

// Get returns the playlist at index.
func (l *Library) Get(index int) (*playlist.Playlist, bool) {
	if !l.valid(index) {
		return nil, false
	}
	return l.playlists[index], true
}

// Playlists returns a copy of the playlist slice. The playlists themselves are shared.
func (l *Library) Playlists() []*playlist.Playlist {
	result := make([]*playlist.Playlist, len(l.playlists))
	copy(result, l.playlists)
	return result
}

// Reset replaces the whole library content.
func (l *Library) Reset(ps ...*playlist.Playlist) {
	l.playlists = make([]*playlist.Playlist, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			l.playlists = append(l.playlists, p)
		}
	}
}

// AddAt inserts p at index, shifting later playlists up.
// An index at or past the end appends.
// Returns false for a negative index or a nil playlist.
func (l *Library) AddAt(index int, p *playlist.Playlist) bool {
	if index < 0 || p == nil {
		return false
	}
	if index >= len(l.playlists) {
		l.playlists = append(l.playlists, p)
		return true
	}
	l.playlists = append(l.playlists[:index], append([]*playlist.Playlist{p}, l.playlists[index:]...)...)
	return true
}

// RemoveAt removes the playlist at index, shifting later playlists down.
// Returns false if index is out of bounds.
func (l *Library) RemoveAt(index int) bool {
	if !l.valid(index) {
		return false
	}
	l.playlists = append(l.playlists[:index], l.playlists[index+1:]...)
	return true
}

// AddFromSource builds a playlist from src and inserts it at index.
// A negative index fails with ErrInvalidIndex before src is read.
func (l *Library) AddFromSource(index int, src Source) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	tracks, err := src.ReadAll()
	if err != nil {
		return err
	}
	p := playlist.New(tracks...)
	if !l.AddAt(index, p) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	l.log.Debug().Int("index", index).Int("tracks", p.Len()).Msg("playlist added")
	return nil
}

// AddAllFromSources replaces the library with one playlist per source, in order.
// On error the library is left unchanged.
func (l *Library) AddAllFromSources(srcs ...Source) error {
	ps := make([]*playlist.Playlist, 0, len(srcs))
	for _, src := range srcs {
		tracks, err := src.ReadAll()
		if err != nil {
			return err
		}
		ps = append(ps, playlist.New(tracks...))
	}
	l.Reset(ps...)
	l.log.Debug().Int("playlists", len(ps)).Msg("library loaded")
	return nil
}

// InsertSong inserts t at the 1-indexed position of the playlist at index.
func (l *Library) InsertSong(index, position int, t playlist.Track) bool {
	p, ok := l.lookup(index, "insert song")
	if !ok {
		return false
	}
	return p.Insert(position, t)
}

// RemoveSong removes the first track equal to t from the playlist at index.
func (l *Library) RemoveSong(index int, t playlist.Track) bool {
	p, ok := l.lookup(index, "remove song")
	if !ok {
		return false
	}
	return p.Remove(t)
}

// ReversePlaylist reverses the playlist at index.
func (l *Library) ReversePlaylist(index int) bool {
	p, ok := l.lookup(index, "reverse playlist")
	if !ok {
		return false
	}
	p.Reverse()
	return true
}

// MergePlaylists merges the playlists at a and b, both sorted by decreasing
// popularity. The result is stored at the lower index and the playlist at
// the higher index is removed. On equal popularity, tracks from the lower
// index come first.
func (l *Library) MergePlaylists(a, b int) bool {
	lo, hi := min(a, b), max(a, b)
	if lo == hi || !l.valid(lo) || !l.valid(hi) {
		l.log.Debug().Int("a", a).Int("b", b).Msg("merge playlists: invalid indexes")
		return false
	}

	target, other := l.playlists[lo], l.playlists[hi]
	before := target.Len()
	target.Merge(other)
	l.RemoveAt(hi)

	l.log.Debug().
		Int("into", lo).
		Int("removed", hi).
		Int("tracks", target.Len()).
		Int("added", target.Len()-before).
		Msg("playlists merged")
	return true
}

// ShufflePlaylist replaces the playlist at index with a shuffled one.
func (l *Library) ShufflePlaylist(index int, rng playlist.Rand) bool {
	p, ok := l.lookup(index, "shuffle playlist")
	if !ok || rng == nil {
		return false
	}
	l.playlists[index] = p.Shuffle(rng)
	l.log.Debug().Int("index", index).Int("tracks", l.playlists[index].Len()).Msg("playlist shuffled")
	return true
}

// SortPlaylist sorts the playlist at index by decreasing popularity.
func (l *Library) SortPlaylist(index int) bool {
	p, ok := l.lookup(index, "sort playlist")
	if !ok {
		return false
	}
	p.Sort()
	l.log.Debug().Int("index", index).Msg("playlist sorted")
	return true
}

func (l *Library) valid(index int) bool {
	return index >= 0 && index < len(l.playlists)
}

func (l *Library) lookup(index int, op string) (*playlist.Playlist, bool) {
	if !l.valid(index) {
		l.log.Debug().Int("index", index).Int("size", len(l.playlists)).Msg(op + ": invalid index")
		return nil, false
	}
	return l.playlists[index], true
}
