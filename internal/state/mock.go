// internal/state/mock.go
package state

import (
	"context"

	"github.com/llehouerou/playring/internal/playlist"
)

// Mock is a test double for Manager. It keeps the saved library as track
// lists so later changes to the saved playlists do not leak into it.
type Mock struct {
	saved  [][]playlist.Track
	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveLibrary(_ context.Context, ps []*playlist.Playlist) error {
	m.saved = make([][]playlist.Track, len(ps))
	for i, p := range ps {
		m.saved[i] = p.Tracks()
	}
	return nil
}

func (m *Mock) LoadLibrary(_ context.Context) ([]*playlist.Playlist, error) {
	ps := make([]*playlist.Playlist, len(m.saved))
	for i, tracks := range m.saved {
		ps[i] = playlist.New(tracks...)
	}
	return ps, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
