// internal/state/interface.go
package state

import (
	"context"

	"github.com/llehouerou/playring/internal/playlist"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveLibrary(ctx context.Context, ps []*playlist.Playlist) error
	LoadLibrary(ctx context.Context) ([]*playlist.Playlist, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
