package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/llehouerou/playring/internal/config"
	"github.com/llehouerou/playring/internal/errmsg"
	"github.com/llehouerou/playring/internal/logging"
	"github.com/llehouerou/playring/internal/playlist"
	"github.com/llehouerou/playring/internal/playlists"
	"github.com/llehouerou/playring/internal/render"
	"github.com/llehouerou/playring/internal/source"
	"github.com/llehouerou/playring/internal/state"
)

// opError carries the operation that failed so it can be shown to the user.
type opError struct {
	op  errmsg.Op
	err error
}

func (e *opError) Error() string { return errmsg.Format(e.op, e.err) }

func (e *opError) Unwrap() error { return e.err }

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	logCfg := cfg.GetLogConfig()
	log := logging.New(logging.Config{Level: logCfg.Level, Format: logCfg.Format})

	if err := runWithState(context.Background(), cfg, log, os.Stdout); err != nil {
		log.Error().Err(err).Msg("playring failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runWithState(ctx context.Context, cfg *config.Config, log zerolog.Logger, out io.Writer) error {
	store, err := state.Open(cfg.StatePath)
	if err != nil {
		return &opError{op: errmsg.OpStateOpen, err: err}
	}
	defer store.Close()

	return run(ctx, cfg, log, store, out)
}

// run loads the library, prints it, optionally walks one playlist as a
// player would, and stores the result.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger, store state.Interface, out io.Writer) error {
	lib := playlists.New(log)
	if err := loadLibrary(ctx, cfg, lib, store); err != nil {
		return err
	}
	log.Info().Int("playlists", lib.Size()).Msg("library ready")

	if cfg.Shuffle.OnLoad {
		rng := playlist.NewRand(cfg.ShuffleSeed())
		for i := range lib.Size() {
			lib.ShufflePlaylist(i, rng)
		}
	}

	pr := render.Printer{Styles: render.DefaultStyles(), Width: cfg.RenderWidth()}
	fmt.Fprintln(out, pr.Library(lib.Playlists()))

	if index, ok := cfg.PlayIndex(); ok {
		p, found := lib.Get(index)
		if found {
			fmt.Fprintln(out)
			fmt.Fprintln(out, pr.Playback(playlist.NewQueue(p, cfg.PlayRepeats())))
		} else {
			log.Warn().Int("playlist", index).Int("size", lib.Size()).Msg("no playlist to play")
		}
	}

	if err := store.SaveLibrary(ctx, lib.Playlists()); err != nil {
		return &opError{op: errmsg.OpLibrarySave, err: err}
	}
	return nil
}

// loadLibrary builds the library from the configured CSV files, or from the
// last saved state when none are configured.
func loadLibrary(ctx context.Context, cfg *config.Config, lib *playlists.Library, store state.Interface) error {
	if len(cfg.Playlists) > 0 {
		srcs := make([]playlists.Source, len(cfg.Playlists))
		for i, path := range cfg.Playlists {
			srcs[i] = source.File(path)
		}
		if err := lib.AddAllFromSources(srcs...); err != nil {
			return &opError{op: errmsg.OpPlaylistRead, err: err}
		}
		return nil
	}

	ps, err := store.LoadLibrary(ctx)
	if err != nil {
		return &opError{op: errmsg.OpLibraryLoad, err: err}
	}
	lib.Reset(ps...)
	return nil
}
