// Package source reads track records from delimited text.
//
// Each line holds one track: name,artist,year,popularity[,link].
// Lines are expected in decreasing popularity order; nothing here sorts them.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/llehouerou/playring/internal/playlist"
)

// ErrMalformedRecord is returned for lines that cannot be turned into a track.
var ErrMalformedRecord = errors.New("malformed track record")

const (
	minFields = 4
	maxFields = 5
)

// Reader decodes tracks one line at a time.
type Reader struct {
	r *csv.Reader
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // the link column is optional
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	return &Reader{r: cr}
}

// Read returns the next track, or io.EOF when the input is exhausted.
func (r *Reader) Read() (playlist.Track, error) {
	record, err := r.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return playlist.Track{}, io.EOF
		}
		return playlist.Track{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	line, _ := r.r.FieldPos(0)

	t, err := parseRecord(record)
	if err != nil {
		return playlist.Track{}, fmt.Errorf("line %d: %w", line, err)
	}
	return t, nil
}

// ReadAll returns every remaining track in input order.
func (r *Reader) ReadAll() ([]playlist.Track, error) {
	var tracks []playlist.Track
	for {
		t, err := r.Read()
		if errors.Is(err, io.EOF) {
			return tracks, nil
		}
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
}

// Load reads every track from the file at path.
func Load(path string) ([]playlist.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tracks, err := NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tracks, nil
}

// File is a track source backed by a file path, read on demand.
type File string

// ReadAll loads the file.
func (f File) ReadAll() ([]playlist.Track, error) {
	return Load(string(f))
}

func parseRecord(record []string) (playlist.Track, error) {
	if len(record) < minFields || len(record) > maxFields {
		return playlist.Track{}, fmt.Errorf("%w: got %d fields, want %d or %d",
			ErrMalformedRecord, len(record), minFields, maxFields)
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	year, err := strconv.Atoi(record[2])
	if err != nil {
		return playlist.Track{}, fmt.Errorf("%w: year %q", ErrMalformedRecord, record[2])
	}
	popularity, err := strconv.Atoi(record[3])
	if err != nil {
		return playlist.Track{}, fmt.Errorf("%w: popularity %q", ErrMalformedRecord, record[3])
	}

	t := playlist.Track{
		Name:       record[0],
		Artist:     record[1],
		Year:       year,
		Popularity: popularity,
	}
	if len(record) == maxFields && record[4] != "null" {
		t.Link = record[4]
	}
	return t, nil
}
