package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/playring/internal/playlist"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name unchanged", "Blinding Lights", "Blinding Lights"},
		{"wide name unchanged", "坂本龍一", "坂本龍一"},
		{"escape sequence stripped", "Bad\x1b[31mName", "Bad[31mName"},
		{"embedded newline dropped", "two\nlines", "twolines"},
		{"tab becomes space", "Tab\tBand", "Tab Band"},
		{"nbsp becomes space", "Sigur\u00a0Rós", "Sigur Rós"},
		{"latin-1 byte replaced", "Caf\xe9", "Caf\uFFFD"},
		{"c1 control dropped", "ab\u0085c", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("坂本龍一", 5); got != "坂..." {
		t.Errorf("Truncate(wide) = %q, want %q", got, "坂...")
	}
	if got := Truncate("a\x07bcdef", 4); got != "a..." {
		t.Errorf("Truncate(control) = %q, want %q", got, "a...")
	}
}

func TestEntry(t *testing.T) {
	tests := []struct {
		name     string
		track    playlist.Track
		maxWidth int
		want     string
	}{
		{
			name:     "fits",
			track:    playlist.Track{Name: "Song", Artist: "Band", Year: 1999, Popularity: 42, Link: "song.wav"},
			maxWidth: 60,
			want:     "Song, Band, 1999, 42, song.wav",
		},
		{
			name:     "no limit",
			track:    playlist.Track{Name: "A Very Long Song Title That Goes On", Artist: "Band", Year: 1999, Popularity: 42},
			maxWidth: 0,
			want:     "A Very Long Song Title That Goes On, Band, 1999, 42, null",
		},
		{
			name:     "long name keeps popularity and link",
			track:    playlist.Track{Name: "A Very Long Song Title That Goes On", Artist: "Band", Year: 1999, Popularity: 42, Link: "song.wav"},
			maxWidth: 40,
			want:     "A Very Long..., Band, 1999, 42, song.wav",
		},
		{
			name:     "long artist",
			track:    playlist.Track{Name: "Yes", Artist: "The Extremely Long Artist Name", Year: 2000, Popularity: 5},
			maxWidth: 40,
			want:     "Yes, The Extremely Lon..., 2000, 5, null",
		},
		{
			name:     "both long share the space",
			track:    playlist.Track{Name: "Merry Christmas Mr Lawrence", Artist: "Ryuichi Sakamoto and Friends", Year: 1983, Popularity: 77},
			maxWidth: 36,
			want:     "Merry ..., Ryuich..., 1983, 77, null",
		},
		{
			name:     "too narrow cuts the whole line",
			track:    playlist.Track{Name: "Song", Artist: "Band", Year: 1999, Popularity: 42, Link: "song.wav"},
			maxWidth: 10,
			want:     "Song, B...",
		},
		{
			name:     "fields from a dirty CSV row",
			track:    playlist.Track{Name: "Bad\x07Name", Artist: "Tab\tBand", Year: 2000, Popularity: 1},
			maxWidth: 0,
			want:     "BadName, Tab Band, 2000, 1, null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Entry(tt.track, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Entry() = %q, want %q", got, tt.want)
			}
			if tt.maxWidth > 0 && runewidth.StringWidth(got) > tt.maxWidth {
				t.Errorf("Entry() width = %d, want <= %d", runewidth.StringWidth(got), tt.maxWidth)
			}
		})
	}
}

func TestEntry_WideArtist(t *testing.T) {
	track := playlist.Track{Name: "Merry Christmas", Artist: "坂本龍一坂本龍一", Year: 1983, Popularity: 77}

	got := Entry(track, 30)

	if w := runewidth.StringWidth(got); w > 30 {
		t.Errorf("width = %d, want <= 30 (%q)", w, got)
	}
	if !strings.HasSuffix(got, ", 1983, 77, null") {
		t.Errorf("Entry() = %q, want year, popularity and link kept", got)
	}
	if !strings.HasPrefix(got, "Mer") || !strings.Contains(got, "坂") {
		t.Errorf("Entry() = %q, want both name and artist shortened", got)
	}
}
