// Package render formats playlists as text for printing and playback.
package render

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/playring/internal/playlist"
)

const (
	ellipsis     = "..."
	fieldSep     = ", "
	noLink       = "null"
	minFieldCols = 4 // one column of text plus the ellipsis
)

// Sanitize makes a track field safe to print on one terminal line.
// Tabs and non-breaking spaces become plain spaces, other control
// characters are dropped and invalid UTF-8 bytes become U+FFFD.
func Sanitize(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, needsCleaning) < 0 {
		return s
	}
	return strings.Map(cleanRune, s)
}

func needsCleaning(r rune) bool {
	return r == '\u00a0' || unicode.IsControl(r)
}

func cleanRune(r rune) rune {
	switch {
	case r == '\t', r == '\u00a0':
		return ' '
	case unicode.IsControl(r):
		return -1
	}
	return r
}

// Truncate sanitizes s and shortens it to maxWidth display columns,
// ending it with an ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, ellipsis)
}

// Entry formats t as "Name, Artist, Year, Popularity, Link" in at most
// maxWidth display columns; maxWidth <= 0 means no limit.
//
// Name and artist are shortened first so that year, popularity and link stay
// readable. When even those do not fit, the whole line is cut instead.
func Entry(t playlist.Track, maxWidth int) string {
	name, artist := Sanitize(t.Name), Sanitize(t.Artist)
	link := noLink
	if t.HasLink() {
		link = Sanitize(t.Link)
	}
	tail := fieldSep + strconv.Itoa(t.Year) + fieldSep + strconv.Itoa(t.Popularity) + fieldSep + link

	line := name + fieldSep + artist + tail
	if maxWidth <= 0 || runewidth.StringWidth(line) <= maxWidth {
		return line
	}

	budget := maxWidth - runewidth.StringWidth(tail) - len(fieldSep)
	if budget < 2*minFieldCols {
		return Truncate(line, maxWidth)
	}

	nameCols, artistCols := fieldWidths(runewidth.StringWidth(name), runewidth.StringWidth(artist), budget)
	return Truncate(name, nameCols) + fieldSep + Truncate(artist, artistCols) + tail
}

// fieldWidths shares budget columns between name and artist. A field that
// fits in half the budget keeps its width and the other one gets the rest.
func fieldWidths(nameW, artistW, budget int) (int, int) {
	half := budget / 2
	switch {
	case nameW <= half:
		return nameW, budget - nameW
	case artistW <= budget-half:
		return budget - artistW, artistW
	default:
		return budget - half, half
	}
}
