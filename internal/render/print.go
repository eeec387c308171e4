package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/playring/internal/playlist"
)

// Messages shown by the printer.
const (
	EmptyPlaylist = "EMPTY"
	EmptyLibrary  = "Your library is empty!"
	NothingToPlay = "Nothing to play."
	NoLinkMessage = " has no link to a song! Playing next..."
	FrontMarker   = " - POINTS TO FRONT"
	arrow         = " -> "
)

// Styles holds the lipgloss styles applied to printed output.
type Styles struct {
	Header lipgloss.Style
	Notice lipgloss.Style
	Track  lipgloss.Style
	Marker lipgloss.Style
}

// DefaultStyles returns the terminal styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true),
		Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Track:  lipgloss.NewStyle(),
		Marker: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

// PlainStyles returns styles that leave text untouched.
func PlainStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle(),
		Notice: lipgloss.NewStyle(),
		Track:  lipgloss.NewStyle(),
		Marker: lipgloss.NewStyle(),
	}
}

// Printer formats playlists.
type Printer struct {
	Styles Styles
	Width  int // max display width of a single track entry; 0 means unlimited
}

// Playlist prints the playlist at index, walking the ring from its front
// and marking the last track as pointing back to the front.
func (pr Printer) Playlist(index int, p *playlist.Playlist) string {
	var b strings.Builder
	b.WriteString(pr.Styles.Header.Render(
		fmt.Sprintf("Playlist at index %d (%s):", index, english.Plural(p.Len(), "song", "")),
	))
	b.WriteByte('\n')

	if p.IsEmpty() {
		b.WriteString(pr.Styles.Notice.Render(EmptyPlaylist))
		return b.String()
	}

	i := 0
	for t := range p.All() {
		if i > 0 {
			b.WriteString(arrow)
		}
		b.WriteString(pr.Styles.Track.Render(pr.entry(t)))
		i++
	}
	b.WriteString(pr.Styles.Marker.Render(FrontMarker))
	return b.String()
}

// Library prints every playlist, separated by blank lines.
func (pr Printer) Library(ps []*playlist.Playlist) string {
	if len(ps) == 0 {
		return pr.Styles.Notice.Render(EmptyLibrary)
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = pr.Playlist(i, p)
	}
	return strings.Join(parts, "\n\n")
}

// Playback lists what a player would go through for q, one line per step.
// Tracks without a link get NoLinkMessage appended.
func (pr Printer) Playback(q *playlist.PlayingQueue) string {
	if q.IsEmpty() {
		return pr.Styles.Notice.Render(NothingToPlay)
	}
	var lines []string
	for t := q.Next(); t != nil; t = q.Next() {
		line := pr.Styles.Track.Render(pr.entry(*t))
		if !t.HasLink() {
			line += pr.Styles.Notice.Render(NoLinkMessage)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (pr Printer) entry(t playlist.Track) string {
	return Entry(t, pr.Width)
}
