package playlist

import "strconv"

// Track represents a single song record.
// Tracks are values: a playlist stores its own copy, so a Track cannot be
// changed once it is part of a ring.
type Track struct {
	Name       string
	Artist     string
	Year       int
	Popularity int
	Link       string // resource to play; empty when the song has none
}

// Equal reports whether both tracks hold exactly the same fields, link included.
func (t Track) Equal(other Track) bool {
	return t == other
}

// HasLink returns true if the track points to a playable resource.
func (t Track) HasLink() bool {
	return t.Link != ""
}

// String formats the track the way the print routines show it.
func (t Track) String() string {
	link := t.Link
	if link == "" {
		link = "null"
	}
	return t.Name + ", " + t.Artist + ", " + strconv.Itoa(t.Year) + ", " +
		strconv.Itoa(t.Popularity) + ", " + link
}
