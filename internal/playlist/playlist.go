// Package playlist implements playlists as singly-linked circular lists.
//
// A Playlist only keeps a reference to its last node. The node after it is
// the front of the playlist (position 1), and following the successor links
// exactly Len() times from the last node leads back to it.
package playlist

import (
	"errors"
	"fmt"
	"iter"
)

type node struct {
	track Track
	next  *node // nil only while detached from any ring
}

// Playlist holds an ordered ring of tracks.
// The zero value is an empty playlist ready to use.
type Playlist struct {
	last *node
	size int
}

// New builds a playlist by appending tracks in order.
// Tracks are expected in decreasing popularity order; New does not sort.
func New(tracks ...Track) *Playlist {
	p := &Playlist{}
	p.Append(tracks...)
	return p
}

// Append adds tracks at the end of the playlist.
func (p *Playlist) Append(tracks ...Track) {
	for _, t := range tracks {
		p.pushBack(&node{track: t})
	}
	p.assertInvariants()
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return p.size
}

// IsEmpty returns true if the playlist has no tracks.
func (p *Playlist) IsEmpty() bool {
	return p.size == 0
}

// Front returns the track at position 1.
func (p *Playlist) Front() (Track, bool) {
	if p.last == nil {
		return Track{}, false
	}
	return p.last.next.track, true
}

// Last returns the track held by the last node.
func (p *Playlist) Last() (Track, bool) {
	if p.last == nil {
		return Track{}, false
	}
	return p.last.track, true
}

// Track returns the track at the given 1-indexed position.
func (p *Playlist) Track(position int) (Track, bool) {
	if position < 1 || position > p.size {
		return Track{}, false
	}
	return p.nodeAt(position).track, true
}

// All iterates the ring once, front to back.
func (p *Playlist) All() iter.Seq[Track] {
	return func(yield func(Track) bool) {
		if p.last == nil {
			return
		}
		n := p.last.next
		for range p.size {
			if !yield(n.track) {
				return
			}
			n = n.next
		}
	}
}

// Tracks returns a copy of all tracks, front to back.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, 0, p.size)
	for t := range p.All() {
		result = append(result, t)
	}
	return result
}

// Insert adds a track at the given 1-indexed position.
// Position 1 makes it the new front, Len()+1 appends it as the new last.
// Returns false, leaving the playlist untouched, if position is out of range.
func (p *Playlist) Insert(position int, t Track) bool {
	if p == nil || position < 1 || position > p.size+1 {
		return false
	}

	n := &node{track: t}
	switch {
	case p.last == nil:
		n.next = n
		p.last = n
	case position == 1:
		n.next = p.last.next
		p.last.next = n
	default:
		prev := p.nodeAt(position - 1)
		n.next = prev.next
		prev.next = n
		if position == p.size+1 {
			p.last = n
		}
	}
	p.size++

	p.assertInvariants()
	return true
}

// Remove removes the first track, starting from the front, equal to t.
// Returns false if no track matches.
func (p *Playlist) Remove(t Track) bool {
	if p == nil || p.last == nil {
		return false
	}

	prev, cur := p.last, p.last.next
	for range p.size {
		if cur.track.Equal(t) {
			p.unlink(prev, cur)
			p.assertInvariants()
			return true
		}
		prev, cur = cur, cur.next
	}
	return false
}

// RemoveAt removes the track at the given 1-indexed position and returns it.
func (p *Playlist) RemoveAt(position int) (Track, bool) {
	if p == nil || position < 1 || position > p.size {
		return Track{}, false
	}
	n := p.removeAt(position)
	p.assertInvariants()
	return n.track, true
}

// Reverse reverses the playlist in place.
// The former front becomes the last node.
func (p *Playlist) Reverse() {
	if p == nil || p.size < 2 {
		return
	}

	front := p.last.next
	prev, cur := p.last, front
	for range p.size {
		next := cur.next
		cur.next = prev
		prev, cur = cur, next
	}
	p.last = front

	p.assertInvariants()
}

// nodeAt returns the node at a 1-indexed position. Callers check bounds.
func (p *Playlist) nodeAt(position int) *node {
	n := p.last.next
	for range position - 1 {
		n = n.next
	}
	return n
}

// pushBack links a detached node after the last node and makes it the last.
func (p *Playlist) pushBack(n *node) {
	if p.last == nil {
		n.next = n
	} else {
		n.next = p.last.next
		p.last.next = n
	}
	p.last = n
	p.size++
}

// popFront detaches and returns the node at position 1.
func (p *Playlist) popFront() *node {
	cur := p.last.next
	p.unlink(p.last, cur)
	return cur
}

// removeAt detaches and returns the node at a 1-indexed position.
// Callers check bounds.
func (p *Playlist) removeAt(position int) *node {
	prev := p.last
	if position > 1 {
		prev = p.nodeAt(position - 1)
	}
	cur := prev.next
	p.unlink(prev, cur)
	return cur
}

// unlink splices cur, the successor of prev, out of the ring and detaches it.
func (p *Playlist) unlink(prev, cur *node) {
	if p.size == 1 {
		p.last = nil
	} else {
		prev.next = cur.next
		if cur == p.last {
			p.last = prev
		}
	}
	cur.next = nil
	p.size--
}

// spliceBack moves every node of other, in order, to the end of p in
// constant time. other is left empty.
func (p *Playlist) spliceBack(other *Playlist) {
	if other.last == nil {
		return
	}
	if p.last == nil {
		p.last, p.size = other.last, other.size
	} else {
		otherFront := other.last.next
		other.last.next = p.last.next
		p.last.next = otherFront
		p.last = other.last
		p.size += other.size
	}
	other.last, other.size = nil, 0
}

var errNegativeSize = errors.New("negative size")

// Validate checks the ring invariants: an empty playlist has no last node,
// and a non-empty one returns to its last node after exactly Len() hops
// without passing it earlier.
func (p *Playlist) Validate() error {
	if p.size < 0 {
		return errNegativeSize
	}
	if (p.last == nil) != (p.size == 0) {
		return fmt.Errorf("last node set=%t with size %d", p.last != nil, p.size)
	}
	if p.last == nil {
		return nil
	}

	n := p.last
	for i := range p.size {
		n = n.next
		if n == nil {
			return fmt.Errorf("ring broken after %d hops", i+1)
		}
		if n == p.last && i < p.size-1 {
			return fmt.Errorf("ring closes after %d hops, size is %d", i+1, p.size)
		}
	}
	if n != p.last {
		return fmt.Errorf("ring does not return to last after %d hops", p.size)
	}
	return nil
}

func (p *Playlist) assertInvariants() {
	if !debugInvariants {
		return
	}
	if err := p.Validate(); err != nil {
		panic("playlist: " + err.Error())
	}
}
