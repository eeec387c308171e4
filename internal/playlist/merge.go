package playlist

// Merge moves every track of other into p, keeping decreasing popularity
// order. Both playlists are expected to be sorted already.
//
// Fronts are compared one at a time and the more popular one is moved to the
// end of the result; on equal popularity the track from p goes first. Once
// either side runs out, what is left of the other ring is attached as a
// whole. other is empty afterwards.
func (p *Playlist) Merge(other *Playlist) {
	if p == nil || other == nil || other == p {
		return
	}

	var out Playlist
	for p.last != nil && other.last != nil {
		src := p
		if other.last.next.track.Popularity > p.last.next.track.Popularity {
			src = other
		}
		out.pushBack(src.popFront())
	}

	rest := p
	if p.last == nil {
		rest = other
	}
	// The remaining ring's last node is its least popular track, so it
	// becomes the last node of the merged ring.
	out.spliceBack(rest)

	p.last, p.size = out.last, out.size
	p.assertInvariants()
}

// Sort orders the playlist by decreasing popularity in O(n log n).
// Tracks with equal popularity keep their relative order.
func (p *Playlist) Sort() {
	if p == nil || p.size < 2 {
		return
	}
	second := p.split(p.size / 2)
	p.Sort()
	second.Sort()
	p.Merge(second)
}

// split keeps the first k nodes in p and returns the rest as a new ring.
// Requires 0 < k < p.size.
func (p *Playlist) split(k int) *Playlist {
	front := p.last.next
	mid := p.nodeAt(k)

	rest := &Playlist{last: p.last, size: p.size - k}
	rest.last.next = mid.next

	mid.next = front
	p.last = mid
	p.size = k
	return rest
}
