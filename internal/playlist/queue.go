package playlist

// PlayingQueue walks a snapshot of a playlist for playback.
// The playlist is played front to back, repeats times in total.
type PlayingQueue struct {
	tracks       []Track
	currentIndex int // -1 if nothing playing
	repeats      int
	pass         int
}

// NewQueue creates a playing queue over the current content of p.
// A repeats value below 1 plays the playlist once.
func NewQueue(p *Playlist, repeats int) *PlayingQueue {
	q := &PlayingQueue{}
	q.Replace(p, repeats)
	return q
}

// Replace reloads the queue from p and resets playback.
func (q *PlayingQueue) Replace(p *Playlist, repeats int) {
	q.tracks = p.Tracks()
	q.currentIndex = -1
	q.repeats = max(repeats, 1)
	q.pass = 0
}

// Current returns the currently playing track, or nil if none.
func (q *PlayingQueue) Current() *Track {
	if q.currentIndex < 0 || q.currentIndex >= len(q.tracks) {
		return nil
	}
	return &q.tracks[q.currentIndex]
}

// CurrentIndex returns the 0-based index of the currently playing track (-1 if none).
func (q *PlayingQueue) CurrentIndex() int {
	return q.currentIndex
}

// Pass returns how many times playback has wrapped from the last track to the front.
func (q *PlayingQueue) Pass() int {
	return q.pass
}

// Next advances to the next track and returns it.
// After the last track it wraps to the front while repeats remain.
// Returns nil when playback is over.
func (q *PlayingQueue) Next() *Track {
	if !q.HasNext() {
		return nil
	}
	if q.currentIndex == len(q.tracks)-1 {
		q.currentIndex = 0
		q.pass++
	} else {
		q.currentIndex++
	}
	return q.Current()
}

// HasNext returns true if Next would return a track.
func (q *PlayingQueue) HasNext() bool {
	if len(q.tracks) == 0 {
		return false
	}
	if q.currentIndex < len(q.tracks)-1 {
		return true
	}
	return q.pass < q.repeats-1
}

// JumpTo sets the current index within the current pass.
// Returns the track at that position, or nil if invalid.
func (q *PlayingQueue) JumpTo(index int) *Track {
	if index < 0 || index >= len(q.tracks) {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// Tracks returns a copy of the queued tracks.
func (q *PlayingQueue) Tracks() []Track {
	result := make([]Track, len(q.tracks))
	copy(result, q.tracks)
	return result
}

// Len returns the number of tracks in one pass.
func (q *PlayingQueue) Len() int {
	return len(q.tracks)
}

// IsEmpty returns true if the queue has no tracks.
func (q *PlayingQueue) IsEmpty() bool {
	return len(q.tracks) == 0
}
