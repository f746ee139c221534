package playlist

// Cursor points into an ordered track list and wraps to the first track after the last.
type Cursor struct {
	tracks []string
	index  int
}

// NewCursor creates a cursor at the first track.
func NewCursor(tracks []string) *Cursor {
	return &Cursor{tracks: append([]string(nil), tracks...)}
}

// Len returns the number of tracks.
func (cursor *Cursor) Len() int {
	return len(cursor.tracks)
}

// Index returns the current position.
func (cursor *Cursor) Index() int {
	return cursor.index
}

// Current returns the current track, or false for an empty playlist.
func (cursor *Cursor) Current() (string, bool) {
	if len(cursor.tracks) == 0 {
		return "", false
	}
	return cursor.tracks[cursor.index], true
}

// Advance moves to the next track, wrapping to 0, and returns it.
func (cursor *Cursor) Advance() (string, bool) {
	if len(cursor.tracks) == 0 {
		return "", false
	}
	cursor.index = (cursor.index + 1) % len(cursor.tracks)
	return cursor.tracks[cursor.index], true
}

// Rewind moves back to the first track.
func (cursor *Cursor) Rewind() {
	cursor.index = 0
}
