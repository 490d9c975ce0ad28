package domain

// Cursor marks the resume position in a user's follow list, ordered by
// journal id. The index stays in [0, followCount], wrapping to 0 when a
// full pass over the list completes.
type Cursor struct {
	Index int
}

// Start resolves the index the next batch begins at. A stale index past the
// end of the follow list resets to 0, as does an explicit full-pass request.
func (c Cursor) Start(total int, ignore bool) int {
	if ignore || c.Index < 0 || c.Index >= total {
		return 0
	}
	return c.Index
}

// Advance returns the cursor position after a batch of batchSize beginning
// at start, and whether that batch completed a full pass over the list.
// batchSize <= 0 means the batch covered everything from start onward.
func Advance(start, batchSize, total int) (Cursor, bool) {
	if batchSize <= 0 || start+batchSize >= total {
		return Cursor{Index: 0}, true
	}
	return Cursor{Index: start + batchSize}, false
}
