// internal/dataset/cursor.go
package dataset

// DefaultPageSize is the number of raw rows shown per page.
const DefaultPageSize = 5

// Cursor is the position of a raw-row listing over a View.
type Cursor struct {
	Offset int
	Size   int
}

// NewCursor starts at the first row with the given page size. Sizes below
// one fall back to DefaultPageSize.
func NewCursor(size int) Cursor {
	if size < 1 {
		size = DefaultPageSize
	}
	return Cursor{Size: size}
}

// Next returns the cursor for the following page.
func (c Cursor) Next() Cursor {
	c.Offset += c.Size
	return c
}

// Done reports whether the cursor is past the last row of v.
func (c Cursor) Done(v View) bool {
	return c.Offset >= v.Len()
}

// Page returns the trips of v under the cursor. It is empty once the cursor
// is done.
func (v View) Page(c Cursor) []Trip {
	if c.Offset < 0 {
		c.Offset = 0
	}
	if c.Size < 1 {
		c.Size = DefaultPageSize
	}
	if c.Offset >= v.Len() {
		return nil
	}
	end := min(c.Offset+c.Size, v.Len())
	trips := make([]Trip, 0, end-c.Offset)
	for i := c.Offset; i < end; i++ {
		trips = append(trips, v.Trip(i))
	}
	return trips
}
