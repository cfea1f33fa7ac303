package geom

// cursor tracks consumption of a fixed length sequence from both ends.
type cursor struct {
	front, back int
}

func (c *cursor) next(n int) (int, bool) {
	if c.front+c.back >= n {
		return 0, false
	}
	i := c.front
	c.front++
	return i, true
}

func (c *cursor) nextBack(n int) (int, bool) {
	if c.front+c.back >= n {
		return 0, false
	}
	c.back++
	return n - c.back, true
}

func (c cursor) len(n int) int {
	return n - c.front - c.back
}
