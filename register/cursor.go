package register

import "japaneseregister/model"

// cursor is a shrinking view [0, n) over an immutable token slice. Popping
// moves the end left; push undoes the last pop. Copying a cursor gives a
// recursive call its own range without touching the caller's.
type cursor struct {
	toks []model.Token
	n    int
}

func newCursor(toks []model.Token) cursor {
	return cursor{toks: toks, n: len(toks)}
}

func (c *cursor) len() int { return c.n }

func (c *cursor) peek() (model.Token, bool) {
	if c.n == 0 {
		return model.Token{}, false
	}
	return c.toks[c.n-1], true
}

func (c *cursor) pop() (model.Token, bool) {
	t, ok := c.peek()
	if ok {
		c.n--
	}
	return t, ok
}

// push restores the most recently popped token.
func (c *cursor) push() {
	if c.n < len(c.toks) {
		c.n++
	}
}

// surface concatenates the surfaces still in range.
func (c *cursor) surface() string {
	return model.Surfaces(c.toks[:c.n])
}

// takeEnds peels the trailing run of sentence-final particles and returns
// their surfaces in original order.
func (c *cursor) takeEnds() string {
	end := c.n
	for {
		t, ok := c.peek()
		if !ok || !t.Class.IsSentenceEnd() {
			break
		}
		c.n--
	}
	return model.Surfaces(c.toks[c.n:end])
}
