package anagram

import (
	"github.com/milden6/dawg-anagram/errors"
)

const initialCapacity = MaxWordLength

// Collector accumulates matched words in the order they are found.
type Collector struct {
	words []string
	limit int
}

// NewCollector returns an empty collector. A positive limit caps the number
// of words it will hold.
func NewCollector(limit int) *Collector {
	return &Collector{
		words: make([]string, 0, initialCapacity),
		limit: limit,
	}
}

// Add appends a copy of word. The search reuses its buffer, so the bytes
// must not be retained.
func (c *Collector) Add(word []byte) error {
	if c.limit > 0 && len(c.words) >= c.limit {
		return errors.New(errors.ErrCodeAllocation, "result limit of %d words reached", c.limit)
	}

	if len(c.words) == cap(c.words) {
		size := 2 * cap(c.words)
		if size == 0 {
			size = initialCapacity
		}
		grown := make([]string, len(c.words), size)
		copy(grown, c.words)
		c.words = grown
	}

	c.words = append(c.words, string(word))
	return nil
}

// Len returns the number of words collected.
func (c *Collector) Len() int {
	return len(c.words)
}

// Words returns the collected words.
func (c *Collector) Words() []string {
	return c.words
}
