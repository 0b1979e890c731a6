package anagram

import (
	"slices"

	dawg "github.com/milden6/dawg-anagram"
	"github.com/milden6/dawg-anagram/errors"
)

const (
	// Wildcard stands for any single letter, like a blank tile.
	Wildcard = '?'

	// MaxInputLength is the longest raw query accepted, in bytes.
	MaxInputLength = 120

	// MaxWordLength is the longest word a graph is expected to hold.
	MaxWordLength = 15

	// minSearchable is the smallest bank worth searching. Shorter banks only
	// produce the single letter words.
	minSearchable = 2
)

// Bank is a normalized letter bank: upper case letters and wildcards, with
// the wildcards first and the letters in alphabetical order. Repeated
// letters are kept.
type Bank []byte

// Normalize turns raw query text into a Bank. Lower case letters are
// upper cased, wildcards are kept and every other byte is dropped. Text
// longer than MaxInputLength is rejected before anything else is done.
func Normalize(raw string) (Bank, error) {
	if len(raw) > MaxInputLength {
		return nil, errors.New(errors.ErrCodeInputTooLong,
			"query is %d bytes, the limit is %d", len(raw), MaxInputLength)
	}

	bank := make(Bank, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch == Wildcard || dawg.LetterIndex(ch) >= 0 {
			bank = append(bank, ch)
		}
	}

	// '?' is below 'A', so byte order puts the wildcards in front.
	slices.Sort(bank)
	return bank, nil
}

// Searchable reports whether the bank is long enough to search the graph.
func (b Bank) Searchable() bool {
	return len(b) >= minSearchable
}

// Contains reports whether ch is in the bank.
func (b Bank) Contains(ch byte) bool {
	return slices.Contains(b, ch)
}

// Wildcards returns the number of wildcards in the bank.
func (b Bank) Wildcards() int {
	n := 0
	for n < len(b) && b[n] == Wildcard {
		n++
	}
	return n
}

func (b Bank) String() string {
	return string(b)
}
