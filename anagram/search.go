package anagram

import (
	"context"

	dawg "github.com/milden6/dawg-anagram"
)

// Graph is the part of a dawg.Finder the search reads.
type Graph interface {
	Letter(index int) byte
	EndOfWord(index int) bool
	Child(index int) int
	Next(index int) int
	Entry(letter byte) int
}

var _ Graph = dawg.Finder(nil)

// checkEvery is how many nodes are visited between cancellation checks.
const checkEvery = 1024

// blankOffset turns an upper case letter into the lower case form used for
// letters supplied by a wildcard.
const blankOffset = 'a' - 'A'

type searcher struct {
	ctx    context.Context
	graph  Graph
	out    *Collector
	bank   []byte
	word   []byte
	count  int
	visits int
	err    error
}

// Search finds every word in g that can be spelled from a subset of bank
// and adds it to out. A wildcard can stand for any letter; the letter it
// supplied is written in lower case.
//
// Words come out grouped by first letter in alphabetical order, and in
// depth first graph order within a group. The number of words found is
// returned. The search stops with ctx.Err() if ctx is cancelled.
func Search(ctx context.Context, g Graph, bank Bank, out *Collector) (int, error) {
	s := &searcher{
		ctx:   ctx,
		graph: g,
		out:   out,
		bank:  append(make([]byte, 0, len(bank)), bank...),
		word:  make([]byte, 0, MaxWordLength+1),
	}

	var prev byte
	for i := 0; i < len(s.bank); i++ {
		ch := s.bank[i]
		if ch == prev {
			continue
		}
		prev = ch

		if err := ctx.Err(); err != nil {
			return s.count, err
		}

		if ch == Wildcard {
			s.take(i)
			for l := 0; l < dawg.AlphabetSize; l++ {
				if entry := g.Entry(dawg.Alphabet[l]); entry != 0 {
					s.walk(entry, 0, true)
				}
			}
			s.put(i, ch)
		} else if entry := g.Entry(ch); entry != 0 {
			s.take(i)
			s.walk(entry, 0, false)
			s.put(i, ch)
		}

		if s.err != nil {
			return s.count, s.err
		}
	}

	return s.count, nil
}

// walk visits the node at index, which spells the letter at position pos,
// then tries every distinct letter left in the bank on its children. The
// bank is the same on return as it was on entry.
func (s *searcher) walk(index, pos int, blank bool) {
	if s.err != nil {
		return
	}
	if s.visits++; s.visits%checkEvery == 0 {
		if err := s.ctx.Err(); err != nil {
			s.err = err
			return
		}
	}

	letter := s.graph.Letter(index)
	if blank {
		letter += blankOffset
	}
	s.word = append(s.word[:pos], letter)

	if s.graph.EndOfWord(index) {
		s.count++
		if err := s.out.Add(s.word); err != nil {
			s.err = err
			return
		}
	}

	child := s.graph.Child(index)
	if child == 0 || len(s.bank) == 0 {
		return
	}

	// Both the bank and the sibling list are in alphabetical order, so the
	// sibling cursor only moves forward as the bank is scanned.
	sibling := child
	var prev byte
	for i := 0; i < len(s.bank); i++ {
		ch := s.bank[i]
		if ch == prev {
			continue
		}

		if ch == Wildcard {
			s.take(i)
			for n := child; n != 0; n = s.graph.Next(n) {
				s.walk(n, pos+1, true)
			}
			s.put(i, ch)
			sibling = child
		} else {
			for sibling != 0 && s.graph.Letter(sibling) < ch {
				sibling = s.graph.Next(sibling)
			}
			if sibling != 0 && s.graph.Letter(sibling) == ch {
				s.take(i)
				s.walk(sibling, pos+1, false)
				s.put(i, ch)
				sibling = s.graph.Next(sibling)
			}
		}

		if sibling == 0 || s.err != nil {
			break
		}
		prev = ch
	}
}

// take removes the bank character at i.
func (s *searcher) take(i int) {
	copy(s.bank[i:], s.bank[i+1:])
	s.bank = s.bank[:len(s.bank)-1]
}

// put reinserts ch at i, undoing take(i).
func (s *searcher) put(i int, ch byte) {
	s.bank = s.bank[:len(s.bank)+1]
	copy(s.bank[i+1:], s.bank[i:])
	s.bank[i] = ch
}
