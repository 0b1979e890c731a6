package dawg

import (
	"bufio"
	"fmt"
	"io"
)

// EnumFn is a method to enumerate. It receives the index of the current
// node, the letters on the path to it and whether they spell a word.
type EnumFn = func(index int, word []byte, final bool) EnumerationResult

// EnumerationResult is returned by the enumeration function to indicate whether
// indication should continue below this depth or to stop altogether
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

// Finder is the read-only interface to a loaded graph.
type Finder interface {
	Letter(index int) byte
	EndOfWord(index int) bool
	EndOfList(index int) bool
	Child(index int) int
	Next(index int) int
	Entry(letter byte) int
	NumNodes() int
	NumWords() int
	Enumerate(fn EnumFn)
	Lexicon(w io.Writer) (int, error)
	Print(w io.Writer)
}

// rootNode is the first node of the top level sibling list.
const rootNode = 1

// Dawg is a decoded word graph. It is immutable once loaded and may be
// shared between goroutines.
type Dawg struct {
	nodes []Node
	entry [AlphabetSize]int
}

// Letter returns the letter of the node at index.
func (d *Dawg) Letter(index int) byte {
	return d.nodes[index].Letter
}

// EndOfWord reports whether the node at index completes a word.
func (d *Dawg) EndOfWord(index int) bool {
	return d.nodes[index].EndOfWord
}

// EndOfList reports whether the node at index is last among its siblings.
func (d *Dawg) EndOfList(index int) bool {
	return d.nodes[index].EndOfList
}

// Child returns the first node of the next letter position, or 0.
func (d *Dawg) Child(index int) int {
	return d.nodes[index].Child
}

// Next returns the following sibling of the node at index, or 0 if it is
// the last one.
func (d *Dawg) Next(index int) int {
	if d.nodes[index].EndOfList {
		return 0
	}
	return index + 1
}

// Node returns the decoded record at index.
func (d *Dawg) Node(index int) Node {
	return d.nodes[index]
}

// Entry returns the top level node for words starting with letter, or 0
// if no word does.
func (d *Dawg) Entry(letter byte) int {
	i := LetterIndex(letter)
	if i < 0 {
		return 0
	}
	return d.entry[i]
}

// NumNodes returns the number of records in the graph, including the
// unused node 0.
func (d *Dawg) NumNodes() int {
	return len(d.nodes)
}

// NumWords counts the words in the graph.
func (d *Dawg) NumWords() int {
	count := 0
	d.Enumerate(func(index int, word []byte, final bool) EnumerationResult {
		if final {
			count++
		}
		return Continue
	})
	return count
}

// Enumerate will call the given method, passing it every possible prefix of words in the graph,
// depth first and in alphabetical order.
// Return Continue to continue enumeration, Skip to skip this branch, or Stop to stop enumeration.
func (d *Dawg) Enumerate(fn EnumFn) {
	if len(d.nodes) > rootNode {
		d.enumerate(rootNode, nil, fn)
	}
}

func (d *Dawg) enumerate(index int, word []byte, fn EnumFn) EnumerationResult {
	l := len(word)

	// for each sibling
	for ; index != 0; index = d.Next(index) {
		node := d.nodes[index]
		word = append(word[:l], node.Letter)

		result := fn(index, word, node.EndOfWord)
		if result == Stop {
			return Stop
		}

		// the child list comes before the next sibling
		if result == Continue && node.Child != 0 {
			if d.enumerate(node.Child, word, fn) == Stop {
				return Stop
			}
		}
	}

	return Continue
}

// Lexicon writes every word in the graph to w, one per line, and returns
// the number of words written.
func (d *Dawg) Lexicon(w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	count := 0
	var err error

	d.Enumerate(func(index int, word []byte, final bool) EnumerationResult {
		if !final {
			return Continue
		}
		count++
		if _, err = bw.Write(word); err == nil {
			err = bw.WriteByte('\n')
		}
		if err != nil {
			return Stop
		}
		return Continue
	})

	if err != nil {
		return count, err
	}
	return count, bw.Flush()
}

// Print writes every decoded node to w.
func (d *Dawg) Print(w io.Writer) {
	for i := rootNode; i < len(d.nodes); i++ {
		node := d.nodes[i]
		fmt.Fprintf(w, "[%6d] '%c' eow=%v eol=%v child=%d\n",
			i, node.Letter, node.EndOfWord, node.EndOfList, node.Child)
	}
}

var _ Finder = (*Dawg)(nil)
