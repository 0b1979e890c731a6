// Package dawgtest packs small word lists into the graph file format so tests
// can run against graphs without shipping a real word list.
package dawgtest

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"sort"
	"testing"

	dawg "github.com/milden6/dawg-anagram"
)

// Record packs one node.
func Record(letter byte, endOfWord, endOfList bool, child int) uint32 {
	v := uint32(letter) | uint32(child)<<10
	if endOfList {
		v |= 0x100
	}
	if endOfWord {
		v |= 0x200
	}
	return v
}

// Raw encodes records as a graph file. Record 0 is included as given, so
// callers building files by hand should pass 0 first.
func Raw(records ...uint32) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(len(records)))
	binary.Write(&buf, binary.LittleEndian, records)
	return buf.Bytes()
}

type trie struct {
	children map[byte]*trie
	final    bool
}

func (t *trie) letters() []byte {
	letters := make([]byte, 0, len(t.children))
	for ch := range t.children {
		letters = append(letters, ch)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// Records lays words out as an unminimized trie: the top level list at
// node 1 and every child list placed breadth first after it. Words must be
// upper case A to Z.
func Records(words ...string) []uint32 {
	root := &trie{children: map[byte]*trie{}}
	for _, word := range words {
		node := root
		for i := 0; i < len(word); i++ {
			ch := word[i]
			if ch < 'A' || ch > 'Z' {
				panic("dawgtest: word " + word + " is not upper case A-Z")
			}
			next, ok := node.children[ch]
			if !ok {
				next = &trie{children: map[byte]*trie{}}
				node.children[ch] = next
			}
			node = next
		}
		node.final = true
	}

	records := []uint32{0}
	place := func(t *trie) int {
		start := len(records)
		records = append(records, make([]uint32, len(t.children))...)
		return start
	}

	type pending struct {
		start int
		node  *trie
	}
	queue := []pending{{place(root), root}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		letters := item.node.letters()
		for j, ch := range letters {
			child := item.node.children[ch]
			first := 0
			if len(child.children) > 0 {
				first = place(child)
				queue = append(queue, pending{first, child})
			}
			records[item.start+j] = Record(ch, child.final, j == len(letters)-1, first)
		}
	}

	return records
}

// Build encodes words as a graph file.
func Build(words ...string) []byte {
	return Raw(Records(words...)...)
}

// New decodes a graph holding words, failing the test on error.
func New(tb testing.TB, words ...string) *dawg.Dawg {
	tb.Helper()
	g, err := dawg.Read(bytes.NewReader(Build(words...)))
	if err != nil {
		tb.Fatalf("decode test graph: %v", err)
	}
	return g
}

// WriteFile writes data into a temporary directory and returns its path.
func WriteFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
	return path
}
