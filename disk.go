package dawg

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"

	"github.com/milden6/dawg-anagram/errors"
)

/* FILE FORMAT
All integers are 32 bit little endian.

- 4 bytes: number of nodes, N
- N records of 4 bytes each. Record 0 is unused. For each record:
	- bits 0-7: letter, either 'A'..'Z' or an alphabet index 0..25
	- bit 8: end of list (last node among its siblings)
	- bit 9: end of word
	- bits 10-31: index of the first child, 0 if there is none

The top level sibling list starts at record 1. Every sibling list is a run
of consecutive records in strictly increasing letter order, ended by a record
with the end of list bit set.
*/

const recordLength = 4

// Load memory maps the named graph file and decodes it.
func Load(filename string) (*Dawg, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open graph %s", filename)
	}
	defer f.Close()

	return ReadAt(f, int64(f.Len()))
}

// ReadAt decodes a graph of size bytes from f. The declared node count is
// checked against size before any record is read.
func ReadAt(f io.ReaderAt, size int64) (*Dawg, error) {
	if size < recordLength {
		return nil, errors.New(errors.ErrCodeFormat, "graph is %d bytes, too short for a node count", size)
	}

	var header [recordLength]byte
	if _, err := f.ReadAt(header[:], 0); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read node count")
	}

	count := int64(binary.LittleEndian.Uint32(header[:]))
	if need := recordLength + count*recordLength; need > size {
		return nil, errors.New(errors.ErrCodeFormat,
			"graph declares %d nodes (%d bytes) but only %d bytes are available", count, need, size)
	}

	return Read(io.NewSectionReader(f, 0, size))
}

// Read decodes a graph from r: a node count followed by that many records.
func Read(r io.Reader) (*Dawg, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, readError(err, "read node count")
	}

	if count == 0 || count > MaxNodes {
		return nil, errors.New(errors.ErrCodeFormat, "node count %d out of range", count)
	}

	raw := make([]uint32, count)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return nil, readError(err, "read %d nodes", count)
	}

	return decode(raw)
}

// readError classifies a failed read: running out of data means the file is
// malformed, anything else is an I/O failure.
func readError(err error, format string, args ...any) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrap(errors.ErrCodeFormat, err, format, args...)
	}
	return errors.Wrap(errors.ErrCodeIO, err, format, args...)
}

func decode(raw []uint32) (*Dawg, error) {
	d := &Dawg{nodes: make([]Node, len(raw))}

	for i := rootNode; i < len(raw); i++ {
		node, ok := decodeNode(raw[i])
		if !ok {
			return nil, errors.New(errors.ErrCodeFormat,
				"node %d: letter byte 0x%02x is not in the alphabet", i, raw[i]&letterMask)
		}
		if node.Child >= len(raw) {
			return nil, errors.New(errors.ErrCodeFormat,
				"node %d: child %d is past the last node %d", i, node.Child, len(raw)-1)
		}
		d.nodes[i] = node
	}

	if err := d.checkLists(); err != nil {
		return nil, err
	}
	if err := d.checkCycles(); err != nil {
		return nil, err
	}

	d.fillEntries()
	return d, nil
}

// checkLists verifies that every sibling list reachable as a child is
// terminated and strictly ascending. The search stops scanning a list as
// soon as it passes the letter it wants, which is only correct for such
// lists.
func (d *Dawg) checkLists() error {
	if len(d.nodes) <= rootNode {
		return nil
	}

	checked := make([]bool, len(d.nodes))
	heads := []int{rootNode}
	for i := rootNode; i < len(d.nodes); i++ {
		if child := d.nodes[i].Child; child != 0 {
			heads = append(heads, child)
		}
	}

	for _, head := range heads {
		if checked[head] {
			continue
		}
		checked[head] = true

		var prev byte
		for i := head; ; i++ {
			if i >= len(d.nodes) {
				return errors.New(errors.ErrCodeFormat,
					"sibling list at node %d has no end of list marker", head)
			}
			node := d.nodes[i]
			if node.Letter <= prev {
				return errors.New(errors.ErrCodeFormat,
					"sibling list at node %d: '%c' at node %d does not follow '%c'", head, node.Letter, i, prev)
			}
			prev = node.Letter
			if node.EndOfList {
				break
			}
		}
	}

	return nil
}

// checkCycles verifies that no chain of child links from the root leads
// back to a sibling list that is still being walked. Enumerate follows child
// links without a depth limit, so such a graph would never finish.
func (d *Dawg) checkCycles() error {
	if len(d.nodes) <= rootNode {
		return nil
	}

	const (
		unvisited = iota
		onPath
		done
	)

	// a frame is a sibling list being walked: where it starts and the next
	// node in it whose child is still to be followed
	type frame struct{ head, next int }

	state := make([]uint8, len(d.nodes))
	state[rootNode] = onPath
	stack := []frame{{rootNode, rootNode}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == 0 {
			state[top.head] = done
			stack = stack[:len(stack)-1]
			continue
		}

		i := top.next
		top.next = d.Next(i)

		child := d.nodes[i].Child
		if child == 0 {
			continue
		}
		switch state[child] {
		case onPath:
			return errors.New(errors.ErrCodeFormat,
				"node %d: child %d leads back to a list on its own path", i, child)
		case unvisited:
			state[child] = onPath
			stack = append(stack, frame{child, child})
		}
	}

	return nil
}

func (d *Dawg) fillEntries() {
	if len(d.nodes) <= rootNode {
		return
	}
	for i := rootNode; i != 0; i = d.Next(i) {
		d.entry[LetterIndex(d.nodes[i].Letter)] = i
	}
}

// DumpFile prints the raw node table of a graph file. It does not validate
// the records, so it can be used on files that fail to load.
func DumpFile(w io.Writer, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "open graph %s", filename)
	}
	defer f.Close()

	return dump(w, f)
}

func dump(w io.Writer, r io.Reader) error {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return readError(err, "read node count")
	}
	fmt.Fprintf(w, "[%08x] NodeCount=%d\n", 0, count)

	var v uint32
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return readError(err, "read node %d of %d", i, count)
		}
		fmt.Fprintf(w, "[%08x] Node %d letter=0x%02x eol=%d eow=%d child=%d\n",
			recordLength*(i+1), i, v&letterMask, (v&endOfListMask)>>8, (v&endOfWordMask)>>9, v>>childShift)
	}

	return nil
}
