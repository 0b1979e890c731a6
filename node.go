package dawg

// These values define the layout of a node record.
const (
	letterMask    = 0x000000ff
	endOfListMask = 0x00000100
	endOfWordMask = 0x00000200
	childShift    = 10

	// MaxNodes is the largest node count a child field can address.
	MaxNodes = 1 << (32 - childShift)
)

// AlphabetSize is the number of letters a graph can hold.
const AlphabetSize = 26

// Alphabet lists the letters of a graph in their canonical order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Node is a decoded graph record.
type Node struct {
	// Letter is an upper case letter 'A' to 'Z'.
	Letter byte

	// EndOfWord is set when the path to this node spells a complete word.
	EndOfWord bool

	// EndOfList is set on the last node of a sibling list.
	EndOfList bool

	// Child is the index of the first node of the next letter position,
	// or 0 if no word continues past this node.
	Child int
}

// decodeNode unpacks a raw record. The letter byte is either the ASCII code
// of an upper case letter or its index in the alphabet; anything else is
// reported as invalid.
func decodeNode(v uint32) (Node, bool) {
	node := Node{
		EndOfWord: v&endOfWordMask != 0,
		EndOfList: v&endOfListMask != 0,
		Child:     int(v >> childShift),
	}

	ch := byte(v & letterMask)
	switch {
	case ch >= 'A' && ch <= 'Z':
		node.Letter = ch
	case ch < AlphabetSize:
		node.Letter = 'A' + ch
	default:
		return node, false
	}

	return node, true
}

// LetterIndex returns the position of ch in the alphabet, or -1 if ch is not
// an upper case letter.
func LetterIndex(ch byte) int {
	if ch < 'A' || ch > 'Z' {
		return -1
	}
	return int(ch - 'A')
}
