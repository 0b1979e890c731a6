/*
Package dawg reads the compact word graphs used by anagram solvers: a
Directed Acyclic Word Graph stored as a flat array of 32 bit nodes.

Each node holds a letter, an end of word flag, an end of list flag and the
index of its first child. The nodes that can follow a given prefix form a
sibling list: a run of consecutive nodes in alphabetical order whose last
node has the end of list flag set. Words are spelled by following child
links from the top level list, which starts at node 1. Node 0 is never used,
so a child index of 0 means that no word continues. A summary of the data
format is found at the top of disk.go.

Graphs are read-only. Open one with Load(), which memory maps the file,
decodes every node once and verifies the sibling lists, or decode one from
any stream with Read(). A loaded *Dawg can be shared by any number of
goroutines.

The Finder interface exposes the per-node queries used by the anagram
search (Letter, EndOfWord, EndOfList, Child, Next and Entry), plus
Enumerate() and Lexicon() which walk the whole graph and are used to check
that a file decodes into a sensible word list.
*/
package dawg
