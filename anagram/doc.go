/*
Package anagram finds the words of a word graph that can be built from a bank
of letters.

A query is first normalized into a Bank: letters are upper cased, anything
that is not a letter or the '?' wildcard is dropped, and the result is sorted
with the wildcards in front. Search then walks the graph depth first,
consuming one bank character per letter and putting it back when it
backtracks. Each distinct character is tried once per position, so repeated
letters never produce the same word twice. A wildcard may stand for any
letter; the letters it supplies are reported in lower case, so "C?T" yields
"CaT" where "CAT" yields "CAT".

Results are grouped by first letter in alphabetical order. Within a group
they follow the order of the graph's sibling lists, which is alphabetical
among words that share a prefix but not a global sort.

Solver wraps the whole pipeline and adds the fixed single letter words "A"
and "I" when their letter is in the query:

	g, _ := dawg.Load("Traditional_Dawg_For_Word-List.dat")
	s := anagram.NewSolver(g, anagram.Options{})
	lines, _ := s.Query(ctx, "cat")
	// ACT AT CAT TA ... A _EOR
*/
package anagram
