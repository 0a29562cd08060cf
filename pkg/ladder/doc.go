// Package ladder finds shortest word ladders: sequences of dictionary words in
// which each consecutive pair differs in exactly one letter position.
//
// The search is a breadth-first walk over the implicit one-letter-substitution
// graph of a dictionary.Dictionary. Neighbors are generated position by
// position (left to right) and, within a position, letter by letter (A to Z),
// so among several shortest ladders the same one is always returned.
//
// Each FindShortestPath call owns its queue and parent map; the dictionary is
// only read, so concurrent calls against one dictionary need no locking.
//
// Options add caller-side policy without changing the result of a search that
// completes: WithContext for cancellation, WithMaxExpansions for an iteration
// budget and WithOnExpand for instrumentation.
package ladder
