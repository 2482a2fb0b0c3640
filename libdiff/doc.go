// Package libdiff computes structural differences between documents.
//
// A diff is nil when the inputs are equal.  Otherwise it is a document
// following the shape of the inputs where each changed leaf is an object
// {"-": old, "+": new}, with "-" absent for insertions and "+" absent for
// deletions.  Array diffs are objects keyed by position: "i" for a
// changed element at position i of the new array, "-i" for an element
// removed from position i of the old array and "+i" for an element
// inserted at position i of the new array.
package libdiff
