// Package token provides tokenization support for JSON documents.
//
// [Tokenize] turns bytes into a slice of [Token]s, each carrying the
// 1-based row and column where it starts.
//
// [Tracker] keeps a line index of a source document and renders the
// excerpt and caret shown with tokenizer and parser diagnostics.
package token
