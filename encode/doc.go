// Package encode writes [ir.Node] trees as JSON text, compact or indented,
// optionally colorized, and as YAML.
//
// [Encode] streams to an io.Writer; [ToJSON] writes into a caller
// supplied buffer and reports when it is too small.
package encode
