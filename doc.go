// Package jsond is an embeddable JSON document engine.
//
// Text is parsed with [FromJSON] into an [ir.Node] tree which can be
// read and modified by dot path ([Query], [Update], [Add], [Delete]),
// walked key by key ([Begin], [NextKey]) and written back with
// [ToJSON] or [ToJSONPretty].
//
// A path command is a dot separated list of keys: "a.b.2" addresses
// element 2 of the array at key "b" of the object at key "a".  Segments
// are made of the characters [A-Za-z0-9_].
//
// The lower level packages are usable directly: token, parse, ir,
// encode, libdiff, patch and eval.
package jsond
