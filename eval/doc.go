// Package eval evaluates expressions against documents.
//
// [Eval] runs an expr-lang expression with the document bound to doc
// and the helper functions query and has, which resolve dot paths
// against the document.  [Select] applies an RFC 9535 JSONPath query.
//
// Values cross into and out of expressions as the types produced by
// encoding/json: map[string]any, []any, string, float64, bool and nil.
package eval
