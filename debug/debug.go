// Package debug holds tracing switches read from the environment.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Path   bool
	Encode bool
	Patch  bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("JSOND_DEBUG_TOKENS")
	d.Parse = boolEnv("JSOND_DEBUG_PARSE")
	d.Path = boolEnv("JSOND_DEBUG_PATH")
	d.Encode = boolEnv("JSOND_DEBUG_ENCODE")
	d.Patch = boolEnv("JSOND_DEBUG_PATCH")
	d.Eval = boolEnv("JSOND_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Path() bool {
	return d.Path
}
func Encode() bool {
	return d.Encode
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
