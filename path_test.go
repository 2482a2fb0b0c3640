package jsond

import (
	"errors"
	"testing"

	"github.com/signadot/jsond/encode"
	"github.com/signadot/jsond/ir"
	"github.com/signadot/jsond/ir/dotpath"
)

type pathTest struct {
	Path  string
	Doc   string
	Res   string
	NoGet bool
	Err   error
}

var pathTests = []pathTest{
	{
		Path: "a",
		Doc:  `{"a":null}`,
		Res:  "null",
	},
	{
		Path: "0",
		Doc:  "[1,2,3]",
		Res:  "1",
	},
	{
		Path: "1.f",
		Doc:  `[0, {"f": 2, "g": 3}]`,
		Res:  "2",
	},
	{
		Path: "f.3",
		Doc:  `{"a": [1,2], "f": [0,1,2,"three"]}`,
		Res:  `"three"`,
	},
	{
		Path: "a_b.C9",
		Doc:  `{"a_b": {"C9": {"x": []}}}`,
		Res:  `{"x":[]}`,
	},
	{
		NoGet: true,
		Path:  "f.4",
		Doc:   `{"f": [0,1,2,"three"]}`,
		Err:   ir.ErrNotFound,
	},
	{
		NoGet: true,
		Path:  "f.01",
		Doc:   `{"f": [0,1]}`,
		Err:   ir.ErrNotFound,
	},
	{
		NoGet: true,
		Path:  "a.b",
		Doc:   `{"a": 1}`,
		Err:   ir.ErrNotFound,
	},
	{
		NoGet: true,
		Path:  "a..b",
		Doc:   `{"a": {"b": 1}}`,
		Err:   dotpath.ErrCommand,
	},
	{
		NoGet: true,
		Path:  "a-b",
		Doc:   `{"a-b": 1}`,
		Err:   dotpath.ErrCommand,
	},
}

func TestPathQuery(t *testing.T) {
	SetErrorOutput(discard{})
	defer SetErrorOutput(nil)
	for i := range pathTests {
		pathTest := &pathTests[i]
		node, err := FromJSON([]byte(pathTest.Doc))
		if err != nil {
			t.Errorf("# doc\n%s\n---\n# %v\n", pathTest.Doc, err)
			continue
		}
		res, err := Query(pathTest.Path, node)
		if pathTest.NoGet {
			if !errors.Is(err, pathTest.Err) {
				t.Errorf("%s on %s: got %v want %v", pathTest.Path, pathTest.Doc, err, pathTest.Err)
			}
			continue
		}
		if err != nil {
			t.Error(err)
			continue
		}
		if res == nil {
			t.Error("no result")
			continue
		}
		out := encode.MustString(res)
		if out != pathTest.Res {
			t.Errorf("got %q want %q", out, pathTest.Res)
		}
		if res.Root() != node {
			t.Errorf("%s: result is not part of the document", pathTest.Path)
		}
	}
}

type mutateTest struct {
	name string
	doc  string
	op   func(root *ir.Node) error
	want string
	err  error
}

var mutateTests = []mutateTest{
	{
		name: "update",
		doc:  `{"a":{"b":1},"c":2}`,
		op:   func(r *ir.Node) error { return Update("a.b", r, LoadString("x")) },
		want: `{"a":{"b":"x"},"c":2}`,
	},
	{
		name: "update array element",
		doc:  `[1,[2,3]]`,
		op:   func(r *ir.Node) error { return Update("1.0", r, LoadNull()) },
		want: `[1,[null,3]]`,
	},
	{
		name: "update missing",
		doc:  `{"a":1}`,
		op:   func(r *ir.Node) error { return Update("b", r, LoadTrue()) },
		want: `{"a":1}`,
		err:  ir.ErrNotFound,
	},
	{
		name: "add appends key",
		doc:  `{"b":1}`,
		op:   func(r *ir.Node) error { return Add("a", r, LoadInt(2)) },
		want: `{"b":1,"a":2}`,
	},
	{
		name: "add replaces existing",
		doc:  `{"a":1,"b":2}`,
		op:   func(r *ir.Node) error { return Add("a", r, LoadFalse()) },
		want: `{"a":false,"b":2}`,
	},
	{
		name: "add creates intermediates",
		doc:  `{}`,
		op:   func(r *ir.Node) error { return Add("x.y.z", r, LoadInt(1)) },
		want: `{"x":{"y":{"z":1}}}`,
	},
	{
		name: "add appends element",
		doc:  `{"a":[1]}`,
		op:   func(r *ir.Node) error { return Add("a.1", r, LoadInt(2)) },
		want: `{"a":[1,2]}`,
	},
	{
		name: "add past end",
		doc:  `{"a":[1]}`,
		op:   func(r *ir.Node) error { return Add("a.2", r, LoadInt(2)) },
		want: `{"a":[1]}`,
		err:  ir.ErrRange,
	},
	{
		name: "add under scalar",
		doc:  `{"a":1}`,
		op:   func(r *ir.Node) error { return Add("a.b", r, LoadInt(2)) },
		want: `{"a":1}`,
		err:  ir.ErrContainer,
	},
	{
		name: "delete key",
		doc:  `{"a":1,"b":2,"c":3}`,
		op:   func(r *ir.Node) error { return Delete("b", r) },
		want: `{"a":1,"c":3}`,
	},
	{
		name: "delete element reindexes",
		doc:  `[0,1,2,3]`,
		op: func(r *ir.Node) error {
			if err := Delete("1", r); err != nil {
				return err
			}
			return Update("1", r, LoadString("two"))
		},
		want: `[0,"two",3]`,
	},
	{
		name: "delete missing",
		doc:  `{"a":1}`,
		op:   func(r *ir.Node) error { return Delete("b", r) },
		want: `{"a":1}`,
		err:  ir.ErrNotFound,
	},
}

func TestPathMutate(t *testing.T) {
	for i := range mutateTests {
		mt := &mutateTests[i]
		t.Run(mt.name, func(t *testing.T) {
			root, err := FromJSON([]byte(mt.doc))
			if err != nil {
				t.Fatal(err)
			}
			err = mt.op(root)
			if !errors.Is(err, mt.err) {
				t.Errorf("got error %v want %v", err, mt.err)
			}
			if got := encode.MustString(root); got != mt.want {
				t.Errorf("got %s want %s", got, mt.want)
			}
			if err := root.Validate(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestDeleteTwice(t *testing.T) {
	root, err := FromJSON([]byte(`{"a":{"b":1}}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := Delete("a.b", root); err != nil {
		t.Fatal(err)
	}
	if err := Delete("a.b", root); !errors.Is(err, ir.ErrNotFound) {
		t.Errorf("second delete: %v", err)
	}
	if got := encode.MustString(root); got != `{"a":{}}` {
		t.Errorf("got %s", got)
	}
}

func TestNilRoot(t *testing.T) {
	if _, err := Query("a", nil); !errors.Is(err, ir.ErrNotFound) {
		t.Errorf("query: %v", err)
	}
	if err := Add("a", nil, LoadNull()); err == nil {
		t.Error("add on nil root")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
