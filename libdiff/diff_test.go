package libdiff

import (
	"errors"
	"testing"

	"github.com/signadot/jsond/encode"
	"github.com/signadot/jsond/parse"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     string
	}{
		{
			name: "equal",
			from: `{"a":[1,2,{"b":null}]}`,
			to:   `{"a":[1,2,{"b":null}]}`,
		},
		{
			name: "leaf",
			from: `{"a":1}`,
			to:   `{"a":2}`,
			want: `{"a":{"-":1,"+":2}}`,
		},
		{
			name: "type change",
			from: `{"a":"1"}`,
			to:   `{"a":1}`,
			want: `{"a":{"-":"1","+":1}}`,
		},
		{
			name: "add and remove keys",
			from: `{"a":1,"b":2}`,
			to:   `{"b":2,"c":3}`,
			want: `{"a":{"-":1},"c":{"+":3}}`,
		},
		{
			name: "moved key",
			from: `{"a":1,"b":2}`,
			to:   `{"b":2,"a":5}`,
			want: `{"a":{"-":1,"+":5}}`,
		},
		{
			name: "nested",
			from: `{"x":{"y":{"z":true}}}`,
			to:   `{"x":{"y":{"z":false}}}`,
			want: `{"x":{"y":{"z":{"-":true,"+":false}}}}`,
		},
		{
			name: "array insert",
			from: `[1,2,3]`,
			to:   `[1,2,9,3]`,
			want: `{"+2":{"+":9}}`,
		},
		{
			name: "array remove",
			from: `[1,2,3]`,
			to:   `[1,3]`,
			want: `{"-1":{"-":2}}`,
		},
		{
			name: "array change",
			from: `[1,{"a":1},3]`,
			to:   `[1,{"a":2},3]`,
			want: `{"1":{"a":{"-":1,"+":2}}}`,
		},
		{
			name: "array replace run",
			from: `["a","b"]`,
			to:   `["c"]`,
			want: `{"0":{"-":"a","+":"c"},"-1":{"-":"b"}}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			from, err := parse.Parse([]byte(tc.from))
			if err != nil {
				t.Fatal(err)
			}
			to, err := parse.Parse([]byte(tc.to))
			if err != nil {
				t.Fatal(err)
			}
			d := Diff(from, to)
			if tc.want == "" {
				if d != nil {
					t.Errorf("want no diff, got %s", encode.MustString(d))
				}
				return
			}
			if d == nil {
				t.Fatalf("want %s, got no diff", tc.want)
			}
			if got := encode.MustString(d); got != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestIsLeafDiff(t *testing.T) {
	d, err := parse.Parse([]byte(`{"a":{"-":1,"+":2},"b":{"+":3}}`))
	if err != nil {
		t.Fatal(err)
	}
	if IsLeafDiff(d) {
		t.Errorf("outer diff reported as leaf")
	}
	if !IsLeafDiff(d.Get("a")) || !IsLeafDiff(d.Get("b")) {
		t.Errorf("leaf diffs not recognized")
	}
}

func TestPatchRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{`{"a":1}`, `{"a":2}`},
		{`{"a":1,"b":2}`, `{"b":2,"c":3}`},
		{`{"a":1,"b":2}`, `{"b":2,"a":5}`},
		{`{"x":{"y":{"z":true}}}`, `{"x":{"y":{"z":false,"w":[]}}}`},
		{`[1,2,3]`, `[1,2,9,3]`},
		{`[1,2,3]`, `[3]`},
		{`["a","b"]`, `["c"]`},
		{`[1,{"a":[1,2]},3,4]`, `[0,{"a":[2]},4,5,6]`},
		{`{"a":[1]}`, `{"a":{"0":1}}`},
		{`[]`, `[[],{}]`},
	}
	for _, p := range pairs {
		from, err := parse.Parse([]byte(p[0]))
		if err != nil {
			t.Fatal(err)
		}
		to, err := parse.Parse([]byte(p[1]))
		if err != nil {
			t.Fatal(err)
		}
		d := Diff(from, to)
		res, err := Patch(from, d)
		if err != nil {
			t.Errorf("%s -> %s: %v", p[0], p[1], err)
			continue
		}
		if rd := Diff(res, to); rd != nil {
			t.Errorf("%s -> %s: patched to %s", p[0], p[1], encode.MustString(res))
		}
		back, err := Patch(to, Diff(to, from))
		if err != nil {
			t.Errorf("%s <- %s: %v", p[0], p[1], err)
			continue
		}
		if rd := Diff(back, from); rd != nil {
			t.Errorf("%s <- %s: patched to %s", p[0], p[1], encode.MustString(back))
		}
		if got := encode.MustString(from); got != p[0] {
			t.Errorf("input modified: %s", got)
		}
	}
}

func TestPatchErrors(t *testing.T) {
	tests := []struct {
		doc, diff string
	}{
		{`{"a":1}`, `{"a":{"-":2,"+":3}}`},
		{`{"a":1}`, `{"b":{"-":1}}`},
		{`{"a":1}`, `{"a":{"+":1}}`},
		{`[1]`, `{"-3":{"-":1}}`},
		{`[1]`, `{"+5":{"+":1}}`},
		{`[1]`, `{"x":{"+":1}}`},
		{`{"a":1}`, `{"a":{"b":{"+":1}}}`},
	}
	for _, tc := range tests {
		doc, err := parse.Parse([]byte(tc.doc))
		if err != nil {
			t.Fatal(err)
		}
		d, err := parse.Parse([]byte(tc.diff))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := Patch(doc, d); !errors.Is(err, ErrPatch) {
			t.Errorf("%s with %s: got %v", tc.doc, tc.diff, err)
		}
	}
}
