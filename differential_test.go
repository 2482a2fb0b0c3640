package jsond

import (
	"testing"

	"github.com/signadot/jsond/encode"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const diffDoc = `{
  "name": {"first": "Tom", "last": "Anderson"},
  "age": 37,
  "children": ["Sara", "Alex", "Jack"],
  "fav_movie": "Deer Hunter",
  "friends": [
    {"first": "Dale", "last": "Murphy", "age": 44, "nets": ["ig", "fb", "tw"]},
    {"first": "Roger", "last": "Craig", "age": 68, "nets": ["fb", "tw"]},
    {"first": "Jane", "last": "Murphy", "age": 47, "nets": ["ig", "tw"]}
  ],
  "ok": true,
  "none": null,
  "esc": "a\"b\\c\nd"
}`

var diffPaths = []string{
	"name",
	"name.last",
	"age",
	"children",
	"children.1",
	"friends.1.nets",
	"friends.2.age",
	"friends.0",
	"ok",
	"none",
	"esc",
}

func TestQueryMatchesGJSON(t *testing.T) {
	root, err := FromJSON([]byte(diffDoc))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range diffPaths {
		n, err := Query(p, root)
		if err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		want := gjson.Get(diffDoc, p)
		if !want.Exists() {
			t.Fatalf("%s: gjson found nothing", p)
		}
		got := encode.MustString(n)
		if got != string(pretty.Ugly([]byte(want.Raw))) {
			t.Errorf("%s: got %s, gjson %s", p, got, want.Raw)
		}
	}
	for _, p := range []string{"nope", "children.3", "name.first.x"} {
		if _, err := Query(p, root); err == nil || gjson.Get(diffDoc, p).Exists() {
			t.Errorf("%s: expected both to miss", p)
		}
	}
}

func TestAddMatchesSJSON(t *testing.T) {
	tests := []struct {
		path string
		raw  string
	}{
		{"age", `38`},
		{"zip", `"02139"`},
		{"name.middle", `{"initial":"Q"}`},
		{"children.3", `"Ann"`},
		{"friends.1.nets.0", `"li"`},
		{"new.deep.key", `[1,2]`},
	}
	for _, tc := range tests {
		root, err := FromJSON([]byte(diffDoc))
		if err != nil {
			t.Fatal(err)
		}
		v, err := FromJSON([]byte(`[` + tc.raw + `]`))
		if err != nil {
			t.Fatal(err)
		}
		if err := Add(tc.path, root, v.Values[0]); err != nil {
			t.Errorf("%s: %v", tc.path, err)
			continue
		}
		want, err := sjson.SetRaw(diffDoc, tc.path, tc.raw)
		if err != nil {
			t.Fatal(err)
		}
		got := encode.MustString(root)
		if got != string(pretty.Ugly([]byte(want))) {
			t.Errorf("%s:\ngot  %s\nwant %s", tc.path, got, pretty.Ugly([]byte(want)))
		}
	}
}

func TestDeleteMatchesSJSON(t *testing.T) {
	for _, p := range []string{"age", "name.first", "children.0", "friends.2.nets.1"} {
		root, err := FromJSON([]byte(diffDoc))
		if err != nil {
			t.Fatal(err)
		}
		if err := Delete(p, root); err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		want, err := sjson.Delete(diffDoc, p)
		if err != nil {
			t.Fatal(err)
		}
		if got := encode.MustString(root); got != string(pretty.Ugly([]byte(want))) {
			t.Errorf("%s:\ngot  %s\nwant %s", p, got, pretty.Ugly([]byte(want)))
		}
	}
}

func TestMinifyMatchesPretty(t *testing.T) {
	for _, src := range []string{diffDoc, "[ 1 , [ ] , { \"a\" : [ null ] } ]", "{\n\t\"k\" :\t\"v w\"\n}"} {
		got, err := Minify([]byte(src))
		if err != nil {
			t.Fatal(err)
		}
		if want := pretty.Ugly([]byte(src)); string(got) != string(want) {
			t.Errorf("got  %s\nwant %s", got, want)
		}
	}
}
