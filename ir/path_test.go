package ir

import (
	"errors"
	"testing"

	"github.com/signadot/jsond/ir/dotpath"
)

func sample() *Node {
	return FromKeyVals([]KeyVal{
		{"name", FromString("jsond")},
		{"tags", FromSlice([]*Node{FromString("a"), FromString("b"), FromString("c")})},
		{"meta", FromKeyVals([]KeyVal{
			{"size", FromInt(3)},
			{"owner", FromKeyVals([]KeyVal{{"id", FromInt(7)}})},
		})},
	})
}

func TestQuery(t *testing.T) {
	doc := sample()
	tests := []struct {
		cmd  string
		want string
	}{
		{"name", "jsond"},
		{"tags.1", "b"},
		{"meta.owner.id", "7"},
	}
	for _, tt := range tests {
		got, err := doc.Query(tt.cmd)
		if err != nil {
			t.Errorf("%s: %v", tt.cmd, err)
			continue
		}
		if got.Text != tt.want {
			t.Errorf("%s: got %q want %q", tt.cmd, got.Text, tt.want)
		}
	}
	live, _ := doc.Query("meta")
	if live != doc.Get("meta") {
		t.Errorf("query did not return the live node")
	}
}

func TestQueryErrors(t *testing.T) {
	doc := sample()
	tests := []struct {
		cmd     string
		wantErr error
		seg     string
	}{
		{"nope", ErrNotFound, "nope"},
		{"tags.3", ErrNotFound, "3"},
		{"tags.01", ErrNotFound, "01"},
		{"name.x", ErrNotFound, "x"},
		{"meta..size", dotpath.ErrCommand, ""},
	}
	for _, tt := range tests {
		_, err := doc.Query(tt.cmd)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: got %v want %v", tt.cmd, err, tt.wantErr)
			continue
		}
		var le *LookupError
		if errors.As(err, &le) && le.Segment != tt.seg {
			t.Errorf("%s: segment %q want %q", tt.cmd, le.Segment, tt.seg)
		}
	}
}

func TestUpdate(t *testing.T) {
	doc := sample()
	if err := doc.Update("meta.size", FromInt(4)); err != nil {
		t.Fatal(err)
	}
	if doc.MustQuery("meta.size").Text != "4" {
		t.Errorf("size not updated")
	}
	if err := doc.Update("tags.0", FromBool(false)); err != nil {
		t.Fatal(err)
	}
	if doc.MustQuery("tags.0").Type != BoolType {
		t.Errorf("tags.0 not updated")
	}
	before := doc.Clone()
	if err := doc.Update("meta.missing", Null()); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v", err)
	}
	if err := doc.Update("tags.3", Null()); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v", err)
	}
	if !Equal(doc, before) {
		t.Errorf("failed update changed the document")
	}
}

func TestAdd(t *testing.T) {
	doc := sample()
	if err := doc.Add("x.y.z", FromInt(1)); err != nil {
		t.Fatal(err)
	}
	if doc.MustQuery("x.y.z").Text != "1" {
		t.Errorf("x.y.z missing")
	}
	if x := doc.Get("x"); x.Type != ObjectType || x.ParentIndex != 3 {
		t.Errorf("x not appended as object")
	}
	if err := doc.Add("meta.extra", FromString("e")); err != nil {
		t.Fatal(err)
	}
	if got := keys(doc.Get("meta")); !sameStrings(got, []string{"size", "owner", "extra"}) {
		t.Errorf("meta keys %v", got)
	}
	if err := doc.Add("name", FromString("replaced")); err != nil {
		t.Fatal(err)
	}
	if doc.Get("name").Text != "replaced" || doc.Get("name").ParentIndex != 0 {
		t.Errorf("existing key not replaced in place")
	}
	if err := doc.Add("tags.3", FromString("d")); err != nil {
		t.Fatal(err)
	}
	if err := doc.Add("tags.4.k", FromString("v")); err != nil {
		t.Fatal(err)
	}
	if doc.MustQuery("tags.4.k").Text != "v" {
		t.Errorf("tags.4.k missing")
	}
}

func TestAddErrors(t *testing.T) {
	doc := sample()
	before := doc.Clone()
	tests := []struct {
		cmd     string
		wantErr error
	}{
		{"tags.9", ErrRange},
		{"tags.x", ErrRange},
		{"tags.9.a.b", ErrRange},
		{"name.sub", ErrContainer},
		{"bad path", dotpath.ErrCommand},
	}
	for _, tt := range tests {
		if err := doc.Add(tt.cmd, Null()); !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: got %v want %v", tt.cmd, err, tt.wantErr)
		}
	}
	if !Equal(doc, before) {
		t.Errorf("failed add changed the document")
	}
	if err := FromInt(1).Add("a", Null()); !errors.Is(err, ErrContainer) {
		t.Errorf("add on scalar root: %v", err)
	}
}

func TestDelete(t *testing.T) {
	doc := sample()
	if err := doc.Delete("tags.0"); err != nil {
		t.Fatal(err)
	}
	if got := keys(doc.Get("tags")); !sameStrings(got, []string{"0", "1"}) {
		t.Errorf("tags keys %v", got)
	}
	if doc.MustQuery("tags.0").Text != "b" {
		t.Errorf("tags.0 = %s", doc.MustQuery("tags.0").Text)
	}
	if err := doc.Delete("meta.owner"); err != nil {
		t.Fatal(err)
	}
	if err := doc.Delete("meta.owner"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: %v", err)
	}
	if got := keys(doc.Get("meta")); !sameStrings(got, []string{"size"}) {
		t.Errorf("meta keys %v", got)
	}
}
