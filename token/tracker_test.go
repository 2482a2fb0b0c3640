package token

import (
	"bytes"
	"strings"
	"testing"
)

func TestTrackerLines(t *testing.T) {
	tr := NewTracker([]byte("a\r\nb\n\nc"))
	want := []Line{{1, "a"}, {2, "b"}, {3, ""}, {4, "c"}}
	got := tr.Lines()
	if len(got) != len(want) {
		t.Fatalf("got %d lines want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %v want %v", i, got[i], want[i])
		}
	}
	if _, ok := tr.Line(5); ok {
		t.Errorf("line 5 should not exist")
	}
}

func TestExcerpt(t *testing.T) {
	src := "1\n2\n3\n4\n5\n6 x\n7"
	tr := NewTracker([]byte(src))
	got := tr.Excerpt(6, 3)
	want := strings.Join([]string{
		"2 | 2",
		"3 | 3",
		"4 | 4",
		"5 | 5",
		"6 | 6 x",
		"  |   ^",
		"",
	}, "\n")
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestExcerptWide(t *testing.T) {
	tr := NewTracker([]byte("[\"日本\", @]"))
	got := tr.Excerpt(1, 8)
	want := "1 | [\"日本\", @]\n  | " + strings.Repeat(" ", 9) + "^\n"
	if got != want {
		t.Errorf("got\n%q\nwant\n%q", got, want)
	}
}

func TestReport(t *testing.T) {
	src := []byte("{\n  \"a\": tru\n}")
	_, err := Tokenize(nil, src)
	if err == nil {
		t.Fatal("expected error")
	}
	buf := bytes.NewBuffer(nil)
	if werr := NewTracker(src).Report(buf, err); werr != nil {
		t.Fatal(werr)
	}
	out := buf.String()
	if !strings.Contains(out, "bad literal") {
		t.Errorf("missing message in %q", out)
	}
	if !strings.HasSuffix(out, "2 |   \"a\": tru\n  | "+strings.Repeat(" ", 7)+"^\n") {
		t.Errorf("unexpected excerpt %q", out)
	}
}
