package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"j": JSONFormat, "json": JSONFormat, "y": YAMLFormat, "yaml": YAMLFormat} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("%q: got %v %v", in, got, err)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil || !f.IsYAML() || f.Suffix() != ".yaml" {
		t.Errorf("UnmarshalText: %v %v", f, err)
	}
	if JSONFormat.String() != "json" || Format(9).String() == "" {
		t.Errorf("String")
	}
}
