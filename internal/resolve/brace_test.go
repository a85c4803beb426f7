package resolve

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestExpandBraces - Alternatives, ranges, nesting, escapes
// ---------------------------------------------------------------------------

func TestExpandBraces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "no braces", pattern: "src/*.c", want: []string{"src/*.c"}},
		{name: "alternatives", pattern: "{a,b}.c", want: []string{"a.c", "b.c"}},
		{name: "prefix and suffix", pattern: "x{1,2}y", want: []string{"x1y", "x2y"}},
		{name: "two groups", pattern: "{a,b}{1,2}", want: []string{"a1", "a2", "b1", "b2"}},
		{name: "nested", pattern: "{a,{b,c}}.h", want: []string{"a.h", "b.h", "c.h"}},
		{name: "empty alternative", pattern: "main{,_test}.go", want: []string{"main.go", "main_test.go"}},
		{name: "numeric range", pattern: "f{1..3}", want: []string{"f1", "f2", "f3"}},
		{name: "descending range", pattern: "f{3..1}", want: []string{"f3", "f2", "f1"}},
		{name: "stepped range", pattern: "{1..9..4}", want: []string{"1", "5", "9"}},
		{name: "zero padded", pattern: "{08..10}", want: []string{"08", "09", "10"}},
		{name: "letter range", pattern: "{a..c}", want: []string{"a", "b", "c"}},
		{name: "single item stays literal", pattern: "{a}", want: []string{"{a}"}},
		{name: "unbalanced stays literal", pattern: "a{b,c", want: []string{"a{b,c"}},
		{name: "escaped brace", pattern: `\{a,b\}`, want: []string{"{a,b}"}},
		{name: "escaped comma", pattern: `{a\,b,c}`, want: []string{"a,b", "c"}},
		{name: "literal around expansion", pattern: "{{a,b}}", want: []string{"{a}", "{b}"}},
		{name: "mixed range", pattern: "{a..3}", want: []string{"{a..3}"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExpandBraces(tt.pattern)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandBraces(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestExpandBraces_Capped(t *testing.T) {
	t.Parallel()

	for _, pattern := range []string{"{1..200}{1..200}", "{1..9223372036854775807}"} {
		got := ExpandBraces(pattern)
		if len(got) != maxExpansions {
			t.Errorf("len(ExpandBraces(%q)) = %d, want %d", pattern, len(got), maxExpansions)
		}
	}
}

func TestExpandBraces_UnbalancedKeptLiterally(t *testing.T) {
	t.Parallel()

	got := ExpandBraces("{a,{b}")
	if len(got) != 1 || got[0] != "{a,{b}" {
		t.Errorf("ExpandBraces(%q) = %q, want it unchanged", "{a,{b}", got)
	}
}
