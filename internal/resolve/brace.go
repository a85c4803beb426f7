package resolve

import (
	"strconv"
	"strings"
)

// maxExpansions caps brace expansion so patterns like {1..99999}{1..99999}
// cannot exhaust memory.
const maxExpansions = 10000

// ExpandBraces expands shell-style brace expressions: alternatives {a,b},
// nested braces, numeric ranges {1..10} with optional step {1..10..2} and
// zero padding {01..10}, and single-letter ranges {a..e}. A backslash escapes
// the next brace, comma or backslash. Braces that do not form a valid
// expression are kept literally, including an unbalanced outer brace around
// a valid inner one. The result holds at most 10000 patterns; further
// expansions are dropped without error.
func ExpandBraces(pattern string) []string {
	out := expand(pattern)
	for i, s := range out {
		out[i] = unescape(s)
	}
	return out
}

func expand(s string) []string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
			continue
		case '{':
		default:
			continue
		}

		end := matchingBrace(s, i)
		if end < 0 {
			continue
		}

		inner := s[i+1 : end]
		var alternatives []string
		if parts := splitTopLevel(inner); len(parts) > 1 {
			for _, part := range parts {
				alternatives = append(alternatives, expand(part)...)
			}
		} else if seq, ok := expandRange(inner); ok {
			alternatives = seq
		} else {
			continue
		}

		prefix := s[:i]
		suffixes := expand(s[end+1:])
		result := make([]string, 0, len(alternatives)*len(suffixes))
		for _, alt := range alternatives {
			for _, suffix := range suffixes {
				if len(result) >= maxExpansions {
					return result
				}
				result = append(result, prefix+alt+suffix)
			}
		}
		return result
	}
	return []string{s}
}

// matchingBrace returns the index of the '}' closing the '{' at open, or -1.
func matchingBrace(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits s on commas that are neither escaped nor nested.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// expandRange expands "x..y" or "x..y..step".
func expandRange(s string) ([]string, bool) {
	fields := strings.Split(s, "..")
	if len(fields) != 2 && len(fields) != 3 {
		return nil, false
	}

	step := 1
	if len(fields) == 3 {
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, false
		}
		if n < 0 {
			n = -n
		}
		if n != 0 {
			step = n
		}
	}

	if from, err := strconv.Atoi(fields[0]); err == nil {
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, false
		}
		return intRange(fields[0], fields[1], from, to, step), true
	}

	if len(fields[0]) == 1 && len(fields[1]) == 1 && isLetter(fields[0][0]) && isLetter(fields[1][0]) {
		return charRange(fields[0][0], fields[1][0], step), true
	}
	return nil, false
}

func intRange(fromText, toText string, from, to, step int) []string {
	width := 0
	if isPadded(fromText) || isPadded(toText) {
		width = max(len(fromText), len(toText))
	}

	format := func(n int) string {
		text := strconv.Itoa(abs(n))
		if pad := width - len(text); n < 0 {
			if pad-1 > 0 {
				text = strings.Repeat("0", pad-1) + text
			}
			return "-" + text
		} else if pad > 0 {
			text = strings.Repeat("0", pad) + text
		}
		return text
	}

	var out []string
	if from <= to {
		for n := from; n <= to && len(out) < maxExpansions; n += step {
			out = append(out, format(n))
		}
	} else {
		for n := from; n >= to && len(out) < maxExpansions; n -= step {
			out = append(out, format(n))
		}
	}
	return out
}

func charRange(from, to byte, step int) []string {
	var out []string
	if from <= to {
		for c := int(from); c <= int(to); c += step {
			out = append(out, string(rune(c)))
		}
	} else {
		for c := int(from); c >= int(to); c -= step {
			out = append(out, string(rune(c)))
		}
	}
	return out
}

// isPadded reports whether a range bound is written with a leading zero.
func isPadded(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// unescape drops the backslash in front of brace syntax characters.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && strings.IndexByte(`{},\`, s[i+1]) >= 0 {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
