package routing

import "strings"

// Params holds variables extracted from a path.
type Params map[string]string

// Pattern is a parsed route pattern: "/"-separated segments, each either a
// literal or a "{name}" variable. There are no wildcards or optional parts.
type Pattern struct {
	raw      string
	segments []segment
	literals int
}

type segment struct {
	value    string // literal text, or the variable name
	variable bool
}

// ParsePattern parses a route pattern. Empty segments are dropped, so "/a//b/"
// and "a/b" parse the same.
func ParsePattern(pattern string) Pattern {
	p := Pattern{raw: pattern}
	for _, s := range splitPath(pattern) {
		if isVariable(s) {
			p.segments = append(p.segments, segment{value: s[1 : len(s)-1], variable: true})
			continue
		}
		p.segments = append(p.segments, segment{value: s})
		p.literals++
	}
	return p
}

func (p Pattern) String() string { return p.raw }

// Specificity is the number of literal segments. Among patterns matching the
// same path, the higher score is the more specific one.
func (p Pattern) Specificity() int { return p.literals }

// Variables returns the variable names in segment order.
func (p Pattern) Variables() []string {
	var out []string
	for _, s := range p.segments {
		if s.variable {
			out = append(out, s.value)
		}
	}
	return out
}

// Match matches path segment by segment. It fails when the segment counts
// differ or a literal differs (case-sensitive). Variables bind the raw path
// segment; no decoding or coercion happens here.
func (p Pattern) Match(path string) (Params, bool) {
	parts := splitPath(path)
	if len(parts) != len(p.segments) {
		return nil, false
	}
	params := make(Params)
	for i, s := range p.segments {
		if s.variable {
			params[s.value] = parts[i]
			continue
		}
		if s.value != parts[i] {
			return nil, false
		}
	}
	return params, true
}

// Match parses pattern and matches it against path.
//
//	routing.Match("/boards/{id}", "/boards/42")       // {id: "42"}, true
//	routing.Match("/boards/{id}", "/boards/42/extra") // nil, false
func Match(pattern, path string) (Params, bool) {
	return ParsePattern(pattern).Match(path)
}

// Specificity returns the number of literal segments of pattern.
func Specificity(pattern string) int {
	return ParsePattern(pattern).Specificity()
}

func splitPath(path string) []string {
	var out []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func isVariable(s string) bool {
	return len(s) > 2 && s[0] == '{' && s[len(s)-1] == '}'
}
