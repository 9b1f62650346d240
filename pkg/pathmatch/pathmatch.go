// Package pathmatch implements find -path / -ipath matching semantics.
//
// It follows fnmatch(3) without FNM_PATHNAME:
//   - * matches any characters including /
//   - ? matches exactly one character including /
//   - [...] matches one character from the set including /
//   - \ escapes the next character
//
// This differs from Go's filepath.Match where * does not cross directory separators.
// Matchers built with FoldCase behave like find -ipath, which is what asset
// trees with mixed-case extensions (TRACK01.AUD next to voice.aud) need.
package pathmatch

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Option tweaks how patterns are compiled.
type Option func(*options)

type options struct {
	fold bool
}

// FoldCase makes matching case-insensitive.
func FoldCase() Option {
	return func(o *options) {
		o.fold = true
	}
}

// Match reports whether path matches the pattern using find -path semantics.
func Match(pattern, path string, opts ...Option) (bool, error) {
	re, err := compile(pattern, collect(opts))
	if err != nil {
		return false, err
	}

	return re.MatchString(path), nil
}

// Matcher pre-compiles patterns for reuse across many paths.
type Matcher struct {
	patterns []*regexp.Regexp
}

// NewMatcher compiles the given patterns into a reusable matcher.
func NewMatcher(patterns []string, opts ...Option) (*Matcher, error) {
	o := collect(opts)
	matcher := &Matcher{patterns: make([]*regexp.Regexp, len(patterns))}

	for idx, p := range patterns {
		re, err := compile(p, o)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}

		matcher.patterns[idx] = re
	}

	return matcher, nil
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// MatchAny reports whether path matches any of the compiled patterns.
func (m *Matcher) MatchAny(path string) bool {
	for _, re := range m.patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

type cacheKey struct {
	pattern string
	fold    bool
}

var cache sync.Map //nolint:gochecknoglobals // package-level cache is appropriate for compiled regexps

// compile converts a glob pattern to a compiled regexp, caching the result.
func compile(pattern string, o options) (*regexp.Regexp, error) {
	key := cacheKey{pattern: pattern, fold: o.fold}

	if v, ok := cache.Load(key); ok {
		cached, _ := v.(*regexp.Regexp) //nolint:errcheck // type is guaranteed by cache.Store below

		return cached, nil
	}

	expr, err := toRegexp(pattern)
	if err != nil {
		return nil, err
	}

	if o.fold {
		expr = "(?i)" + expr
	}

	compiled, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}

	cache.Store(key, compiled)

	return compiled, nil
}

// toRegexp converts a find -path glob pattern to an anchored regex string.
func toRegexp(pattern string) (string, error) {
	var buf strings.Builder

	buf.WriteString("^")

	for pos := 0; pos < len(pattern); {
		switch c := pattern[pos]; c {
		case '*':
			buf.WriteString("(?s:.*)")

			pos++
		case '?':
			buf.WriteString("(?s:.)")

			pos++
		case '[':
			end, err := closingBracket(pattern, pos)
			if err != nil {
				return "", err
			}

			buf.WriteString(bracketClass(pattern[pos+1 : end]))

			pos = end + 1
		case '\\':
			if pos+1 >= len(pattern) {
				return "", fmt.Errorf("trailing backslash in pattern %q", pattern)
			}

			buf.WriteString(regexp.QuoteMeta(pattern[pos+1 : pos+2]))

			pos += 2
		default:
			buf.WriteString(regexp.QuoteMeta(pattern[pos : pos+1]))

			pos++
		}
	}

	buf.WriteString("$")

	return buf.String(), nil
}

// bracketClass turns the body of a glob bracket expression into a regexp class.
// A leading ! negates; a backslash is taken literally inside the class.
func bracketClass(body string) string {
	var buf strings.Builder

	buf.WriteString("[")

	if strings.HasPrefix(body, "!") || strings.HasPrefix(body, "^") {
		buf.WriteString("^")

		body = body[1:]
	}

	for i := range len(body) {
		switch c := body[i]; c {
		case '\\', '[', ']', '^':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		default:
			buf.WriteByte(c)
		}
	}

	buf.WriteString("]")

	return buf.String()
}

// closingBracket finds the index of the ] closing the class that opens at pos.
func closingBracket(pattern string, pos int) (int, error) {
	idx := pos + 1

	if idx < len(pattern) && (pattern[idx] == '!' || pattern[idx] == '^') {
		idx++
	}

	// A ] right after the opening bracket (or its negation) is literal.
	if idx < len(pattern) && pattern[idx] == ']' {
		idx++
	}

	if end := strings.IndexByte(pattern[idx:], ']'); end >= 0 {
		return idx + end, nil
	}

	return 0, fmt.Errorf("unclosed character class in pattern %q", pattern)
}
