package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

// CompileGlob translates a glob pattern into a compiled regular
// expression. Matching is case-insensitive and `/` is the path
// separator; single-segment wildcards never cross it.
//
// Translation rules:
//   - `*` matches zero or more characters excluding `/`
//   - `?` matches exactly one character excluding `/`
//   - leading `**/` optionally matches any number of leading segments
//   - trailing `/**` matches the prefix followed by `/` and anything
//   - interior `**` between separators matches across arbitrarily many
//     intervening segments
//   - regex metacharacters are escaped and matched literally
func CompileGlob(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty glob pattern")
	}

	expr, err := translateGlob(pattern)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	return re, nil
}

// MatchGlob reports whether path matches the glob pattern. Compilation
// failures degrade to false rather than propagating.
func MatchGlob(pattern, path string) bool {
	re, err := CompileGlob(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(path)
}

// translateGlob builds the regex source for a glob pattern. The pattern
// is processed segment by segment so that a `**/`-prefixed and
// `/**`-suffixed pattern yields a single prefix and a single suffix
// rather than doubled `/.*` boundaries.
func translateGlob(pattern string) (string, error) {
	segments := strings.Split(pattern, "/")

	var b strings.Builder
	b.WriteString("(?i)^")

	// A bare ** matches every path.
	if len(segments) == 1 && segments[0] == "**" {
		b.WriteString(".*$")
		return b.String(), nil
	}

	needSep := false
	for i, seg := range segments {
		switch {
		case seg == "**" && i == 0:
			// Leading **/ covers zero or more whole segments.
			b.WriteString("(?:.*/)?")
			needSep = false
		case seg == "**" && i == len(segments)-1:
			// Trailing /** covers everything strictly under the prefix.
			b.WriteString("/.*")
			needSep = false
		case seg == "**":
			if needSep {
				b.WriteString("/")
			}
			b.WriteString("(?:.*/)?")
			needSep = false
		default:
			if needSep {
				b.WriteString("/")
			}
			b.WriteString(translateSegment(seg))
			needSep = true
		}
	}

	b.WriteString("$")
	return b.String(), nil
}

// translateSegment converts one path segment, which contains no `/`.
func translateSegment(seg string) string {
	var b strings.Builder
	for _, r := range seg {
		switch r {
		case '*':
			b.WriteString("[^/]*")
		case '?':
			b.WriteString("[^/]")
		case '.', '+', '^', '$', '{', '}', '(', ')', '|', '[', ']', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
