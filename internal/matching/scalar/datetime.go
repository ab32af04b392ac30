package scalar

import (
	"fmt"
	"strings"
	"time"
)

// javaToGoLayout translates a Java SimpleDateFormat-compatible pattern
// (spec §9: "yyyy-MM-dd HH:mm:ssZZZ") into a Go reference-time layout
// string. Only the token vocabulary actually used by Pact contracts
// (date/time/timestamp matchers) is translated; unrecognised runs of
// letters pass through verbatim, which is safe because contract
// authors only ever use the documented subset.
//
// The pattern is walked token-by-token (a token is a maximal run of
// one repeated pattern letter, or a single-quoted literal) rather than
// via chained substring replacement: replacing "yyyy"→"2006" etc. in
// sequence would corrupt later tokens whose Go replacement happens to
// contain letters an earlier rule also matches (e.g. "MMMM"→"January"
// introduces an "a" that a later "a"→"PM" rule would then rewrite).
func javaToGoLayout(pattern string) string {
	var b strings.Builder
	i, n := 0, len(pattern)

	for i < n {
		c := pattern[i]

		if c == '\'' {
			j := i + 1
			for j < n && pattern[j] != '\'' {
				j++
			}
			if j >= n {
				b.WriteString(pattern[i+1:])
				i = n
				continue
			}
			if j == i+1 {
				b.WriteByte('\'') // '' is a literal single quote
			} else {
				b.WriteString(pattern[i+1 : j])
			}
			i = j + 1
			continue
		}

		if isPatternLetter(c) {
			j := i
			for j < n && pattern[j] == c {
				j++
			}
			b.WriteString(translateToken(pattern[i:j]))
			i = j
			continue
		}

		b.WriteByte(c)
		i++
	}

	return b.String()
}

func isPatternLetter(c byte) bool {
	switch c {
	case 'y', 'M', 'd', 'H', 'h', 'm', 's', 'S', 'a', 'Z', 'X', 'E':
		return true
	}
	return false
}

// translateToken maps one maximal run of a single pattern letter (e.g.
// "yyyy", "MMM", "ZZ") to its Go layout equivalent. Run lengths outside
// the documented Pact subset pass through unchanged.
func translateToken(token string) string {
	switch token {
	case "yyyy":
		return "2006"
	case "yy":
		return "06"
	case "MMMM":
		return "January"
	case "MMM":
		return "Jan"
	case "MM":
		return "01"
	case "dd":
		return "02"
	case "HH":
		return "15"
	case "hh":
		return "03"
	case "mm":
		return "04"
	case "ss":
		return "05"
	case "SSS":
		return "000"
	case "a":
		return "PM"
	case "ZZZ":
		return "-0700"
	case "ZZ":
		return "-07:00"
	case "Z":
		return "-0700"
	case "XXX":
		return "Z07:00"
	case "EEEE":
		return "Monday"
	case "EEE":
		return "Mon"
	default:
		return token
	}
}

// matchTemporal parses actual against a Java-SimpleDateFormat-style
// format and reports success or a mismatch message quoting both the
// value and the format, per spec §4.2 and §7.
func matchTemporal(kind string, actual, format string) (bool, string) {
	layout := javaToGoLayout(format)
	if _, err := time.Parse(layout, actual); err != nil {
		return false, fmt.Sprintf("Expected '%s' to match a %s format of '%s': %s", actual, kind, format, err.Error())
	}
	return true, ""
}
