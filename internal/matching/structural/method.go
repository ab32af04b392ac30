package structural

import (
	"fmt"
	"strings"

	"github.com/pact-foundation/pact-go-match/internal/matching/httppart"
)

// CompareMethod implements spec §4.5's method matcher: case-insensitive
// string equality, emitting a MethodMismatch on failure.
func CompareMethod(expected, actual string) []httppart.Mismatch {
	if strings.EqualFold(expected, actual) {
		return nil
	}
	return []httppart.Mismatch{httppart.Method(expected, actual,
		fmt.Sprintf("Expected method '%s' but received '%s'", expected, actual))}
}
