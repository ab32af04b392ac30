package scalar

import (
	"sync"

	"github.com/dlclark/regexp2"
)

// regexCache memoizes compiled regexp2 patterns. regexp2 gives the
// Oniguruma/PCRE-like backreference and lookaround support that the
// wire contract's "regex" matcher dialect expects and Go's RE2-based
// stdlib regexp cannot provide (spec §9). The cache itself is the
// only process-wide state the matching core touches (spec §5); it is
// safe for concurrent use from any number of goroutines.
type regexCache struct {
	mu    sync.RWMutex
	cache map[string]*regexp2.Regexp
}

var globalRegexCache = &regexCache{cache: make(map[string]*regexp2.Regexp)}

func (c *regexCache) compile(pattern string) (*regexp2.Regexp, error) {
	c.mu.RLock()
	if re, ok := c.cache[pattern]; ok {
		c.mu.RUnlock()
		return re, nil
	}
	c.mu.RUnlock()

	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[pattern] = re
	c.mu.Unlock()

	return re, nil
}

// matchRegex compiles pattern (memoized) and reports whether it
// matches s in full-search mode (not anchored), along with a compile
// error if the pattern is invalid.
func matchRegex(pattern, s string) (bool, error) {
	re, err := globalRegexCache.compile(pattern)
	if err != nil {
		return false, err
	}
	m, err := re.MatchString(s)
	if err != nil {
		return false, err
	}
	return m, nil
}
