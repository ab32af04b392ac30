// Package httppart implements the HttpPart and Mismatch data model
// shared between the structural matchers and the request/response
// orchestration layer.
package httppart

// BodyState discriminates whether a body is absent, explicitly null,
// or present with bytes.
type BodyState int

const (
	Missing BodyState = iota
	NullBody
	Present
)

// Body carries the presence state plus, for Present, the raw bytes
// and an optional declared media type (usually from Content-Type).
type Body struct {
	State     BodyState
	Bytes     []byte
	MediaType string
}

// MissingBody constructs a Body in the Missing state.
func MissingBody() Body { return Body{State: Missing} }

// NullBodyValue constructs a Body in the Null state.
func NullBodyValue() Body { return Body{State: NullBody} }

// PresentBody constructs a Body in the Present state.
func PresentBody(b []byte, mediaType string) Body {
	return Body{State: Present, Bytes: b, MediaType: mediaType}
}

// HttpPart is the method/status, path, query, headers and body of a
// request or response under match. Method is meaningful for requests,
// Status for responses; both may be zero-valued when not applicable.
type HttpPart struct {
	Method  string
	Status  int
	Path    string
	Query   map[string][]string
	Headers map[string][]string
	Body    Body
}

// HeaderValue performs a case-insensitive header lookup, returning
// the stored values and whether the key was present.
func (h HttpPart) HeaderValue(key string) ([]string, bool) {
	for k, v := range h.Headers {
		if equalFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// MismatchKind is the stable discriminator string carried by every
// Mismatch variant, used for JSON serialisation and test assertions.
type MismatchKind string

const (
	MethodMismatch     MismatchKind = "MethodMismatch"
	PathMismatch       MismatchKind = "PathMismatch"
	StatusMismatch     MismatchKind = "StatusMismatch"
	QueryMismatch      MismatchKind = "QueryMismatch"
	HeaderMismatch     MismatchKind = "HeaderMismatch"
	BodyTypeMismatch   MismatchKind = "BodyTypeMismatch"
	BodyMismatch       MismatchKind = "BodyMismatch"
	MetadataMismatch   MismatchKind = "MetadataMismatch"
)

// Mismatch is a diagnostic record describing one point of divergence
// between expected and actual. Equality compares only the structural
// fields (Kind, Path, Key, Expected, Actual) and ignores Description,
// so test assertions comparing expected-vs-observed mismatch sets are
// stable across wording changes.
type Mismatch struct {
	Kind        MismatchKind
	Path        string
	Key         string
	Expected    string
	Actual      string
	Description string
}

// Equal implements the spec's description-ignoring equality.
func (m Mismatch) Equal(other Mismatch) bool {
	return m.Kind == other.Kind &&
		m.Path == other.Path &&
		m.Key == other.Key &&
		m.Expected == other.Expected &&
		m.Actual == other.Actual
}

// EqualSets reports whether two mismatch lists contain the same
// elements under Equal, ignoring order and Description.
func EqualSets(a, b []Mismatch) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, ma := range a {
		found := false
		for j, mb := range b {
			if used[j] {
				continue
			}
			if ma.Equal(mb) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func Method(expected, actual, description string) Mismatch {
	return Mismatch{Kind: MethodMismatch, Expected: expected, Actual: actual, Description: description}
}

func PathMismatchOf(expected, actual, description string) Mismatch {
	return Mismatch{Kind: PathMismatch, Expected: expected, Actual: actual, Description: description}
}

func Status(expected, actual, description string) Mismatch {
	return Mismatch{Kind: StatusMismatch, Expected: expected, Actual: actual, Description: description}
}

func Query(key, expected, actual, description string) Mismatch {
	return Mismatch{Kind: QueryMismatch, Key: key, Expected: expected, Actual: actual, Description: description}
}

func Header(key, expected, actual, description string) Mismatch {
	return Mismatch{Kind: HeaderMismatch, Key: key, Expected: expected, Actual: actual, Description: description}
}

func BodyType(expected, actual, description string) Mismatch {
	return Mismatch{Kind: BodyTypeMismatch, Expected: expected, Actual: actual, Description: description}
}

func Body_(path, expected, actual, description string) Mismatch {
	return Mismatch{Kind: BodyMismatch, Path: path, Expected: expected, Actual: actual, Description: description}
}

func Metadata(key, expected, actual, description string) Mismatch {
	return Mismatch{Kind: MetadataMismatch, Key: key, Expected: expected, Actual: actual, Description: description}
}
