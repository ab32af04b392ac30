package scalar

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// sniffMediaType detects the media type of raw bytes. Declared is the
// media type the caller already knows (e.g. from a Content-Type
// header); when non-empty it's trusted over sniffing, matching the
// behaviour of real HTTP stacks where the header is authoritative.
func sniffMediaType(declared string, data []byte) string {
	if declared != "" {
		return baseMediaType(declared)
	}
	return mimetype.Detect(data).String()
}

// baseMediaType strips any "; charset=..." parameters, leaving just
// the "type/subtype" portion for comparison.
func baseMediaType(contentType string) string {
	if idx := strings.IndexByte(contentType, ';'); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.TrimSpace(contentType)
}

// matchContentType implements the ContentType(media) scalar rule:
// sniff actual bytes (or trust a declared type) and compare media
// types for equality.
func matchContentType(expectedMedia string, declaredActual string, actualBytes []byte) (bool, string) {
	actualMedia := sniffMediaType(declaredActual, actualBytes)
	expectedBase := baseMediaType(expectedMedia)
	if actualMedia != expectedBase {
		return false, fmt.Sprintf("Expected content type '%s' but detected content type '%s'", expectedBase, actualMedia)
	}
	return true, ""
}
