package pathutil

import (
	"net/url"
	"strings"
)

// DecodeWildcardSegment recovers a literal key from the remainder of a path
// captured by a wildcard route. Leading slashes left by the capture are
// dropped and the rest is percent-decoded, so "2025-02-02/NEWS/42" and
// "2025-02-02%2FNEWS%2F42" yield the same key.
func DecodeWildcardSegment(raw string) (string, error) {
	return url.PathUnescape(strings.TrimLeft(raw, "/"))
}
