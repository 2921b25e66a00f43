package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWildcardSegment(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "literal slashes", raw: "2025-02-02/NOTICE/1", want: "2025-02-02/NOTICE/1"},
		{name: "encoded slashes", raw: "2025-02-02%2FNOTICE%2F1", want: "2025-02-02/NOTICE/1"},
		{name: "lowercase escapes", raw: "2025-02-02%2fNEWS%2f42", want: "2025-02-02/NEWS/42"},
		{name: "leading slashes from capture", raw: "//2025-02-02/NEWS/42", want: "2025-02-02/NEWS/42"},
		{name: "mixed", raw: "/2025-02-02%2FNEWS/42", want: "2025-02-02/NEWS/42"},
		{name: "plain passes through", raw: "unknown", want: "unknown"},
		{name: "utf-8", raw: "caf%C3%A9", want: "café"},
		{name: "plus is literal", raw: "a+b", want: "a+b"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeWildcardSegment(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeWildcardSegmentIsIdempotentOnDecodedKeys(t *testing.T) {
	once, err := DecodeWildcardSegment("2025-02-02%2FNEWS%2F42")
	require.NoError(t, err)

	twice, err := DecodeWildcardSegment(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestDecodeWildcardSegmentRejectsBadEscapes(t *testing.T) {
	_, err := DecodeWildcardSegment("2025-02-02%ZZNEWS")
	assert.Error(t, err)
}
