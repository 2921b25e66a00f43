package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/catalog-service/pkg/util/errorutil"
)

func TestValidateUserRequests(t *testing.T) {
	err := Validate(CreateUserRequest{Username: "alice", Email: "not-an-email"})
	de := errorutil.ToDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, "Email must be a valid email address", de.Fields["email"])

	assert.NoError(t, Validate(CreateUserRequest{Username: "alice", Email: "alice@example.com"}))
}

func TestValidatePartialUpdates(t *testing.T) {
	assert.NoError(t, Validate(UpdateAuthorRequest{}))

	blank := ""
	err := Validate(UpdateAuthorRequest{FirstName: &blank})
	de := errorutil.ToDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, "First name is required", de.Fields["firstName"])
}

func TestValidateBookRequest(t *testing.T) {
	year := -4
	err := Validate(CreateBookRequest{Title: "Emma", PublicationYear: &year})
	de := errorutil.ToDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, "Publication year must be at least 0", de.Fields["publicationYear"])
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Effective start", humanize("effectiveStart"))
	assert.Equal(t, "Title", humanize("title"))
}
