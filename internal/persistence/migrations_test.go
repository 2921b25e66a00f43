package persistence

import (
	"io"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsAreOrdered(t *testing.T) {
	src, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)

	versions := []uint{first}
	for v := first; ; {
		next, err := src.Next(v)
		if err != nil {
			break
		}
		versions = append(versions, next)
		v = next
	}
	assert.Equal(t, []uint{1, 2, 3}, versions)
}

func TestMessageKeyIsNotASecondUpsertArbiter(t *testing.T) {
	src, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	defer src.Close()

	body, _, err := src.ReadUp(3)
	require.NoError(t, err)
	defer body.Close()

	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	sql := string(raw)

	assert.Contains(t, sql, "DROP CONSTRAINT IF EXISTS messages_msg_id_key")
	assert.Contains(t, sql, "CREATE INDEX IF NOT EXISTS idx_messages_msg_id ON messages (msg_id)")
	assert.False(t, strings.Contains(strings.ToUpper(sql), "UNIQUE INDEX"))
}
