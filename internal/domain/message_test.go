package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveMessageKey(t *testing.T) {
	day := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-02-02/NEWS/42", DeriveMessageKey(day, MessageTypeNews, 42))
	assert.Equal(t, "2025-02-02/NOTICE/1", DeriveMessageKey(day, MessageTypeNotice, 1))
}

func TestDeriveMessageKeyIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 2, 2, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, DeriveMessageKey(morning, MessageTypeAlert, 7), DeriveMessageKey(evening, MessageTypeAlert, 7))
}

func TestDeriveMessageKeyIsStableAndUnique(t *testing.T) {
	start := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)
	types := []MessageType{MessageTypeNews, MessageTypeNotice, MessageTypeAlert}

	seen := make(map[string]struct{})
	for d := 0; d < 5; d++ {
		day := start.AddDate(0, 0, d)
		for _, typ := range types {
			for issue := int64(-2); issue < 12; issue++ {
				key := DeriveMessageKey(day, typ, issue)
				assert.Equal(t, key, DeriveMessageKey(day, typ, issue))
				_, dup := seen[key]
				assert.False(t, dup, "duplicate key %s", key)
				seen[key] = struct{}{}
			}
		}
	}
	assert.Len(t, seen, 5*len(types)*14)
}

func TestMessageKeyMatchesTuple(t *testing.T) {
	msg := Message{
		EffectiveStart: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		Type:           MessageTypeNotice,
		Issue:          1,
	}

	assert.Equal(t, "2025-01-13/NOTICE/1", msg.Key())
}
