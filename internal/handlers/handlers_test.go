package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	plain, err := parseDay("2024-12-27")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC), plain)

	stamped, err := parseDay("2024-12-27T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, 15, stamped.Hour())

	_, err = parseDay("27/12/2024")
	assert.Error(t, err)
}

func TestStripUnpatchable(t *testing.T) {
	payload := map[string]interface{}{
		"title":     "Updated",
		"location":  nil,
		"_id":       "abc",
		"id":        "abc",
		"createdAt": "2024-01-01",
	}

	stripUnpatchable(payload)

	assert.Equal(t, map[string]interface{}{"title": "Updated"}, payload)
}
