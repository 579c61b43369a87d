package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMessageAppendsLogLine(t *testing.T) {
	chdirTemp(t)

	ev := ReviewPostedEvent{
		ReviewID:   "r-1",
		PlaceID:    "p-1",
		PlaceTitle: "Cozy Cabin",
		UserID:     "u-1",
		Rating:     4,
		PostedAt:   "2026-08-28T12:00:00Z",
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	require.NoError(t, handleMessage(body))
	require.NoError(t, handleMessage(body), "appending twice must not truncate")

	raw, err := os.ReadFile(filepath.Join("logs", "reviews.log"))
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "review_id=r-1")
	assert.Contains(t, content, `place="Cozy Cabin"`)
	assert.Contains(t, content, "rating=4")
	assert.Equal(t, 2, countLines(content))
}

func chdirTemp(t *testing.T) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
}

func countLines(s string) int {
	n := 0
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
	chdirTemp(t)
	assert.Error(t, handleMessage([]byte("not json")))
}
