package feedback

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidRating(t *testing.T) {
	assert.True(t, ValidRating(RatingPositive))
	assert.True(t, ValidRating(RatingNegative))
	assert.False(t, ValidRating("meh"))
	assert.False(t, ValidRating(""))
}

func TestNewEntry_ClampsPreview(t *testing.T) {
	long := strings.Repeat("a", 500)
	entry := NewEntry("sess-1", 2, RatingPositive, long)

	assert.Len(t, entry.PostPreview, 100)
	assert.Equal(t, 2, entry.PostIndex)
	assert.Equal(t, RatingPositive, entry.Rating)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestNewEntry_ClampsPreviewOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 150)
	entry := NewEntry("sess-1", 0, RatingPositive, long)

	assert.True(t, utf8.ValidString(entry.PostPreview))
	assert.Equal(t, 100, utf8.RuneCountInString(entry.PostPreview))
}

func TestFileLog_AppendsJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.jsonl")
	log, err := NewFileLog(path)
	require.NoError(t, err)

	require.NoError(t, log.Record(NewEntry("s1", 0, RatingPositive, "great post")))
	require.NoError(t, log.Record(NewEntry("s1", 1, RatingNegative, "weak post")))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, entries, 2)
	assert.Equal(t, RatingPositive, entries[0].Rating)
	assert.Equal(t, 1, entries[1].PostIndex)
}

func TestFileLog_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "feedback.jsonl")
	log, err := NewFileLog(path)
	require.NoError(t, err)
	require.NoError(t, log.Record(NewEntry("", 0, RatingPositive, "x")))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileLog_ConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.jsonl")
	log, err := NewFileLog(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, log.Record(NewEntry("s", i, RatingPositive, "post")))
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		var e Entry
		assert.NoError(t, json.Unmarshal([]byte(line), &e), "line should be intact JSON: %s", line)
	}
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard{}.Record(Entry{}))
}
