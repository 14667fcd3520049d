package output

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbench/docbench/internal/model"
)

func TestJSONWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.jsonl")

	w, err := NewJSONWriter(path)
	require.NoError(t, err)

	m := sampleMetrics()
	require.NoError(t, w.Write(m))
	m.DocumentID = "def67890"
	require.NoError(t, w.Write(m))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	// One JSON object per line.
	var lines []model.BenchmarkMetrics
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var got model.BenchmarkMetrics
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &got))
		lines = append(lines, got)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, lines, 2)
	assert.Equal(t, "abc12345", lines[0].DocumentID)
	assert.Equal(t, "def67890", lines[1].DocumentID)
	assert.Equal(t, 75.0, lines[0].TokenReductionPercent)
}
