// Package testutil provides shared test helpers: config file fixtures and
// canned user records.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yqhu-dev/wordtrainer/internal/userdata"
	"github.com/yqhu-dev/wordtrainer/internal/wordbook"
)

// SetupTestConfig writes a minimal config file pointing the trainer at the
// given record collection URL and returns the config file path.
func SetupTestConfig(t *testing.T, tmpDir, baseURL string) string {
	t.Helper()

	configContent := fmt.Sprintf(`api:
  base_url: %s
  username: alice
  retry_attempts: 0
quiz:
  choice_count: 4
outputs:
  report_directory: %s
`,
		baseURL,
		filepath.Join(tmpDir, "reports"),
	)

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	return configPath
}

// SampleRecord returns a small user record with one two-word meaning group,
// one mastered word and one wrong-list entry.
func SampleRecord() *userdata.Record {
	return &userdata.Record{
		ID:       "1",
		Username: "alice",
		Words: []wordbook.Word{
			{English: "cat", Chinese: "猫", Score: -1, Date: "2025-01-01"},
			{English: "feline", Chinese: "猫", Score: 0, Date: "2025-01-01"},
			{English: "dog", Chinese: "狗", Score: 2, Date: "2025-01-02"},
		},
		Wrong: []wordbook.WrongEntry{
			{Meaning: "猫", Correct: []string{"cat", "feline"}},
		},
	}
}
