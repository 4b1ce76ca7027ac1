package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yqhu-dev/wordtrainer/internal/testutil"
	"github.com/yqhu-dev/wordtrainer/internal/userdata"
)

// setConfigFile sets the global configFile variable and registers a cleanup to restore it.
func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

func TestLoadConfig(t *testing.T) {
	setConfigFile(t, testutil.SetupTestConfig(t, t.TempDir(), "https://example.mockapi.io/word_users"))

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://example.mockapi.io/word_users", cfg.API.BaseURL)
	assert.Equal(t, "alice", cfg.API.Username)
	assert.Equal(t, 4, cfg.Quiz.ChoiceCount)
}

func TestNewInteractiveCLIFetchesRecord(t *testing.T) {
	record := testutil.SampleRecord()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "alice", r.URL.Query().Get("username"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]userdata.Record{*record})
	}))
	defer server.Close()

	setConfigFile(t, testutil.SetupTestConfig(t, t.TempDir(), server.URL))

	base, cfg, cleanup, err := newInteractiveCLI(context.Background())
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, "alice", base.Username())
	assert.Equal(t, 4, cfg.Quiz.ChoiceCount)
	assert.Equal(t, 3, base.Store().Len())
}
