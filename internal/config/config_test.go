package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_OnMissingFile_ShouldReturnDefaultsAndFailValidation(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "", s.App().APIURL())
	assert.Equal(t, time.Minute, s.App().FetchInterval())
	assert.Equal(t, "Asia/Kolkata", s.App().Timezone())
	assert.Equal(t, FormatJSON, s.Storage().Format())
	assert.Equal(t, 3, s.Retry().MaxAttempts())

	assert.EqualError(t, s.Validate(), "apiUrl is required")
}

func Test_OnJSONBody_ShouldReadOriginalKeys(t *testing.T) {
	path := writeConfig(t, `{"apiUrl": "http://mock/price", "fetchInterval": 1000, "outputPath": "out.json"}`)

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	assert.Equal(t, "http://mock/price", s.App().APIURL())
	assert.Equal(t, time.Second, s.App().FetchInterval())
	assert.Equal(t, filepath.Join(filepath.Dir(path), "out.json"), s.OutputFile())
	assert.Equal(t, 10*time.Second, s.App().RequestTimeout())
}

func Test_OnYAMLSections_ShouldOverrideDefaults(t *testing.T) {
	path := writeConfig(t, `
apiUrl: https://api.example.com/bpi.json
fetchInterval: 5000
outputPath: /var/lib/btc/prices.jsonl
storage:
  format: jsonl
retry:
  maxAttempts: 5
  baseDelayMs: 200
  maxDelayMs: 2000
kafka:
  brokers: ["k1:9092", "k2:9092"]
redis:
  addr: localhost:6379
  ttlSeconds: 30
telegram:
  token: abc
  chatId: 42
`)

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	assert.Equal(t, "/var/lib/btc/prices.jsonl", s.OutputFile())
	assert.Equal(t, FormatJSONLines, s.Storage().Format())
	assert.Equal(t, 5, s.Retry().MaxAttempts())
	assert.Equal(t, 200*time.Millisecond, s.Retry().BaseDelay())
	assert.Equal(t, 2*time.Second, s.Retry().MaxDelay())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, s.Kafka().Brokers())
	assert.Equal(t, "btc-prices", s.Kafka().Topic())
	assert.Equal(t, 30*time.Second, s.Redis().TTL())
	assert.Equal(t, "btc", s.Redis().KeyPrefix())
	assert.Equal(t, int64(42), s.Telegram().ChatID())
	assert.Equal(t, "disable", s.Postgres().SSLMode())
}

func Test_OnMalformedFile_ShouldFail(t *testing.T) {
	path := writeConfig(t, "apiUrl: [unterminated")

	_, err := Load(path)
	assert.Error(t, err)
}

func Test_OnInvalidValues_ShouldFailValidation(t *testing.T) {
	cases := map[string]string{
		"bad scheme":    `{"apiUrl": "ftp://host/x"}`,
		"zero interval": `{"apiUrl": "http://host/x", "fetchInterval": 0}`,
		"empty output":  `{"apiUrl": "http://host/x", "outputPath": ""}`,
		"bad timezone":  `{"apiUrl": "http://host/x", "timezone": "Mars/Olympus"}`,
		"empty layout":  `{"apiUrl": "http://host/x", "timeLayout": ""}`,
		"blank layout":  `{"apiUrl": "http://host/x", "timeLayout": "  "}`,
		"bad format":    `{"apiUrl": "http://host/x", "storage": {"format": "csv"}}`,
		"no attempts":   `{"apiUrl": "http://host/x", "retry": {"maxAttempts": 0}}`,
		"inverted":      `{"apiUrl": "http://host/x", "retry": {"baseDelayMs": 10, "maxDelayMs": 1}}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := Load(writeConfig(t, body))
			require.NoError(t, err)
			assert.Error(t, s.Validate())
		})
	}
}
