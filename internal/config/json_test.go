package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", input: `"30s"`, want: 30 * time.Second},
		{name: "hour string", input: `"12h"`, want: 12 * time.Hour},
		{name: "numeric nanoseconds", input: `5000000000`, want: 5 * time.Second},
		{name: "garbage string", input: `"not-a-duration"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON_RoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))

	var back Duration
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}

func Test_parseJSON(t *testing.T) {
	body := `{
		"app": {
			"admin_email": "admin@netflix.com",
			"admin_access_code": "786391",
			"token_sign_key": "secret",
			"token_duration": "1h"
		},
		"storage": {"db": {"driver": "sqlite3", "dsn": "roster.db"}},
		"server": {"http_address": "localhost:9090", "request_timeout": "45s"},
		"panel": {"server_address": "http://localhost:9090", "poll_interval": "3s"},
		"workers": {"resync_interval": "10m"}
	}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "admin@netflix.com", cfg.App.AdminEmail)
	assert.Equal(t, "786391", cfg.App.AdminAccessCode)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "roster.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:9090", cfg.Panel.ServerAddress)
	assert.Equal(t, 3*time.Second, cfg.Panel.PollInterval)
	assert.Equal(t, 10*time.Minute, cfg.Workers.ResyncInterval)
}

func Test_parseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func Test_parseJSON_MalformedBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
}
