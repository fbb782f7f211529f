// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lin Onetwo

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

func TestValidate_RequiresDSN(t *testing.T) {
	cfg := &StructuredConfig{}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_FillsDefaults(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "wiki.db"}},
	}

	require.NoError(t, cfg.validate())
	assert.Equal(t, DefaultLoopInterval, cfg.Sync.LoopInterval)
	assert.Equal(t, DefaultStatusTimeout, cfg.Sync.StatusTimeout)
	assert.Equal(t, DefaultRequestTimeout, cfg.Sync.RequestTimeout)
	assert.Equal(t, DefaultAppName, cfg.App.Name)
}

func TestValidate_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{Name: "TidGi-Desktop"},
		Storage: Storage{DB: DB{DSN: "wiki.db"}},
		Sync: Sync{
			LoopInterval:  5 * time.Minute,
			StatusTimeout: time.Second,
		},
	}

	require.NoError(t, cfg.validate())
	assert.Equal(t, 5*time.Minute, cfg.Sync.LoopInterval)
	assert.Equal(t, time.Second, cfg.Sync.StatusTimeout)
	assert.Equal(t, DefaultRequestTimeout, cfg.Sync.RequestTimeout)
	assert.Equal(t, "TidGi-Desktop", cfg.App.Name)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_NAME", "TidGi-Desktop")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/wiki")
	t.Setenv("SYNC_LOOP_INTERVAL", "90s")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:5212")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "TidGi-Desktop", cfg.App.Name)
	assert.Equal(t, "postgres://localhost:5432/wiki", cfg.Storage.DB.DSN)
	assert.Equal(t, 90*time.Second, cfg.Sync.LoopInterval)
	assert.Equal(t, "127.0.0.1:5212", cfg.Server.HTTPAddress)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("SYNC_LOOP_INTERVAL", "not-a-duration")

	assert.Error(t, parseEnv(&StructuredConfig{}))
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"name": "TidGi-Desktop", "wiki_version": "5.2.3"},
		"storage": {"db": {"dsn": "wiki.db"}},
		"sync": {"loop_interval": "2m", "status_timeout": "5s", "full_html_path": "/tmp/index.html"},
		"server": {"http_address": "0.0.0.0:5212"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "TidGi-Desktop", cfg.App.Name)
	assert.Equal(t, "5.2.3", cfg.App.WikiVersion)
	assert.Equal(t, "wiki.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Sync.LoopInterval)
	assert.Equal(t, 5*time.Second, cfg.Sync.StatusTimeout)
	assert.Equal(t, "/tmp/index.html", cfg.Sync.FullHTMLPath)
	assert.Equal(t, "0.0.0.0:5212", cfg.Server.HTTPAddress)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))

	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "duration string", input: `"90s"`, want: 90 * time.Second},
		{name: "compound string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanosecond number", input: `60000000000`, want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}

	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
}

func TestConfigBuilder_MergePriority(t *testing.T) {
	first := &StructuredConfig{
		App:     App{Name: "from-first"},
		Storage: Storage{DB: DB{DSN: "first.db"}},
	}
	second := &StructuredConfig{
		App:  App{Name: "from-second", Version: "1.2.3"},
		Sync: Sync{LoopInterval: 2 * time.Minute},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)
	cfg, err := b.build()

	require.NoError(t, err)
	// mergo keeps the first non-zero value per field.
	assert.Equal(t, "from-first", cfg.App.Name)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "first.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Sync.LoopInterval)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    NetAddress
	}{
		{name: "localhost", input: "localhost:5212", want: NetAddress{Host: "localhost", Port: 5212}},
		{name: "ip", input: "192.168.1.10:8080", want: NetAddress{Host: "192.168.1.10", Port: 8080}},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad host", input: "not an ip:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
			assert.Equal(t, tt.input, addr.String())
		})
	}
}

func TestNetAddress_String_Empty(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "", addr.String())
}
