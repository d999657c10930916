package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.ClientState.Backend)
	assert.Equal(t, "http://localhost:8080", cfg.ClientState.APIURL)
	assert.Equal(t, "localhost:6379", cfg.Redis.GetAddr())
}

func TestValidate_RejectsBadPort(t *testing.T) {
	cfg := &Config{
		Server:      ServerConfig{Port: 0},
		ClientState: ClientStateConfig{Backend: "memory"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = 8080
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsUnknownBackend(t *testing.T) {
	cfg := &Config{
		Server:      ServerConfig{Port: 8080},
		ClientState: ClientStateConfig{Backend: "localstorage"},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RedisBackendNeedsHost(t *testing.T) {
	cfg := &Config{
		Server:      ServerConfig{Port: 8080},
		ClientState: ClientStateConfig{Backend: "redis"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Redis.Host = "localhost"
	assert.NoError(t, cfg.Validate())
}
