package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("FIREBASE_DATABASE_URL", "https://demo-project.firebasedatabase.app/")
	t.Setenv("FIREBASE_STORAGE_BUCKET", "demo-project.appspot.com")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SCANNER_TIMEOUT", "10s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "demo-project.appspot.com", cfg.Firebase.StorageBucket)
	assert.Equal(t, 10*time.Second, cfg.Scanner.Timeout)
	assert.Equal(t, 15*time.Second, cfg.Firebase.CallTimeout)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("FIREBASE_DATABASE_URL", "")
	t.Setenv("FIREBASE_STORAGE_BUCKET", "demo-project.appspot.com")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetDurationEnv_Invalid(t *testing.T) {
	t.Setenv("SOME_DURATION", "not-a-duration")
	assert.Equal(t, time.Minute, getDurationEnv("SOME_DURATION", time.Minute))
}

func TestGetStringSliceEnv(t *testing.T) {
	t.Setenv("SOME_LIST", "a, b ,c")
	assert.Equal(t, []string{"a", "b", "c"}, getStringSliceEnv("SOME_LIST", nil))

	assert.Equal(t, []string{"*"}, getStringSliceEnv("SOME_LIST_UNSET", []string{"*"}))
}
