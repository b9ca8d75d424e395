package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("STORAGE_DRIVER", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadBytes)
	assert.Equal(t, "", cfg.Storage.Driver)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "2048")
	t.Setenv("STORAGE_DRIVER", "MinIO")
	t.Setenv("COMPRESS_IMAGES", "false")
	t.Setenv("JWT_TTL_MINUTES", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	assert.Equal(t, "minio", cfg.Storage.Driver)
	assert.False(t, cfg.CompressImages)
	assert.Equal(t, 60*24, cfg.JWTTTLMinutes)
}

func TestAllowedOriginsDeduplicates(t *testing.T) {
	cfg := &Config{
		FrontendURL:        "https://app.prolinked.de",
		CORSAllowedOrigins: []string{"https://app.prolinked.de/", " https://admin.prolinked.de ", ""},
	}
	assert.Equal(t, []string{"https://app.prolinked.de", "https://admin.prolinked.de"}, cfg.AllowedOrigins())
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList("a, ,b"))
}
