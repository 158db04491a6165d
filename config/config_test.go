package config_test

import (
	"testing"
	"time"

	"contact-book-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "memory")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "memory", cfg.StoreDriver)
		assert.Equal(t, "contacts", cfg.ContactsTable)
		assert.Equal(t, "public", cfg.PublicDir)
		assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("Should read overrides", func(t *testing.T) {
		t.Setenv("PORT", "8081")
		t.Setenv("STORE_DRIVER", "Postgres")
		t.Setenv("DATABASE_URL", "postgres://localhost/contacts")
		t.Setenv("DB_MAX_CONNS", "3")
		t.Setenv("SHUTDOWN_TIMEOUT", "30s")
		t.Setenv("FRONTEND_URL", "http://localhost:4000/")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8081", cfg.Port)
		assert.Equal(t, "postgres", cfg.StoreDriver)
		assert.Equal(t, int32(3), cfg.DBMaxConns)
		assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, "http://localhost:4000", cfg.FrontendURL)
	})

	t.Run("Should ignore malformed numbers", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("DB_MAX_CONNS", "many")
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, int32(10), cfg.DBMaxConns)
		assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("Should not truncate pool sizes beyond int32", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("DB_MAX_CONNS", "4294967299")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, int32(10), cfg.DBMaxConns)
	})

	t.Run("Should fail without a database url for postgres", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})
}
