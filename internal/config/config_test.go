package config

import (
	"os"
	"testing"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	for _, k := range []string{"APP_ENV", "PORT", "DB_PATH", "STORE_DRIVER", "REDIS_URL", "REDIS_KEY_PREFIX"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.Port != "8080" || cfg.DBPath != "./housecost.db" || cfg.StoreDriver != StoreSQLite {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.IsDev() {
		t.Fatalf("expected development mode by default")
	}
}

func TestLoad_UnknownDriverFallsBackToSQLite(t *testing.T) {
	chdirTemp(t)
	t.Setenv("STORE_DRIVER", "Mongo")

	if got := Load().StoreDriver; got != StoreSQLite {
		t.Fatalf("StoreDriver = %q, want sqlite", got)
	}
}

func TestLoad_ReadsRedisSettings(t *testing.T) {
	chdirTemp(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORE_DRIVER", "REDIS")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")
	t.Setenv("REDIS_KEY_PREFIX", "hc:")

	cfg := Load()

	if cfg.StoreDriver != StoreRedis || cfg.RedisURL != "redis://cache:6379/2" || cfg.RedisKeyPrefix != "hc:" {
		t.Fatalf("unexpected redis config: %+v", cfg)
	}
	if cfg.IsDev() {
		t.Fatalf("production must not be dev")
	}
}
