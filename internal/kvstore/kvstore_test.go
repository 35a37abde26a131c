package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/Simplici0/housecost/internal/config"
	"github.com/Simplici0/housecost/internal/db"
	"github.com/Simplici0/housecost/internal/migrations"
)

func exerciseKV(t *testing.T, kv KV, key string) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, key); err != nil || ok {
		t.Fatalf("Get on missing key: ok=%v err=%v", ok, err)
	}

	if err := kv.Put(ctx, key, []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if err := kv.Put(ctx, key, []byte(`[]`)); err != nil {
		t.Fatalf("second Put: %v", err)
	}

	value, ok, err := kv.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected key %q to exist", key)
	}
	if string(value) != `[]` {
		t.Fatalf("value = %q, want the last written blob", value)
	}
}

func TestMemory(t *testing.T) {
	exerciseKV(t, NewMemory(), "configs")
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if err := m.Put(ctx, "k", []byte("abc")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	value, _, _ := m.Get(ctx, "k")
	value[0] = 'z'

	again, _, _ := m.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("stored value was mutated through Get: %q", again)
	}
}

func TestSQLite(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "kv-test.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	store := NewSQLite(database)
	exerciseKV(t, store, "configs")

	var rows int
	if err := database.QueryRow(`SELECT COUNT(*) FROM kv_entries`).Scan(&rows); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected upsert to keep a single row, got %d", rows)
	}
}

func TestRedis(t *testing.T) {
	rawURL := os.Getenv("REDIS_URL")
	if rawURL == "" {
		t.Skip("REDIS_URL not set")
	}

	store, err := DialRedis(context.Background(), rawURL, "housecost-test:"+uuid.NewString()+":")
	if err != nil {
		t.Fatalf("DialRedis: %v", err)
	}
	defer store.Close()
	defer store.client.Del(context.Background(), store.prefix+"configs")

	exerciseKV(t, store, "configs")
}

func TestOpen_SQLiteMigratesSchema(t *testing.T) {
	cfg := config.Config{StoreDriver: config.StoreSQLite, DBPath: filepath.Join(t.TempDir(), "open.db")}

	kv, closer, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closer.Close()

	if _, ok := kv.(*SQLite); !ok {
		t.Fatalf("expected *SQLite, got %T", kv)
	}
	exerciseKV(t, kv, "configs")
}

func TestOpen_Memory(t *testing.T) {
	kv, closer, err := Open(context.Background(), config.Config{StoreDriver: config.StoreMemory})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok := kv.(*Memory); !ok {
		t.Fatalf("expected *Memory, got %T", kv)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, _, err := Open(context.Background(), config.Config{StoreDriver: "etcd"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
