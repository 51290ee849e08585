package cli

import (
	"context"
	"path/filepath"
	"testing"
)

func TestRootCommandWiresSubcommands(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"start", "play", "migrate", "seed"} {
		sub, _, err := cmd.Find([]string{name})
		if err != nil || sub.Name() != name {
			t.Fatalf("expected subcommand %s, got %v err=%v", name, sub, err)
		}
	}
}

func TestMigrateRequiresPostgres(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	path := filepath.Join(t.TempDir(), "absent.yaml")
	if err := runMigrations(context.Background(), path); err == nil {
		t.Fatalf("expected error without postgres url")
	}
	if err := runSeed(context.Background(), path); err == nil {
		t.Fatalf("expected error without postgres url")
	}
}

func TestLoadRuntimeDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("SIGNAL_DRIVER", "")
	rt, err := loadRuntime(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load runtime: %v", err)
	}
	defer rt.Close()
	if rt.pool != nil || rt.redisClient != nil {
		t.Fatalf("expected in-memory runtime")
	}
	if rt.service == nil || rt.sink == nil {
		t.Fatalf("expected service and sink to be wired")
	}
}
