package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "log_level: info\n")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 64)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, p, func(c Config) { changes <- c }, nil)
	}()

	// The watcher registers asynchronously; keep rewriting until a change lands.
	deadline := time.After(3 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case c := <-changes:
			if c.LogLevel != "debug" {
				t.Fatalf("reloaded cfg: %+v", c)
			}
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("watch: %v", err)
			}
			return
		case <-tick.C:
			if err := os.WriteFile(p, []byte("log_level: debug\n"), 0o644); err != nil {
				t.Fatalf("rewrite: %v", err)
			}
		case <-deadline:
			t.Fatalf("no reload observed")
		}
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "log_level: info\n")
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	got := 0
	go func() {
		for i := 0; i < 5; i++ {
			_ = os.WriteFile(d+"/other.yaml", []byte("x: 1\n"), 0o644)
			time.Sleep(20 * time.Millisecond)
		}
	}()
	if err := Watch(ctx, p, func(Config) { got++ }, nil); err != nil {
		t.Fatalf("watch: %v", err)
	}
	if got != 0 {
		t.Fatalf("unexpected reloads: %d", got)
	}
}
