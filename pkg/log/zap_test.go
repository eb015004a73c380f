package log_test

import (
	"context"
	"testing"

	"gitlab-master-sync/pkg/log"
)

func TestRunID(t *testing.T) {
	ctx := context.Background()
	if got := log.RunID(ctx); got != "" {
		t.Errorf("expected empty run id, got %q", got)
	}

	ctx = log.WithRunID(ctx, "run-1")
	if got := log.RunID(ctx); got != "run-1" {
		t.Errorf("expected run-1, got %q", got)
	}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "development console", cfg: log.ZapConfig{Level: "debug", Encoding: "console", ColorEnabled: true}},
		{name: "production json", cfg: log.ZapConfig{Level: "warn", Mode: "production", Encoding: "json"}},
		{name: "invalid level", cfg: log.ZapConfig{Level: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("expected logger")
			}
			l.Debugf(log.WithRunID(context.Background(), "abc"), "hello %s", "world")
		})
	}

	log.NewNop().Info(context.Background(), "discarded")
}
