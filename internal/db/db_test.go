package db

import (
	"context"
	"testing"

	"github.com/fittrack/apiserver/config"
)

func TestOpenHonorsCallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.Config{
		Database: config.DatabaseConfig{
			Host:     "localhost",
			Port:     54329,
			User:     "nobody",
			Password: "nobody",
			DBName:   "nowhere",
		},
	}

	if _, err := Open(ctx, cfg); err == nil {
		t.Fatal("expected Open to fail with a cancelled context")
	}
}
