package db

import (
	"context"
	"testing"
)

func TestOpen_SQLiteInMemory(t *testing.T) {
	store, err := Open(context.Background(), Config{URL: "sqlite://file:dbtest?mode=memory&cache=shared"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close(context.Background())

	if store.Driver != DriverRelational {
		t.Fatalf("expected relational driver, got %s", store.Driver)
	}
	if err := store.Users.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestOpen_UnsupportedURL(t *testing.T) {
	if _, err := Open(context.Background(), Config{URL: "redis://localhost:6379"}); err == nil {
		t.Fatalf("expected error for unsupported url")
	}
}

func TestIsMongoURL(t *testing.T) {
	cases := map[string]bool{
		"mongodb://localhost:27017":         true,
		"mongodb+srv://cluster.example.com": true,
		"postgres://localhost/pos":          false,
		"sqlite://./pos.db":                 false,
	}
	for url, want := range cases {
		if got := isMongoURL(url); got != want {
			t.Fatalf("isMongoURL(%q) = %v, want %v", url, got, want)
		}
	}
}
