package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/wellday/internal/constants"
)

func TestSetAndGetConnectionString(t *testing.T) {
	gokeyring.MockInit()

	testConnStr := "postgres://testuser@localhost:5432/testdb?sslmode=disable"
	if err := SetConnectionString(testConnStr); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	retrieved, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() failed: %v", err)
	}
	if retrieved != testConnStr {
		t.Errorf("GetConnectionString() = %q, want %q", retrieved, testConnStr)
	}
}

func TestSetConnectionStringEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("   "); err == nil {
		t.Error("SetConnectionString with blank input should return an error")
	}
}

func TestDeleteConnectionString(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("postgres://testuser@localhost:5432/testdb"); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}
	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() failed: %v", err)
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetConnectionString() after delete error = %v, want %v", err, ErrNotFound)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteConnectionString() error = %v, want %v", err, ErrNotFound)
	}
}

func TestResolveConnectionString(t *testing.T) {
	gokeyring.MockInit()
	_ = DeleteConnectionString()

	t.Setenv(constants.EnvDBConnection, "")
	if _, _, ok, err := ResolveConnectionString(); ok || err != nil {
		t.Errorf("empty resolve = ok %v, err %v; want nothing", ok, err)
	}

	if err := SetConnectionString("postgres://keyring@localhost/db"); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}
	connStr, source, ok, err := ResolveConnectionString()
	if err != nil || !ok || source != "keyring" || connStr != "postgres://keyring@localhost/db" {
		t.Errorf("keyring resolve = %q from %q (ok %v, err %v)", connStr, source, ok, err)
	}

	t.Setenv(constants.EnvDBConnection, "postgres://env@localhost/db")
	connStr, source, _, _ = ResolveConnectionString()
	if source != constants.EnvDBConnection || connStr != "postgres://env@localhost/db" {
		t.Errorf("env resolve = %q from %q, want env to win", connStr, source)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false, want true in mock mode")
	}
}
