package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetConnectionString(t *testing.T) {
	gokeyring.MockInit()

	connStr := "postgres://eco@localhost:5432/eco?sslmode=disable"
	if err := SetConnectionString(connStr); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() failed: %v", err)
	}
	if got != connStr {
		t.Errorf("GetConnectionString() = %q, want %q", got, connStr)
	}
}

func TestSetEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := Set("someone", ""); err == nil {
		t.Error("Set with an empty secret should fail")
	}
}

func TestDeleteAndNotFound(t *testing.T) {
	gokeyring.MockInit()

	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteConnectionString() on empty keyring = %v, want ErrNotFound", err)
	}

	if err := SetConnectionString("postgres://eco@localhost/eco"); err != nil {
		t.Fatal(err)
	}
	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() failed: %v", err)
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetConnectionString() after delete = %v, want ErrNotFound", err)
	}
}

func TestCheckStatus(t *testing.T) {
	gokeyring.MockInit()

	if s := CheckStatus(); !s.Available || s.HasSecret {
		t.Errorf("empty keyring status = %+v", s)
	}

	if err := SetConnectionString("postgres://eco@localhost/eco"); err != nil {
		t.Fatal(err)
	}
	if s := CheckStatus(); !s.Available || !s.HasSecret {
		t.Errorf("populated keyring status = %+v", s)
	}

	gokeyring.MockInitWithError(errors.New("no dbus"))
	if s := CheckStatus(); s.Available {
		t.Errorf("failing keyring status = %+v", s)
	}
}
