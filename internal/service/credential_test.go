package service

import (
	"FileHaven/internal/apperr"
	"errors"
	"testing"
)

// TestRegisterAndVerify checks that a registered user can log in.
func TestRegisterAndVerify(t *testing.T) {
	cleanTables(t)

	user, err := Register("alice", "alice@test.com", "secret123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("user ID not assigned")
	}
	if user.Password == "secret123" {
		t.Fatal("password stored in plaintext")
	}

	got, err := Verify("alice@test.com", "secret123")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if got.ID != user.ID || got.UserName != "alice" {
		t.Fatalf("Verify returned wrong user: %+v", got)
	}
}

// TestRegisterDuplicateEmail checks the email uniqueness invariant.
func TestRegisterDuplicateEmail(t *testing.T) {
	cleanTables(t)

	if _, err := Register("alice", "same@test.com", "secret123"); err != nil {
		t.Fatal(err)
	}
	_, err := Register("bob", "same@test.com", "secret123")
	if !errors.Is(err, apperr.ErrDuplicateEmail) {
		t.Fatalf("expect ErrDuplicateEmail, got %v", err)
	}
}

// TestRegisterDuplicateUsername checks the username uniqueness invariant.
func TestRegisterDuplicateUsername(t *testing.T) {
	cleanTables(t)

	if _, err := Register("alice", "alice@test.com", "secret123"); err != nil {
		t.Fatal(err)
	}
	_, err := Register("alice", "other@test.com", "secret123")
	if !errors.Is(err, apperr.ErrDuplicateUsername) {
		t.Fatalf("expect ErrDuplicateUsername, got %v", err)
	}
}

// TestRegisterEmptyInput rejects blank fields.
func TestRegisterEmptyInput(t *testing.T) {
	cleanTables(t)

	for _, tc := range []struct{ username, email, password string }{
		{"", "a@test.com", "pw"},
		{"a", "", "pw"},
		{"a", "a@test.com", ""},
		{"   ", "a@test.com", "pw"},
	} {
		if _, err := Register(tc.username, tc.email, tc.password); !errors.Is(err, apperr.ErrInvalidInput) {
			t.Fatalf("expect ErrInvalidInput for %+v, got %v", tc, err)
		}
	}
}

// TestVerifyFailures distinguishes unknown email from wrong password.
func TestVerifyFailures(t *testing.T) {
	cleanTables(t)
	seedUser(t, "alice", "alice@test.com")

	if _, err := Verify("nobody@test.com", "secret123"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expect ErrNotFound, got %v", err)
	}
	if _, err := Verify("alice@test.com", "wrong"); !errors.Is(err, apperr.ErrBadPassword) {
		t.Fatalf("expect ErrBadPassword, got %v", err)
	}
}
