package service

import (
	"FileHaven/internal/apperr"
	"errors"
	"testing"
)

// TestAuthorizeDownload walks the owner / stranger / grantee transitions.
func TestAuthorizeDownload(t *testing.T) {
	cleanTables(t)
	alice := seedUser(t, "alice", "alice@test.com")
	bob := seedUser(t, "bob", "bob@test.com")
	artifact := seedArtifact(t, alice.ID, "report.pdf", "pdf")

	if _, err := AuthorizeDownload(alice.ID, artifact.ID); err != nil {
		t.Fatalf("owner denied: %v", err)
	}
	if _, err := AuthorizeDownload(bob.ID, artifact.ID); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expect ErrForbidden for stranger, got %v", err)
	}

	if err := ShareWith(alice.ID, artifact.ID, "bob"); err != nil {
		t.Fatalf("ShareWith failed: %v", err)
	}
	got, err := AuthorizeDownload(bob.ID, artifact.ID)
	if err != nil {
		t.Fatalf("grantee denied: %v", err)
	}
	if got.ID != artifact.ID {
		t.Fatal("wrong artifact returned")
	}

	if _, err := AuthorizeDownload(alice.ID, 9999); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expect ErrNotFound, got %v", err)
	}
}

// TestShareWithSelf always rejects self-shares.
func TestShareWithSelf(t *testing.T) {
	cleanTables(t)
	alice := seedUser(t, "alice", "alice@test.com")
	artifact := seedArtifact(t, alice.ID, "doc.txt", "x")

	if err := ShareWith(alice.ID, artifact.ID, "alice"); !errors.Is(err, apperr.ErrSelfShare) {
		t.Fatalf("expect ErrSelfShare, got %v", err)
	}
}

// TestShareWithDuplicate yields one grant and one conflict.
func TestShareWithDuplicate(t *testing.T) {
	cleanTables(t)
	alice := seedUser(t, "alice", "alice@test.com")
	seedUser(t, "bob", "bob@test.com")
	artifact := seedArtifact(t, alice.ID, "doc.txt", "x")

	if err := ShareWith(alice.ID, artifact.ID, "bob"); err != nil {
		t.Fatal(err)
	}
	if err := ShareWith(alice.ID, artifact.ID, "bob"); !errors.Is(err, apperr.ErrAlreadyShared) {
		t.Fatalf("expect ErrAlreadyShared, got %v", err)
	}
}

// TestShareWithChecks covers non-owner and unknown-recipient denials.
func TestShareWithChecks(t *testing.T) {
	cleanTables(t)
	alice := seedUser(t, "alice", "alice@test.com")
	bob := seedUser(t, "bob", "bob@test.com")
	artifact := seedArtifact(t, alice.ID, "doc.txt", "x")

	if err := ShareWith(bob.ID, artifact.ID, "alice"); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expect ErrForbidden for non-owner, got %v", err)
	}
	if err := ShareWith(alice.ID, artifact.ID, "ghost"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expect ErrNotFound for unknown recipient, got %v", err)
	}
}

// TestRevokeShare removes access again.
func TestRevokeShare(t *testing.T) {
	cleanTables(t)
	alice := seedUser(t, "alice", "alice@test.com")
	bob := seedUser(t, "bob", "bob@test.com")
	artifact := seedArtifact(t, alice.ID, "doc.txt", "x")

	if err := ShareWith(alice.ID, artifact.ID, "bob"); err != nil {
		t.Fatal(err)
	}
	if err := RevokeShare(alice.ID, artifact.ID, "bob"); err != nil {
		t.Fatalf("RevokeShare failed: %v", err)
	}
	if _, err := AuthorizeDownload(bob.ID, artifact.ID); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("revoked grantee still allowed: %v", err)
	}
	// revoking a grant that is not there
	if err := RevokeShare(alice.ID, artifact.ID, "bob"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expect ErrNotFound, got %v", err)
	}
}

// TestListSharedWithMe sees exactly the granted artifacts.
func TestListSharedWithMe(t *testing.T) {
	cleanTables(t)
	alice := seedUser(t, "alice", "alice@test.com")
	bob := seedUser(t, "bob", "bob@test.com")
	carol := seedUser(t, "carol", "carol@test.com")

	a1 := seedArtifact(t, alice.ID, "a1.txt", "1")
	seedArtifact(t, alice.ID, "a2.txt", "2")
	c1 := seedArtifact(t, carol.ID, "c1.txt", "3")

	if err := ShareWith(alice.ID, a1.ID, "bob"); err != nil {
		t.Fatal(err)
	}
	if err := ShareWith(carol.ID, c1.ID, "bob"); err != nil {
		t.Fatal(err)
	}

	files, err := ListSharedWithMe(bob.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("expect 2 shared files, got %d", len(files))
	}
	seen := map[uint64]bool{}
	for _, f := range files {
		seen[f.ID] = true
	}
	if !seen[a1.ID] || !seen[c1.ID] {
		t.Fatalf("wrong artifacts in shared list: %v", seen)
	}
}

// TestListGrantsFor is owner-only and lists grantees.
func TestListGrantsFor(t *testing.T) {
	cleanTables(t)
	alice := seedUser(t, "alice", "alice@test.com")
	bob := seedUser(t, "bob", "bob@test.com")
	seedUser(t, "carol", "carol@test.com")
	artifact := seedArtifact(t, alice.ID, "doc.txt", "x")

	if err := ShareWith(alice.ID, artifact.ID, "bob"); err != nil {
		t.Fatal(err)
	}
	if err := ShareWith(alice.ID, artifact.ID, "carol"); err != nil {
		t.Fatal(err)
	}

	users, err := ListGrantsFor(alice.ID, artifact.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 {
		t.Fatalf("expect 2 grantees, got %d", len(users))
	}

	if _, err := ListGrantsFor(bob.ID, artifact.ID); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expect ErrForbidden for non-owner, got %v", err)
	}
}
