package utils

import (
	"FileHaven/config"
	"testing"
)

// TestCheckPwd round-trips a bcrypt hash.
func TestCheckPwd(t *testing.T) {
	hash, err := HashPwd("secret123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "secret123" {
		t.Fatal("password not hashed")
	}
	if !CheckPwd("secret123", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPwd("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

// TestTokenRoundTrip signs and verifies a JWT.
func TestTokenRoundTrip(t *testing.T) {
	config.InitConfig()

	token, err := GenerateToken(42, "alice")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims.UserId != 42 || claims.Username != "alice" {
		t.Fatalf("wrong claims: %+v", claims)
	}

	if _, err := VerifyToken(token + "x"); err == nil {
		t.Fatal("tampered token accepted")
	}
}
