package main

import (
	"strings"
	"testing"
)

func newTestAuth(t *testing.T) (*Auth, *DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "") // force per-database secrets
	db := newTestDB(t)
	return NewAuth(db), db
}

func TestRegisterAndValidate(t *testing.T) {
	auth, _ := newTestAuth(t)

	id, token, err := auth.Register("alice", "password")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive player id, got %d", id)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	pid, username, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if pid != id {
		t.Errorf("expected player id %d in token, got %d", id, pid)
	}
	if username != "alice" {
		t.Errorf("expected username alice in token, got %q", username)
	}
}

func TestRegisterTrimsUsername(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, token, err := auth.Register("  bob  ", "password")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, username, _ := auth.ValidateToken(token); username != "bob" {
		t.Errorf("expected trimmed username bob, got %q", username)
	}
}

func TestRegisterValidation(t *testing.T) {
	auth, _ := newTestAuth(t)

	if _, _, err := auth.Register("a", "password"); err == nil {
		t.Error("expected error for too-short username")
	}
	if _, _, err := auth.Register("abcdefghijklmnopq", "password"); err == nil {
		t.Error("expected error for too-long username")
	}
	if _, _, err := auth.Register("carol", "abc"); err == nil {
		t.Error("expected error for too-short password")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	auth, _ := newTestAuth(t)

	if _, _, err := auth.Register("dave", "password"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, _, err := auth.Register("dave", "otherpass")
	if err == nil {
		t.Fatal("expected error for duplicate username")
	}
	if !strings.Contains(err.Error(), "taken") {
		t.Errorf("expected 'taken' in error, got %q", err.Error())
	}
}

func TestLoginRoundtrip(t *testing.T) {
	auth, _ := newTestAuth(t)

	id, _, err := auth.Register("erin", "hunter2")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	loginID, token, err := auth.Login("erin", "hunter2", "1.2.3.4")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loginID != id {
		t.Errorf("expected player id %d, got %d", id, loginID)
	}
	if pid, _, err := auth.ValidateToken(token); err != nil || pid != id {
		t.Errorf("login token did not validate: pid=%d err=%v", pid, err)
	}

	_, _, badPass := auth.Login("erin", "wrong", "1.2.3.4")
	_, _, noUser := auth.Login("nobody", "hunter2", "1.2.3.4")
	if badPass == nil || noUser == nil {
		t.Fatal("expected failed logins to error")
	}
	// Same message for both so usernames cannot be probed
	if badPass.Error() != noUser.Error() {
		t.Errorf("expected identical errors, got %q vs %q", badPass.Error(), noUser.Error())
	}
}

func TestGuestAccount(t *testing.T) {
	auth, _ := newTestAuth(t)

	id, name, token, err := auth.Guest()
	if err != nil {
		t.Fatalf("guest failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive guest id, got %d", id)
	}
	if !strings.HasPrefix(name, "Guest_") || len(name) != 12 {
		t.Errorf("unexpected guest name %q", name)
	}
	if pid, usr, err := auth.ValidateToken(token); err != nil || pid != id || usr != name {
		t.Errorf("guest token did not validate: pid=%d usr=%q err=%v", pid, usr, err)
	}

	// Guests have no password, so their names cannot be logged into
	if _, _, err := auth.Login(name, "anything", "1.2.3.4"); err == nil {
		t.Error("expected login as guest account to fail")
	}
}

func TestValidateGarbageToken(t *testing.T) {
	auth, _ := newTestAuth(t)

	if _, _, err := auth.ValidateToken("not.a.jwt"); err == nil {
		t.Error("expected error for malformed token")
	}
	if _, _, err := auth.ValidateToken(""); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestTokenRejectedAcrossSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	authA := NewAuth(newTestDB(t))
	authB := NewAuth(newTestDB(t))

	_, token, err := authA.Register("frank", "password")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := authB.ValidateToken(token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestSecretPersistsAcrossRestart(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	db := newTestDB(t)

	authA := NewAuth(db)
	id, token, err := authA.Register("grace", "password")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Simulated restart: a fresh Auth on the same database must load
	// the persisted secret and accept the old token
	authB := NewAuth(db)
	pid, _, err := authB.ValidateToken(token)
	if err != nil {
		t.Fatalf("token rejected after restart: %v", err)
	}
	if pid != id {
		t.Errorf("expected player id %d, got %d", id, pid)
	}
}

func TestJWTSecretEnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "shared-deployment-secret")
	authA := NewAuth(newTestDB(t))
	authB := NewAuth(newTestDB(t))

	_, token, err := authA.Register("heidi", "password")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := authB.ValidateToken(token); err != nil {
		t.Errorf("expected shared env secret to validate token, got %v", err)
	}
}

func TestLoginRateLimit(t *testing.T) {
	auth, _ := newTestAuth(t)

	for i := 0; i < maxLoginAttempts; i++ {
		_, _, err := auth.Login("nobody", "pw", "10.0.0.1")
		if err == nil || strings.Contains(err.Error(), "too many") {
			t.Fatalf("attempt %d should fail on credentials, got %v", i+1, err)
		}
	}

	_, _, err := auth.Login("nobody", "pw", "10.0.0.1")
	if err == nil || !strings.Contains(err.Error(), "too many") {
		t.Errorf("expected rate limit error on attempt %d, got %v", maxLoginAttempts+1, err)
	}

	// A different IP is not affected
	_, _, err = auth.Login("nobody", "pw", "10.0.0.2")
	if err == nil || strings.Contains(err.Error(), "too many") {
		t.Errorf("expected other IP to pass the rate check, got %v", err)
	}
}

func TestGenerateGuestName(t *testing.T) {
	a := GenerateGuestName()
	b := GenerateGuestName()
	if !strings.HasPrefix(a, "Guest_") || len(a) != 12 {
		t.Errorf("unexpected guest name %q", a)
	}
	if a == b {
		t.Errorf("expected distinct guest names, got %q twice", a)
	}
}
