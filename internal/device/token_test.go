package device

import (
	"testing"
	"time"
)

func TestIssueAndValidate(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	deviceID, token, err := m.Issue()
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if deviceID == "" || token == "" {
		t.Fatal("Issue() returned empty device ID or token")
	}

	got, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got != deviceID {
		t.Errorf("Validate() = %q, want %q", got, deviceID)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	if _, err := m.Validate("not-a-token"); err == nil {
		t.Error("Validate() accepted garbage")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	_, token, err := issuer.Issue()
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Validate(token); err == nil {
		t.Error("Validate() accepted a token signed with another secret")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	_, token, err := m.Issue()
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := m.Validate(token); err == nil {
		t.Error("Validate() accepted an expired token")
	}
}
