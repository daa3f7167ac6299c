package auth

import (
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	userID := uuid.New().String()
	email := "staff@example.com"

	token, err := GenerateToken(userID, email, "ADMIN")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	extractedUserID, extractedEmail, extractedRole, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if extractedUserID != userID {
		t.Fatalf("Expected userID %s, got %s", userID, extractedUserID)
	}
	if extractedEmail != email {
		t.Fatalf("Expected email %s, got %s", email, extractedEmail)
	}
	if extractedRole != "ADMIN" {
		t.Fatalf("Expected role ADMIN, got %s", extractedRole)
	}
}

func TestGenerateToken_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateToken("user-1", "a@b.c", "ADMIN"); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, _, _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
