package util

import (
	"testing"
	"time"

	"learnquest_backend/internal/model"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{
		BaseModel: model.BaseModel{ID: 42},
		Email:     "learner@example.com",
		Role:      model.Student,
	}

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
	if claims.Role != model.Student {
		t.Errorf("role = %q, want student", claims.Role)
	}
	if claims.Email != user.Email {
		t.Errorf("email = %q, want %q", claims.Email, user.Email)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}, Role: model.Student}
	token, err := GenerateJWT(user, "right-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseJWT(token, "wrong-secret"); err == nil {
		t.Fatal("expected an error for a token signed with a different secret")
	}
}

func TestParseJWTExpired(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}, Role: model.Student}
	token, err := GenerateJWT(user, "test-secret", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseJWT(token, "test-secret"); err == nil {
		t.Fatal("expected an error for an expired token")
	}
}
