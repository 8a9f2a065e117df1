package utils

import (
	"FileTransfer/config"
	"testing"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	config.InitConfig()

	token, err := GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims.UserId != 42 {
		t.Fatalf("expect user id 42, got %d", claims.UserId)
	}
	if claims.Username != "alice" {
		t.Fatalf("expect username alice, got %s", claims.Username)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	config.InitConfig()

	if _, err := VerifyToken("not.a.token"); err == nil {
		t.Fatal("expect error for malformed token")
	}
}
