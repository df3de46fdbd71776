package services

import (
	"testing"

	"hotel/errors"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("senha-secreta")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "senha-secreta" {
		t.Error("hash igual à senha em texto puro")
	}

	if !ComparePassword(hash, "senha-secreta") {
		t.Error("ComparePassword(senha correta) = false, want true")
	}
	if ComparePassword(hash, "senha-errada") {
		t.Error("ComparePassword(senha errada) = true, want false")
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken(UserInfo{UserId: 42, Role: 1}, 60)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	userID, role, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}
	if role != 1 {
		t.Errorf("role = %d, want 1", role)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	_, _, err := ParseToken("isto-nao-e-um-jwt")
	if !errors.HasCode(err, errors.ErrCodeInvalidToken) {
		t.Errorf("ParseToken(lixo): err = %v, want INVALID_TOKEN", err)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	token, err := GenerateToken(UserInfo{UserId: 1, Role: 0}, 60)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	t.Setenv("JWT_SECRET", "outro-segredo")
	if _, _, err := ParseToken(token); !errors.HasCode(err, errors.ErrCodeInvalidToken) {
		t.Errorf("ParseToken com segredo trocado: err = %v, want INVALID_TOKEN", err)
	}
}

func TestGenerateTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken(UserInfo{UserId: 1, Role: 0}, -1)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if _, _, err := ParseToken(token); !errors.HasCode(err, errors.ErrCodeInvalidToken) {
		t.Errorf("ParseToken de token vencido: err = %v, want INVALID_TOKEN", err)
	}
}
