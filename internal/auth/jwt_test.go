package auth

import (
	"errors"
	"testing"
)

func TestGerarEValidarToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(42, 1)
	if err != nil {
		t.Fatalf("erro inesperado ao gerar token: %v", err)
	}

	claims, err := ValidarToken(token)
	if err != nil {
		t.Fatalf("erro inesperado ao validar token: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("userId = %d, esperava 42", claims.UserID)
	}
	if claims.Tipo != 1 {
		t.Errorf("tipo = %d, esperava 1", claims.Tipo)
	}
	if claims.Subject != "42" {
		t.Errorf("subject = %q, esperava \"42\"", claims.Subject)
	}
}

func TestValidarToken_Adulterado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(7, 0)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if _, err := ValidarToken(token + "x"); err == nil {
		t.Error("token adulterado deveria ser rejeitado")
	}
}

func TestValidarToken_SecretDeOutraInstancia(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-a")
	token, err := GerarToken(7, 0)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	t.Setenv("JWT_SECRET", "segredo-b")
	if _, err := ValidarToken(token); err == nil {
		t.Error("token assinado com outro segredo deveria ser rejeitado")
	}
}

func TestGerarToken_SemSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GerarToken(1, 0); !errors.Is(err, ErrSecretAusente) {
		t.Errorf("esperava ErrSecretAusente, veio %v", err)
	}
}
