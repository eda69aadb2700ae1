package utils

import "testing"

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("minha-senha")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if hash == "minha-senha" {
		t.Fatal("senha não pode ser armazenada em texto puro")
	}
	if !VerificarSenha(hash, "minha-senha") {
		t.Error("senha correta não foi aceita")
	}
	if VerificarSenha(hash, "outra-senha") {
		t.Error("senha incorreta foi aceita")
	}
}

func TestGerarSenhaTemporaria(t *testing.T) {
	a, err := GerarSenhaTemporaria()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	b, err := GerarSenhaTemporaria()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(a) != 12 || len(b) != 12 {
		t.Errorf("senhas temporárias devem ter 12 caracteres: %q %q", a, b)
	}
	if a == b {
		t.Error("duas senhas temporárias consecutivas não deveriam coincidir")
	}
}
