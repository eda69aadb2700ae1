package cep

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBuscarCepEncontrado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/01001000/json/" {
			t.Errorf("path = %q, esperado /01001000/json/", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cep": "01001-000",
			"logradouro": "Praça da Sé",
			"bairro": "Sé",
			"localidade": "São Paulo",
			"uf": "SP"
		}`))
	}))
	defer srv.Close()

	client := &Client{BaseURL: srv.URL, HTTP: srv.Client()}
	endereco, err := client.Buscar(context.Background(), "01001-000")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if endereco.Logradouro != "Praça da Sé" || endereco.Cidade != "São Paulo" || endereco.Estado != "SP" {
		t.Errorf("endereco = %+v", endereco)
	}
}

func TestBuscarCepInexistente(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	client := &Client{BaseURL: srv.URL, HTTP: srv.Client()}
	if _, err := client.Buscar(context.Background(), "99999999"); !errors.Is(err, ErrCepNaoEncontrado) {
		t.Errorf("err = %v, esperado ErrCepNaoEncontrado", err)
	}
}

func TestBuscarCepMalFormado(t *testing.T) {
	client := NewClient()
	casos := []string{"", "123", "123456789", "abcdefgh"}
	for _, cep := range casos {
		if _, err := client.Buscar(context.Background(), cep); !errors.Is(err, ErrCepInvalido) {
			t.Errorf("cep %q: err = %v, esperado ErrCepInvalido", cep, err)
		}
	}
}

func TestBuscarCepErroDoServico(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := &Client{BaseURL: srv.URL, HTTP: srv.Client()}
	if _, err := client.Buscar(context.Background(), "01001000"); err == nil {
		t.Error("esperava erro para resposta 500")
	}
}
