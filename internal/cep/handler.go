// internal/cep/handler.go
package cep

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct {
	Client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{Client: client}
}

// Buscar consulta um CEP e devolve o endereço pronto para preencher o
// cadastro.
// GET /Cep/{cep}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	endereco, err := h.Client.Buscar(r.Context(), mux.Vars(r)["cep"])
	switch {
	case errors.Is(err, ErrCepInvalido):
		http.Error(w, "CEP inválido: informe 8 dígitos", http.StatusBadRequest)
		return
	case errors.Is(err, ErrCepNaoEncontrado):
		http.Error(w, "CEP não encontrado", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, "erro ao consultar o CEP", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(endereco)
}
