// internal/cep/client.go
package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	ErrCepInvalido      = errors.New("cep inválido")
	ErrCepNaoEncontrado = errors.New("cep não encontrado")
)

// Endereco é a resposta do ViaCEP já no formato usado pelo cadastro.
type Endereco struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"localidade"`
	Estado      string `json:"uf"`
}

// Client consulta o ViaCEP.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: "https://viacep.com.br/ws",
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Buscar consulta um CEP. Aceita o CEP com ou sem máscara; só os 8 dígitos
// são enviados ao serviço.
func (c *Client) Buscar(ctx context.Context, cep string) (*Endereco, error) {
	digitos := somenteDigitos(cep)
	if len(digitos) != 8 {
		return nil, ErrCepInvalido
	}

	url := fmt.Sprintf("%s/%s/json/", c.BaseURL, digitos)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar o ViaCEP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ViaCEP respondeu %d", resp.StatusCode)
	}

	// O ViaCEP devolve 200 com {"erro": true} para CEP bem formado
	// porém inexistente.
	var body struct {
		Endereco
		Erro bool `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("resposta inválida do ViaCEP: %w", err)
	}
	if body.Erro {
		return nil, ErrCepNaoEncontrado
	}
	return &body.Endereco, nil
}

func somenteDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
