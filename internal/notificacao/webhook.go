package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnviarAlertaDocumentoDuplicado avisa o webhook configurado que um cadastro
// foi feito com documento já existente. Sem WEBHOOK_ALERTA_URL o alerta é
// silenciosamente ignorado.
func EnviarAlertaDocumentoDuplicado(documento string) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem":  "Alerta: novo cadastro com documento já existente",
		"documento": documento,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}

// Handler expõe o disparo manual de alertas.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// EnviarAlerta dispara o alerta de documento duplicado sob demanda.
// POST /notificar
func (h *Handler) EnviarAlerta(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Documento string `json:"documento"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Documento == "" {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	EnviarAlertaDocumentoDuplicado(req.Documento)
	w.WriteHeader(http.StatusAccepted)
}
