package pessoa

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/controlepessoal/api-cobrancas/internal/notificacao"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// CriarPessoa cadastra uma nova pessoa.
// POST /Pessoa
func (h *Handler) CriarPessoa(w http.ResponseWriter, r *http.Request) {
	var p Pessoa
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if p.Nome == "" || p.Documento == "" {
		http.Error(w, "nome e documento são obrigatórios", http.StatusBadRequest)
		return
	}

	// Documento repetido não bloqueia o cadastro, apenas dispara o alerta.
	if _, err := h.Repository.BuscarPorDocumento(h.DB, p.Documento); err == nil {
		go notificacao.EnviarAlertaDocumentoDuplicado(p.Documento)
	}

	p.Codigo = 0
	p.Excluido = false
	if p.Status == 0 {
		p.Status = StatusAtiva
	}
	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		http.Error(w, "erro ao salvar pessoa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// CadastroCompleto cria pessoa, contato e endereço em sequência.
// As etapas de contato e endereço são best-effort: uma falha gera aviso na
// resposta, sem desfazer o que já foi gravado.
// POST /Pessoa/cadastro-completo
func (h *Handler) CadastroCompleto(w http.ResponseWriter, r *http.Request) {
	var req CadastroCompletoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Pessoa.Nome == "" || req.Pessoa.Documento == "" {
		http.Error(w, "nome e documento são obrigatórios", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorDocumento(h.DB, req.Pessoa.Documento); err == nil {
		go notificacao.EnviarAlertaDocumentoDuplicado(req.Pessoa.Documento)
	}

	p := req.Pessoa
	p.Codigo = 0
	p.Excluido = false
	if p.Status == 0 {
		p.Status = StatusAtiva
	}
	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		http.Error(w, "erro ao salvar pessoa", http.StatusInternalServerError)
		return
	}

	resp := CadastroCompletoResponse{Pessoa: p}

	if req.Contato != nil {
		contato := *req.Contato
		contato.Codigo = 0
		contato.CodigoPessoa = p.Codigo
		if err := h.Repository.SalvarContato(h.DB, &contato); err != nil {
			resp.Avisos = append(resp.Avisos, "cliente criado, mas houve erro ao salvar o contato")
		}
	}

	if req.Endereco != nil {
		endereco := *req.Endereco
		endereco.Codigo = 0
		endereco.CodigoPessoa = p.Codigo
		if err := h.Repository.SalvarEndereco(h.DB, &endereco); err != nil {
			resp.Avisos = append(resp.Avisos, "cliente criado, mas houve erro ao salvar o endereço")
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// ListarPessoas retorna as pessoas não excluídas.
// GET /Pessoa
func (h *Handler) ListarPessoas(w http.ResponseWriter, r *http.Request) {
	pessoas, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar pessoas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pessoas)
}

// BuscarPorID retorna uma pessoa pelo código.
// GET /Pessoa/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "pessoa não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// AtualizarPessoa altera os dados cadastrais.
// PUT /Pessoa/{id}
func (h *Handler) AtualizarPessoa(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Pessoa
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "pessoa não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar pessoa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pessoa atualizada com sucesso"))
}

// DeletarPessoa faz a exclusão lógica.
// DELETE /Pessoa/{id}
func (h *Handler) DeletarPessoa(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Excluir(h.DB, uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "pessoa não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao excluir pessoa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pessoa excluída com sucesso"))
}

// CriarContato acrescenta um contato a uma pessoa existente.
// POST /PessoaContato
func (h *Handler) CriarContato(w http.ResponseWriter, r *http.Request) {
	var c PessoaContato
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if c.CodigoPessoa == 0 {
		http.Error(w, "codigoPessoa é obrigatório", http.StatusBadRequest)
		return
	}
	c.Codigo = 0
	if err := h.Repository.SalvarContato(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar contato", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// CriarEndereco acrescenta um endereço a uma pessoa existente.
// POST /PessoaEndereco
func (h *Handler) CriarEndereco(w http.ResponseWriter, r *http.Request) {
	var e PessoaEndereco
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if e.CodigoPessoa == 0 {
		http.Error(w, "codigoPessoa é obrigatório", http.StatusBadRequest)
		return
	}
	e.Codigo = 0
	if err := h.Repository.SalvarEndereco(h.DB, &e); err != nil {
		http.Error(w, "erro ao salvar endereço", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(e)
}
