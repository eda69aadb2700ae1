// internal/parcelamento/handler.go
package parcelamento

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Criar cadastra o plano e gera as parcelas em seguida. O plano é a entidade
// principal: se uma parcela falhar ao gravar, o plano permanece e o erro vira
// um aviso na resposta.
// POST /PessoaParcelamento
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in CriarParcelamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.CodigoPessoa == 0 {
		http.Error(w, "codigoPessoa é obrigatório", http.StatusBadRequest)
		return
	}
	if in.ValorTotal <= 0 || in.QuantidadeParcelas <= 0 {
		http.Error(w, "valorTotal e quantidadeParcelas devem ser positivos", http.StatusBadRequest)
		return
	}

	dataCadastro := in.DataCadastro
	if dataCadastro.IsZero() {
		dataCadastro = time.Now()
	}

	detalhes, err := GerarDetalhes(in.ValorTotal, in.QuantidadeParcelas, dataCadastro)
	if err != nil {
		http.Error(w, "parâmetros inválidos para o parcelamento", http.StatusBadRequest)
		return
	}

	plano := PessoaParcelamento{
		CodigoPessoa:       in.CodigoPessoa,
		Descricao:          in.Descricao,
		QuantidadeParcelas: in.QuantidadeParcelas,
		ValorTotal:         in.ValorTotal,
		DataCadastro:       dataCadastro,
		Status:             StatusEmAberto,
	}
	if err := h.Repo.Create(&plano); err != nil {
		http.Error(w, "erro ao criar parcelamento", http.StatusInternalServerError)
		return
	}

	var avisos []string
	for i := range detalhes {
		detalhes[i].CodigoParcelamento = plano.Codigo
		if err := h.Repo.SaveDetalhe(&detalhes[i]); err != nil {
			log.Printf("Erro ao salvar parcela %d do parcelamento %d: %v", detalhes[i].NumeroParcela, plano.Codigo, err)
			avisos = append(avisos, fmt.Sprintf("parcelamento criado, mas houve erro ao salvar a parcela %d", detalhes[i].NumeroParcela))
			continue
		}
		plano.Detalhes = append(plano.Detalhes, detalhes[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(CriarParcelamentoResponse{Parcelamento: plano, Avisos: avisos})
}

// Listar retorna os planos não excluídos.
// GET /PessoaParcelamento
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	planos, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "erro ao listar parcelamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(planos)
}

// ListarPorPessoa retorna os planos de uma pessoa.
// GET /PessoaParcelamento/pessoa/{codigoPessoa}
func (h *Handler) ListarPorPessoa(w http.ResponseWriter, r *http.Request) {
	codigoPessoa, err := strconv.Atoi(mux.Vars(r)["codigoPessoa"])
	if err != nil {
		http.Error(w, "código de pessoa inválido", http.StatusBadRequest)
		return
	}

	planos, err := h.Repo.ListByPessoa(uint(codigoPessoa))
	if err != nil {
		http.Error(w, "erro ao listar parcelamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(planos)
}

// BuscarPorID retorna o plano com as parcelas e o próximo vencimento.
// GET /PessoaParcelamento/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	plano, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "parcelamento não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ParcelamentoDTO{
		PessoaParcelamento: *plano,
		ProximoVencimento:  ProximoVencimento(plano.Detalhes),
	})
}

// Atualizar altera os dados básicos do plano. Não regenera as parcelas.
// PUT /PessoaParcelamento/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	plano, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "parcelamento não encontrado", http.StatusNotFound)
		return
	}
	if plano.Status == StatusQuitado {
		http.Error(w, "não é permitido alterar um parcelamento quitado", http.StatusBadRequest)
		return
	}

	var in struct {
		Descricao *string `json:"descricao"`
		Status    *int    `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Descricao != nil {
		plano.Descricao = *in.Descricao
	}
	if in.Status != nil {
		if *in.Status < StatusEmAberto || *in.Status > StatusCancelado {
			http.Error(w, "status inválido", http.StatusBadRequest)
			return
		}
		plano.Status = *in.Status
	}

	if err := h.Repo.Update(plano); err != nil {
		http.Error(w, "erro ao atualizar parcelamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(plano)
}

// Deletar faz a exclusão lógica do plano.
// DELETE /PessoaParcelamento/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.SoftDelete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "parcelamento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao excluir parcelamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListarDetalhes lista as parcelas de um plano.
// GET /PessoaParcelamento/{id}/detalhes
func (h *Handler) ListarDetalhes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	detalhes, err := h.Repo.ListDetalhes(uint(id))
	if err != nil {
		http.Error(w, "erro ao buscar parcelas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(detalhes)
}

// CriarDetalhe adiciona uma parcela avulsa a um plano existente.
// POST /PessoaParcelamento/detalhe
func (h *Handler) CriarDetalhe(w http.ResponseWriter, r *http.Request) {
	var d PessoaParcelamentoDetalhe
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if d.CodigoParcelamento == 0 {
		http.Error(w, "codigoParcelamento é obrigatório", http.StatusBadRequest)
		return
	}
	if _, err := h.Repo.FindByID(d.CodigoParcelamento); err != nil {
		http.Error(w, "parcelamento não encontrado", http.StatusNotFound)
		return
	}
	if d.Status == "" {
		d.Status = ParcelaPendente
	}

	if err := h.Repo.SaveDetalhe(&d); err != nil {
		http.Error(w, "erro ao criar parcela", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(d)
}

// AtualizarDetalhe altera uma parcela.
// Regra: uma parcela paga não pode voltar a pendente nem ser cancelada.
// PUT /PessoaParcelamento/detalhe/{id}
func (h *Handler) AtualizarDetalhe(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	d, err := h.Repo.FindDetalhe(uint(id))
	if err != nil {
		http.Error(w, "parcela não encontrada", http.StatusNotFound)
		return
	}

	var in AtualizarDetalheRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if in.Status != nil {
		if d.Status == ParcelaPaga && *in.Status != ParcelaPaga {
			http.Error(w, "uma parcela paga não pode ser alterada para outro status", http.StatusBadRequest)
			return
		}
		switch *in.Status {
		case ParcelaPendente, ParcelaPaga, ParcelaCancelada:
			d.Status = *in.Status
		default:
			http.Error(w, "status inválido", http.StatusBadRequest)
			return
		}
	}
	if in.Valor != nil {
		if *in.Valor <= 0 {
			http.Error(w, "valor deve ser positivo", http.StatusBadRequest)
			return
		}
		d.Valor = *in.Valor
	}
	if in.DataVencimento != nil {
		d.DataVencimento = *in.DataVencimento
	}
	if in.DataPagamento != nil {
		d.DataPagamento = in.DataPagamento
		d.Status = ParcelaPaga
	}

	if err := h.Repo.SaveDetalhe(d); err != nil {
		http.Error(w, "erro ao atualizar parcela", http.StatusInternalServerError)
		return
	}

	// Quando a última parcela pendente é paga, o plano inteiro fica quitado.
	if d.Status == ParcelaPaga {
		h.atualizarStatusDoPlano(d.CodigoParcelamento)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(d)
}

func (h *Handler) atualizarStatusDoPlano(codigoParcelamento uint) {
	detalhes, err := h.Repo.ListDetalhes(codigoParcelamento)
	if err != nil || len(detalhes) == 0 {
		return
	}
	for _, d := range detalhes {
		if d.Status == ParcelaPendente {
			return
		}
	}

	plano, err := h.Repo.FindByID(codigoParcelamento)
	if err != nil || plano.Status == StatusCancelado {
		return
	}
	plano.Status = StatusQuitado
	if err := h.Repo.Update(plano); err != nil {
		log.Printf("Erro ao quitar parcelamento %d: %v", codigoParcelamento, err)
	}
}
