package cobranca

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/controlepessoal/api-cobrancas/internal/calculo"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ============================== Handler ============================== */

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

/* ============================== Endpoints ============================== */

// Criar cadastra um novo empréstimo. O valor total é calculado no servidor:
// valor × (1 + juros/100).
// POST /Cobranca
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in CriarCobrancaRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.CodigoPessoa == 0 {
		http.Error(w, "codigoPessoa é obrigatório", http.StatusBadRequest)
		return
	}
	if in.Valor <= 0 || in.Juros < 0 || in.Multa < 0 {
		http.Error(w, "valor deve ser positivo e juros/multa não podem ser negativos", http.StatusBadRequest)
		return
	}

	valorTotal := calculo.ValorTotalComJuros(
		decimal.NewFromFloat(in.Valor),
		decimal.NewFromFloat(in.Juros),
	)

	dataVencimento := in.DataVencimento
	if dataVencimento.IsZero() {
		// Sem vencimento informado, assume 30 dias após o início.
		dataVencimento = in.DataInicio.AddDate(0, 0, 30)
	}

	c := Cobranca{
		CodigoPessoa:   in.CodigoPessoa,
		TipoCobranca:   in.TipoCobranca,
		Valor:          in.Valor,
		Juros:          in.Juros,
		Multa:          in.Multa,
		ValorTotal:     valorTotal.InexactFloat64(),
		DataInicio:     in.DataInicio,
		DataVencimento: dataVencimento,
		Status:         StatusPendente,
	}

	if err := h.Repo.Create(&c); err != nil {
		http.Error(w, "erro ao criar cobrança", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(MontarCobrancaDTO(c, time.Now()))
}

// Listar retorna as cobranças não excluídas, com o status de negócio
// calculado em relação a hoje.
// GET /Cobranca
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	cobrancas, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "erro ao listar cobranças", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(MontarListaDTO(cobrancas, time.Now()))
}

// ListarPorPessoa retorna as cobranças de uma pessoa.
// GET /Cobranca/pessoa/{codigoPessoa}
func (h *Handler) ListarPorPessoa(w http.ResponseWriter, r *http.Request) {
	codigoPessoa, err := strconv.Atoi(mux.Vars(r)["codigoPessoa"])
	if err != nil {
		http.Error(w, "código de pessoa inválido", http.StatusBadRequest)
		return
	}

	cobrancas, err := h.Repo.ListByPessoa(uint(codigoPessoa))
	if err != nil {
		http.Error(w, "erro ao listar cobranças", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(MontarListaDTO(cobrancas, time.Now()))
}

// BuscarPorID retorna uma cobrança com histórico.
// GET /Cobranca/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "cobrança não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(MontarCobrancaDTO(*c, time.Now()))
}

// Atualizar altera os dados básicos de uma cobrança não finalizada.
// PUT /Cobranca/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "cobrança não encontrada", http.StatusNotFound)
		return
	}
	if existente.Status == StatusPago {
		http.Error(w, "não é permitido alterar uma cobrança já paga", http.StatusBadRequest)
		return
	}

	var in CriarCobrancaRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Valor <= 0 || in.Juros < 0 || in.Multa < 0 {
		http.Error(w, "valor deve ser positivo e juros/multa não podem ser negativos", http.StatusBadRequest)
		return
	}

	existente.TipoCobranca = in.TipoCobranca
	existente.Valor = in.Valor
	existente.Juros = in.Juros
	existente.Multa = in.Multa
	existente.ValorTotal = calculo.ValorTotalComJuros(
		decimal.NewFromFloat(in.Valor),
		decimal.NewFromFloat(in.Juros),
	).InexactFloat64()
	if !in.DataInicio.IsZero() {
		existente.DataInicio = in.DataInicio
	}
	if !in.DataVencimento.IsZero() {
		existente.DataVencimento = in.DataVencimento
	}

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "erro ao atualizar cobrança", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(MontarCobrancaDTO(*existente, time.Now()))
}

// Deletar faz a exclusão lógica.
// DELETE /Cobranca/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.SoftDelete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "cobrança não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao excluir cobrança", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Cronograma gera a prévia do cronograma de parcelas sem persistir nada.
// POST /Cobranca/cronograma
func (h *Handler) Cronograma(w http.ResponseWriter, r *http.Request) {
	var in CronogramaRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.DataInicio.IsZero() {
		http.Error(w, "dataInicio é obrigatória", http.StatusBadRequest)
		return
	}

	parcelas, err := calculo.GerarCronograma(
		decimal.NewFromFloat(in.Valor),
		decimal.NewFromFloat(in.Juros),
		decimal.NewFromFloat(in.Multa),
		in.DataInicio,
		in.QtdParcelas,
		calculo.Periodicidade(in.Periodicidade),
	)
	if err != nil {
		http.Error(w, "parâmetros inválidos para o cronograma", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(parcelas)
}

// AbaterPagamento aplica um pagamento ao saldo devedor da cobrança e grava a
// linha de histórico correspondente, tudo dentro de uma transação.
// POST /Cobranca/{id}/pagamentos
func (h *Handler) AbaterPagamento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var in PagamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	dataPagamento := time.Now()
	if in.DataPagamento != nil {
		dataPagamento = *in.DataPagamento
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "cobrança não encontrada", http.StatusNotFound)
		return
	}
	if c.Status == StatusPago {
		http.Error(w, "cobrança já está paga", http.StatusBadRequest)
		return
	}
	if c.Status == StatusCancelado {
		http.Error(w, "cobrança cancelada não aceita pagamentos", http.StatusBadRequest)
		return
	}

	historico := make([]calculo.Historico, 0, len(c.Historicos))
	for _, hrow := range c.Historicos {
		var valorPago *decimal.Decimal
		if hrow.ValorPago != nil {
			v := decimal.NewFromFloat(*hrow.ValorPago)
			valorPago = &v
		}
		historico = append(historico, calculo.Historico{
			DataVencimento: hrow.DataVencimento,
			DataPagamento:  hrow.DataPagamento,
			ValorPago:      valorPago,
		})
	}

	res, err := calculo.AbaterPagamento(
		calculo.Cobranca{
			Saldo:          decimal.NewFromFloat(c.ValorTotal),
			DataVencimento: c.DataVencimento,
			DataPagamento:  c.DataPagamento,
			Cancelada:      c.Status == StatusCancelado,
		},
		historico,
		decimal.NewFromFloat(in.Valor),
		dataPagamento,
	)
	switch {
	case errors.Is(err, calculo.ErrValorInvalido):
		http.Error(w, "Informe um valor válido para o pagamento.", http.StatusBadRequest)
		return
	case errors.Is(err, calculo.ErrValorExcedeSaldo):
		http.Error(w, "O valor do pagamento não pode ser maior que o valor total.", http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, "erro ao abater pagamento", http.StatusInternalServerError)
		return
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Falha ao iniciar transação", http.StatusInternalServerError)
		return
	}

	c.ValorTotal = res.Cobranca.Saldo.InexactFloat64()
	if res.Quitada {
		c.Status = StatusPago
		c.DataPagamento = res.Cobranca.DataPagamento
	}
	if err := tx.Save(c).Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "erro ao atualizar cobrança", http.StatusInternalServerError)
		return
	}

	// Persiste a mesma decisão do cálculo: fecha a linha em aberto do
	// vencimento corrente ou acrescenta uma nova linha já fechada.
	valorPago := in.Valor
	fechada := false
	for i := range c.Historicos {
		hrow := &c.Historicos[i]
		if hrow.DataPagamento == nil && mesmaData(hrow.DataVencimento, c.DataVencimento) {
			hrow.DataPagamento = &dataPagamento
			hrow.ValorPago = &valorPago
			if err := tx.Save(hrow).Error; err != nil {
				_ = tx.Rollback()
				http.Error(w, "erro ao gravar histórico", http.StatusInternalServerError)
				return
			}
			fechada = true
			break
		}
	}
	if !fechada {
		nova := PessoaCobrancaHistorico{
			CodigoCobranca: c.Codigo,
			DataVencimento: c.DataVencimento,
			DataPagamento:  &dataPagamento,
			ValorPago:      &valorPago,
		}
		if err := tx.Create(&nova).Error; err != nil {
			_ = tx.Rollback()
			http.Error(w, "erro ao gravar histórico", http.StatusInternalServerError)
			return
		}
		c.Historicos = append(c.Historicos, nova)
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(PagamentoResponse{
		Cobranca: MontarCobrancaDTO(*c, time.Now()),
		Quitada:  res.Quitada,
	})
}

// Historico lista as linhas de pagamento de uma cobrança.
// GET /Cobranca/{id}/historico
func (h *Handler) Historico(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	historico, err := h.Repo.ListHistorico(uint(id))
	if err != nil {
		http.Error(w, "erro ao buscar histórico", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(historico)
}

// Finalizar marca a cobrança como paga com data de pagamento de hoje.
// POST /Cobranca/{id}/finalizar
func (h *Handler) Finalizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "cobrança não encontrada", http.StatusNotFound)
		return
	}
	if c.Status == StatusPago {
		http.Error(w, "cobrança já está paga", http.StatusBadRequest)
		return
	}

	now := time.Now()
	c.Status = StatusPago
	c.DataPagamento = &now
	c.ValorTotal = 0
	if err := h.Repo.Update(c); err != nil {
		http.Error(w, "erro ao finalizar cobrança", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(MontarCobrancaDTO(*c, now))
}

// Cancelar faz o cancelamento administrativo.
// Regra: não permite cancelar uma cobrança já paga.
// POST /Cobranca/{id}/cancelar
func (h *Handler) Cancelar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "cobrança não encontrada", http.StatusNotFound)
		return
	}
	if c.Status == StatusPago {
		http.Error(w, "não é permitido cancelar uma cobrança já paga", http.StatusBadRequest)
		return
	}

	c.Status = StatusCancelado
	if err := h.Repo.Update(c); err != nil {
		http.Error(w, "erro ao cancelar cobrança", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(MontarCobrancaDTO(*c, time.Now()))
}

func mesmaData(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
