// internal/parcelamento/dto.go
package parcelamento

import "time"

// DTO usado no POST /PessoaParcelamento
type CriarParcelamentoRequest struct {
	CodigoPessoa       uint      `json:"codigoPessoa"`
	Descricao          string    `json:"descricao"`
	ValorTotal         float64   `json:"valorTotal"`
	QuantidadeParcelas int       `json:"quantidadeParcelas"`
	DataCadastro       time.Time `json:"dataCadastro"`
}

// CriarParcelamentoResponse devolve o plano criado e os avisos de parcelas
// que falharam ao gravar (a criação é em melhor esforço, não transacional).
type CriarParcelamentoResponse struct {
	Parcelamento PessoaParcelamento `json:"parcelamento"`
	Avisos       []string           `json:"avisos,omitempty"`
}

// ParcelamentoDTO é o plano acrescido do vencimento da próxima parcela
// pendente, calculado na leitura.
type ParcelamentoDTO struct {
	PessoaParcelamento
	ProximoVencimento *time.Time `json:"proximoVencimento,omitempty"`
}

// DTO usado no PUT /PessoaParcelamento/detalhe/{id}
type AtualizarDetalheRequest struct {
	Valor          *float64   `json:"valor"`
	DataVencimento *time.Time `json:"dataVencimento"`
	DataPagamento  *time.Time `json:"dataPagamento"`
	Status         *string    `json:"status"`
}
