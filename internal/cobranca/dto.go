// internal/cobranca/dto.go
package cobranca

import (
	"time"

	"github.com/controlepessoal/api-cobrancas/internal/calculo"
)

// CobrancaDTO é a cobrança acrescida do status de negócio calculado na hora
// da leitura (Em Dia / Vence Hoje / Devedor / Pago / Cancelado).
type CobrancaDTO struct {
	Cobranca
	StatusCalculado string `json:"statusCalculado"`
}

// MontarCobrancaDTO classifica a cobrança em relação a "hoje".
func MontarCobrancaDTO(c Cobranca, hoje time.Time) CobrancaDTO {
	st := calculo.Classificar(c.DataVencimento, c.DataPagamento, c.Status == StatusCancelado, hoje)
	return CobrancaDTO{Cobranca: c, StatusCalculado: st.String()}
}

// MontarListaDTO classifica uma lista de cobranças de uma vez.
func MontarListaDTO(cobrancas []Cobranca, hoje time.Time) []CobrancaDTO {
	dtos := make([]CobrancaDTO, 0, len(cobrancas))
	for _, c := range cobrancas {
		dtos = append(dtos, MontarCobrancaDTO(c, hoje))
	}
	return dtos
}

// DTO usado no POST /Cobranca
type CriarCobrancaRequest struct {
	CodigoPessoa   uint      `json:"codigoPessoa"`
	TipoCobranca   string    `json:"tipoCobranca"`
	Valor          float64   `json:"valor"`
	Juros          float64   `json:"juros"`
	Multa          float64   `json:"multa"`
	DataInicio     time.Time `json:"dataInicio"`
	DataVencimento time.Time `json:"dataVencimento"`
}

// DTO usado no POST /Cobranca/cronograma
type CronogramaRequest struct {
	Valor         float64   `json:"valor"`
	Juros         float64   `json:"juros"`
	Multa         float64   `json:"multa"`
	DataInicio    time.Time `json:"dataInicio"`
	QtdParcelas   int       `json:"qtdParcelas"`
	Periodicidade string    `json:"periodicidade"`
}

// DTO usado no POST /Cobranca/{id}/pagamentos
type PagamentoRequest struct {
	Valor         float64    `json:"valor"`
	DataPagamento *time.Time `json:"dataPagamento"`
}

// PagamentoResponse devolve a cobrança atualizada após o abatimento.
type PagamentoResponse struct {
	Cobranca CobrancaDTO `json:"cobranca"`
	Quitada  bool        `json:"quitada"`
}
