// internal/calculo/abatimento.go
package calculo

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cobranca é a visão mínima de uma cobrança necessária para abater pagamentos.
type Cobranca struct {
	Saldo          decimal.Decimal
	DataVencimento time.Time
	DataPagamento  *time.Time
	Cancelada      bool
}

// Historico é uma linha do histórico de pagamentos de uma cobrança.
// DataPagamento e ValorPago nulos indicam parcela em aberto; preenchidos,
// a linha está fechada e não deve mais ser alterada.
type Historico struct {
	DataVencimento time.Time
	DataPagamento  *time.Time
	ValorPago      *decimal.Decimal
}

// Aberta informa se a linha ainda aguarda pagamento.
func (h Historico) Aberta() bool {
	return h.DataPagamento == nil
}

// ResultadoAbatimento carrega a cobrança e o histórico após o abatimento.
type ResultadoAbatimento struct {
	Cobranca  Cobranca
	Historico []Historico
	Status    Status
	Quitada   bool
}

// AbaterPagamento aplica um pagamento ao saldo devedor de uma cobrança.
//
// As pré-condições (valor positivo e não superior ao saldo) são verificadas
// antes de qualquer mutação; em caso de erro a cobrança e o histórico
// originais permanecem intactos. Havendo linha de histórico em aberto com o
// mesmo vencimento da cobrança, ela é fechada; senão uma nova linha fechada é
// acrescentada. Saldo zerado quita a cobrança e grava a data de pagamento.
func AbaterPagamento(c Cobranca, historico []Historico, valor decimal.Decimal, data time.Time) (ResultadoAbatimento, error) {
	if !valor.IsPositive() {
		return ResultadoAbatimento{}, ErrValorInvalido
	}
	if valor.GreaterThan(c.Saldo) {
		return ResultadoAbatimento{}, ErrValorExcedeSaldo
	}

	c.Saldo = c.Saldo.Sub(valor)

	atualizado := make([]Historico, len(historico))
	copy(atualizado, historico)

	pago := valor
	fechada := false
	for i := range atualizado {
		h := &atualizado[i]
		if h.Aberta() && somenteData(h.DataVencimento).Equal(somenteData(c.DataVencimento)) {
			d := data
			h.DataPagamento = &d
			h.ValorPago = &pago
			fechada = true
			break
		}
	}
	if !fechada {
		d := data
		atualizado = append(atualizado, Historico{
			DataVencimento: c.DataVencimento,
			DataPagamento:  &d,
			ValorPago:      &pago,
		})
	}

	quitada := !c.Saldo.IsPositive()
	if quitada {
		d := data
		c.DataPagamento = &d
	}

	return ResultadoAbatimento{
		Cobranca:  c,
		Historico: atualizado,
		Status:    Classificar(c.DataVencimento, c.DataPagamento, c.Cancelada, data),
		Quitada:   quitada,
	}, nil
}
