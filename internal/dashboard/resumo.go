// internal/dashboard/resumo.go
package dashboard

import (
	"time"

	"github.com/controlepessoal/api-cobrancas/internal/calculo"
	"github.com/controlepessoal/api-cobrancas/internal/cobranca"

	"github.com/shopspring/decimal"
)

// Faixa agrega quantidade e valor acumulado de um status. Para as faixas
// abertas o valor é o saldo devedor; para a faixa de pagos é o principal.
type Faixa struct {
	Quantidade int     `json:"quantidade"`
	Valor      float64 `json:"valor"`
}

// Resumo é o painel consolidado das cobranças, classificado em relação a
// "hoje" no momento da montagem. TotalPessoas é preenchido pelo handler.
type Resumo struct {
	TotalPessoas   int64 `json:"totalPessoas"`
	TotalCobrancas int   `json:"totalCobrancas"`
	EmDia          Faixa `json:"emDia"`
	VenceHoje      Faixa `json:"venceHoje"`
	Devedor        Faixa `json:"devedor"`
	Pago           Faixa `json:"pago"`
	Cancelado      Faixa `json:"cancelado"`

	// Soma do saldo devedor das cobranças ainda abertas.
	TotalAReceber float64 `json:"totalAReceber"`
}

// MontarResumo classifica cada cobrança e acumula por faixa de status.
func MontarResumo(cobrancas []cobranca.Cobranca, hoje time.Time) Resumo {
	var resumo Resumo
	aReceber := decimal.Zero

	soma := func(f *Faixa, valor float64) {
		f.Quantidade++
		f.Valor = decimal.NewFromFloat(f.Valor).Add(decimal.NewFromFloat(valor)).InexactFloat64()
	}

	for _, c := range cobrancas {
		resumo.TotalCobrancas++
		st := calculo.Classificar(c.DataVencimento, c.DataPagamento, c.Status == cobranca.StatusCancelado, hoje)

		switch st {
		case calculo.StatusEmDia:
			soma(&resumo.EmDia, c.ValorTotal)
		case calculo.StatusVenceHoje:
			soma(&resumo.VenceHoje, c.ValorTotal)
		case calculo.StatusDevedor:
			soma(&resumo.Devedor, c.ValorTotal)
		case calculo.StatusPago:
			soma(&resumo.Pago, c.Valor)
		case calculo.StatusCancelado:
			soma(&resumo.Cancelado, c.ValorTotal)
		}

		if !st.Terminal() {
			aReceber = aReceber.Add(decimal.NewFromFloat(c.ValorTotal))
		}
	}

	resumo.TotalAReceber = aReceber.InexactFloat64()
	return resumo
}
