// internal/calculo/cronograma.go
package calculo

import (
	"time"

	"github.com/shopspring/decimal"
)

// Periodicidade define o intervalo entre parcelas do cronograma.
type Periodicidade string

const (
	Semanal   Periodicidade = "semanal"
	Quinzenal Periodicidade = "quinzenal"
	Mensal    Periodicidade = "mensal"
)

// Dias retorna o intervalo em dias da periodicidade.
// Valores desconhecidos assumem mensal (30 dias).
func (p Periodicidade) Dias() int {
	switch p {
	case Semanal:
		return 7
	case Quinzenal:
		return 15
	case Mensal:
		return 30
	default:
		return 30
	}
}

// Parcela é uma linha do cronograma de pagamentos de um empréstimo.
type Parcela struct {
	Numero         int             `json:"numero"`
	DataVencimento time.Time       `json:"dataVencimento"`
	ValorPrincipal decimal.Decimal `json:"valorPrincipal"`
	Juros          decimal.Decimal `json:"juros"`
	Multa          decimal.Decimal `json:"multa"`
	ValorTotal     decimal.Decimal `json:"valorTotal"`
}

var cem = decimal.NewFromInt(100)

// ValorTotalComJuros aplica o percentual de juros sobre o valor do empréstimo:
// valor × (1 + juros/100), arredondado a centavos.
func ValorTotalComJuros(valor, taxaJuros decimal.Decimal) decimal.Decimal {
	return valor.Mul(decimal.NewFromInt(1).Add(taxaJuros.Div(cem))).Round(2)
}

// GerarCronograma monta o cronograma completo de parcelas de um empréstimo.
//
// O juros total (valor × taxa/100) e a multa fixa são divididos igualmente
// entre as parcelas, assim como o principal. A última parcela absorve a sobra
// de arredondamento, de forma que a soma das parcelas feche com os totais.
// Vencimento da parcela i (1..n) = dataInicio + i × dias da periodicidade.
//
// qtdParcelas == 0 ou valor == 0 produzem um cronograma vazio. Valores
// negativos são rejeitados com ErrArgumentoInvalido.
func GerarCronograma(valor, taxaJuros, multa decimal.Decimal, dataInicio time.Time, qtdParcelas int, periodicidade Periodicidade) ([]Parcela, error) {
	if valor.IsNegative() || taxaJuros.IsNegative() || multa.IsNegative() || qtdParcelas < 0 {
		return nil, ErrArgumentoInvalido
	}
	if qtdParcelas == 0 || valor.IsZero() {
		return []Parcela{}, nil
	}

	n := decimal.NewFromInt(int64(qtdParcelas))
	jurosTotal := valor.Mul(taxaJuros).Div(cem).Round(2)

	principalParcela := valor.DivRound(n, 2)
	jurosParcela := jurosTotal.DivRound(n, 2)
	multaParcela := multa.DivRound(n, 2)

	dias := periodicidade.Dias()
	antes := decimal.NewFromInt(int64(qtdParcelas - 1))

	cronograma := make([]Parcela, 0, qtdParcelas)
	for i := 1; i <= qtdParcelas; i++ {
		principal := principalParcela
		juros := jurosParcela
		multaP := multaParcela
		if i == qtdParcelas {
			// A última parcela absorve a sobra de arredondamento.
			principal = valor.Sub(principalParcela.Mul(antes))
			juros = jurosTotal.Sub(jurosParcela.Mul(antes))
			multaP = multa.Round(2).Sub(multaParcela.Mul(antes))
		}
		cronograma = append(cronograma, Parcela{
			Numero:         i,
			DataVencimento: dataInicio.AddDate(0, 0, i*dias),
			ValorPrincipal: principal,
			Juros:          juros,
			Multa:          multaP,
			ValorTotal:     principal.Add(juros).Add(multaP),
		})
	}
	return cronograma, nil
}
