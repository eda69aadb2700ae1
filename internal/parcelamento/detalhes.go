// internal/parcelamento/detalhes.go
package parcelamento

import (
	"time"

	"github.com/controlepessoal/api-cobrancas/internal/calculo"

	"github.com/shopspring/decimal"
)

// GerarDetalhes divide o valor total do plano em parcelas mensais iguais.
// A sobra de arredondamento fica na última parcela, de forma que a soma das
// parcelas sempre iguala o valor total. O vencimento da parcela i (1-indexada)
// é dataCadastro + 30×i dias.
func GerarDetalhes(valorTotal float64, quantidade int, dataCadastro time.Time) ([]PessoaParcelamentoDetalhe, error) {
	if valorTotal < 0 || quantidade < 0 {
		return nil, calculo.ErrArgumentoInvalido
	}
	if quantidade == 0 || valorTotal == 0 {
		return []PessoaParcelamentoDetalhe{}, nil
	}

	total := decimal.NewFromFloat(valorTotal)
	qtd := decimal.NewFromInt(int64(quantidade))
	valorParcela := total.DivRound(qtd, 2)

	detalhes := make([]PessoaParcelamentoDetalhe, 0, quantidade)
	for i := 1; i <= quantidade; i++ {
		valor := valorParcela
		if i == quantidade {
			antes := decimal.NewFromInt(int64(quantidade - 1))
			valor = total.Sub(valorParcela.Mul(antes))
		}
		detalhes = append(detalhes, PessoaParcelamentoDetalhe{
			NumeroParcela:  i,
			Valor:          valor.InexactFloat64(),
			DataVencimento: dataCadastro.AddDate(0, 0, 30*i),
			Status:         ParcelaPendente,
		})
	}
	return detalhes, nil
}

// ProximoVencimento devolve a data de vencimento da primeira parcela ainda
// pendente, ou nil quando todas já foram pagas ou canceladas.
func ProximoVencimento(detalhes []PessoaParcelamentoDetalhe) *time.Time {
	var proximo *time.Time
	for i := range detalhes {
		d := detalhes[i]
		if d.Status != ParcelaPendente {
			continue
		}
		if proximo == nil || d.DataVencimento.Before(*proximo) {
			v := d.DataVencimento
			proximo = &v
		}
	}
	return proximo
}
