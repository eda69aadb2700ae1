package parcelamento

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/controlepessoal/api-cobrancas/internal/calculo"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestGerarDetalhesDivisaoIgual(t *testing.T) {
	inicio := dia(2026, time.January, 15)

	detalhes, err := GerarDetalhes(1200, 4, inicio)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(detalhes) != 4 {
		t.Fatalf("len = %d, esperado 4", len(detalhes))
	}

	for i, d := range detalhes {
		if d.NumeroParcela != i+1 {
			t.Errorf("parcela %d: numeroParcela = %d", i, d.NumeroParcela)
		}
		if d.Valor != 300 {
			t.Errorf("parcela %d: valor = %v, esperado 300", i+1, d.Valor)
		}
		if d.Status != ParcelaPendente {
			t.Errorf("parcela %d: status = %q", i+1, d.Status)
		}
		esperado := inicio.AddDate(0, 0, 30*(i+1))
		if !d.DataVencimento.Equal(esperado) {
			t.Errorf("parcela %d: vencimento = %v, esperado %v", i+1, d.DataVencimento, esperado)
		}
	}
}

func TestGerarDetalhesSobraNaUltima(t *testing.T) {
	detalhes, err := GerarDetalhes(100, 3, dia(2026, time.January, 1))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if detalhes[0].Valor != 33.33 || detalhes[1].Valor != 33.33 {
		t.Errorf("parcelas iniciais = %v / %v, esperado 33.33", detalhes[0].Valor, detalhes[1].Valor)
	}
	if detalhes[2].Valor != 33.34 {
		t.Errorf("última parcela = %v, esperado 33.34", detalhes[2].Valor)
	}

	soma := 0.0
	for _, d := range detalhes {
		soma += d.Valor
	}
	if math.Abs(soma-100) > 1e-9 {
		t.Errorf("soma das parcelas = %v, esperado 100", soma)
	}
}

func TestGerarDetalhesEntradasDegeneradas(t *testing.T) {
	if detalhes, err := GerarDetalhes(0, 5, dia(2026, time.January, 1)); err != nil || len(detalhes) != 0 {
		t.Errorf("valor zero: detalhes = %v, err = %v", detalhes, err)
	}
	if detalhes, err := GerarDetalhes(500, 0, dia(2026, time.January, 1)); err != nil || len(detalhes) != 0 {
		t.Errorf("quantidade zero: detalhes = %v, err = %v", detalhes, err)
	}
	if _, err := GerarDetalhes(-10, 2, dia(2026, time.January, 1)); !errors.Is(err, calculo.ErrArgumentoInvalido) {
		t.Errorf("valor negativo: err = %v, esperado ErrArgumentoInvalido", err)
	}
	if _, err := GerarDetalhes(10, -2, dia(2026, time.January, 1)); !errors.Is(err, calculo.ErrArgumentoInvalido) {
		t.Errorf("quantidade negativa: err = %v, esperado ErrArgumentoInvalido", err)
	}
}

func TestProximoVencimento(t *testing.T) {
	pago := dia(2026, time.February, 1)

	detalhes := []PessoaParcelamentoDetalhe{
		{NumeroParcela: 1, DataVencimento: dia(2026, time.February, 1), DataPagamento: &pago, Status: ParcelaPaga},
		{NumeroParcela: 2, DataVencimento: dia(2026, time.March, 3), Status: ParcelaPendente},
		{NumeroParcela: 3, DataVencimento: dia(2026, time.April, 2), Status: ParcelaPendente},
	}

	proximo := ProximoVencimento(detalhes)
	if proximo == nil {
		t.Fatal("proximo = nil, esperado a parcela 2")
	}
	if !proximo.Equal(dia(2026, time.March, 3)) {
		t.Errorf("proximo = %v, esperado 2026-03-03", proximo)
	}
}

func TestProximoVencimentoTodasFechadas(t *testing.T) {
	pago := dia(2026, time.February, 1)
	detalhes := []PessoaParcelamentoDetalhe{
		{NumeroParcela: 1, DataVencimento: dia(2026, time.February, 1), DataPagamento: &pago, Status: ParcelaPaga},
		{NumeroParcela: 2, DataVencimento: dia(2026, time.March, 3), Status: ParcelaCancelada},
	}

	if proximo := ProximoVencimento(detalhes); proximo != nil {
		t.Errorf("proximo = %v, esperado nil", proximo)
	}
}
