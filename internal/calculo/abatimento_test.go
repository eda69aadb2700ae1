package calculo

import (
	"errors"
	"testing"
	"time"
)

func TestAbaterPagamento_QuitaCobranca(t *testing.T) {
	// Saldo de 5125,00 abatido integralmente quita a cobrança.
	c := Cobranca{
		Saldo:          dec("5125.00"),
		DataVencimento: data(2024, 12, 15),
	}
	hoje := data(2024, 12, 10)

	res, err := AbaterPagamento(c, nil, dec("5125.00"), hoje)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !res.Cobranca.Saldo.IsZero() {
		t.Errorf("saldo = %s, esperava 0", res.Cobranca.Saldo)
	}
	if !res.Quitada {
		t.Error("esperava cobrança quitada")
	}
	if res.Status != StatusPago {
		t.Errorf("status = %s, esperava %s", res.Status, StatusPago)
	}
	if res.Cobranca.DataPagamento == nil || !res.Cobranca.DataPagamento.Equal(hoje) {
		t.Errorf("data de pagamento = %v, esperava %s", res.Cobranca.DataPagamento, hoje)
	}
}

func TestAbaterPagamento_Parcial(t *testing.T) {
	c := Cobranca{
		Saldo:          dec("500.00"),
		DataVencimento: data(2024, 12, 15),
	}

	res, err := AbaterPagamento(c, nil, dec("200.00"), data(2024, 12, 1))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !res.Cobranca.Saldo.Equal(dec("300.00")) {
		t.Errorf("saldo = %s, esperava 300.00", res.Cobranca.Saldo)
	}
	if res.Quitada {
		t.Error("pagamento parcial não pode quitar a cobrança")
	}
	if res.Cobranca.DataPagamento != nil {
		t.Error("pagamento parcial não grava data de pagamento na cobrança")
	}
	if len(res.Historico) != 1 {
		t.Fatalf("esperava 1 linha de histórico, veio %d", len(res.Historico))
	}
	h := res.Historico[0]
	if h.Aberta() || h.ValorPago == nil || !h.ValorPago.Equal(dec("200.00")) {
		t.Errorf("linha de histórico não registrou o pagamento: %+v", h)
	}
}

func TestAbaterPagamento_ValorExcedente(t *testing.T) {
	// Pagamento maior que o saldo é rejeitado sem alterar nada.
	c := Cobranca{
		Saldo:          dec("100.00"),
		DataVencimento: data(2024, 12, 15),
	}
	historico := []Historico{{DataVencimento: data(2024, 12, 15)}}

	_, err := AbaterPagamento(c, historico, dec("150.00"), data(2024, 12, 1))
	if !errors.Is(err, ErrValorExcedeSaldo) {
		t.Fatalf("esperava ErrValorExcedeSaldo, veio %v", err)
	}
	if !c.Saldo.Equal(dec("100.00")) {
		t.Errorf("saldo foi alterado após falha: %s", c.Saldo)
	}
	if !historico[0].Aberta() {
		t.Error("histórico foi alterado após falha")
	}
}

func TestAbaterPagamento_ValorInvalido(t *testing.T) {
	c := Cobranca{Saldo: dec("100.00"), DataVencimento: data(2024, 12, 15)}

	for _, valor := range []string{"0", "-10.00"} {
		if _, err := AbaterPagamento(c, nil, dec(valor), time.Now()); !errors.Is(err, ErrValorInvalido) {
			t.Errorf("valor %s: esperava ErrValorInvalido, veio %v", valor, err)
		}
	}
}

func TestAbaterPagamento_FechaLinhaAbertaDoMesmoVencimento(t *testing.T) {
	vencimento := data(2024, 12, 15)
	c := Cobranca{Saldo: dec("300.00"), DataVencimento: vencimento}
	historico := []Historico{
		{DataVencimento: data(2024, 11, 15)}, // outra parcela, fica intacta
		{DataVencimento: vencimento},
	}

	res, err := AbaterPagamento(c, historico, dec("100.00"), data(2024, 12, 14))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(res.Historico) != 2 {
		t.Fatalf("não deve acrescentar linha quando há parcela em aberto; veio %d linhas", len(res.Historico))
	}
	if !res.Historico[0].Aberta() {
		t.Error("parcela de outro vencimento foi fechada indevidamente")
	}
	if res.Historico[1].Aberta() {
		t.Error("parcela do vencimento corrente deveria ter sido fechada")
	}

	// Segundo pagamento no mesmo vencimento: linha já fechada, acrescenta nova.
	res2, err := AbaterPagamento(res.Cobranca, res.Historico, dec("50.00"), data(2024, 12, 15))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(res2.Historico) != 3 {
		t.Fatalf("esperava nova linha de histórico, veio %d linhas", len(res2.Historico))
	}
}

func TestAbaterPagamento_SaldoNuncaNegativo(t *testing.T) {
	c := Cobranca{Saldo: dec("100.00"), DataVencimento: data(2024, 12, 15)}

	res, err := AbaterPagamento(c, nil, dec("100.00"), time.Now())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if res.Cobranca.Saldo.IsNegative() {
		t.Errorf("saldo negativo: %s", res.Cobranca.Saldo)
	}
}
