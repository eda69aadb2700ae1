package dashboard

import (
	"testing"
	"time"

	"github.com/controlepessoal/api-cobrancas/internal/cobranca"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestMontarResumo(t *testing.T) {
	hoje := dia(2026, time.March, 10)
	pagoEm := dia(2026, time.March, 1)

	cobrancas := []cobranca.Cobranca{
		{DataVencimento: dia(2026, time.March, 20), ValorTotal: 100, Status: cobranca.StatusPendente},
		{DataVencimento: dia(2026, time.March, 25), ValorTotal: 200, Status: cobranca.StatusPendente},
		{DataVencimento: hoje, ValorTotal: 50, Status: cobranca.StatusPendente},
		{DataVencimento: dia(2026, time.March, 1), ValorTotal: 300, Status: cobranca.StatusPendente},
		{DataVencimento: dia(2026, time.February, 1), Valor: 400, ValorTotal: 0, DataPagamento: &pagoEm, Status: cobranca.StatusPago},
		{DataVencimento: dia(2026, time.March, 30), ValorTotal: 500, Status: cobranca.StatusCancelado},
	}

	resumo := MontarResumo(cobrancas, hoje)

	if resumo.TotalCobrancas != 6 {
		t.Errorf("totalCobrancas = %d, esperado 6", resumo.TotalCobrancas)
	}
	if resumo.EmDia.Quantidade != 2 || resumo.EmDia.Valor != 300 {
		t.Errorf("emDia = %+v, esperado {2 300}", resumo.EmDia)
	}
	if resumo.VenceHoje.Quantidade != 1 || resumo.VenceHoje.Valor != 50 {
		t.Errorf("venceHoje = %+v, esperado {1 50}", resumo.VenceHoje)
	}
	if resumo.Devedor.Quantidade != 1 || resumo.Devedor.Valor != 300 {
		t.Errorf("devedor = %+v, esperado {1 300}", resumo.Devedor)
	}
	if resumo.Pago.Quantidade != 1 || resumo.Pago.Valor != 400 {
		t.Errorf("pago = %+v, esperado {1 400}", resumo.Pago)
	}
	if resumo.Cancelado.Quantidade != 1 || resumo.Cancelado.Valor != 500 {
		t.Errorf("cancelado = %+v, esperado {1 500}", resumo.Cancelado)
	}
	if resumo.TotalAReceber != 650 {
		t.Errorf("totalAReceber = %v, esperado 650", resumo.TotalAReceber)
	}
}

func TestMontarResumoVazio(t *testing.T) {
	resumo := MontarResumo(nil, dia(2026, time.March, 10))
	if resumo.TotalCobrancas != 0 || resumo.TotalAReceber != 0 {
		t.Errorf("resumo vazio = %+v", resumo)
	}
}

func TestMontarResumoDeterministicoNoMesmoDia(t *testing.T) {
	manha := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	noite := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)
	cobrancas := []cobranca.Cobranca{
		{DataVencimento: dia(2026, time.March, 10), ValorTotal: 75, Status: cobranca.StatusPendente},
	}

	a := MontarResumo(cobrancas, manha)
	b := MontarResumo(cobrancas, noite)
	if a != b {
		t.Errorf("resumos diferem no mesmo dia: %+v vs %+v", a, b)
	}
}
