package cobranca

import (
	"testing"
	"time"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestMontarCobrancaDTO(t *testing.T) {
	hoje := dia(2026, time.March, 10)
	pagoEm := dia(2026, time.March, 5)

	casos := []struct {
		nome     string
		cobranca Cobranca
		esperado string
	}{
		{
			nome:     "vencimento futuro fica em dia",
			cobranca: Cobranca{DataVencimento: dia(2026, time.March, 20), Status: StatusPendente},
			esperado: "Em Dia",
		},
		{
			nome:     "vencimento hoje",
			cobranca: Cobranca{DataVencimento: hoje, Status: StatusPendente},
			esperado: "Vence Hoje",
		},
		{
			nome:     "vencimento passado vira devedor",
			cobranca: Cobranca{DataVencimento: dia(2026, time.March, 1), Status: StatusPendente},
			esperado: "Devedor",
		},
		{
			nome:     "data de pagamento prevalece sobre atraso",
			cobranca: Cobranca{DataVencimento: dia(2026, time.March, 1), DataPagamento: &pagoEm, Status: StatusPago},
			esperado: "Pago",
		},
		{
			nome:     "cancelamento prevalece sobre vencimento",
			cobranca: Cobranca{DataVencimento: dia(2026, time.March, 20), Status: StatusCancelado},
			esperado: "Cancelado",
		},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			dto := MontarCobrancaDTO(c.cobranca, hoje)
			if dto.StatusCalculado != c.esperado {
				t.Errorf("statusCalculado = %q, esperado %q", dto.StatusCalculado, c.esperado)
			}
		})
	}
}

func TestMontarListaDTO(t *testing.T) {
	hoje := dia(2026, time.March, 10)
	lista := []Cobranca{
		{DataVencimento: dia(2026, time.March, 1)},
		{DataVencimento: dia(2026, time.March, 20)},
	}

	dtos := MontarListaDTO(lista, hoje)
	if len(dtos) != 2 {
		t.Fatalf("len = %d, esperado 2", len(dtos))
	}
	if dtos[0].StatusCalculado != "Devedor" || dtos[1].StatusCalculado != "Em Dia" {
		t.Errorf("status = %q / %q", dtos[0].StatusCalculado, dtos[1].StatusCalculado)
	}
}
