package calculo

import (
	"testing"
	"time"
)

func data(ano int, mes time.Month, dia int) time.Time {
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

func TestClassificar(t *testing.T) {
	vencimento := data(2024, 12, 15)
	pagamento := data(2024, 12, 10)

	tests := []struct {
		nome       string
		pagamento  *time.Time
		cancelada  bool
		hoje       time.Time
		want       Status
	}{
		{"antes do vencimento", nil, false, data(2024, 12, 1), StatusEmDia},
		{"vence hoje", nil, false, data(2024, 12, 15), StatusVenceHoje},
		{"apos o vencimento", nil, false, data(2024, 12, 20), StatusDevedor},
		{"paga vence qualquer data", &pagamento, false, data(2025, 1, 1), StatusPago},
		{"paga mesmo cancelada", &pagamento, true, data(2025, 1, 1), StatusPago},
		{"cancelada sem pagamento", nil, true, data(2024, 12, 1), StatusCancelado},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			got := Classificar(vencimento, tt.pagamento, tt.cancelada, tt.hoje)
			if got != tt.want {
				t.Errorf("Classificar() = %s, esperava %s", got, tt.want)
			}
		})
	}
}

func TestClassificar_ComparaPorDataDeCalendario(t *testing.T) {
	// Horários diferentes no mesmo dia não mudam o resultado.
	vencimento := time.Date(2024, 12, 15, 23, 59, 0, 0, time.UTC)
	hoje := time.Date(2024, 12, 15, 0, 1, 0, 0, time.UTC)

	if got := Classificar(vencimento, nil, false, hoje); got != StatusVenceHoje {
		t.Errorf("mesmo dia com horários diferentes: veio %s, esperava %s", got, StatusVenceHoje)
	}
}

func TestClassificar_Deterministica(t *testing.T) {
	vencimento := data(2024, 12, 15)
	hoje := data(2024, 12, 20)

	primeiro := Classificar(vencimento, nil, false, hoje)
	for i := 0; i < 10; i++ {
		if got := Classificar(vencimento, nil, false, hoje); got != primeiro {
			t.Fatalf("classificação variou entre chamadas: %s != %s", got, primeiro)
		}
	}
	if primeiro != StatusDevedor {
		t.Errorf("esperava %s, veio %s", StatusDevedor, primeiro)
	}
}

func TestStatus_Rotulos(t *testing.T) {
	rotulos := map[Status]string{
		StatusPendente:  "Pendente",
		StatusEmDia:     "Em Dia",
		StatusVenceHoje: "Vence Hoje",
		StatusDevedor:   "Devedor",
		StatusPago:      "Pago",
		StatusCancelado: "Cancelado",
	}
	for st, rotulo := range rotulos {
		if st.String() != rotulo {
			t.Errorf("%d.String() = %q, esperava %q", st, st.String(), rotulo)
		}
	}
	if Status(99).String() != "Indefinido" {
		t.Errorf("status desconhecido deve ser Indefinido")
	}
	if !StatusPago.Terminal() || !StatusCancelado.Terminal() || StatusEmDia.Terminal() {
		t.Errorf("apenas Pago e Cancelado são terminais")
	}
}
