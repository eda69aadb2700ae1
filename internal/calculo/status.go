// internal/calculo/status.go
package calculo

import "time"

// Status é o estado canônico de uma cobrança, derivado das datas.
type Status int

const (
	StatusPendente Status = iota
	StatusEmDia
	StatusVenceHoje
	StatusDevedor
	StatusPago
	StatusCancelado
)

// String devolve o rótulo de negócio do status.
func (s Status) String() string {
	switch s {
	case StatusPendente:
		return "Pendente"
	case StatusEmDia:
		return "Em Dia"
	case StatusVenceHoje:
		return "Vence Hoje"
	case StatusDevedor:
		return "Devedor"
	case StatusPago:
		return "Pago"
	case StatusCancelado:
		return "Cancelado"
	default:
		return "Indefinido"
	}
}

// Terminal informa se o status encerra o ciclo de vida da cobrança.
func (s Status) Terminal() bool {
	return s == StatusPago || s == StatusCancelado
}

// Classificar deriva o status de uma cobrança a partir das datas.
//
// Pagamento registrado vence qualquer outra condição; em seguida o
// cancelamento administrativo. Fora isso a comparação é por data de
// calendário, nunca por horário. O resultado não deve ser persistido:
// recalcule a cada leitura para não divergir do relógio.
func Classificar(dataVencimento time.Time, dataPagamento *time.Time, cancelada bool, hoje time.Time) Status {
	if dataPagamento != nil {
		return StatusPago
	}
	if cancelada {
		return StatusCancelado
	}

	vencimento := somenteData(dataVencimento)
	dia := somenteData(hoje)
	switch {
	case dia.Before(vencimento):
		return StatusEmDia
	case dia.Equal(vencimento):
		return StatusVenceHoje
	default:
		return StatusDevedor
	}
}

func somenteData(t time.Time) time.Time {
	ano, mes, dia := t.Date()
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}
