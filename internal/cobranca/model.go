// internal/cobranca/model.go
package cobranca

import "time"

// Status administrativo persistido de uma cobrança. Os demais estados de
// negócio (Em Dia, Vence Hoje, Devedor) são derivados das datas a cada
// leitura e nunca gravados — ver internal/calculo.
const (
	StatusPendente  = 1
	StatusPago      = 2
	StatusCancelado = 3
)

// Cobranca representa um empréstimo/cobrança de uma pessoa.
// ValorTotal é o saldo devedor corrente: começa em valor × (1 + juros/100)
// e diminui a cada pagamento abatido.
type Cobranca struct {
	Codigo         uint       `gorm:"primaryKey" json:"codigo"`
	CodigoPessoa   uint       `gorm:"not null;index" json:"codigoPessoa"`
	TipoCobranca   string     `gorm:"size:100" json:"tipoCobranca"`
	Valor          float64    `gorm:"not null;default:0" json:"valor"`
	Juros          float64    `gorm:"not null;default:0" json:"juros"`
	Multa          float64    `gorm:"not null;default:0" json:"multa"`
	ValorTotal     float64    `gorm:"not null;default:0" json:"valorTotal"`
	DataInicio     time.Time  `json:"dataInicio"`
	DataVencimento time.Time  `gorm:"index" json:"dataVencimento"`
	DataPagamento  *time.Time `json:"dataPagamento"`
	Status         int        `gorm:"not null;default:1;index" json:"status"`
	Excluido       bool       `gorm:"not null;default:false" json:"excluido"`

	Historicos []PessoaCobrancaHistorico `gorm:"foreignKey:CodigoCobranca;constraint:OnDelete:CASCADE" json:"historicos,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PessoaCobrancaHistorico é uma linha do histórico de pagamentos de uma
// cobrança. Data de pagamento e valor nulos indicam parcela em aberto; uma
// vez preenchidos a linha está fechada.
type PessoaCobrancaHistorico struct {
	Codigo         uint       `gorm:"primaryKey" json:"codigo"`
	CodigoCobranca uint       `gorm:"not null;index" json:"codigoCobranca"`
	DataVencimento time.Time  `gorm:"not null" json:"dataVencimento"`
	DataPagamento  *time.Time `json:"dataPagamento"`
	ValorPago      *float64   `json:"valorPago"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
