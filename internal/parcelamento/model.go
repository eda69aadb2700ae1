// internal/parcelamento/model.go
package parcelamento

import "time"

// Status administrativo de um plano de parcelamento.
const (
	StatusEmAberto  = 0
	StatusEmDia     = 1
	StatusQuitado   = 2
	StatusCancelado = 3
)

// Status textual de uma parcela individual.
const (
	ParcelaPendente  = "Pendente"
	ParcelaPaga      = "Pago"
	ParcelaCancelada = "Cancelada"
)

// PessoaParcelamento é o plano de parcelamento de uma pessoa.
type PessoaParcelamento struct {
	Codigo             uint      `gorm:"primaryKey" json:"codigo"`
	CodigoPessoa       uint      `gorm:"not null;index" json:"codigoPessoa"`
	Descricao          string    `gorm:"size:255" json:"descricao"`
	QuantidadeParcelas int       `gorm:"not null;default:0" json:"quantidadeParcelas"`
	ValorTotal         float64   `gorm:"not null;default:0" json:"valorTotal"`
	DataCadastro       time.Time `json:"dataCadastro"`
	Status             int       `gorm:"not null;default:0;index" json:"status"`
	Excluido           bool      `gorm:"not null;default:false" json:"excluido"`

	Detalhes []PessoaParcelamentoDetalhe `gorm:"foreignKey:CodigoParcelamento;constraint:OnDelete:CASCADE" json:"detalhes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PessoaParcelamentoDetalhe é uma parcela individual do plano.
type PessoaParcelamentoDetalhe struct {
	Codigo             uint       `gorm:"primaryKey" json:"codigo"`
	CodigoParcelamento uint       `gorm:"not null;index" json:"codigoParcelamento"`
	NumeroParcela      int        `gorm:"not null" json:"numeroParcela"`
	Valor              float64    `gorm:"not null;default:0" json:"valor"`
	DataVencimento     time.Time  `gorm:"not null" json:"dataVencimento"`
	DataPagamento      *time.Time `json:"dataPagamento"`
	Status             string     `gorm:"size:20;not null;default:'Pendente'" json:"status"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}
