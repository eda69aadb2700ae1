package pessoa

import "time"

// Status de pessoa.
const (
	StatusInativa = 0
	StatusAtiva   = 1
)

// Pessoa é o cliente dono de cobranças e parcelamentos.
type Pessoa struct {
	Codigo    uint   `gorm:"primaryKey" json:"codigo"`
	Nome      string `gorm:"size:255;not null" json:"nome"`
	Documento string `gorm:"size:20;not null;index" json:"documento"`
	Status    int    `gorm:"not null;default:1" json:"status"`
	Excluido  bool   `gorm:"not null;default:false" json:"excluido"`

	Contatos  []PessoaContato  `gorm:"foreignKey:CodigoPessoa;constraint:OnDelete:CASCADE" json:"contatos,omitempty"`
	Enderecos []PessoaEndereco `gorm:"foreignKey:CodigoPessoa;constraint:OnDelete:CASCADE" json:"enderecos,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PessoaContato guarda os meios de contato de uma pessoa.
type PessoaContato struct {
	Codigo       uint      `gorm:"primaryKey" json:"codigo"`
	CodigoPessoa uint      `gorm:"not null;index" json:"codigoPessoa"`
	Email        string    `gorm:"size:255" json:"email"`
	Site         string    `gorm:"size:255" json:"site"`
	DDD          string    `gorm:"size:3" json:"ddd"`
	Celular      string    `gorm:"size:20" json:"celular"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PessoaEndereco guarda o endereço de uma pessoa.
type PessoaEndereco struct {
	Codigo       uint      `gorm:"primaryKey" json:"codigo"`
	CodigoPessoa uint      `gorm:"not null;index" json:"codigoPessoa"`
	CEP          string    `gorm:"size:9" json:"cep"`
	Logradouro   string    `gorm:"size:255" json:"logradouro"`
	Numero       string    `gorm:"size:20" json:"numero"`
	Complemento  string    `gorm:"size:100" json:"complemento"`
	Bairro       string    `gorm:"size:100" json:"bairro"`
	Cidade       string    `gorm:"size:100" json:"cidade"`
	Estado       string    `gorm:"size:2" json:"estado"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
