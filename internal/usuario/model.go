package usuario

import "time"

// Tipos de usuário.
const (
	TipoComum = 0
	TipoAdmin = 1
)

// Usuario é a conta que acessa o sistema de cobranças.
type Usuario struct {
	Codigo                uint      `gorm:"primaryKey" json:"id"`
	Username              string    `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Senha                 string    `gorm:"not null" json:"-"`
	Tipo                  int       `gorm:"not null;default:0" json:"tipo"`
	PrecisaRedefinirSenha bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}
