// internal/cobranca/repository.go
package cobranca

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de cobranças.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere uma nova cobrança.
func (r *Repository) Create(c *Cobranca) error {
	return r.DB.Create(c).Error
}

// FindByID busca uma cobrança pelo código, com o histórico carregado.
func (r *Repository) FindByID(id uint) (*Cobranca, error) {
	var c Cobranca
	if err := r.DB.Preload("Historicos").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListAll busca as cobranças não excluídas ordenadas por vencimento.
func (r *Repository) ListAll() ([]Cobranca, error) {
	var cobrancas []Cobranca
	err := r.DB.
		Where("excluido = ?", false).
		Order("data_vencimento ASC").
		Find(&cobrancas).Error
	return cobrancas, err
}

// ListByPessoa busca as cobranças não excluídas de uma pessoa.
func (r *Repository) ListByPessoa(codigoPessoa uint) ([]Cobranca, error) {
	var cobrancas []Cobranca
	err := r.DB.
		Where("codigo_pessoa = ? AND excluido = ?", codigoPessoa, false).
		Order("data_vencimento ASC").
		Find(&cobrancas).Error
	return cobrancas, err
}

// Update atualiza todos os campos de uma cobrança existente (Save exige PK).
func (r *Repository) Update(c *Cobranca) error {
	return r.DB.Save(c).Error
}

// SoftDelete marca a cobrança como excluída; a linha permanece no banco.
func (r *Repository) SoftDelete(id uint) error {
	res := r.DB.Model(&Cobranca{}).Where("codigo = ?", id).Update("excluido", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListHistorico busca o histórico de pagamentos de uma cobrança.
func (r *Repository) ListHistorico(codigoCobranca uint) ([]PessoaCobrancaHistorico, error) {
	var historico []PessoaCobrancaHistorico
	err := r.DB.
		Where("codigo_cobranca = ?", codigoCobranca).
		Order("data_vencimento ASC").
		Find(&historico).Error
	return historico, err
}

// SaveHistorico grava (insere ou atualiza) uma linha de histórico.
func (r *Repository) SaveHistorico(h *PessoaCobrancaHistorico) error {
	return r.DB.Save(h).Error
}
