// internal/parcelamento/repository.go
package parcelamento

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de parcelamentos.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo plano de parcelamento.
func (r *Repository) Create(p *PessoaParcelamento) error {
	return r.DB.Create(p).Error
}

// FindByID busca um plano pelo código, com as parcelas carregadas.
func (r *Repository) FindByID(id uint) (*PessoaParcelamento, error) {
	var p PessoaParcelamento
	err := r.DB.
		Preload("Detalhes", func(db *gorm.DB) *gorm.DB {
			return db.Order("numero_parcela ASC")
		}).
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListAll busca os planos não excluídos.
func (r *Repository) ListAll() ([]PessoaParcelamento, error) {
	var planos []PessoaParcelamento
	err := r.DB.
		Where("excluido = ?", false).
		Order("data_cadastro ASC").
		Find(&planos).Error
	return planos, err
}

// ListByPessoa busca os planos não excluídos de uma pessoa.
func (r *Repository) ListByPessoa(codigoPessoa uint) ([]PessoaParcelamento, error) {
	var planos []PessoaParcelamento
	err := r.DB.
		Where("codigo_pessoa = ? AND excluido = ?", codigoPessoa, false).
		Order("data_cadastro ASC").
		Find(&planos).Error
	return planos, err
}

// Update atualiza todos os campos de um plano existente.
func (r *Repository) Update(p *PessoaParcelamento) error {
	return r.DB.Save(p).Error
}

// SoftDelete marca o plano como excluído; a linha permanece no banco.
func (r *Repository) SoftDelete(id uint) error {
	res := r.DB.Model(&PessoaParcelamento{}).Where("codigo = ?", id).Update("excluido", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListDetalhes busca as parcelas de um plano em ordem.
func (r *Repository) ListDetalhes(codigoParcelamento uint) ([]PessoaParcelamentoDetalhe, error) {
	var detalhes []PessoaParcelamentoDetalhe
	err := r.DB.
		Where("codigo_parcelamento = ?", codigoParcelamento).
		Order("numero_parcela ASC").
		Find(&detalhes).Error
	return detalhes, err
}

// FindDetalhe busca uma parcela pelo código.
func (r *Repository) FindDetalhe(id uint) (*PessoaParcelamentoDetalhe, error) {
	var d PessoaParcelamentoDetalhe
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// SaveDetalhe grava (insere ou atualiza) uma parcela.
func (r *Repository) SaveDetalhe(d *PessoaParcelamentoDetalhe) error {
	return r.DB.Save(d).Error
}
