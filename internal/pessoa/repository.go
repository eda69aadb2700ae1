package pessoa

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, p *Pessoa) error
	BuscarPorID(db *gorm.DB, id uint) (*Pessoa, error)
	BuscarPorDocumento(db *gorm.DB, documento string) (*Pessoa, error)
	ListarTodas(db *gorm.DB) ([]Pessoa, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Pessoa) error
	Excluir(db *gorm.DB, id uint) error
	SalvarContato(db *gorm.DB, c *PessoaContato) error
	SalvarEndereco(db *gorm.DB, e *PessoaEndereco) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Pessoa) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Pessoa, error) {
	var p Pessoa
	err := db.Preload("Contatos").
		Preload("Enderecos").
		First(&p, id).Error
	return &p, err
}

// BuscarPorDocumento localiza uma pessoa não excluída pelo documento.
func (r *repositoryImpl) BuscarPorDocumento(db *gorm.DB, documento string) (*Pessoa, error) {
	var p Pessoa
	err := db.Where("documento = ? AND excluido = ?", documento, false).First(&p).Error
	return &p, err
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Pessoa, error) {
	var pessoas []Pessoa
	err := db.Preload("Contatos").
		Preload("Enderecos").
		Where("excluido = ?", false).
		Find(&pessoas).Error
	return pessoas, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Pessoa) error {
	var existente Pessoa
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Documento = novosDados.Documento
	existente.Status = novosDados.Status

	return db.Save(&existente).Error
}

// Excluir faz a exclusão lógica: a linha permanece no banco com excluido=true.
func (r *repositoryImpl) Excluir(db *gorm.DB, id uint) error {
	res := db.Model(&Pessoa{}).Where("codigo = ?", id).Update("excluido", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) SalvarContato(db *gorm.DB, c *PessoaContato) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) SalvarEndereco(db *gorm.DB, e *PessoaEndereco) error {
	return db.Save(e).Error
}
