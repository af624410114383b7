package ordemservico

import (
	"gorm.io/gorm"
)

type Repository interface {
	Listar(db *gorm.DB) ([]OrdemServico, error)
	BuscarPorID(db *gorm.DB, id string) (*OrdemServico, error)
	Salvar(db *gorm.DB, o *OrdemServico) error
	Atualizar(db *gorm.DB, o *OrdemServico) error
	Deletar(db *gorm.DB, id string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Listar retorna todas as ordens por data de coleta ascendente
func (r *repositoryImpl) Listar(db *gorm.DB) ([]OrdemServico, error) {
	var list []OrdemServico
	err := db.Order("data_coleta asc").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id string) (*OrdemServico, error) {
	var o OrdemServico
	if err := db.First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, o *OrdemServico) error {
	return db.Create(o).Error
}

// Atualizar grava a ordem inteira; extras e notas são substituídos, não mesclados
func (r *repositoryImpl) Atualizar(db *gorm.DB, o *OrdemServico) error {
	return db.Save(o).Error
}

// Deletar remove de vez; o modelo não tem soft delete
func (r *repositoryImpl) Deletar(db *gorm.DB, id string) error {
	return db.Delete(&OrdemServico{}, "id = ?", id).Error
}
