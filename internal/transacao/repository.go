package transacao

import (
	"gorm.io/gorm"
)

type Repository interface {
	Listar(db *gorm.DB) ([]Transacao, error)
	Salvar(db *gorm.DB, t *Transacao) error
	Deletar(db *gorm.DB, id string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Listar retorna todas as transações por data descendente
func (r *repositoryImpl) Listar(db *gorm.DB) ([]Transacao, error) {
	var list []Transacao
	err := db.Order("data desc").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, t *Transacao) error {
	return db.Create(t).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id string) error {
	return db.Delete(&Transacao{}, "id = ?", id).Error
}
