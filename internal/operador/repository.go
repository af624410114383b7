package operador

import (
	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorEmail(db *gorm.DB, email string) (*Operador, error)
	BuscarPorID(db *gorm.DB, id uint) (*Operador, error)
	Salvar(db *gorm.DB, o *Operador) error
	Atualizar(db *gorm.DB, o *Operador) error
	Contar(db *gorm.DB) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Operador, error) {
	var o Operador
	if err := db.First(&o, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Operador, error) {
	var o Operador
	if err := db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, o *Operador) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, o *Operador) error {
	return db.Save(o).Error
}

func (r *repositoryImpl) Contar(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&Operador{}).Count(&total).Error
	return total, err
}
