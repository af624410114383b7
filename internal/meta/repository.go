package meta

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	BuscarTodas(db *gorm.DB) (map[string]float64, error)
	BuscarPorMes(db *gorm.DB, mes string) (*MetaMensal, error)
	Upsert(db *gorm.DB, m *MetaMensal) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// BuscarTodas devolve o mapa mês → valor
func (r *repositoryImpl) BuscarTodas(db *gorm.DB) (map[string]float64, error) {
	var list []MetaMensal
	if err := db.Find(&list).Error; err != nil {
		return nil, err
	}
	metas := make(map[string]float64, len(list))
	for _, m := range list {
		metas[m.Mes] = m.Valor
	}
	return metas, nil
}

func (r *repositoryImpl) BuscarPorMes(db *gorm.DB, mes string) (*MetaMensal, error) {
	var m MetaMensal
	if err := db.First(&m, "mes = ?", mes).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert cria ou substitui a meta do mês
func (r *repositoryImpl) Upsert(db *gorm.DB, m *MetaMensal) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "mes"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor", "updated_at"}),
	}).Create(m).Error
}
