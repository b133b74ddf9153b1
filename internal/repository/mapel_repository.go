package repository

import (
	"absensi-sekolah-backend/internal/model"

	"gorm.io/gorm"
)

type MapelRepository interface {
	Create(mapel *model.MataPelajaran) error
	GetByID(id uint) (*model.MataPelajaran, error)
	GetAll() ([]model.MataPelajaran, error)
	Update(mapel *model.MataPelajaran) error
	Delete(id uint) error
}

type mapelRepository struct {
	db *gorm.DB
}

func NewMapelRepository(db *gorm.DB) MapelRepository {
	return &mapelRepository{db}
}

func (r *mapelRepository) Create(mapel *model.MataPelajaran) error {
	return r.db.Create(mapel).Error
}

func (r *mapelRepository) GetByID(id uint) (*model.MataPelajaran, error) {
	var mapel model.MataPelajaran
	err := r.db.First(&mapel, id).Error
	if err != nil {
		return nil, err
	}
	return &mapel, nil
}

func (r *mapelRepository) GetAll() ([]model.MataPelajaran, error) {
	var list []model.MataPelajaran
	err := r.db.Order("nama_mapel asc").Find(&list).Error
	return list, err
}

func (r *mapelRepository) Update(mapel *model.MataPelajaran) error {
	return r.db.Save(mapel).Error
}

func (r *mapelRepository) Delete(id uint) error {
	return r.db.Delete(&model.MataPelajaran{}, id).Error
}
