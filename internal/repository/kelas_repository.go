package repository

import (
	"absensi-sekolah-backend/internal/model"

	"gorm.io/gorm"
)

type KelasRepository interface {
	Create(kelas *model.Kelas) error
	GetByID(id uint) (*model.Kelas, error)
	GetAll() ([]model.Kelas, error)
	Update(kelas *model.Kelas) error
	Delete(id uint) error
}

type kelasRepository struct {
	db *gorm.DB
}

func NewKelasRepository(db *gorm.DB) KelasRepository {
	return &kelasRepository{db}
}

func (r *kelasRepository) Create(kelas *model.Kelas) error {
	return r.db.Create(kelas).Error
}

func (r *kelasRepository) GetByID(id uint) (*model.Kelas, error) {
	var kelas model.Kelas
	err := r.db.Preload("WaliKelas").First(&kelas, id).Error
	if err != nil {
		return nil, err
	}
	return &kelas, nil
}

func (r *kelasRepository) GetAll() ([]model.Kelas, error) {
	var list []model.Kelas
	err := r.db.Preload("WaliKelas").Order("nama_kelas asc").Find(&list).Error
	return list, err
}

func (r *kelasRepository) Update(kelas *model.Kelas) error {
	return r.db.Save(kelas).Error
}

func (r *kelasRepository) Delete(id uint) error {
	return r.db.Delete(&model.Kelas{}, id).Error
}
