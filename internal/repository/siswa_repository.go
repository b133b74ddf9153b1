package repository

import (
	"absensi-sekolah-backend/internal/model"

	"gorm.io/gorm"
)

type SiswaRepository interface {
	Create(siswa *model.Siswa) error
	GetByID(id uint) (*model.Siswa, error)
	GetByKelas(kelasID uint) ([]model.Siswa, error)
	Update(siswa *model.Siswa) error
	Delete(id uint) error
	GetAll(search string) ([]model.Siswa, error)
}

type siswaRepository struct {
	db *gorm.DB
}

func NewSiswaRepository(db *gorm.DB) SiswaRepository {
	return &siswaRepository{db}
}

func (r *siswaRepository) Create(siswa *model.Siswa) error {
	return r.db.Create(siswa).Error
}

func (r *siswaRepository) GetByID(id uint) (*model.Siswa, error) {
	var siswa model.Siswa
	err := r.db.Preload("Kelas").First(&siswa, id).Error
	if err != nil {
		return nil, err
	}
	return &siswa, nil
}

// GetByKelas mengembalikan roster aktif sebuah kelas, urut nama.
func (r *siswaRepository) GetByKelas(kelasID uint) ([]model.Siswa, error) {
	var list []model.Siswa
	err := r.db.Where("kelas_id = ? AND is_active = ?", kelasID, true).Order("nama asc").Find(&list).Error
	return list, err
}

func (r *siswaRepository) Update(siswa *model.Siswa) error {
	return r.db.Save(siswa).Error
}

func (r *siswaRepository) Delete(id uint) error {
	return r.db.Delete(&model.Siswa{}, id).Error
}

func (r *siswaRepository) GetAll(search string) ([]model.Siswa, error) {
	var list []model.Siswa
	query := r.db.Preload("Kelas").Order("nama asc")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("nama LIKE ? OR nisn LIKE ?", pattern, pattern)
	}
	err := query.Find(&list).Error
	return list, err
}
