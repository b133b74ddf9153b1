package repository

import (
	"absensi-sekolah-backend/internal/model"

	"gorm.io/gorm"
)

type JadwalRepository interface {
	Create(jadwal *model.Jadwal) error
	GetByID(id uint) (*model.Jadwal, error)
	GetByGuruAndHari(guruID uint, hari string) ([]model.Jadwal, error)
	GetByKelasAndHari(kelasID uint, hari string) ([]model.Jadwal, error)
	GetByHari(hari string) ([]model.Jadwal, error)
	GetByKelas(kelasID uint) ([]model.Jadwal, error)
	Update(jadwal *model.Jadwal) error
	Delete(id uint) error
	CreateMany(jadwals []model.Jadwal) error
}

type jadwalRepository struct {
	db *gorm.DB
}

func NewJadwalRepository(db *gorm.DB) JadwalRepository {
	return &jadwalRepository{db}
}

func (r *jadwalRepository) Create(jadwal *model.Jadwal) error {
	return r.db.Create(jadwal).Error
}

func (r *jadwalRepository) GetByID(id uint) (*model.Jadwal, error) {
	var jadwal model.Jadwal
	// Gunakan Find + Limit(1) agar GORM tidak mencetak log error "record not found"
	err := r.db.Preload("Kelas").Preload("Mapel").Preload("Guru").Limit(1).Find(&jadwal, id).Error
	if err != nil {
		return nil, err
	}
	if jadwal.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &jadwal, nil
}

func (r *jadwalRepository) GetByGuruAndHari(guruID uint, hari string) ([]model.Jadwal, error) {
	var jadwals []model.Jadwal
	err := r.db.Preload("Kelas").Preload("Mapel").
		Where("guru_id = ? AND hari = ? AND is_active = ?", guruID, hari, true).
		Order("jam_ke asc").
		Find(&jadwals).Error
	return jadwals, err
}

func (r *jadwalRepository) GetByKelasAndHari(kelasID uint, hari string) ([]model.Jadwal, error) {
	var jadwals []model.Jadwal
	err := r.db.Preload("Mapel").Preload("Guru").
		Where("kelas_id = ? AND hari = ? AND is_active = ?", kelasID, hari, true).
		Order("jam_ke asc").
		Find(&jadwals).Error
	return jadwals, err
}

func (r *jadwalRepository) GetByHari(hari string) ([]model.Jadwal, error) {
	var jadwals []model.Jadwal
	err := r.db.Preload("Kelas").Preload("Mapel").Preload("Guru").
		Where("hari = ? AND is_active = ?", hari, true).
		Order("jam_ke asc").
		Find(&jadwals).Error
	return jadwals, err
}

func (r *jadwalRepository) GetByKelas(kelasID uint) ([]model.Jadwal, error) {
	var jadwals []model.Jadwal
	err := r.db.Preload("Mapel").Preload("Guru").
		Where("kelas_id = ? AND is_active = ?", kelasID, true).
		Order("hari asc").Order("jam_ke asc").
		Find(&jadwals).Error
	return jadwals, err
}

func (r *jadwalRepository) Update(jadwal *model.Jadwal) error {
	return r.db.Save(jadwal).Error
}

func (r *jadwalRepository) Delete(id uint) error {
	return r.db.Delete(&model.Jadwal{}, id).Error
}

func (r *jadwalRepository) CreateMany(jadwals []model.Jadwal) error {
	return r.db.Create(&jadwals).Error
}
