package repository

import (
	"time"

	"absensi-sekolah-backend/internal/model"

	"gorm.io/gorm"
)

type BandingRepository interface {
	Create(banding *model.BandingKehadiran) error
	GetByID(id uint) (*model.BandingKehadiran, error)
	GetByPengaju(userID uint) ([]model.BandingKehadiran, error)
	GetPendingByGuru(guruID uint) ([]model.BandingKehadiran, error)
	UpdateKeputusan(id uint, status model.StatusPengajuan, guruID uint, catatan string, diputusPada time.Time) (bool, error)
}

type bandingRepository struct {
	db *gorm.DB
}

func NewBandingRepository(db *gorm.DB) BandingRepository {
	return &bandingRepository{db}
}

func (r *bandingRepository) Create(banding *model.BandingKehadiran) error {
	return r.db.Create(banding).Error
}

func (r *bandingRepository) GetByID(id uint) (*model.BandingKehadiran, error) {
	var banding model.BandingKehadiran
	err := r.db.Preload("Siswa").Preload("Jadwal").First(&banding, id).Error
	if err != nil {
		return nil, err
	}
	return &banding, nil
}

func (r *bandingRepository) GetByPengaju(userID uint) ([]model.BandingKehadiran, error) {
	var list []model.BandingKehadiran
	err := r.db.Preload("Siswa").Preload("Jadwal").Preload("Jadwal.Mapel").
		Where("diajukan_oleh_id = ?", userID).
		Order("created_at desc").
		Find(&list).Error
	return list, err
}

func (r *bandingRepository) GetPendingByGuru(guruID uint) ([]model.BandingKehadiran, error) {
	var list []model.BandingKehadiran
	err := r.db.Preload("Siswa").Preload("Jadwal").Preload("Jadwal.Kelas").
		Joins("JOIN jadwals ON jadwals.id = banding_kehadirans.jadwal_id").
		Where("jadwals.guru_id = ? AND banding_kehadirans.status = ?", guruID, model.PengajuanPending).
		Order("banding_kehadirans.created_at asc").
		Find(&list).Error
	return list, err
}

// UpdateKeputusan: check-and-set atomik PENDING -> terminal, sama dengan
// pengajuan izin. False berarti sudah diputus.
func (r *bandingRepository) UpdateKeputusan(id uint, status model.StatusPengajuan, guruID uint, catatan string, diputusPada time.Time) (bool, error) {
	res := r.db.Model(&model.BandingKehadiran{}).
		Where("id = ? AND status = ?", id, model.PengajuanPending).
		Updates(map[string]interface{}{
			"status":       status,
			"guru_id":      guruID,
			"catatan_guru": catatan,
			"diputus_pada": diputusPada,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
