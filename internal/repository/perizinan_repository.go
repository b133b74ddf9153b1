package repository

import (
	"time"

	"absensi-sekolah-backend/internal/model"

	"gorm.io/gorm"
)

type PerizinanRepository interface {
	Create(izin *model.PengajuanIzin) error
	GetByID(id uint) (*model.PengajuanIzin, error)
	GetByPengaju(userID uint) ([]model.PengajuanIzin, error)
	GetPendingByGuru(guruID uint) ([]model.PengajuanIzin, error)
	UpdateKeputusan(id uint, status model.StatusPengajuan, guruID uint, catatan string, diputusPada time.Time) (bool, error)
}

type perizinanRepository struct {
	db *gorm.DB
}

func NewPerizinanRepository(db *gorm.DB) PerizinanRepository {
	return &perizinanRepository{db}
}

func (r *perizinanRepository) Create(izin *model.PengajuanIzin) error {
	// Detail ikut tersimpan lewat asosiasi GORM dalam satu transaksi
	return r.db.Create(izin).Error
}

func (r *perizinanRepository) GetByID(id uint) (*model.PengajuanIzin, error) {
	var izin model.PengajuanIzin
	err := r.db.Preload("Detail").Preload("Detail.Siswa").Preload("Jadwal").First(&izin, id).Error
	if err != nil {
		return nil, err
	}
	return &izin, nil
}

func (r *perizinanRepository) GetByPengaju(userID uint) ([]model.PengajuanIzin, error) {
	var list []model.PengajuanIzin
	err := r.db.Preload("Detail").Preload("Jadwal").Preload("Jadwal.Mapel").
		Where("diajukan_oleh_id = ?", userID).
		Order("created_at desc").
		Find(&list).Error
	return list, err
}

func (r *perizinanRepository) GetPendingByGuru(guruID uint) ([]model.PengajuanIzin, error) {
	var list []model.PengajuanIzin
	err := r.db.Preload("Detail").Preload("Detail.Siswa").Preload("Jadwal").Preload("Jadwal.Kelas").
		Joins("JOIN jadwals ON jadwals.id = pengajuan_izins.jadwal_id").
		Where("jadwals.guru_id = ? AND pengajuan_izins.status = ?", guruID, model.PengajuanPending).
		Order("pengajuan_izins.created_at asc").
		Find(&list).Error
	return list, err
}

// UpdateKeputusan adalah check-and-set atomik PENDING -> terminal.
// Mengembalikan false bila pengajuan sudah diputus (kalah balapan atau
// keputusan ulang); pemanggil menerjemahkannya sebagai InvalidState.
func (r *perizinanRepository) UpdateKeputusan(id uint, status model.StatusPengajuan, guruID uint, catatan string, diputusPada time.Time) (bool, error) {
	res := r.db.Model(&model.PengajuanIzin{}).
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
