package repository

import (
	"absensi-sekolah-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KehadiranRepository interface {
	Upsert(kehadiran *model.Kehadiran) error
	GetByKey(siswaID, jadwalID uint, tanggal string) (*model.Kehadiran, error)
	GetByJadwalAndTanggal(jadwalID uint, tanggal string) ([]model.Kehadiran, error)
	ExistsForJadwal(jadwalID uint, tanggal string) (bool, error)
	CountByTanggal(tanggal string) (int64, error)
	CountByTanggalAndStatus(tanggal string, status model.StatusKehadiran) (int64, error)
	GetBySiswaAndBulan(siswaID uint, bulan, tahun string) ([]model.Kehadiran, error)
	GetByKelasAndBulan(kelasID uint, bulan, tahun string) ([]model.Kehadiran, error)
}

type kehadiranRepository struct {
	db *gorm.DB
}

func NewKehadiranRepository(db *gorm.DB) KehadiranRepository {
	return &kehadiranRepository{db}
}

// Upsert menulis satu record kehadiran secara atomik pada kunci unik
// (siswa_id, jadwal_id, tanggal). Insert-or-update dalam satu statement,
// bukan read-then-write, sehingga dua penulis yang balapan (guru submit
// vs persetujuan izin) terserialisasi di constraint unik dan penulis
// terakhir menang.
func (r *kehadiranRepository) Upsert(kehadiran *model.Kehadiran) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "siswa_id"}, {Name: "jadwal_id"}, {Name: "tanggal"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "keterangan", "dicatat_oleh_id", "dicatat_oleh_role", "dicatat_pada", "updated_at",
		}),
	}).Create(kehadiran).Error
}

func (r *kehadiranRepository) GetByKey(siswaID, jadwalID uint, tanggal string) (*model.Kehadiran, error) {
	var kehadiran model.Kehadiran
	// Find + Limit(1) agar GORM tidak mencetak log error "record not found"
	err := r.db.Where("siswa_id = ? AND jadwal_id = ? AND tanggal = ?", siswaID, jadwalID, tanggal).
		Limit(1).Find(&kehadiran).Error
	if err != nil {
		return nil, err
	}
	if kehadiran.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &kehadiran, nil
}

func (r *kehadiranRepository) GetByJadwalAndTanggal(jadwalID uint, tanggal string) ([]model.Kehadiran, error) {
	var list []model.Kehadiran
	err := r.db.Preload("Siswa").
		Where("jadwal_id = ? AND tanggal = ?", jadwalID, tanggal).
		Find(&list).Error
	return list, err
}

func (r *kehadiranRepository) ExistsForJadwal(jadwalID uint, tanggal string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Kehadiran{}).
		Where("jadwal_id = ? AND tanggal = ?", jadwalID, tanggal).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *kehadiranRepository) CountByTanggal(tanggal string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Kehadiran{}).Where("tanggal = ?", tanggal).Count(&count).Error
	return count, err
}

func (r *kehadiranRepository) CountByTanggalAndStatus(tanggal string, status model.StatusKehadiran) (int64, error) {
	var count int64
	err := r.db.Model(&model.Kehadiran{}).
		Where("tanggal = ? AND status = ?", tanggal, status).
		Count(&count).Error
	return count, err
}

func (r *kehadiranRepository) GetBySiswaAndBulan(siswaID uint, bulan, tahun string) ([]model.Kehadiran, error) {
	var list []model.Kehadiran
	datePattern := tahun + "-" + bulan + "%"
	err := r.db.Preload("Jadwal").Preload("Jadwal.Mapel").
		Where("siswa_id = ? AND tanggal LIKE ?", siswaID, datePattern).
		Order("tanggal asc").
		Find(&list).Error
	return list, err
}

func (r *kehadiranRepository) GetByKelasAndBulan(kelasID uint, bulan, tahun string) ([]model.Kehadiran, error) {
	var list []model.Kehadiran
	datePattern := tahun + "-" + bulan + "%"
	err := r.db.Preload("Siswa").Preload("Jadwal").Preload("Jadwal.Mapel").
		Joins("JOIN siswas ON siswas.id = kehadirans.siswa_id").
		Where("siswas.kelas_id = ? AND kehadirans.tanggal LIKE ?", kelasID, datePattern).
		Order("kehadirans.tanggal asc").
		Find(&list).Error
	return list, err
}
