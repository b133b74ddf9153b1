package repository

import (
	"absensi-sekolah-backend/internal/model"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	GetRekapHarian(tanggal string) (map[string]int64, error)
	GetRekapBulanan(kelasID uint, bulan, tahun string) (map[string]int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetRekapHarian(tanggal string) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.Table("kehadirans").
		Where("tanggal = ? AND deleted_at IS NULL", tanggal).
		Group("status").Select("status, count(*) as count").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	rekap := map[string]int64{
		string(model.StatusHadir): 0,
		string(model.StatusIzin):  0,
		string(model.StatusSakit): 0,
		string(model.StatusAlpa):  0,
	}
	for _, row := range rows {
		rekap[row.Status] = row.Count
	}
	return rekap, nil
}

func (r *dashboardRepository) GetRekapBulanan(kelasID uint, bulan, tahun string) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	datePattern := tahun + "-" + bulan + "%"
	err := r.db.Table("kehadirans").
		Joins("JOIN siswas ON siswas.id = kehadirans.siswa_id").
		Where("siswas.kelas_id = ? AND kehadirans.tanggal LIKE ? AND kehadirans.deleted_at IS NULL", kelasID, datePattern).
		Group("kehadirans.status").Select("kehadirans.status, count(*) as count").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	rekap := map[string]int64{
		string(model.StatusHadir): 0,
		string(model.StatusIzin):  0,
		string(model.StatusSakit): 0,
		string(model.StatusAlpa):  0,
	}
	for _, row := range rows {
		rekap[row.Status] = row.Count
	}
	return rekap, nil
}
