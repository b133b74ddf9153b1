package model

import (
	"time"

	"gorm.io/gorm"
)

// PengajuanIzin diajukan perwakilan kelas untuk satu jadwal/tanggal,
// mencakup satu atau lebih siswa (satu pengajuan untuk rombongan,
// bukan satu baris per siswa). Sekali diputus, pengajuan beku.
type PengajuanIzin struct {
	gorm.Model
	JadwalID       uint   `json:"jadwal_id"`
	Tanggal        string `json:"tanggal"` // Format YYYY-MM-DD
	DiajukanOlehID uint   `json:"diajukan_oleh_id"`

	Status      StatusPengajuan `json:"status" gorm:"type:varchar(10);default:PENDING"`
	GuruID      *uint           `json:"guru_id"` // Guru yang memutuskan
	CatatanGuru string          `json:"catatan_guru"`
	DiputusPada *time.Time      `json:"diputus_pada"`

	// Relasi
	Jadwal Jadwal                `json:"jadwal" gorm:"foreignKey:JadwalID"`
	Detail []PengajuanIzinDetail `json:"detail" gorm:"foreignKey:PengajuanIzinID"`
}

type PengajuanIzinDetail struct {
	gorm.Model
	PengajuanIzinID uint            `json:"pengajuan_izin_id"`
	SiswaID         uint            `json:"siswa_id"`
	JenisIzin       StatusKehadiran `json:"jenis_izin" gorm:"type:varchar(10)"` // IZIN / SAKIT / ALPA
	Kategori        KategoriAlasan  `json:"kategori" gorm:"type:varchar(20)"`   // Deskriptif, tidak masuk status kehadiran
	Alasan          string          `json:"alasan" gorm:"type:text;not null"`
	PathBukti       string          `json:"path_bukti"`

	// Relasi
	Siswa Siswa `json:"siswa" gorm:"foreignKey:SiswaID"`
}
