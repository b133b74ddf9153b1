package model

import (
	"time"

	"gorm.io/gorm"
)

// BandingKehadiran adalah permintaan koreksi atas record kehadiran yang
// SUDAH ada. StatusAwal difoto saat pengajuan, bukan saat keputusan,
// sehingga banding tetap "sebagaimana diajukan" walau record berubah.
type BandingKehadiran struct {
	gorm.Model
	SiswaID  uint   `json:"siswa_id"`
	JadwalID uint   `json:"jadwal_id"`
	Tanggal  string `json:"tanggal"` // Format YYYY-MM-DD

	StatusAwal     StatusKehadiran `json:"status_awal" gorm:"type:varchar(10)"`
	StatusDiajukan StatusKehadiran `json:"status_diajukan" gorm:"type:varchar(10)"`
	Alasan         string          `json:"alasan" gorm:"type:text;not null"`
	PathBukti      string          `json:"path_bukti"`
	DiajukanOlehID uint            `json:"diajukan_oleh_id"`

	Status      StatusPengajuan `json:"status" gorm:"type:varchar(10);default:PENDING"`
	GuruID      *uint           `json:"guru_id"`
	CatatanGuru string          `json:"catatan_guru"`
	DiputusPada *time.Time      `json:"diputus_pada"`

	// Relasi
	Siswa  Siswa  `json:"siswa" gorm:"foreignKey:SiswaID"`
	Jadwal Jadwal `json:"jadwal" gorm:"foreignKey:JadwalID"`
}
