package model

import (
	"time"

	"gorm.io/gorm"
)

// Kehadiran adalah record absensi otoritatif: tepat nol atau satu baris
// per (siswa, jadwal, tanggal). Semua penulisan lewat upsert atomik di
// repository; alur izin dan banding tidak pernah mengubah field langsung.
type Kehadiran struct {
	gorm.Model
	SiswaID  uint   `json:"siswa_id" gorm:"uniqueIndex:idx_kehadiran_unik"`
	JadwalID uint   `json:"jadwal_id" gorm:"uniqueIndex:idx_kehadiran_unik"`
	Tanggal  string `json:"tanggal" gorm:"size:10;uniqueIndex:idx_kehadiran_unik"` // Format YYYY-MM-DD

	Status     StatusKehadiran `json:"status" gorm:"type:varchar(10);not null"`
	Keterangan string          `json:"keterangan"`

	DicatatOlehID   uint      `json:"dicatat_oleh_id"`
	DicatatOlehRole string    `json:"dicatat_oleh_role"`
	DicatatPada     time.Time `json:"dicatat_pada"`

	// Relasi
	Siswa  Siswa  `json:"siswa" gorm:"foreignKey:SiswaID"`
	Jadwal Jadwal `json:"jadwal" gorm:"foreignKey:JadwalID"`
}
