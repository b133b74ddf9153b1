package model

import "gorm.io/gorm"

// Jadwal adalah satu slot pelajaran mingguan: kelas x mapel x guru pada
// hari dan jam tertentu. Dibuat oleh admin, read-only bagi alur absensi.
type Jadwal struct {
	gorm.Model
	KelasID    uint   `json:"kelas_id" gorm:"uniqueIndex:idx_jadwal_slot"`
	MapelID    uint   `json:"mapel_id"`
	GuruID     uint   `json:"guru_id"`
	Hari       string `json:"hari" gorm:"uniqueIndex:idx_jadwal_slot"` // Senin..Minggu
	JamKe      int    `json:"jam_ke" gorm:"uniqueIndex:idx_jadwal_slot"`
	JamMulai   string `json:"jam_mulai"`   // Format "15:04"
	JamSelesai string `json:"jam_selesai"` // Format "15:04"
	IsActive   bool   `json:"is_active" gorm:"default:true"`

	// Relasi
	Kelas Kelas         `json:"kelas" gorm:"foreignKey:KelasID"`
	Mapel MataPelajaran `json:"mapel" gorm:"foreignKey:MapelID"`
	Guru  User          `json:"guru" gorm:"foreignKey:GuruID"`
}
