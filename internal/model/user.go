package model

import "gorm.io/gorm"

// Role akun. Perwakilan adalah siswa yang ditunjuk mewakili kelasnya
// untuk urusan pengajuan izin dan banding absensi.
const (
	RoleAdmin      = "Admin"
	RoleGuru       = "Guru"
	RolePerwakilan = "Perwakilan"
)

type User struct {
	gorm.Model
	Nama     string `json:"nama"`
	NIP      string `json:"nip" gorm:"column:nip;unique;not null"` // NIP guru/admin, NISN untuk perwakilan
	Password string `json:"-"`
	Role     string `json:"role" gorm:"not null"` // Admin / Guru / Perwakilan
	Email    string `json:"email"`
	KelasID  *uint  `json:"kelas_id"` // Diisi untuk Perwakilan (kelas yang diwakili)
	SiswaID  *uint  `json:"siswa_id"` // Diisi untuk Perwakilan (data siswa ybs)
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Relasi
	Kelas *Kelas `json:"kelas,omitempty" gorm:"foreignKey:KelasID"`
}
