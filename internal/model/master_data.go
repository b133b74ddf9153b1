package model

import "gorm.io/gorm"

type Kelas struct {
	gorm.Model
	NamaKelas   string `json:"nama_kelas" gorm:"unique;not null"` // Contoh: X-IPA-1
	WaliKelasID *uint  `json:"wali_kelas_id"`

	// Relasi
	WaliKelas *User   `json:"wali_kelas,omitempty" gorm:"foreignKey:WaliKelasID"`
	Siswa     []Siswa `json:"siswa,omitempty"`
}

type Siswa struct {
	gorm.Model
	KelasID  uint   `json:"kelas_id"`
	Nama     string `json:"nama" gorm:"not null"`
	NISN     string `json:"nisn" gorm:"column:nisn;unique;not null"`
	JK       string `json:"jk"` // L / P
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Relasi
	Kelas Kelas `json:"kelas" gorm:"foreignKey:KelasID"`
}

type MataPelajaran struct {
	gorm.Model
	KodeMapel string `json:"kode_mapel" gorm:"unique;not null"` // Contoh: MTK, BIN
	NamaMapel string `json:"nama_mapel" gorm:"not null"`
}

type HariLibur struct {
	gorm.Model
	Tanggal    string `json:"tanggal" gorm:"unique;not null"` // Format YYYY-MM-DD
	Keterangan string `json:"keterangan"`
}
