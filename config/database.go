package config

import (
	"fmt"

	"absensi-sekolah-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "absensi_sekolah"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	fmt.Println("Koneksi Database Berhasil!")

	// Auto Migration: constraint unik kehadiran (siswa, jadwal, tanggal)
	// ikut terbentuk dari tag uniqueIndex di model
	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.Kelas{})
	db.AutoMigrate(&model.Siswa{})
	db.AutoMigrate(&model.MataPelajaran{})
	db.AutoMigrate(&model.Jadwal{})
	db.AutoMigrate(&model.Kehadiran{})
	db.AutoMigrate(&model.PengajuanIzin{})
	db.AutoMigrate(&model.PengajuanIzinDetail{})
	db.AutoMigrate(&model.BandingKehadiran{})
	db.AutoMigrate(&model.HariLibur{})

	DB = db
}
