package database

import (
	"log"

	"absensi-sekolah-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)

	// 1. Seed Akun Admin
	admin := model.User{
		Nama:     "Administrator Sekolah",
		NIP:      "199001012015011001",
		Password: string(hashedPassword),
		Role:     model.RoleAdmin,
		Email:    "admin@sekolah.sch.id",
		IsActive: true,
	}
	result := db.FirstOrCreate(&admin, model.User{NIP: admin.NIP})
	if result.Error == nil {
		// Paksa update password agar selalu sinkron dengan "admin123" meskipun user sudah ada
		db.Model(&admin).Update("password", string(hashedPassword))
		log.Println("Seeding Admin berhasil!")
	}

	// 2. Seed Guru
	guru := model.User{
		Nama:     "Siti Rahma, S.Pd",
		NIP:      "198507152010012002",
		Password: string(hashedPassword),
		Role:     model.RoleGuru,
		Email:    "siti.rahma@sekolah.sch.id",
		IsActive: true,
	}
	db.FirstOrCreate(&guru, model.User{NIP: guru.NIP})

	// 3. Seed Kelas (wali kelas = guru di atas)
	kelas := model.Kelas{
		NamaKelas:   "X-IPA-1",
		WaliKelasID: &guru.ID,
	}
	db.FirstOrCreate(&kelas, model.Kelas{NamaKelas: kelas.NamaKelas})

	// 4. Seed Siswa
	siswa := []model.Siswa{
		{KelasID: kelas.ID, Nama: "Budi Santoso", NISN: "0051234567", JK: "L", IsActive: true},
		{KelasID: kelas.ID, Nama: "Ani Lestari", NISN: "0051234568", JK: "P", IsActive: true},
		{KelasID: kelas.ID, Nama: "Citra Dewi", NISN: "0051234569", JK: "P", IsActive: true},
	}
	for _, s := range siswa {
		db.FirstOrCreate(&s, model.Siswa{NISN: s.NISN})
	}

	// 5. Seed Akun Perwakilan Kelas (siswa pertama yang ditunjuk)
	var siswaPertama model.Siswa
	db.Where("nisn = ?", "0051234567").First(&siswaPertama)

	perwakilan := model.User{
		Nama:     siswaPertama.Nama,
		NIP:      siswaPertama.NISN, // Perwakilan login pakai NISN
		Password: string(hashedPassword),
		Role:     model.RolePerwakilan,
		KelasID:  &kelas.ID,
		SiswaID:  &siswaPertama.ID,
		IsActive: true,
	}
	db.FirstOrCreate(&perwakilan, model.User{NIP: perwakilan.NIP})

	// 6. Seed Mata Pelajaran
	mapels := []model.MataPelajaran{
		{KodeMapel: "MTK", NamaMapel: "Matematika"},
		{KodeMapel: "BIN", NamaMapel: "Bahasa Indonesia"},
		{KodeMapel: "FIS", NamaMapel: "Fisika"},
	}
	for _, m := range mapels {
		db.FirstOrCreate(&m, model.MataPelajaran{KodeMapel: m.KodeMapel})
	}

	// 7. Seed Jadwal contoh (Senin jam ke-1 dan ke-2)
	var mtk model.MataPelajaran
	db.Where("kode_mapel = ?", "MTK").First(&mtk)

	jadwals := []model.Jadwal{
		{KelasID: kelas.ID, MapelID: mtk.ID, GuruID: guru.ID, Hari: "Senin", JamKe: 1, JamMulai: "07:00", JamSelesai: "08:30", IsActive: true},
		{KelasID: kelas.ID, MapelID: mtk.ID, GuruID: guru.ID, Hari: "Senin", JamKe: 2, JamMulai: "08:30", JamSelesai: "10:00", IsActive: true},
	}
	for _, j := range jadwals {
		db.FirstOrCreate(&j, model.Jadwal{KelasID: j.KelasID, Hari: j.Hari, JamKe: j.JamKe})
	}

	log.Println("Seeding data master selesai!")
}
