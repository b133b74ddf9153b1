package usecase

import (
	"fmt"
	"time"

	"absensi-sekolah-backend/internal/model"
)

var namaHari = map[time.Weekday]string{
	time.Sunday:    "Minggu",
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
}

// HariIndonesia mengubah weekday menjadi nama hari sesuai kolom Jadwal.Hari.
func HariIndonesia(w time.Weekday) string {
	return namaHari[w]
}

// KlasifikasiJadwal menentukan jendela waktu sebuah jadwal terhadap jam
// sekarang: BELUM_MULAI sebelum jam mulai, BERLANGSUNG pada [mulai, selesai]
// inklusif di kedua ujung, SELESAI setelahnya. Fungsi murni; panggil ulang
// di setiap pembacaan karena satu sesi guru bisa melintasi ketiga jendela.
// Hanya berlaku untuk jadwal di hari yang sama dengan now.
func KlasifikasiJadwal(jamMulai, jamSelesai string, now time.Time) (model.StatusJadwal, error) {
	mulai, err := time.Parse("15:04", jamMulai)
	if err != nil {
		return "", fmt.Errorf("%w: jam_mulai %q tidak valid", ErrValidation, jamMulai)
	}
	selesai, err := time.Parse("15:04", jamSelesai)
	if err != nil {
		return "", fmt.Errorf("%w: jam_selesai %q tidak valid", ErrValidation, jamSelesai)
	}

	// Tempelkan jam dinding ke tanggal now agar bisa dibandingkan
	waktuMulai := time.Date(now.Year(), now.Month(), now.Day(), mulai.Hour(), mulai.Minute(), 0, 0, now.Location())
	waktuSelesai := time.Date(now.Year(), now.Month(), now.Day(), selesai.Hour(), selesai.Minute(), 0, 0, now.Location())

	switch {
	case now.Before(waktuMulai):
		return model.JadwalBelumMulai, nil
	case now.After(waktuSelesai):
		return model.JadwalSelesai, nil
	default:
		return model.JadwalBerlangsung, nil
	}
}

// validTanggal memastikan format YYYY-MM-DD di batas sistem.
func validTanggal(tanggal string) error {
	if _, err := time.Parse("2006-01-02", tanggal); err != nil {
		return fmt.Errorf("%w: tanggal %q tidak valid, gunakan format YYYY-MM-DD", ErrValidation, tanggal)
	}
	return nil
}
