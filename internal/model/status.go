package model

import "strings"

// StatusKehadiran adalah enum tertutup untuk status absensi siswa.
// Semua input dari luar (form, query, payload workflow) wajib lewat
// ParseStatusKehadiran agar penulisan bebas ("hadir", "Hadir", "HADIR")
// ternormalisasi di satu titik.
type StatusKehadiran string

const (
	StatusHadir StatusKehadiran = "HADIR"
	StatusIzin  StatusKehadiran = "IZIN"
	StatusSakit StatusKehadiran = "SAKIT"
	StatusAlpa  StatusKehadiran = "ALPA"
)

func (s StatusKehadiran) Valid() bool {
	switch s {
	case StatusHadir, StatusIzin, StatusSakit, StatusAlpa:
		return true
	default:
		return false
	}
}

// ParseStatusKehadiran menormalisasi string bebas menjadi StatusKehadiran.
// "alpha" dan "tidak_hadir" adalah alias lama yang masih diterima.
func ParseStatusKehadiran(s string) (StatusKehadiran, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HADIR":
		return StatusHadir, true
	case "IZIN":
		return StatusIzin, true
	case "SAKIT":
		return StatusSakit, true
	case "ALPA", "ALPHA", "TIDAK_HADIR":
		return StatusAlpa, true
	default:
		return "", false
	}
}

// StatusPengajuan adalah status siklus hidup pengajuan izin dan banding.
// Transisi satu arah: PENDING -> DISETUJUI atau PENDING -> DITOLAK.
type StatusPengajuan string

const (
	PengajuanPending   StatusPengajuan = "PENDING"
	PengajuanDisetujui StatusPengajuan = "DISETUJUI"
	PengajuanDitolak   StatusPengajuan = "DITOLAK"
)

func (s StatusPengajuan) Terminal() bool {
	return s == PengajuanDisetujui || s == PengajuanDitolak
}

// StatusJadwal adalah hasil klasifikasi jendela waktu sebuah jadwal
// terhadap jam sekarang.
type StatusJadwal string

const (
	JadwalBelumMulai  StatusJadwal = "BELUM_MULAI"
	JadwalBerlangsung StatusJadwal = "BERLANGSUNG"
	JadwalSelesai     StatusJadwal = "SELESAI"
)

// KategoriAlasan adalah taksonomi deskriptif pengajuan izin. Terpisah dari
// StatusKehadiran: kategori tidak pernah ditulis ke record kehadiran.
type KategoriAlasan string

const (
	KategoriSakit             KategoriAlasan = "SAKIT"
	KategoriIzin              KategoriAlasan = "IZIN"
	KategoriKeperluanKeluarga KategoriAlasan = "KEPERLUAN_KELUARGA"
	KategoriAcaraSekolah      KategoriAlasan = "ACARA_SEKOLAH"
	KategoriLainnya           KategoriAlasan = "LAINNYA"
)

func (k KategoriAlasan) Valid() bool {
	switch k {
	case KategoriSakit, KategoriIzin, KategoriKeperluanKeluarga, KategoriAcaraSekolah, KategoriLainnya:
		return true
	default:
		return false
	}
}
