package usecase

import (
	"fmt"
	"time"

	"absensi-sekolah-backend/internal/model"
	"absensi-sekolah-backend/internal/repository"
)

type KehadiranUsecase struct {
	kehadiranRepo repository.KehadiranRepository
	jadwalRepo    repository.JadwalRepository
	siswaRepo     repository.SiswaRepository
	liburRepo     repository.HariLiburRepository

	now func() time.Time
}

func NewKehadiranUsecase(kRepo repository.KehadiranRepository, jRepo repository.JadwalRepository, sRepo repository.SiswaRepository, lRepo repository.HariLiburRepository) *KehadiranUsecase {
	return &KehadiranUsecase{
		kehadiranRepo: kRepo,
		jadwalRepo:    jRepo,
		siswaRepo:     sRepo,
		liburRepo:     lRepo,
		now:           time.Now,
	}
}

type EntriKehadiran struct {
	SiswaID    uint   `json:"siswa_id"`
	Status     string `json:"status"` // hadir/izin/sakit/alpa, dinormalisasi di sini
	Keterangan string `json:"keterangan"`
}

type HasilEntri struct {
	SiswaID uint   `json:"siswa_id"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

type HasilSubmit struct {
	Tersimpan int          `json:"tersimpan"`
	Gagal     int          `json:"gagal"`
	Hasil     []HasilEntri `json:"hasil"`
}

// SubmitKehadiran mencatat status per siswa untuk satu jadwal/tanggal.
// Idempoten: pengiriman ulang menimpa baris yang sama lewat upsert pada
// kunci unik (siswa, jadwal, tanggal), penulis terakhir menang.
// Validasi per entri: siswa di luar roster gagal sendiri, entri valid di
// panggilan yang sama tetap tersimpan — guru yang mengoreksi satu baris
// tidak perlu mengulang seluruh kelas.
func (u *KehadiranUsecase) SubmitKehadiran(jadwalID uint, tanggal string, entries []EntriKehadiran, actor Actor) (*HasilSubmit, error) {
	if err := validTanggal(tanggal); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: daftar kehadiran kosong", ErrValidation)
	}

	jadwal, err := u.jadwalRepo.GetByID(jadwalID)
	if err != nil {
		return nil, fmt.Errorf("%w: jadwal %d", ErrNotFound, jadwalID)
	}

	// Hanya guru pengampu jadwal ini (atau admin) yang boleh mencatat
	if actor.Role != model.RoleAdmin && !(actor.Role == model.RoleGuru && actor.UserID == jadwal.GuruID) {
		return nil, fmt.Errorf("%w: bukan guru pengampu jadwal ini", ErrUnauthorized)
	}

	roster, err := u.siswaRepo.GetByKelas(jadwal.KelasID)
	if err != nil {
		return nil, err
	}
	dalamKelas := make(map[uint]bool, len(roster))
	for _, s := range roster {
		dalamKelas[s.ID] = true
	}

	hasil := &HasilSubmit{Hasil: make([]HasilEntri, 0, len(entries))}
	dicatatPada := u.now()

	for _, e := range entries {
		status, ok := model.ParseStatusKehadiran(e.Status)
		if !ok {
			hasil.Gagal++
			hasil.Hasil = append(hasil.Hasil, HasilEntri{SiswaID: e.SiswaID, Error: fmt.Sprintf("status %q tidak dikenal", e.Status)})
			continue
		}
		if !dalamKelas[e.SiswaID] {
			hasil.Gagal++
			hasil.Hasil = append(hasil.Hasil, HasilEntri{SiswaID: e.SiswaID, Error: "siswa bukan anggota kelas pada jadwal ini"})
			continue
		}

		err := u.kehadiranRepo.Upsert(&model.Kehadiran{
			SiswaID:         e.SiswaID,
			JadwalID:        jadwalID,
			Tanggal:         tanggal,
			Status:          status,
			Keterangan:      e.Keterangan,
			DicatatOlehID:   actor.UserID,
			DicatatOlehRole: actor.Role,
			DicatatPada:     dicatatPada,
		})
		if err != nil {
			hasil.Gagal++
			hasil.Hasil = append(hasil.Hasil, HasilEntri{SiswaID: e.SiswaID, Error: "gagal menyimpan kehadiran"})
			continue
		}
		hasil.Tersimpan++
		hasil.Hasil = append(hasil.Hasil, HasilEntri{SiswaID: e.SiswaID, OK: true})
	}

	return hasil, nil
}

type JadwalHariIni struct {
	Jadwal       model.Jadwal       `json:"jadwal"`
	StatusWaktu  model.StatusJadwal `json:"status_waktu"`
	SudahDicatat bool               `json:"sudah_dicatat"`
}

// JadwalGuruHariIni mengembalikan jadwal mengajar guru hari ini, masing-
// masing dengan jendela waktunya saat dipanggil dan flag sudah/belum
// dicatat. Klasifikasi dihitung segar setiap panggilan, tidak pernah
// di-cache. Hari libur mengembalikan daftar kosong.
func (u *KehadiranUsecase) JadwalGuruHariIni(guruID uint, now time.Time) ([]JadwalHariIni, error) {
	tanggal := now.Format("2006-01-02")

	libur, err := u.liburRepo.IsHoliday(tanggal)
	if err != nil {
		return nil, err
	}
	if libur {
		return []JadwalHariIni{}, nil
	}

	jadwals, err := u.jadwalRepo.GetByGuruAndHari(guruID, HariIndonesia(now.Weekday()))
	if err != nil {
		return nil, err
	}

	list := make([]JadwalHariIni, 0, len(jadwals))
	for _, j := range jadwals {
		status, err := KlasifikasiJadwal(j.JamMulai, j.JamSelesai, now)
		if err != nil {
			return nil, err
		}
		dicatat, err := u.kehadiranRepo.ExistsForJadwal(j.ID, tanggal)
		if err != nil {
			return nil, err
		}
		list = append(list, JadwalHariIni{Jadwal: j, StatusWaktu: status, SudahDicatat: dicatat})
	}
	return list, nil
}

// DaftarKehadiran membaca record tercatat untuk satu jadwal/tanggal,
// untuk alur "refresh lalu submit ulang" di sisi guru.
func (u *KehadiranUsecase) DaftarKehadiran(jadwalID uint, tanggal string, actor Actor) ([]model.Kehadiran, error) {
	if err := validTanggal(tanggal); err != nil {
		return nil, err
	}
	jadwal, err := u.jadwalRepo.GetByID(jadwalID)
	if err != nil {
		return nil, fmt.Errorf("%w: jadwal %d", ErrNotFound, jadwalID)
	}
	if actor.Role != model.RoleAdmin && !(actor.Role == model.RoleGuru && actor.UserID == jadwal.GuruID) {
		return nil, fmt.Errorf("%w: bukan guru pengampu jadwal ini", ErrUnauthorized)
	}
	return u.kehadiranRepo.GetByJadwalAndTanggal(jadwalID, tanggal)
}

// RiwayatSiswa mengembalikan riwayat kehadiran satu siswa per bulan.
func (u *KehadiranUsecase) RiwayatSiswa(siswaID uint, bulan, tahun string) ([]model.Kehadiran, error) {
	return u.kehadiranRepo.GetBySiswaAndBulan(siswaID, bulan, tahun)
}
