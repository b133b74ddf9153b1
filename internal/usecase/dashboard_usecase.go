package usecase

import (
	"math"
	"time"

	"absensi-sekolah-backend/internal/model"
	"absensi-sekolah-backend/internal/repository"
)

type DashboardUsecase struct {
	jadwalRepo    repository.JadwalRepository
	kehadiranRepo repository.KehadiranRepository
	liburRepo     repository.HariLiburRepository
	dashRepo      repository.DashboardRepository
}

func NewDashboardUsecase(jRepo repository.JadwalRepository, kRepo repository.KehadiranRepository, lRepo repository.HariLiburRepository, dRepo repository.DashboardRepository) *DashboardUsecase {
	return &DashboardUsecase{
		jadwalRepo:    jRepo,
		kehadiranRepo: kRepo,
		liburRepo:     lRepo,
		dashRepo:      dRepo,
	}
}

type JadwalBerlangsung struct {
	Jadwal       model.Jadwal `json:"jadwal"`
	SudahDicatat bool         `json:"sudah_dicatat"`
}

type RingkasanLive struct {
	Tanggal             string              `json:"tanggal"`
	JadwalBerlangsung   []JadwalBerlangsung `json:"jadwal_berlangsung"`
	PersentaseKehadiran float64             `json:"persentase_kehadiran"`
}

// RingkasanLive adalah query turunan tanpa state untuk dashboard yang
// polling tiap ~30 detik: jadwal yang sedang BERLANGSUNG saat now, masing-
// masing dengan flag sudah/belum dicatat, plus persentase HADIR hari ini.
// Penyebut nol menghasilkan 0, bukan pembagian nol.
func (u *DashboardUsecase) RingkasanLive(now time.Time) (*RingkasanLive, error) {
	tanggal := now.Format("2006-01-02")
	ringkasan := &RingkasanLive{Tanggal: tanggal, JadwalBerlangsung: []JadwalBerlangsung{}}

	libur, err := u.liburRepo.IsHoliday(tanggal)
	if err != nil {
		return nil, err
	}
	if !libur {
		jadwals, err := u.jadwalRepo.GetByHari(HariIndonesia(now.Weekday()))
		if err != nil {
			return nil, err
		}
		for _, j := range jadwals {
			status, err := KlasifikasiJadwal(j.JamMulai, j.JamSelesai, now)
			if err != nil {
				return nil, err
			}
			if status != model.JadwalBerlangsung {
				continue
			}
			dicatat, err := u.kehadiranRepo.ExistsForJadwal(j.ID, tanggal)
			if err != nil {
				return nil, err
			}
			ringkasan.JadwalBerlangsung = append(ringkasan.JadwalBerlangsung, JadwalBerlangsung{Jadwal: j, SudahDicatat: dicatat})
		}
	}

	total, err := u.kehadiranRepo.CountByTanggal(tanggal)
	if err != nil {
		return nil, err
	}
	if total > 0 {
		hadir, err := u.kehadiranRepo.CountByTanggalAndStatus(tanggal, model.StatusHadir)
		if err != nil {
			return nil, err
		}
		persen := float64(hadir) / float64(total) * 100
		ringkasan.PersentaseKehadiran = math.Round(persen*100) / 100
	}

	return ringkasan, nil
}

// RekapHarian menghitung jumlah record per status untuk satu tanggal.
func (u *DashboardUsecase) RekapHarian(tanggal string) (map[string]int64, error) {
	if err := validTanggal(tanggal); err != nil {
		return nil, err
	}
	return u.dashRepo.GetRekapHarian(tanggal)
}

// RekapBulanan menghitung jumlah record per status untuk satu kelas sebulan.
func (u *DashboardUsecase) RekapBulanan(kelasID uint, bulan, tahun string) (map[string]int64, error) {
	return u.dashRepo.GetRekapBulanan(kelasID, bulan, tahun)
}
