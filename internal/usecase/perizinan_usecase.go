package usecase

import (
	"fmt"
	"time"

	"absensi-sekolah-backend/internal/model"
	"absensi-sekolah-backend/internal/repository"
)

// Notifier mengirim pemberitahuan keputusan ke pengaju. Pengiriman adalah
// urusan kolaborator eksternal; core hanya memanggil dan tidak menunggu.
type Notifier interface {
	KirimKeputusan(email, subjek, isi string)
}

type PerizinanUsecase struct {
	perizinanRepo repository.PerizinanRepository
	kehadiranRepo repository.KehadiranRepository
	jadwalRepo    repository.JadwalRepository
	siswaRepo     repository.SiswaRepository
	userRepo      repository.UserRepository
	notifier      Notifier

	now func() time.Time
}

func NewPerizinanUsecase(pRepo repository.PerizinanRepository, kRepo repository.KehadiranRepository, jRepo repository.JadwalRepository, sRepo repository.SiswaRepository, uRepo repository.UserRepository, notifier Notifier) *PerizinanUsecase {
	return &PerizinanUsecase{
		perizinanRepo: pRepo,
		kehadiranRepo: kRepo,
		jadwalRepo:    jRepo,
		siswaRepo:     sRepo,
		userRepo:      uRepo,
		notifier:      notifier,
		now:           time.Now,
	}
}

type EntriIzin struct {
	SiswaID   uint   `json:"siswa_id"`
	JenisIzin string `json:"jenis_izin"` // izin/sakit/alpa
	Kategori  string `json:"kategori"`   // deskriptif, opsional
	Alasan    string `json:"alasan"`
	PathBukti string `json:"path_bukti"`
}

// AjukanIzin membuat satu pengajuan untuk seluruh rombongan yang terdampak
// pada jadwal/tanggal itu, bukan satu baris per siswa. Pengajuan dibuat
// PENDING; validasi di sini all-or-nothing karena pengajuan adalah satu
// agregat.
func (u *PerizinanUsecase) AjukanIzin(jadwalID uint, tanggal string, entries []EntriIzin, pengaju Actor) (*model.PengajuanIzin, error) {
	if err := validTanggal(tanggal); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: daftar siswa kosong", ErrValidation)
	}

	jadwal, err := u.jadwalRepo.GetByID(jadwalID)
	if err != nil {
		return nil, fmt.Errorf("%w: jadwal %d", ErrNotFound, jadwalID)
	}

	if pengaju.Role != model.RolePerwakilan || pengaju.KelasID == nil || *pengaju.KelasID != jadwal.KelasID {
		return nil, fmt.Errorf("%w: bukan perwakilan kelas pada jadwal ini", ErrUnauthorized)
	}

	roster, err := u.siswaRepo.GetByKelas(jadwal.KelasID)
	if err != nil {
		return nil, err
	}
	dalamKelas := make(map[uint]bool, len(roster))
	for _, s := range roster {
		dalamKelas[s.ID] = true
	}

	detail := make([]model.PengajuanIzinDetail, 0, len(entries))
	for _, e := range entries {
		jenis, ok := model.ParseStatusKehadiran(e.JenisIzin)
		if !ok || jenis == model.StatusHadir {
			return nil, fmt.Errorf("%w: jenis izin %q tidak dikenal", ErrValidation, e.JenisIzin)
		}
		if e.Alasan == "" {
			return nil, fmt.Errorf("%w: alasan wajib diisi untuk siswa %d", ErrValidation, e.SiswaID)
		}
		if !dalamKelas[e.SiswaID] {
			return nil, fmt.Errorf("%w: siswa %d bukan anggota kelas pada jadwal ini", ErrValidation, e.SiswaID)
		}
		kategori := model.KategoriAlasan(e.Kategori)
		if e.Kategori == "" {
			kategori = model.KategoriLainnya
		} else if !kategori.Valid() {
			return nil, fmt.Errorf("%w: kategori alasan %q tidak dikenal", ErrValidation, e.Kategori)
		}
		detail = append(detail, model.PengajuanIzinDetail{
			SiswaID:   e.SiswaID,
			JenisIzin: jenis,
			Kategori:  kategori,
			Alasan:    e.Alasan,
			PathBukti: e.PathBukti,
		})
	}

	izin := &model.PengajuanIzin{
		JadwalID:       jadwalID,
		Tanggal:        tanggal,
		DiajukanOlehID: pengaju.UserID,
		Status:         model.PengajuanPending,
		Detail:         detail,
	}
	if err := u.perizinanRepo.Create(izin); err != nil {
		return nil, err
	}
	return izin, nil
}

// PutuskanIzin memutus pengajuan PENDING menjadi DISETUJUI atau DITOLAK.
// Transisi dijaga check-and-set atomik: dua keputusan serentak tidak bisa
// sama-sama menang. Persetujuan menulis kehadiran lewat kontrak upsert
// yang sama dengan pencatatan langsung guru; penolakan tidak menyentuh
// record kehadiran sama sekali.
func (u *PerizinanUsecase) PutuskanIzin(izinID uint, keputusan string, catatan string, guru Actor) (*model.PengajuanIzin, error) {
	status, err := parseKeputusan(keputusan)
	if err != nil {
		return nil, err
	}

	izin, err := u.perizinanRepo.GetByID(izinID)
	if err != nil {
		return nil, fmt.Errorf("%w: pengajuan izin %d", ErrNotFound, izinID)
	}

	if guru.Role != model.RoleGuru || guru.UserID != izin.Jadwal.GuruID {
		return nil, fmt.Errorf("%w: hanya guru pengampu jadwal yang boleh memutus", ErrUnauthorized)
	}
	if izin.Status != model.PengajuanPending {
		return nil, fmt.Errorf("%w: status sekarang %s", ErrInvalidState, izin.Status)
	}

	diputusPada := u.now()
	ok, err := u.perizinanRepo.UpdateKeputusan(izinID, status, guru.UserID, catatan, diputusPada)
	if err != nil {
		return nil, err
	}
	if !ok {
		// PENDING saat dibaca, sudah diputus saat ditulis
		return nil, fmt.Errorf("%w: pengajuan izin %d", ErrConflict, izinID)
	}

	if status == model.PengajuanDisetujui {
		for _, d := range izin.Detail {
			err := u.kehadiranRepo.Upsert(&model.Kehadiran{
				SiswaID:         d.SiswaID,
				JadwalID:        izin.JadwalID,
				Tanggal:         izin.Tanggal,
				Status:          d.JenisIzin,
				Keterangan:      d.Alasan,
				DicatatOlehID:   guru.UserID,
				DicatatOlehRole: model.RoleGuru,
				DicatatPada:     diputusPada,
			})
			if err != nil {
				return nil, fmt.Errorf("gagal menulis kehadiran siswa %d: %w", d.SiswaID, err)
			}
		}
	}

	izin.Status = status
	izin.GuruID = &guru.UserID
	izin.CatatanGuru = catatan
	izin.DiputusPada = &diputusPada

	u.beritahuPengaju(izin.DiajukanOlehID, "Keputusan Pengajuan Izin",
		fmt.Sprintf("Pengajuan izin untuk tanggal %s telah %s.", izin.Tanggal, status))

	return izin, nil
}

func (u *PerizinanUsecase) RiwayatPengaju(userID uint) ([]model.PengajuanIzin, error) {
	return u.perizinanRepo.GetByPengaju(userID)
}

func (u *PerizinanUsecase) DaftarPendingGuru(guruID uint) ([]model.PengajuanIzin, error) {
	return u.perizinanRepo.GetPendingByGuru(guruID)
}

func (u *PerizinanUsecase) beritahuPengaju(userID uint, subjek, isi string) {
	if u.notifier == nil {
		return
	}
	pengaju, err := u.userRepo.FindByID(userID)
	if err != nil || pengaju.Email == "" {
		return
	}
	// Jalankan di background agar respon tidak menunggu SMTP
	go u.notifier.KirimKeputusan(pengaju.Email, subjek, isi)
}

func parseKeputusan(s string) (model.StatusPengajuan, error) {
	switch model.StatusPengajuan(s) {
	case model.PengajuanDisetujui, model.PengajuanDitolak:
		return model.StatusPengajuan(s), nil
	default:
		return "", fmt.Errorf("%w: keputusan %q tidak dikenal, gunakan DISETUJUI atau DITOLAK", ErrValidation, s)
	}
}
