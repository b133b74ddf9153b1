package usecase

import (
	"fmt"
	"time"

	"absensi-sekolah-backend/internal/model"
	"absensi-sekolah-backend/internal/repository"
)

type BandingUsecase struct {
	bandingRepo   repository.BandingRepository
	kehadiranRepo repository.KehadiranRepository
	jadwalRepo    repository.JadwalRepository
	userRepo      repository.UserRepository
	notifier      Notifier

	now func() time.Time
}

func NewBandingUsecase(bRepo repository.BandingRepository, kRepo repository.KehadiranRepository, jRepo repository.JadwalRepository, uRepo repository.UserRepository, notifier Notifier) *BandingUsecase {
	return &BandingUsecase{
		bandingRepo:   bRepo,
		kehadiranRepo: kRepo,
		jadwalRepo:    jRepo,
		userRepo:      uRepo,
		notifier:      notifier,
		now:           time.Now,
	}
}

type PengajuanBanding struct {
	SiswaID        uint   `json:"siswa_id"`
	JadwalID       uint   `json:"jadwal_id"`
	Tanggal        string `json:"tanggal"`
	StatusDiajukan string `json:"status_diajukan"`
	Alasan         string `json:"alasan"`
	PathBukti      string `json:"path_bukti"`
}

// AjukanBanding meminta koreksi atas record kehadiran yang sudah ada.
// Status record saat ini difoto ke StatusAwal pada saat pengajuan; banding
// kebal terhadap perubahan record setelahnya. Tanpa record yang sudah
// tercatat, jalurnya pengajuan izin, bukan banding.
func (u *BandingUsecase) AjukanBanding(req PengajuanBanding, pengaju Actor) (*model.BandingKehadiran, error) {
	if err := validTanggal(req.Tanggal); err != nil {
		return nil, err
	}
	if req.Alasan == "" {
		return nil, fmt.Errorf("%w: alasan wajib diisi", ErrValidation)
	}
	statusDiajukan, ok := model.ParseStatusKehadiran(req.StatusDiajukan)
	if !ok {
		return nil, fmt.Errorf("%w: status %q tidak dikenal", ErrValidation, req.StatusDiajukan)
	}

	jadwal, err := u.jadwalRepo.GetByID(req.JadwalID)
	if err != nil {
		return nil, fmt.Errorf("%w: jadwal %d", ErrNotFound, req.JadwalID)
	}
	if pengaju.Role != model.RolePerwakilan || pengaju.KelasID == nil || *pengaju.KelasID != jadwal.KelasID {
		return nil, fmt.Errorf("%w: bukan perwakilan kelas pada jadwal ini", ErrUnauthorized)
	}

	record, err := u.kehadiranRepo.GetByKey(req.SiswaID, req.JadwalID, req.Tanggal)
	if err != nil {
		return nil, fmt.Errorf("%w: belum ada kehadiran tercatat untuk siswa %d pada %s; gunakan pengajuan izin", ErrNotFound, req.SiswaID, req.Tanggal)
	}

	banding := &model.BandingKehadiran{
		SiswaID:        req.SiswaID,
		JadwalID:       req.JadwalID,
		Tanggal:        req.Tanggal,
		StatusAwal:     record.Status,
		StatusDiajukan: statusDiajukan,
		Alasan:         req.Alasan,
		PathBukti:      req.PathBukti,
		DiajukanOlehID: pengaju.UserID,
		Status:         model.PengajuanPending,
	}
	if err := u.bandingRepo.Create(banding); err != nil {
		return nil, err
	}
	return banding, nil
}

// PutuskanBanding: aturan otorisasi dan terminal-state sama dengan
// pengajuan izin. Persetujuan menimpa status record ke status yang
// diajukan lewat upsert; penolakan membiarkan record apa adanya —
// termasuk bila record sudah berubah sejak pengajuan, banding ditolak
// TIDAK mengembalikan StatusAwal.
func (u *BandingUsecase) PutuskanBanding(bandingID uint, keputusan string, catatan string, guru Actor) (*model.BandingKehadiran, error) {
	status, err := parseKeputusan(keputusan)
	if err != nil {
		return nil, err
	}

	banding, err := u.bandingRepo.GetByID(bandingID)
	if err != nil {
		return nil, fmt.Errorf("%w: banding %d", ErrNotFound, bandingID)
	}

	if guru.Role != model.RoleGuru || guru.UserID != banding.Jadwal.GuruID {
		return nil, fmt.Errorf("%w: hanya guru pengampu jadwal yang boleh memutus", ErrUnauthorized)
	}
	if banding.Status != model.PengajuanPending {
		return nil, fmt.Errorf("%w: status sekarang %s", ErrInvalidState, banding.Status)
	}

	diputusPada := u.now()
	ok, err := u.bandingRepo.UpdateKeputusan(bandingID, status, guru.UserID, catatan, diputusPada)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: banding %d", ErrConflict, bandingID)
	}

	if status == model.PengajuanDisetujui {
		err := u.kehadiranRepo.Upsert(&model.Kehadiran{
			SiswaID:         banding.SiswaID,
			JadwalID:        banding.JadwalID,
			Tanggal:         banding.Tanggal,
			Status:          banding.StatusDiajukan,
			Keterangan:      banding.Alasan,
			DicatatOlehID:   guru.UserID,
			DicatatOlehRole: model.RoleGuru,
			DicatatPada:     diputusPada,
		})
		if err != nil {
			return nil, fmt.Errorf("gagal menulis kehadiran siswa %d: %w", banding.SiswaID, err)
		}
	}

	banding.Status = status
	banding.GuruID = &guru.UserID
	banding.CatatanGuru = catatan
	banding.DiputusPada = &diputusPada

	u.beritahuPengaju(banding.DiajukanOlehID, "Keputusan Banding Kehadiran",
		fmt.Sprintf("Banding kehadiran tanggal %s telah %s.", banding.Tanggal, status))

	return banding, nil
}

func (u *BandingUsecase) RiwayatPengaju(userID uint) ([]model.BandingKehadiran, error) {
	return u.bandingRepo.GetByPengaju(userID)
}

func (u *BandingUsecase) DaftarPendingGuru(guruID uint) ([]model.BandingKehadiran, error) {
	return u.bandingRepo.GetPendingByGuru(guruID)
}

func (u *BandingUsecase) beritahuPengaju(userID uint, subjek, isi string) {
	if u.notifier == nil {
		return
	}
	pengaju, err := u.userRepo.FindByID(userID)
	if err != nil || pengaju.Email == "" {
		return
	}
	go u.notifier.KirimKeputusan(pengaju.Email, subjek, isi)
}
