package usecase

import (
	"errors"
	"testing"
	"time"

	"absensi-sekolah-backend/internal/model"

	"gorm.io/gorm"
)

type perizinanFixture struct {
	uc    *PerizinanUsecase
	izin  *fakePerizinanRepo
	kehad *fakeKehadiranRepo
	notif *fakeNotifier
}

func newPerizinanFixture() *perizinanFixture {
	jRepo := newFakeJadwalRepo(jadwalSenin(1, 1, 10))
	pRepo := newFakePerizinanRepo(jRepo)
	kRepo := newFakeKehadiranRepo()
	sRepo := newFakeSiswaRepo(siswaKelas(1, 1), siswaKelas(2, 1), siswaKelas(3, 1))
	uRepo := newFakeUserRepo(model.User{Model: gorm.Model{ID: 5}, Email: "perwakilan@sekolah.sch.id", IsActive: true})
	notif := newFakeNotifier()

	uc := NewPerizinanUsecase(pRepo, kRepo, jRepo, sRepo, uRepo, notif)
	uc.now = func() time.Time { return jam(9, 0) }
	return &perizinanFixture{uc: uc, izin: pRepo, kehad: kRepo, notif: notif}
}

func kelasSatu() Actor {
	kelasID := uint(1)
	return Actor{UserID: 5, Role: model.RolePerwakilan, KelasID: &kelasID}
}

func TestAjukanIzinPending(t *testing.T) {
	fx := newPerizinanFixture()

	izin, err := fx.uc.AjukanIzin(1, "2026-03-02", []EntriIzin{
		{SiswaID: 1, JenisIzin: "sakit", Kategori: "SAKIT", Alasan: "demam berdarah"},
		{SiswaID: 2, JenisIzin: "izin", Alasan: "lomba antar sekolah"},
	}, kelasSatu())
	if err != nil {
		t.Fatalf("AjukanIzin error: %v", err)
	}
	if izin.Status != model.PengajuanPending {
		t.Errorf("status %s, harusnya PENDING", izin.Status)
	}
	if len(izin.Detail) != 2 {
		t.Fatalf("jumlah detail %d, harusnya 2", len(izin.Detail))
	}
	// Kategori kosong jatuh ke LAINNYA
	if izin.Detail[1].Kategori != model.KategoriLainnya {
		t.Errorf("kategori default %s, harusnya LAINNYA", izin.Detail[1].Kategori)
	}

	// Pengajuan sendiri tidak menulis kehadiran apa pun
	if n, _ := fx.kehad.CountByTanggal("2026-03-02"); n != 0 {
		t.Errorf("pengajuan menulis %d record kehadiran, harusnya 0", n)
	}
}

func TestAjukanIzinValidasiAllOrNothing(t *testing.T) {
	fx := newPerizinanFixture()
	pengaju := kelasSatu()

	cases := []struct {
		nama    string
		entries []EntriIzin
	}{
		{"daftar kosong", nil},
		{"jenis hadir", []EntriIzin{{SiswaID: 1, JenisIzin: "hadir", Alasan: "x"}}},
		{"jenis tidak dikenal", []EntriIzin{{SiswaID: 1, JenisIzin: "cuti", Alasan: "x"}}},
		{"alasan kosong", []EntriIzin{
			{SiswaID: 1, JenisIzin: "sakit", Alasan: "demam"},
			{SiswaID: 2, JenisIzin: "sakit", Alasan: ""},
		}},
		{"siswa luar kelas", []EntriIzin{
			{SiswaID: 1, JenisIzin: "sakit", Alasan: "demam"},
			{SiswaID: 99, JenisIzin: "sakit", Alasan: "demam"},
		}},
		{"kategori tidak dikenal", []EntriIzin{{SiswaID: 1, JenisIzin: "sakit", Kategori: "MAGER", Alasan: "x"}}},
	}

	for _, c := range cases {
		t.Run(c.nama, func(t *testing.T) {
			if _, err := fx.uc.AjukanIzin(1, "2026-03-02", c.entries, pengaju); !errors.Is(err, ErrValidation) {
				t.Errorf("dapat %v, harusnya ErrValidation", err)
			}
		})
	}

	// Satu entri invalid menggagalkan seluruh pengajuan, tidak ada yang tersisa
	if list, _ := fx.izin.GetByPengaju(5); len(list) != 0 {
		t.Errorf("tersisa %d pengajuan, harusnya 0", len(list))
	}
}

func TestAjukanIzinOtorisasi(t *testing.T) {
	fx := newPerizinanFixture()
	entries := []EntriIzin{{SiswaID: 1, JenisIzin: "sakit", Alasan: "demam"}}

	kelasLain := uint(2)
	if _, err := fx.uc.AjukanIzin(1, "2026-03-02", entries, Actor{UserID: 5, Role: model.RolePerwakilan, KelasID: &kelasLain}); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("perwakilan kelas lain: dapat %v, harusnya ErrUnauthorized", err)
	}
	if _, err := fx.uc.AjukanIzin(1, "2026-03-02", entries, Actor{UserID: 10, Role: model.RoleGuru}); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("guru mengajukan: dapat %v, harusnya ErrUnauthorized", err)
	}
}

func ajukanIzinDuaSiswa(t *testing.T, fx *perizinanFixture) *model.PengajuanIzin {
	t.Helper()
	izin, err := fx.uc.AjukanIzin(1, "2026-03-02", []EntriIzin{
		{SiswaID: 1, JenisIzin: "sakit", Alasan: "demam"},
		{SiswaID: 2, JenisIzin: "izin", Alasan: "lomba"},
	}, kelasSatu())
	if err != nil {
		t.Fatalf("AjukanIzin error: %v", err)
	}
	return izin
}

func TestPutuskanIzinDisetujui(t *testing.T) {
	fx := newPerizinanFixture()
	izin := ajukanIzinDuaSiswa(t, fx)
	guru := Actor{UserID: 10, Role: model.RoleGuru}

	hasil, err := fx.uc.PutuskanIzin(izin.ID, "DISETUJUI", "bukti lengkap", guru)
	if err != nil {
		t.Fatalf("PutuskanIzin error: %v", err)
	}
	if hasil.Status != model.PengajuanDisetujui {
		t.Errorf("status %s, harusnya DISETUJUI", hasil.Status)
	}

	// Persetujuan menulis satu record kehadiran per detail, atas nama guru
	rec1, err := fx.kehad.GetByKey(1, 1, "2026-03-02")
	if err != nil {
		t.Fatalf("record siswa 1 tidak ada: %v", err)
	}
	if rec1.Status != model.StatusSakit {
		t.Errorf("status siswa 1 %s, harusnya SAKIT", rec1.Status)
	}
	if rec1.DicatatOlehID != 10 || rec1.DicatatOlehRole != model.RoleGuru {
		t.Errorf("atribusi pencatat %d/%s, harusnya guru pemutus", rec1.DicatatOlehID, rec1.DicatatOlehRole)
	}
	rec2, err := fx.kehad.GetByKey(2, 1, "2026-03-02")
	if err != nil {
		t.Fatalf("record siswa 2 tidak ada: %v", err)
	}
	if rec2.Status != model.StatusIzin {
		t.Errorf("status siswa 2 %s, harusnya IZIN", rec2.Status)
	}

	// Pengaju diberi tahu (dikirim async)
	select {
	case pesan := <-fx.notif.sent:
		if pesan == "" {
			t.Error("notifikasi kosong")
		}
	case <-time.After(time.Second):
		t.Error("notifikasi keputusan tidak terkirim")
	}
}

func TestPutuskanIzinDitolak(t *testing.T) {
	fx := newPerizinanFixture()
	izin := ajukanIzinDuaSiswa(t, fx)

	hasil, err := fx.uc.PutuskanIzin(izin.ID, "DITOLAK", "bukti kurang", Actor{UserID: 10, Role: model.RoleGuru})
	if err != nil {
		t.Fatalf("PutuskanIzin error: %v", err)
	}
	if hasil.Status != model.PengajuanDitolak {
		t.Errorf("status %s, harusnya DITOLAK", hasil.Status)
	}
	if hasil.CatatanGuru != "bukti kurang" {
		t.Errorf("catatan %q", hasil.CatatanGuru)
	}

	// Penolakan tidak menyentuh kehadiran sama sekali
	if n, _ := fx.kehad.CountByTanggal("2026-03-02"); n != 0 {
		t.Errorf("penolakan menulis %d record kehadiran, harusnya 0", n)
	}
}

func TestPutuskanIzinSekaliSaja(t *testing.T) {
	fx := newPerizinanFixture()
	izin := ajukanIzinDuaSiswa(t, fx)
	guru := Actor{UserID: 10, Role: model.RoleGuru}

	if _, err := fx.uc.PutuskanIzin(izin.ID, "DITOLAK", "", guru); err != nil {
		t.Fatalf("keputusan pertama: %v", err)
	}
	// Keputusan kedua pada pengajuan yang sudah final ditolak keadaan
	if _, err := fx.uc.PutuskanIzin(izin.ID, "DISETUJUI", "", guru); !errors.Is(err, ErrInvalidState) {
		t.Errorf("keputusan kedua: dapat %v, harusnya ErrInvalidState", err)
	}
	// Dan tetap tidak ada kehadiran yang tertulis
	if n, _ := fx.kehad.CountByTanggal("2026-03-02"); n != 0 {
		t.Errorf("ada %d record kehadiran, harusnya 0", n)
	}
}

func TestPutuskanIzinOtorisasi(t *testing.T) {
	fx := newPerizinanFixture()
	izin := ajukanIzinDuaSiswa(t, fx)

	if _, err := fx.uc.PutuskanIzin(izin.ID, "DISETUJUI", "", Actor{UserID: 77, Role: model.RoleGuru}); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("guru lain: dapat %v, harusnya ErrUnauthorized", err)
	}
	// Admin pun tidak boleh memutus, hanya guru pengampu jadwal
	if _, err := fx.uc.PutuskanIzin(izin.ID, "DISETUJUI", "", Actor{UserID: 1, Role: model.RoleAdmin}); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("admin: dapat %v, harusnya ErrUnauthorized", err)
	}
}

func TestPutuskanIzinValidasi(t *testing.T) {
	fx := newPerizinanFixture()
	izin := ajukanIzinDuaSiswa(t, fx)
	guru := Actor{UserID: 10, Role: model.RoleGuru}

	if _, err := fx.uc.PutuskanIzin(izin.ID, "MUNGKIN", "", guru); !errors.Is(err, ErrValidation) {
		t.Errorf("keputusan tidak dikenal: dapat %v, harusnya ErrValidation", err)
	}
	if _, err := fx.uc.PutuskanIzin(404, "DISETUJUI", "", guru); !errors.Is(err, ErrNotFound) {
		t.Errorf("pengajuan tidak ada: dapat %v, harusnya ErrNotFound", err)
	}
}

func TestPutuskanIzinKalahBalapan(t *testing.T) {
	fx := newPerizinanFixture()
	izin := ajukanIzinDuaSiswa(t, fx)
	guru := Actor{UserID: 10, Role: model.RoleGuru}

	// Pengajuan diputus pihak lain di antara pembacaan dan penulisan kita
	fx.izin.UpdateKeputusan(izin.ID, model.PengajuanDitolak, 10, "", jam(8, 59))

	// GetByID di awal PutuskanIzin akan melihat status final dan berhenti
	// lewat jalur ErrInvalidState; balapan sejati (baca PENDING, tulis kalah)
	// disimulasikan langsung di lapisan repo
	if ok, _ := fx.izin.UpdateKeputusan(izin.ID, model.PengajuanDisetujui, 10, "", jam(9, 0)); ok {
		t.Fatal("check-and-set harusnya gagal pada pengajuan yang sudah final")
	}
	if _, err := fx.uc.PutuskanIzin(izin.ID, "DISETUJUI", "", guru); !errors.Is(err, ErrInvalidState) {
		t.Errorf("dapat %v, harusnya ErrInvalidState", err)
	}
}
