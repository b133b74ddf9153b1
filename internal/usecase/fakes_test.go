package usecase

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"absensi-sekolah-backend/internal/model"
)

var errRecordNotFound = errors.New("record tidak ditemukan")

func kunciKehadiran(siswaID, jadwalID uint, tanggal string) string {
	return fmt.Sprintf("%d/%d/%s", siswaID, jadwalID, tanggal)
}

// fakeKehadiranRepo menyimpan kehadiran di map dengan kunci unik yang sama
// dengan index database, sehingga perilaku upsert (timpa, bukan duplikat)
// ikut teruji.
type fakeKehadiranRepo struct {
	mu         sync.Mutex
	records    map[string]model.Kehadiran
	failUpsert bool
}

func newFakeKehadiranRepo() *fakeKehadiranRepo {
	return &fakeKehadiranRepo{records: make(map[string]model.Kehadiran)}
}

func (f *fakeKehadiranRepo) Upsert(k *model.Kehadiran) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpsert {
		return errors.New("db error")
	}
	f.records[kunciKehadiran(k.SiswaID, k.JadwalID, k.Tanggal)] = *k
	return nil
}

func (f *fakeKehadiranRepo) GetByKey(siswaID, jadwalID uint, tanggal string) (*model.Kehadiran, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k, ok := f.records[kunciKehadiran(siswaID, jadwalID, tanggal)]
	if !ok {
		return nil, errRecordNotFound
	}
	return &k, nil
}

func (f *fakeKehadiranRepo) GetByJadwalAndTanggal(jadwalID uint, tanggal string) ([]model.Kehadiran, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Kehadiran
	for _, k := range f.records {
		if k.JadwalID == jadwalID && k.Tanggal == tanggal {
			out = append(out, k)
		}
	}
	return out, nil
}

func (f *fakeKehadiranRepo) ExistsForJadwal(jadwalID uint, tanggal string) (bool, error) {
	list, _ := f.GetByJadwalAndTanggal(jadwalID, tanggal)
	return len(list) > 0, nil
}

func (f *fakeKehadiranRepo) CountByTanggal(tanggal string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range f.records {
		if k.Tanggal == tanggal {
			n++
		}
	}
	return n, nil
}

func (f *fakeKehadiranRepo) CountByTanggalAndStatus(tanggal string, status model.StatusKehadiran) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range f.records {
		if k.Tanggal == tanggal && k.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeKehadiranRepo) GetBySiswaAndBulan(siswaID uint, bulan, tahun string) ([]model.Kehadiran, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Kehadiran
	for _, k := range f.records {
		if k.SiswaID == siswaID && strings.HasPrefix(k.Tanggal, tahun+"-"+bulan) {
			out = append(out, k)
		}
	}
	return out, nil
}

func (f *fakeKehadiranRepo) GetByKelasAndBulan(kelasID uint, bulan, tahun string) ([]model.Kehadiran, error) {
	return nil, nil
}

type fakeJadwalRepo struct {
	jadwals map[uint]model.Jadwal
}

func newFakeJadwalRepo(jadwals ...model.Jadwal) *fakeJadwalRepo {
	f := &fakeJadwalRepo{jadwals: make(map[uint]model.Jadwal)}
	for _, j := range jadwals {
		f.jadwals[j.ID] = j
	}
	return f
}

func (f *fakeJadwalRepo) Create(j *model.Jadwal) error {
	f.jadwals[j.ID] = *j
	return nil
}

func (f *fakeJadwalRepo) GetByID(id uint) (*model.Jadwal, error) {
	j, ok := f.jadwals[id]
	if !ok {
		return nil, errRecordNotFound
	}
	return &j, nil
}

func (f *fakeJadwalRepo) GetByGuruAndHari(guruID uint, hari string) ([]model.Jadwal, error) {
	var out []model.Jadwal
	for _, j := range f.jadwals {
		if j.GuruID == guruID && j.Hari == hari {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJadwalRepo) GetByKelasAndHari(kelasID uint, hari string) ([]model.Jadwal, error) {
	var out []model.Jadwal
	for _, j := range f.jadwals {
		if j.KelasID == kelasID && j.Hari == hari {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJadwalRepo) GetByHari(hari string) ([]model.Jadwal, error) {
	var out []model.Jadwal
	for _, j := range f.jadwals {
		if j.Hari == hari {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJadwalRepo) GetByKelas(kelasID uint) ([]model.Jadwal, error) {
	var out []model.Jadwal
	for _, j := range f.jadwals {
		if j.KelasID == kelasID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJadwalRepo) Update(j *model.Jadwal) error {
	f.jadwals[j.ID] = *j
	return nil
}

func (f *fakeJadwalRepo) Delete(id uint) error {
	delete(f.jadwals, id)
	return nil
}

func (f *fakeJadwalRepo) CreateMany(jadwals []model.Jadwal) error {
	for _, j := range jadwals {
		f.jadwals[j.ID] = j
	}
	return nil
}

type fakeSiswaRepo struct {
	siswa map[uint]model.Siswa
}

func newFakeSiswaRepo(siswa ...model.Siswa) *fakeSiswaRepo {
	f := &fakeSiswaRepo{siswa: make(map[uint]model.Siswa)}
	for _, s := range siswa {
		f.siswa[s.ID] = s
	}
	return f
}

func (f *fakeSiswaRepo) Create(s *model.Siswa) error {
	f.siswa[s.ID] = *s
	return nil
}

func (f *fakeSiswaRepo) GetByID(id uint) (*model.Siswa, error) {
	s, ok := f.siswa[id]
	if !ok {
		return nil, errRecordNotFound
	}
	return &s, nil
}

func (f *fakeSiswaRepo) GetByKelas(kelasID uint) ([]model.Siswa, error) {
	var out []model.Siswa
	for _, s := range f.siswa {
		if s.KelasID == kelasID && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSiswaRepo) Update(s *model.Siswa) error {
	f.siswa[s.ID] = *s
	return nil
}

func (f *fakeSiswaRepo) Delete(id uint) error {
	delete(f.siswa, id)
	return nil
}

func (f *fakeSiswaRepo) GetAll(search string) ([]model.Siswa, error) {
	var out []model.Siswa
	for _, s := range f.siswa {
		out = append(out, s)
	}
	return out, nil
}

type fakeHariLiburRepo struct {
	libur map[string]bool
}

func newFakeHariLiburRepo(tanggal ...string) *fakeHariLiburRepo {
	f := &fakeHariLiburRepo{libur: make(map[string]bool)}
	for _, t := range tanggal {
		f.libur[t] = true
	}
	return f
}

func (f *fakeHariLiburRepo) GetAll() ([]model.HariLibur, error) { return nil, nil }

func (f *fakeHariLiburRepo) Create(l *model.HariLibur) error {
	f.libur[l.Tanggal] = true
	return nil
}

func (f *fakeHariLiburRepo) Delete(id uint) error { return nil }

func (f *fakeHariLiburRepo) IsHoliday(date string) (bool, error) { return f.libur[date], nil }

func (f *fakeHariLiburRepo) GetByID(id uint) (*model.HariLibur, error) {
	return nil, errRecordNotFound
}

func (f *fakeHariLiburRepo) Update(l *model.HariLibur) error { return nil }

// fakePerizinanRepo meniru preload Jadwal dari repository asli dan semantik
// check-and-set UpdateKeputusan: hanya baris yang masih PENDING yang berubah.
type fakePerizinanRepo struct {
	mu      sync.Mutex
	nextID  uint
	izin    map[uint]model.PengajuanIzin
	jadwals *fakeJadwalRepo
}

func newFakePerizinanRepo(jadwals *fakeJadwalRepo) *fakePerizinanRepo {
	return &fakePerizinanRepo{nextID: 1, izin: make(map[uint]model.PengajuanIzin), jadwals: jadwals}
}

func (f *fakePerizinanRepo) Create(izin *model.PengajuanIzin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	izin.ID = f.nextID
	f.nextID++
	f.izin[izin.ID] = *izin
	return nil
}

func (f *fakePerizinanRepo) GetByID(id uint) (*model.PengajuanIzin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	izin, ok := f.izin[id]
	if !ok {
		return nil, errRecordNotFound
	}
	if j, err := f.jadwals.GetByID(izin.JadwalID); err == nil {
		izin.Jadwal = *j
	}
	return &izin, nil
}

func (f *fakePerizinanRepo) GetByPengaju(userID uint) ([]model.PengajuanIzin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.PengajuanIzin
	for _, izin := range f.izin {
		if izin.DiajukanOlehID == userID {
			out = append(out, izin)
		}
	}
	return out, nil
}

func (f *fakePerizinanRepo) GetPendingByGuru(guruID uint) ([]model.PengajuanIzin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.PengajuanIzin
	for _, izin := range f.izin {
		j, err := f.jadwals.GetByID(izin.JadwalID)
		if err == nil && j.GuruID == guruID && izin.Status == model.PengajuanPending {
			out = append(out, izin)
		}
	}
	return out, nil
}

func (f *fakePerizinanRepo) UpdateKeputusan(id uint, status model.StatusPengajuan, guruID uint, catatan string, diputusPada time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	izin, ok := f.izin[id]
	if !ok || izin.Status != model.PengajuanPending {
		return false, nil
	}
	izin.Status = status
	izin.GuruID = &guruID
	izin.CatatanGuru = catatan
	izin.DiputusPada = &diputusPada
	f.izin[id] = izin
	return true, nil
}

type fakeBandingRepo struct {
	mu      sync.Mutex
	nextID  uint
	banding map[uint]model.BandingKehadiran
	jadwals *fakeJadwalRepo
}

func newFakeBandingRepo(jadwals *fakeJadwalRepo) *fakeBandingRepo {
	return &fakeBandingRepo{nextID: 1, banding: make(map[uint]model.BandingKehadiran), jadwals: jadwals}
}

func (f *fakeBandingRepo) Create(b *model.BandingKehadiran) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = f.nextID
	f.nextID++
	f.banding[b.ID] = *b
	return nil
}

func (f *fakeBandingRepo) GetByID(id uint) (*model.BandingKehadiran, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.banding[id]
	if !ok {
		return nil, errRecordNotFound
	}
	if j, err := f.jadwals.GetByID(b.JadwalID); err == nil {
		b.Jadwal = *j
	}
	return &b, nil
}

func (f *fakeBandingRepo) GetByPengaju(userID uint) ([]model.BandingKehadiran, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.BandingKehadiran
	for _, b := range f.banding {
		if b.DiajukanOlehID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBandingRepo) GetPendingByGuru(guruID uint) ([]model.BandingKehadiran, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.BandingKehadiran
	for _, b := range f.banding {
		j, err := f.jadwals.GetByID(b.JadwalID)
		if err == nil && j.GuruID == guruID && b.Status == model.PengajuanPending {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBandingRepo) UpdateKeputusan(id uint, status model.StatusPengajuan, guruID uint, catatan string, diputusPada time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.banding[id]
	if !ok || b.Status != model.PengajuanPending {
		return false, nil
	}
	b.Status = status
	b.GuruID = &guruID
	b.CatatanGuru = catatan
	b.DiputusPada = &diputusPada
	f.banding[id] = b
	return true, nil
}

type fakeUserRepo struct {
	nextID uint
	users  map[uint]model.User
}

func newFakeUserRepo(users ...model.User) *fakeUserRepo {
	f := &fakeUserRepo{nextID: 100, users: make(map[uint]model.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(u *model.User) error {
	if u.ID == 0 {
		u.ID = f.nextID
		f.nextID++
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) FindByNIP(nip string) (*model.User, error) {
	for _, u := range f.users {
		if u.NIP == nip && u.IsActive {
			return &u, nil
		}
	}
	return nil, errRecordNotFound
}

func (f *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errRecordNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) Update(u *model.User) error { f.users[u.ID] = *u; return nil }

func (f *fakeUserRepo) GetByRole(role string) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(id uint) error { delete(f.users, id); return nil }

// fakeNotifier merekam pengiriman lewat channel karena usecase memanggilnya
// di goroutine terpisah.
type fakeNotifier struct {
	sent chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(chan string, 4)}
}

func (f *fakeNotifier) KirimKeputusan(email, subjek, isi string) {
	f.sent <- email + ": " + subjek
}

type fakeDashboardRepo struct {
	harian  map[string]int64
	bulanan map[string]int64
}

func (f *fakeDashboardRepo) GetRekapHarian(tanggal string) (map[string]int64, error) {
	return f.harian, nil
}

func (f *fakeDashboardRepo) GetRekapBulanan(kelasID uint, bulan, tahun string) (map[string]int64, error) {
	return f.bulanan, nil
}
