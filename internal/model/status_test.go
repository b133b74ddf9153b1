package model

import "testing"

func TestParseStatusKehadiran(t *testing.T) {
	cases := []struct {
		in   string
		want StatusKehadiran
		ok   bool
	}{
		{"hadir", StatusHadir, true},
		{"HADIR", StatusHadir, true},
		{" Hadir ", StatusHadir, true},
		{"izin", StatusIzin, true},
		{"sakit", StatusSakit, true},
		{"alpa", StatusAlpa, true},
		{"alpha", StatusAlpa, true},       // alias lama
		{"tidak_hadir", StatusAlpa, true}, // alias lama
		{"bolos", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		got, ok := ParseStatusKehadiran(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseStatusKehadiran(%q) = %q/%v, harusnya %q/%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestStatusPengajuanTerminal(t *testing.T) {
	if PengajuanPending.Terminal() {
		t.Error("PENDING bukan status terminal")
	}
	if !PengajuanDisetujui.Terminal() || !PengajuanDitolak.Terminal() {
		t.Error("DISETUJUI dan DITOLAK adalah status terminal")
	}
}

func TestKategoriAlasanValid(t *testing.T) {
	for _, k := range []KategoriAlasan{KategoriSakit, KategoriIzin, KategoriKeperluanKeluarga, KategoriAcaraSekolah, KategoriLainnya} {
		if !k.Valid() {
			t.Errorf("kategori %s harusnya valid", k)
		}
	}
	if KategoriAlasan("MAGER").Valid() {
		t.Error("kategori asing harusnya tidak valid")
	}
}
