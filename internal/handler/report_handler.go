package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"absensi-sekolah-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	kehadiranRepo repository.KehadiranRepository
	kelasRepo     repository.KelasRepository
}

func NewReportHandler(kehadiranRepo repository.KehadiranRepository, kelasRepo repository.KelasRepository) *ReportHandler {
	return &ReportHandler{kehadiranRepo: kehadiranRepo, kelasRepo: kelasRepo}
}

// ExportBulananCSV mengunduh rekap kehadiran satu kelas sebulan sebagai CSV.
func (h *ReportHandler) ExportBulananCSV(c *fiber.Ctx) error {
	kelasID, _ := strconv.Atoi(c.Query("kelas_id"))
	bulan := c.Query("bulan")
	tahun := c.Query("tahun")

	if kelasID == 0 || bulan == "" || tahun == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter kelas_id, bulan, dan tahun wajib diisi"})
	}
	if len(bulan) == 1 {
		bulan = "0" + bulan
	}

	kelas, err := h.kelasRepo.GetByID(uint(kelasID))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kelas tidak ditemukan"})
	}

	list, err := h.kehadiranRepo.GetByKelasAndBulan(uint(kelasID), bulan, tahun)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data laporan"})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"Tanggal", "NISN", "Nama", "Mapel", "Jam Ke", "Status", "Keterangan"})
	for _, k := range list {
		w.Write([]string{
			k.Tanggal,
			k.Siswa.NISN,
			k.Siswa.Nama,
			k.Jadwal.Mapel.NamaMapel,
			strconv.Itoa(k.Jadwal.JamKe),
			string(k.Status),
			k.Keterangan,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menulis CSV"})
	}

	filename := fmt.Sprintf("rekap_%s_%s-%s.csv", kelas.NamaKelas, tahun, bulan)
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}
