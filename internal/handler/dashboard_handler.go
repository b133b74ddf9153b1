package handler

import (
	"strconv"
	"time"

	"absensi-sekolah-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// RingkasanLive dipanggil dashboard secara polling (~30 detik). Setiap
// panggilan menghitung ulang dari jam sekarang; tidak ada cache di server.
func (h *DashboardHandler) RingkasanLive(c *fiber.Ctx) error {
	ringkasan, err := h.uc.RingkasanLive(time.Now())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil ringkasan", "data": ringkasan})
}

func (h *DashboardHandler) RekapHarian(c *fiber.Ctx) error {
	tanggal := c.Query("tanggal")
	if tanggal == "" {
		tanggal = time.Now().Format("2006-01-02")
	}

	rekap, err := h.uc.RekapHarian(tanggal)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Rekap berhasil", "data": rekap})
}

func (h *DashboardHandler) RekapBulanan(c *fiber.Ctx) error {
	kelasID, _ := strconv.Atoi(c.Query("kelas_id"))
	bulan := c.Query("bulan")
	tahun := c.Query("tahun")

	if kelasID == 0 || bulan == "" || tahun == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter kelas_id, bulan, dan tahun wajib diisi"})
	}
	if len(bulan) == 1 {
		bulan = "0" + bulan
	}

	rekap, err := h.uc.RekapBulanan(uint(kelasID), bulan, tahun)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Rekap berhasil", "data": rekap})
}
