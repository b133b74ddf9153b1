package handler

import (
	"strconv"
	"time"

	"absensi-sekolah-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type KehadiranHandler struct {
	uc *usecase.KehadiranUsecase
}

func NewKehadiranHandler(uc *usecase.KehadiranUsecase) *KehadiranHandler {
	return &KehadiranHandler{uc: uc}
}

type SubmitKehadiranRequest struct {
	JadwalID uint                     `json:"jadwal_id" validate:"required"`
	Tanggal  string                   `json:"tanggal" validate:"required"`
	Entries  []usecase.EntriKehadiran `json:"entries" validate:"required,min=1,dive"`
}

// Submit mencatat absensi satu jadwal. Aman dipanggil berulang; kiriman
// kedua menimpa status kiriman pertama per siswa.
func (h *KehadiranHandler) Submit(c *fiber.Ctx) error {
	var req SubmitKehadiranRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hasil, err := h.uc.SubmitKehadiran(req.JadwalID, req.Tanggal, req.Entries, actorFromCtx(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Absensi tersimpan",
		"data":    hasil,
	})
}

// JadwalHariIni mengembalikan jadwal mengajar guru yang login hari ini,
// lengkap dengan jendela waktu (BELUM_MULAI/BERLANGSUNG/SELESAI) per slot.
func (h *KehadiranHandler) JadwalHariIni(c *fiber.Ctx) error {
	guruID := uint(c.Locals("user_id").(float64))

	list, err := h.uc.JadwalGuruHariIni(guruID, time.Now())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Berhasil mengambil jadwal hari ini", "data": list})
}

func (h *KehadiranHandler) DaftarKehadiran(c *fiber.Ctx) error {
	jadwalID, _ := strconv.Atoi(c.Params("jadwal_id"))
	tanggal := c.Query("tanggal")
	if tanggal == "" {
		tanggal = time.Now().Format("2006-01-02")
	}

	list, err := h.uc.DaftarKehadiran(uint(jadwalID), tanggal, actorFromCtx(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *KehadiranHandler) RiwayatSiswa(c *fiber.Ctx) error {
	siswaID, _ := strconv.Atoi(c.Params("siswa_id"))
	bulan := c.Query("bulan")
	tahun := c.Query("tahun")

	if bulan == "" || tahun == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter bulan dan tahun wajib diisi"})
	}
	if len(bulan) == 1 {
		bulan = "0" + bulan
	}

	list, err := h.uc.RiwayatSiswa(uint(siswaID), bulan, tahun)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil riwayat", "data": list})
}
