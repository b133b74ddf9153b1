package handler

import (
	"strconv"

	"absensi-sekolah-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type BandingHandler struct {
	uc *usecase.BandingUsecase
}

func NewBandingHandler(uc *usecase.BandingUsecase) *BandingHandler {
	return &BandingHandler{uc: uc}
}

type AjukanBandingRequest struct {
	SiswaID        uint   `json:"siswa_id" validate:"required"`
	JadwalID       uint   `json:"jadwal_id" validate:"required"`
	Tanggal        string `json:"tanggal" validate:"required"`
	StatusDiajukan string `json:"status_diajukan" validate:"required"`
	Alasan         string `json:"alasan" validate:"required"`
	PathBukti      string `json:"path_bukti"`
}

// Ajukan mengajukan banding atas record kehadiran yang sudah tercatat.
// Tanpa record, responnya 404 — jalur yang benar adalah pengajuan izin.
func (h *BandingHandler) Ajukan(c *fiber.Ctx) error {
	var req AjukanBandingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	banding, err := h.uc.AjukanBanding(usecase.PengajuanBanding{
		SiswaID:        req.SiswaID,
		JadwalID:       req.JadwalID,
		Tanggal:        req.Tanggal,
		StatusDiajukan: req.StatusDiajukan,
		Alasan:         req.Alasan,
		PathBukti:      req.PathBukti,
	}, actorFromCtx(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Banding berhasil diajukan",
		"data":    banding,
	})
}

func (h *BandingHandler) Putuskan(c *fiber.Ctx) error {
	bandingID, _ := strconv.Atoi(c.Params("id"))

	var req KeputusanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	banding, err := h.uc.PutuskanBanding(uint(bandingID), req.Keputusan, req.CatatanGuru, actorFromCtx(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Keputusan tersimpan", "data": banding})
}

func (h *BandingHandler) Riwayat(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))
	list, err := h.uc.RiwayatPengaju(userID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil riwayat banding", "data": list})
}

func (h *BandingHandler) DaftarPending(c *fiber.Ctx) error {
	guruID := uint(c.Locals("user_id").(float64))
	list, err := h.uc.DaftarPendingGuru(guruID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil daftar banding", "data": list})
}
