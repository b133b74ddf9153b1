package handler

import (
	"strconv"
	"time"

	"absensi-sekolah-backend/internal/model"
	"absensi-sekolah-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type JadwalHandler struct {
	repo repository.JadwalRepository
}

func NewJadwalHandler(repo repository.JadwalRepository) *JadwalHandler {
	return &JadwalHandler{repo: repo}
}

type JadwalRequest struct {
	KelasID    uint   `json:"kelas_id" validate:"required"`
	MapelID    uint   `json:"mapel_id" validate:"required"`
	GuruID     uint   `json:"guru_id" validate:"required"`
	Hari       string `json:"hari" validate:"required,oneof=Senin Selasa Rabu Kamis Jumat Sabtu Minggu"`
	JamKe      int    `json:"jam_ke" validate:"required,min=1"`
	JamMulai   string `json:"jam_mulai" validate:"required"`
	JamSelesai string `json:"jam_selesai" validate:"required"`
}

func (r JadwalRequest) validJam() bool {
	mulai, err1 := time.Parse("15:04", r.JamMulai)
	selesai, err2 := time.Parse("15:04", r.JamSelesai)
	return err1 == nil && err2 == nil && !selesai.Before(mulai)
}

func (h *JadwalHandler) Create(c *fiber.Ctx) error {
	var req JadwalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !req.validJam() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Jam mulai/selesai tidak valid (format 15:04, selesai >= mulai)"})
	}

	jadwal := model.Jadwal{
		KelasID:    req.KelasID,
		MapelID:    req.MapelID,
		GuruID:     req.GuruID,
		Hari:       req.Hari,
		JamKe:      req.JamKe,
		JamMulai:   req.JamMulai,
		JamSelesai: req.JamSelesai,
		IsActive:   true,
	}
	if err := h.repo.Create(&jadwal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan jadwal (slot kelas/hari/jam mungkin sudah terisi)"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Jadwal berhasil ditambahkan", "data": jadwal})
}

func (h *JadwalHandler) GetByKelas(c *fiber.Ctx) error {
	kelasID, _ := strconv.Atoi(c.Params("kelas_id"))
	list, err := h.repo.GetByKelas(uint(kelasID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil jadwal"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *JadwalHandler) GetByHari(c *fiber.Ctx) error {
	hari := c.Query("hari")
	if hari == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter hari wajib diisi"})
	}
	list, err := h.repo.GetByHari(hari)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil jadwal"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *JadwalHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	jadwal, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal tidak ditemukan"})
	}

	var req JadwalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !req.validJam() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Jam mulai/selesai tidak valid (format 15:04, selesai >= mulai)"})
	}

	jadwal.KelasID = req.KelasID
	jadwal.MapelID = req.MapelID
	jadwal.GuruID = req.GuruID
	jadwal.Hari = req.Hari
	jadwal.JamKe = req.JamKe
	jadwal.JamMulai = req.JamMulai
	jadwal.JamSelesai = req.JamSelesai

	if err := h.repo.Update(jadwal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update jadwal"})
	}
	return c.JSON(fiber.Map{"message": "Jadwal berhasil diupdate", "data": jadwal})
}

func (h *JadwalHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus jadwal"})
	}
	return c.JSON(fiber.Map{"message": "Jadwal berhasil dihapus"})
}
