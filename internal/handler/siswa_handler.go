package handler

import (
	"strconv"

	"absensi-sekolah-backend/internal/model"
	"absensi-sekolah-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type SiswaHandler struct {
	repo repository.SiswaRepository
}

func NewSiswaHandler(repo repository.SiswaRepository) *SiswaHandler {
	return &SiswaHandler{repo: repo}
}

type SiswaRequest struct {
	KelasID uint   `json:"kelas_id" validate:"required"`
	Nama    string `json:"nama" validate:"required"`
	NISN    string `json:"nisn" validate:"required"`
	JK      string `json:"jk" validate:"omitempty,oneof=L P"`
}

func (h *SiswaHandler) Create(c *fiber.Ctx) error {
	var req SiswaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	siswa := model.Siswa{
		KelasID:  req.KelasID,
		Nama:     req.Nama,
		NISN:     req.NISN,
		JK:       req.JK,
		IsActive: true,
	}
	if err := h.repo.Create(&siswa); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan siswa"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Siswa berhasil ditambahkan", "data": siswa})
}

func (h *SiswaHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll(c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *SiswaHandler) GetByKelas(c *fiber.Ctx) error {
	kelasID, _ := strconv.Atoi(c.Params("kelas_id"))
	list, err := h.repo.GetByKelas(uint(kelasID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil roster"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *SiswaHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	siswa, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Siswa tidak ditemukan"})
	}

	var req SiswaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	siswa.KelasID = req.KelasID
	siswa.Nama = req.Nama
	siswa.NISN = req.NISN
	siswa.JK = req.JK

	if err := h.repo.Update(siswa); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update siswa"})
	}
	return c.JSON(fiber.Map{"message": "Siswa berhasil diupdate", "data": siswa})
}

func (h *SiswaHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus siswa"})
	}
	return c.JSON(fiber.Map{"message": "Siswa berhasil dihapus"})
}
