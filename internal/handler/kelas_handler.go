package handler

import (
	"strconv"

	"absensi-sekolah-backend/internal/model"
	"absensi-sekolah-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type KelasHandler struct {
	repo repository.KelasRepository
}

func NewKelasHandler(repo repository.KelasRepository) *KelasHandler {
	return &KelasHandler{repo: repo}
}

type KelasRequest struct {
	NamaKelas   string `json:"nama_kelas" validate:"required"`
	WaliKelasID *uint  `json:"wali_kelas_id"`
}

func (h *KelasHandler) Create(c *fiber.Ctx) error {
	var req KelasRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	kelas := model.Kelas{NamaKelas: req.NamaKelas, WaliKelasID: req.WaliKelasID}
	if err := h.repo.Create(&kelas); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan kelas"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Kelas berhasil ditambahkan", "data": kelas})
}

func (h *KelasHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *KelasHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	kelas, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kelas tidak ditemukan"})
	}

	var req KelasRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	kelas.NamaKelas = req.NamaKelas
	kelas.WaliKelasID = req.WaliKelasID

	if err := h.repo.Update(kelas); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update kelas"})
	}
	return c.JSON(fiber.Map{"message": "Kelas berhasil diupdate", "data": kelas})
}

func (h *KelasHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus kelas"})
	}
	return c.JSON(fiber.Map{"message": "Kelas berhasil dihapus"})
}
