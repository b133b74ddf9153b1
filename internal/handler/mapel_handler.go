package handler

import (
	"strconv"

	"absensi-sekolah-backend/internal/model"
	"absensi-sekolah-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type MapelHandler struct {
	repo repository.MapelRepository
}

func NewMapelHandler(repo repository.MapelRepository) *MapelHandler {
	return &MapelHandler{repo: repo}
}

type MapelRequest struct {
	KodeMapel string `json:"kode_mapel" validate:"required"`
	NamaMapel string `json:"nama_mapel" validate:"required"`
}

func (h *MapelHandler) Create(c *fiber.Ctx) error {
	var req MapelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mapel := model.MataPelajaran{KodeMapel: req.KodeMapel, NamaMapel: req.NamaMapel}
	if err := h.repo.Create(&mapel); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan mata pelajaran"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Mata pelajaran berhasil ditambahkan", "data": mapel})
}

func (h *MapelHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *MapelHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	mapel, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mata pelajaran tidak ditemukan"})
	}

	var req MapelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mapel.KodeMapel = req.KodeMapel
	mapel.NamaMapel = req.NamaMapel

	if err := h.repo.Update(mapel); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update mata pelajaran"})
	}
	return c.JSON(fiber.Map{"message": "Mata pelajaran berhasil diupdate", "data": mapel})
}

func (h *MapelHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus mata pelajaran"})
	}
	return c.JSON(fiber.Map{"message": "Mata pelajaran berhasil dihapus"})
}
