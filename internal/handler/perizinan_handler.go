package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"absensi-sekolah-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PerizinanHandler struct {
	uc *usecase.PerizinanUsecase
}

func NewPerizinanHandler(uc *usecase.PerizinanUsecase) *PerizinanHandler {
	return &PerizinanHandler{uc: uc}
}

type AjukanIzinRequest struct {
	JadwalID uint                `json:"jadwal_id" validate:"required"`
	Tanggal  string              `json:"tanggal" validate:"required"`
	Entries  []usecase.EntriIzin `json:"entries" validate:"required,min=1,dive"`
}

// Ajukan membuat satu pengajuan izin untuk seluruh siswa terdampak pada
// jadwal/tanggal tersebut. Bukti diunggah terpisah lewat UploadBukti,
// path hasilnya disertakan per entri.
func (h *PerizinanHandler) Ajukan(c *fiber.Ctx) error {
	var req AjukanIzinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	izin, err := h.uc.AjukanIzin(req.JadwalID, req.Tanggal, req.Entries, actorFromCtx(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pengajuan izin berhasil dikirim",
		"data":    izin,
	})
}

type KeputusanRequest struct {
	Keputusan   string `json:"keputusan" validate:"required"` // DISETUJUI / DITOLAK
	CatatanGuru string `json:"catatan_guru"`
}

func (h *PerizinanHandler) Putuskan(c *fiber.Ctx) error {
	izinID, _ := strconv.Atoi(c.Params("id"))

	var req KeputusanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	izin, err := h.uc.PutuskanIzin(uint(izinID), req.Keputusan, req.CatatanGuru, actorFromCtx(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Keputusan tersimpan", "data": izin})
}

func (h *PerizinanHandler) Riwayat(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))
	list, err := h.uc.RiwayatPengaju(userID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil riwayat izin", "data": list})
}

func (h *PerizinanHandler) DaftarPending(c *fiber.Ctx) error {
	guruID := uint(c.Locals("user_id").(float64))
	list, err := h.uc.DaftarPendingGuru(guruID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil daftar pengajuan", "data": list})
}

// UploadBukti menyimpan berkas bukti (surat dokter, dsb) dan mengembalikan
// path-nya untuk disertakan pada pengajuan.
func (h *PerizinanHandler) UploadBukti(c *fiber.Ctx) error {
	file, err := c.FormFile("file_bukti")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File bukti tidak ditemukan"})
	}

	uploadDir := "./uploads/bukti"
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		os.MkdirAll(uploadDir, 0755)
	}

	filename := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	pathFile := fmt.Sprintf("uploads/bukti/%s", filename)

	if err := c.SaveFile(file, pathFile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan file"})
	}

	return c.JSON(fiber.Map{"message": "Upload berhasil", "path_bukti": pathFile})
}
