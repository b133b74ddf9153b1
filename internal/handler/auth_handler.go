package handler

import (
	"absensi-sekolah-backend/internal/repository"
	"absensi-sekolah-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	uc       *usecase.UserUsecase
	userRepo repository.UserRepository
}

func NewAuthHandler(uc *usecase.UserUsecase, userRepo repository.UserRepository) *AuthHandler {
	return &AuthHandler{uc: uc, userRepo: userRepo}
}

type LoginRequest struct {
	NIP      string `json:"nip" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	token, user, err := h.uc.Login(req.NIP, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "NIP atau Password salah"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"data": fiber.Map{
			"nip":      user.NIP,
			"nama":     user.Nama,
			"role":     user.Role,
			"kelas_id": user.KelasID,
		},
	})
}

type RegisterRequest struct {
	Nama     string `json:"nama" validate:"required"`
	NIP      string `json:"nip" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
	KelasID  *uint  `json:"kelas_id"`
	SiswaID  *uint  `json:"siswa_id"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := h.uc.Register(req.Nama, req.NIP, req.Password, req.Role, req.KelasID, req.SiswaID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Akun berhasil dibuat", "data": user})
}

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	return c.JSON(fiber.Map{"message": "Berhasil mengambil profil", "data": user})
}

type GantiPasswordRequest struct {
	PasswordLama string `json:"password_lama" validate:"required"`
	PasswordBaru string `json:"password_baru" validate:"required,min=6"`
}

func (h *AuthHandler) GantiPassword(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	var req GantiPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.uc.GantiPassword(userID, req.PasswordLama, req.PasswordBaru); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password berhasil diganti"})
}
