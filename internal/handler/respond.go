package handler

import (
	"errors"

	"absensi-sekolah-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// errorResponse memetakan taksonomi error usecase ke status HTTP.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidState), errors.Is(err, usecase.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Terjadi kesalahan internal"})
	}
}

// actorFromCtx membaca identitas dari claims yang diset middleware Auth.
func actorFromCtx(c *fiber.Ctx) usecase.Actor {
	actor := usecase.Actor{
		UserID: uint(c.Locals("user_id").(float64)),
	}
	if role, ok := c.Locals("role").(string); ok {
		actor.Role = role
	}
	if kelasID, ok := c.Locals("kelas_id").(float64); ok {
		id := uint(kelasID)
		actor.KelasID = &id
	}
	return actor
}
