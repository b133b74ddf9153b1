package routes

import (
	"absensi-sekolah-backend/internal/handler"
	"absensi-sekolah-backend/internal/middleware"
	"absensi-sekolah-backend/internal/model"
	"absensi-sekolah-backend/internal/repository"
	"absensi-sekolah-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(userRepo)
	hdl := handler.NewAuthHandler(uc, userRepo)

	api := app.Group("/api/auth")

	api.Post("/login", hdl.Login)

	// Pembuatan akun hanya oleh admin
	api.Post("/register", middleware.Auth, middleware.Role(model.RoleAdmin), hdl.Register)
	api.Get("/profile", middleware.Auth, hdl.GetProfile)
	api.Put("/password", middleware.Auth, hdl.GantiPassword)
}
