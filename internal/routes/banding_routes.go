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

func SetupBandingRoutes(app *fiber.App, db *gorm.DB, notifier usecase.Notifier) {
	bandingRepo := repository.NewBandingRepository(db)
	kehadiranRepo := repository.NewKehadiranRepository(db)
	jadwalRepo := repository.NewJadwalRepository(db)
	userRepo := repository.NewUserRepository(db)

	uc := usecase.NewBandingUsecase(bandingRepo, kehadiranRepo, jadwalRepo, userRepo, notifier)
	hdl := handler.NewBandingHandler(uc)

	api := app.Group("/api/banding", middleware.Auth)

	// Endpoint untuk Perwakilan Kelas
	api.Post("/", middleware.Role(model.RolePerwakilan), hdl.Ajukan)
	api.Get("/riwayat", middleware.Role(model.RolePerwakilan), hdl.Riwayat)

	// Endpoint untuk Guru (Approval)
	api.Get("/pending", middleware.Role(model.RoleGuru), hdl.DaftarPending)
	api.Put("/:id/keputusan", middleware.Role(model.RoleGuru), hdl.Putuskan)
}
