package routes

import (
	"absensi-sekolah-backend/internal/handler"
	"absensi-sekolah-backend/internal/middleware"
	"absensi-sekolah-backend/internal/repository"
	"absensi-sekolah-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	jadwalRepo := repository.NewJadwalRepository(db)
	kehadiranRepo := repository.NewKehadiranRepository(db)
	liburRepo := repository.NewHariLiburRepository(db)
	dashRepo := repository.NewDashboardRepository(db)

	uc := usecase.NewDashboardUsecase(jadwalRepo, kehadiranRepo, liburRepo, dashRepo)
	hdl := handler.NewDashboardHandler(uc)

	api := app.Group("/api/dashboard", middleware.Auth)

	// Di-poll client tiap ~30 detik
	api.Get("/live", hdl.RingkasanLive)
	api.Get("/rekap-harian", hdl.RekapHarian)
	api.Get("/rekap-bulanan", hdl.RekapBulanan)
}
