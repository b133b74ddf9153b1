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

func SetupKehadiranRoutes(app *fiber.App, db *gorm.DB) {
	kehadiranRepo := repository.NewKehadiranRepository(db)
	jadwalRepo := repository.NewJadwalRepository(db)
	siswaRepo := repository.NewSiswaRepository(db)
	liburRepo := repository.NewHariLiburRepository(db)

	uc := usecase.NewKehadiranUsecase(kehadiranRepo, jadwalRepo, siswaRepo, liburRepo)
	hdl := handler.NewKehadiranHandler(uc)

	api := app.Group("/api/kehadiran", middleware.Auth)

	api.Post("/", middleware.Role(model.RoleGuru, model.RoleAdmin), hdl.Submit)
	api.Get("/jadwal-hari-ini", middleware.Role(model.RoleGuru), hdl.JadwalHariIni)
	api.Get("/jadwal/:jadwal_id", middleware.Role(model.RoleGuru, model.RoleAdmin), hdl.DaftarKehadiran)
	api.Get("/siswa/:siswa_id/riwayat", hdl.RiwayatSiswa)
}
