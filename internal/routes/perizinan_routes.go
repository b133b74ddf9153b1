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

func SetupPerizinanRoutes(app *fiber.App, db *gorm.DB, notifier usecase.Notifier) {
	perizinanRepo := repository.NewPerizinanRepository(db)
	kehadiranRepo := repository.NewKehadiranRepository(db) // Dibutuhkan untuk tulis kehadiran saat disetujui
	jadwalRepo := repository.NewJadwalRepository(db)
	siswaRepo := repository.NewSiswaRepository(db)
	userRepo := repository.NewUserRepository(db)

	uc := usecase.NewPerizinanUsecase(perizinanRepo, kehadiranRepo, jadwalRepo, siswaRepo, userRepo, notifier)
	hdl := handler.NewPerizinanHandler(uc)

	api := app.Group("/api/perizinan", middleware.Auth)

	// Endpoint untuk Perwakilan Kelas
	api.Post("/", middleware.Role(model.RolePerwakilan), hdl.Ajukan)
	api.Post("/bukti", middleware.Role(model.RolePerwakilan), hdl.UploadBukti)
	api.Get("/riwayat", middleware.Role(model.RolePerwakilan), hdl.Riwayat)

	// Endpoint untuk Guru (Approval)
	api.Get("/pending", middleware.Role(model.RoleGuru), hdl.DaftarPending)
	api.Put("/:id/keputusan", middleware.Role(model.RoleGuru), hdl.Putuskan)
}
