package routes

import (
	"absensi-sekolah-backend/internal/handler"
	"absensi-sekolah-backend/internal/middleware"
	"absensi-sekolah-backend/internal/model"
	"absensi-sekolah-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewReportHandler(repository.NewKehadiranRepository(db), repository.NewKelasRepository(db))

	api := app.Group("/api/report", middleware.Auth, middleware.Role(model.RoleGuru, model.RoleAdmin))

	api.Get("/bulanan", hdl.ExportBulananCSV)
}
