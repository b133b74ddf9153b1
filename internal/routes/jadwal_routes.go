package routes

import (
	"absensi-sekolah-backend/internal/handler"
	"absensi-sekolah-backend/internal/middleware"
	"absensi-sekolah-backend/internal/model"
	"absensi-sekolah-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupJadwalRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewJadwalHandler(repository.NewJadwalRepository(db))

	api := app.Group("/api/jadwal", middleware.Auth)

	api.Get("/", hdl.GetByHari)
	api.Get("/kelas/:kelas_id", hdl.GetByKelas)
	api.Post("/", middleware.Role(model.RoleAdmin), hdl.Create)
	api.Put("/:id", middleware.Role(model.RoleAdmin), hdl.Update)
	api.Delete("/:id", middleware.Role(model.RoleAdmin), hdl.Delete)
}
