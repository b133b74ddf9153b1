package routes

import (
	"absensi-sekolah-backend/internal/handler"
	"absensi-sekolah-backend/internal/middleware"
	"absensi-sekolah-backend/internal/model"
	"absensi-sekolah-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupMasterRoutes memasang CRUD data master: siswa, kelas, mapel, hari libur.
func SetupMasterRoutes(app *fiber.App, db *gorm.DB) {
	siswaHdl := handler.NewSiswaHandler(repository.NewSiswaRepository(db))
	kelasHdl := handler.NewKelasHandler(repository.NewKelasRepository(db))
	mapelHdl := handler.NewMapelHandler(repository.NewMapelRepository(db))
	liburHdl := handler.NewHariLiburHandler(repository.NewHariLiburRepository(db))

	admin := middleware.Role(model.RoleAdmin)

	siswa := app.Group("/api/siswa", middleware.Auth)
	siswa.Get("/", siswaHdl.GetAll)
	siswa.Get("/kelas/:kelas_id", siswaHdl.GetByKelas)
	siswa.Post("/", admin, siswaHdl.Create)
	siswa.Put("/:id", admin, siswaHdl.Update)
	siswa.Delete("/:id", admin, siswaHdl.Delete)

	kelas := app.Group("/api/kelas", middleware.Auth)
	kelas.Get("/", kelasHdl.GetAll)
	kelas.Post("/", admin, kelasHdl.Create)
	kelas.Put("/:id", admin, kelasHdl.Update)
	kelas.Delete("/:id", admin, kelasHdl.Delete)

	mapel := app.Group("/api/mapel", middleware.Auth)
	mapel.Get("/", mapelHdl.GetAll)
	mapel.Post("/", admin, mapelHdl.Create)
	mapel.Put("/:id", admin, mapelHdl.Update)
	mapel.Delete("/:id", admin, mapelHdl.Delete)

	libur := app.Group("/api/hari-libur", middleware.Auth)
	libur.Get("/", liburHdl.GetAll)
	libur.Post("/", admin, liburHdl.Create)
	libur.Put("/:id", admin, liburHdl.Update)
	libur.Delete("/:id", admin, liburHdl.Delete)
}
