package main

import (
	"fmt"

	"absensi-sekolah-backend/config"
	"absensi-sekolah-backend/internal/notification"
	"absensi-sekolah-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari frontend (web/mobile)
	app.Use(logger.New()) // Log request di terminal

	// Serve bukti izin/banding (http://host:port/uploads/bukti/...)
	app.Static("/uploads", "./uploads")

	mailer := notification.NewMailer()

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupKehadiranRoutes(app, config.DB)
	routes.SetupPerizinanRoutes(app, config.DB, mailer)
	routes.SetupBandingRoutes(app, config.DB, mailer)
	routes.SetupDashboardRoutes(app, config.DB)
	routes.SetupJadwalRoutes(app, config.DB)
	routes.SetupMasterRoutes(app, config.DB)
	routes.SetupReportRoutes(app, config.DB)

	port := config.GetEnv("APP_PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
