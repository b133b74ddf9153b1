package usecase

// Actor adalah identitas terautentikasi yang sudah diverifikasi middleware.
// Core tidak mengurus sesi; kalau sesi kadaluwarsa, middleware yang menolak.
type Actor struct {
	UserID  uint
	Role    string
	KelasID *uint // Kelas yang diwakili, hanya terisi untuk Perwakilan
}
