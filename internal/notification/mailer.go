package notification

import (
	"log"

	"absensi-sekolah-backend/config"

	"gopkg.in/gomail.v2"
)

// Mailer mengirim email pemberitahuan keputusan. Pengiriman best-effort:
// gagal kirim hanya dicatat di log, tidak menggagalkan operasi.
type Mailer struct {
	dialer *gomail.Dialer
	dari   string
}

func NewMailer() *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(
			config.GetEnv("SMTP_HOST", "localhost"),
			config.GetEnvAsInt("SMTP_PORT", 587),
			config.GetEnv("SMTP_USER", ""),
			config.GetEnv("SMTP_PASSWORD", ""),
		),
		dari: config.GetEnv("SMTP_FROM", "noreply@sekolah.sch.id"),
	}
}

func (m *Mailer) KirimKeputusan(email, subjek, isi string) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.dari)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", subjek)
	msg.SetBody("text/plain", isi)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Printf("Gagal kirim email ke %s: %v", email, err)
	}
}
