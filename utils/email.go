package utils

import (
	"crypto/tls"
	"errors"
	"html"
	"net/smtp"
	"os"
	"strings"

	"github.com/jordan-wright/email"
)

// shareNoticeHTML builds the notice body. Names come from user input and
// must not land in the markup raw.
func shareNoticeHTML(ownerName, fileName string) []byte {
	return []byte(`
		<h2>New shared file</h2>
		<p><b>` + html.EscapeString(ownerName) + `</b> shared <b>` + html.EscapeString(fileName) + `</b> with you.</p>
		<p>Sign in and open your shared files to download it.</p>
	`)
}

// SendShareNotice tells a grantee that a file was shared with them.
func SendShareNotice(to, ownerName, fileName string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")
	if host == "" || port == "" || user == "" || pass == "" || from == "" {
		return errors.New("smtp config missing")
	}

	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = "A file was shared with you"
	e.HTML = shareNoticeHTML(ownerName, fileName)

	addr := host + ":" + port
	auth := smtp.PlainAuth("", user, pass, host)
	tlsConfig := &tls.Config{ServerName: host}
	useTLS := strings.EqualFold(os.Getenv("SMTP_TLS"), "true") ||
		os.Getenv("SMTP_TLS") == "1" ||
		port == "465"
	useStartTLS := strings.EqualFold(os.Getenv("SMTP_STARTTLS"), "true") ||
		os.Getenv("SMTP_STARTTLS") == "1"

	if useTLS {
		return e.SendWithTLS(addr, auth, tlsConfig)
	}
	if useStartTLS {
		return e.SendWithStartTLS(addr, auth, tlsConfig)
	}
	return e.Send(addr, auth)
}
