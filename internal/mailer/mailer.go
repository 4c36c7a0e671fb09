package mailer

import (
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer sends best-effort confirmation emails. Every delivery is a single
// attempt: failures are logged and swallowed, and a Mailer with no
// credentials is a silent no-op. A nil *Mailer is safe to call.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func New(host string, port int, user, pass, from string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from}
}

type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

func (m *Mailer) Send(msg Message) {
	if m == nil {
		return
	}
	if m.user == "" || m.pass == "" {
		log.Println("[mailer] email credentials not configured, skipping")
		return
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Text)
	gm.AddAlternative("text/html", msg.HTML)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := d.DialAndSend(gm); err != nil {
		log.Printf("[mailer] sending to %s failed: %v", msg.To, err)
		return
	}
	log.Printf("[mailer] email sent to %s", msg.To)
}
