package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"fisher-blog-api/pkg/config"
	"fisher-blog-api/pkg/logger"
)

// Mailer sends transactional HTML email over SMTP. Delivery failures are
// reduced to a boolean and never propagated to the calling operation.
type Mailer struct {
	host      string
	port      string
	username  string
	password  string
	from      string
	apiURI    string
	clientURL string
	enabled   bool
	log       *logger.Logger
}

func New(cfg *config.Config, log *logger.Logger) *Mailer {
	enabled := cfg.SMTPHost != "" && cfg.SMTPUser != "" && cfg.SMTPPassword != "" && cfg.SMTPFrom != ""
	if !enabled {
		log.Warn("Mailer disabled: missing SMTP environment variables")
	}

	return &Mailer{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUser,
		password:  cfg.SMTPPassword,
		from:      cfg.SMTPFrom,
		apiURI:    cfg.APIURI,
		clientURL: cfg.ClientURL,
		enabled:   enabled,
		log:       log,
	}
}

func (m *Mailer) Send(to, subject, html string) bool {
	if !m.enabled {
		return false
	}

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	msg := []byte(strings.Join([]string{
		"To: " + to,
		"From: Fishing blog <" + m.from + ">",
		"Subject: " + subject,
		"MIME-version: 1.0;",
		`Content-Type: text/html; charset="UTF-8";`,
		"",
		html,
	}, "\r\n"))

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		m.log.Error("Failed to send email to %s: %v", to, err)
		return false
	}
	return true
}

func (m *Mailer) SendActivation(to, activationToken string) bool {
	html := fmt.Sprintf(`
      <div>
        <h1>Welcome to Fishing blog</h1>
        <br />
        <p>Thank you for registering on our site! To start using your account, please confirm its activation by clicking on the link below:</p>
        <br />
        <a target="_blank" href="%s/api/v1/users/activation-email/%s">Link to account activation page</a>
        <br />
        <p>If you have not registered on our site, just ignore this message.</p>
        <br />
        <p>Sincerely, site Team.</p>
      </div>`, m.apiURI, activationToken)

	return m.Send(to, "Account activation by Fishing blog", html)
}

func (m *Mailer) SendPasswordReset(to, name string) bool {
	html := fmt.Sprintf(`
      <div>
        <h1>Hello %s!</h1>
        <br />
        <p>You received this email because you requested a password reset on our site. To reset your password, please follow the link below:</p>
        <br />
        <a target="_blank" href="%s/reset-password">Link to password reset page</a>
        <br />
        <p>If you did not request a password reset, please ignore this message.</p>
        <br />
        <p>Sincerely, site Team.</p>
      </div>`, name, m.clientURL)

	return m.Send(to, "Password reset by Fishing blog", html)
}
