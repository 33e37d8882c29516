package services

import (
	"context"
	"errors"
	"time"

	"gopkg.in/gomail.v2"
)

var ErrMailerDisabled = errors.New("mail transport is not configured")

type Mail struct {
	To          string
	Subject     string
	Body        string
	Attachments []string
}

// Mailer is the send seam; tests swap in a mock, production wires SMTP.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	timeout  time.Duration
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		timeout:  30 * time.Second,
	}
}

/*
* Dial and send in a goroutine so the context deadline is respected
* gomail's DialAndSend has no context support of its own
 */
func (m *SMTPMailer) Send(ctx context.Context, mail Mail) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Body)
	for _, path := range mail.Attachments {
		msg.Attach(path)
	}

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)

	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(msg)
	}()

	wait := m.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if d := time.Until(deadline); d > 0 && d < wait {
			wait = d
		}
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return context.DeadlineExceeded
	}
}

// disabledMailer stands in when SMTP is not configured; sends fail with a
// well-defined error the prescription flow treats as a soft failure.
type disabledMailer struct{}

func (disabledMailer) Send(context.Context, Mail) error {
	return ErrMailerDisabled
}
