package main

import (
	"testing"

	"CareSphere/config"
	"CareSphere/services"

	"github.com/stretchr/testify/assert"
)

func TestBuildMailer(t *testing.T) {
	cfg := &config.Config{}
	assert.Nil(t, buildMailer(cfg), "no SMTP settings should disable mail")

	cfg = &config.Config{
		SMTPHost: "smtp.example.com",
		SMTPPort: 587,
		MailFrom: "noreply@example.com",
	}
	mailer := buildMailer(cfg)
	assert.NotNil(t, mailer)
	_, ok := mailer.(*services.SMTPMailer)
	assert.True(t, ok)
}
