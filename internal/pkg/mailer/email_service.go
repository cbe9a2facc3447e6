package mailer

import (
	"fmt"

	"notevision-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendShareNotification(toEmail, ownerEmail, notebookName, permission string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	logger      logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderEmail string, log logger.ILogger) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		logger:      log,
	}
}

func (s *emailService) SendShareNotification(toEmail, ownerEmail, notebookName, permission string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("%s shared a notebook with you", ownerEmail))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>A notebook was shared with you</h2>
			<p><strong>%s</strong> gave you <strong>%s</strong> access to the notebook:</p>
			<h3>%s</h3>
			<p>Sign in to NoteVision to open it.</p>
		</div>
	`, ownerEmail, permission, notebookName)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("EmailService", "Failed to send share notification", map[string]interface{}{
			"to":    toEmail,
			"error": err.Error(),
		})
		return err
	}

	s.logger.Info("EmailService", "Share notification sent", map[string]interface{}{"to": toEmail})
	return nil
}
