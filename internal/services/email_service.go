package services

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// EmailService delivers transactional mail. Sends are queued and performed
// by a background worker: callers never wait on SMTP and never see a
// delivery failure.
type EmailService interface {
	SendVerificationCode(email, code string, expiresInMinutes int)
	SendPasswordResetCode(email, code string)
	SendWelcomeEmail(email, username string)
	Close()
}

type emailService struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	queue    chan *gomail.Message
	done     chan struct{}
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail, fromName string) EmailService {
	s := &emailService{
		dialer:   gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword),
		from:     fromEmail,
		fromName: fromName,
		queue:    make(chan *gomail.Message, 64),
		done:     make(chan struct{}),
	}
	go s.worker()
	return s
}

func (s *emailService) worker() {
	defer close(s.done)
	for m := range s.queue {
		to := m.GetHeader("To")
		if err := s.dialer.DialAndSend(m); err != nil {
			// best-effort: log and move on
			log.Printf("[email][send] failed to=%v err=%v", to, err)
			continue
		}
		log.Printf("[email][send] ok to=%v", to)
	}
}

func (s *emailService) enqueue(m *gomail.Message) {
	select {
	case s.queue <- m:
	default:
		log.Printf("[email][queue] full, dropping message to=%v", m.GetHeader("To"))
	}
}

func (s *emailService) newMessage(to, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return m
}

func (s *emailService) SendVerificationCode(email, code string, expiresInMinutes int) {
	body := fmt.Sprintf(`
		<h3>Email verification code</h3>
		<p>Your verification code is: <strong>%s</strong></p>
		<p>The code expires in %d minutes.</p>
		<p>If you did not request this code, you can ignore this email.</p>
	`, code, expiresInMinutes)
	s.enqueue(s.newMessage(email, "Email verification code", body))
}

func (s *emailService) SendPasswordResetCode(email, code string) {
	body := fmt.Sprintf(`
		<h3>Password reset requested</h3>
		<p>We received a request to reset the password for your account.</p>
		<p>Use the following code to reset your password: <strong>%s</strong></p>
		<p>If you did not request this change, you can ignore this email.</p>
	`, code)
	s.enqueue(s.newMessage(email, "Password reset code", body))
}

func (s *emailService) SendWelcomeEmail(email, username string) {
	body := fmt.Sprintf(`
		<h2>Welcome to Storefront, %s!</h2>
		<p>Thank you for registering with us. We're excited to have you on board.</p>
		<p>Verify your email address to activate your account.</p>
		<p>Best regards,<br>The Storefront Team</p>
	`, username)
	s.enqueue(s.newMessage(email, "Welcome to Storefront!", body))
}

// Close drains the queue and stops the worker.
func (s *emailService) Close() {
	close(s.queue)
	<-s.done
}
