package utils

import (
	"fmt"
	"log"

	"padho/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers a transactional email through SendGrid. Callers fire
// it from goroutines; failures are logged and otherwise ignored.
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendgridKey == "" {
		log.Printf("Sendgrid key not configured, skipping email to %s", toEmail)
		return nil
	}

	from := mail.NewEmail("Padho Badho", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Failed to send email to %s, response code: %d", toEmail, resp.StatusCode)
		return fmt.Errorf("email send failed, code: %d", resp.StatusCode)
	}

	return nil
}

// SendWelcomeEmail greets a freshly registered user.
func SendWelcomeEmail(name, email string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2>Welcome to Padho Badho, %s!</h2>
					<p>Your account is ready. Browse the course catalog, enroll, and start learning.</p>
				</div>
			</body>
		</html>`, name)

	return SendEmail(name, email, "Welcome to Padho Badho", body)
}

// SendCertificateEmail notifies a user that a course certificate was issued.
func SendCertificateEmail(name, email, courseTitle, certificateURL string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2>Congratulations, %s!</h2>
					<p>You completed <strong>%s</strong>. Your certificate is ready:</p>
					<p><a href="%s">%s</a></p>
				</div>
			</body>
		</html>`, name, courseTitle, certificateURL, certificateURL)

	return SendEmail(name, email, "Your course certificate", body)
}
