package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"sdf/config"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers an HTML email. SendGrid is used when an API key is
// configured; otherwise delivery falls back to plain SMTP.
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig.SendgridApiKey != "" {
		return sendViaSendgrid(to, subject, htmlBody)
	}
	return sendViaSMTP(to, subject, htmlBody)
}

func sendViaSendgrid(to []string, subject string, htmlBody string) error {
	from := mail.NewEmail(config.AppConfig.OrgName, config.AppConfig.EmailSender)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)

	for _, addr := range to {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", addr), "", htmlBody)
		resp, err := client.Send(message)
		if err != nil {
			log.Printf("Error sending email via SendGrid: %v", err)
			return err
		}
		if resp.StatusCode >= 300 {
			log.Printf("SendGrid rejected email to %s: %d %s", addr, resp.StatusCode, resp.Body)
			return fmt.Errorf("sendgrid error: %d", resp.StatusCode)
		}
	}
	return nil
}

func sendViaSMTP(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s <%s>\r\n", config.AppConfig.OrgName, from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all donor-facing emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B4332; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B4332; line-height: 1.6; }
			.content h2 { color: #1B4332; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #D8873C; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F5E9; padding: 15px; border-radius: 4px; border-left: 4px solid #D8873C; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SUPANSHA DEVELOPMENT FOUNDATION</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Supansha Development Foundation. All rights reserved.<br>
				Donations are eligible for deduction under section 80G.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Thank you after a completed donation
func SendDonationThankYouEmail(email, name string, amount uint, causeName string) {
	subject := "Thank You for Your Donation"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for your generous donation of <strong>₹%d</strong> towards <strong>%s</strong>.</p>
		<p>Your contribution will help create lasting impact in the communities we serve.</p>
		<div class="info-box">
			Your official donation receipt will be issued shortly and sent to this email address.
		</div>
	`, name, amount, causeName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Thank You!", body))
}

// 2. Receipt issued
func SendReceiptEmail(email, name, receiptURL string) {
	subject := "Your Donation Receipt"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your official donation receipt has been issued.</p>
		<p>You can download it here:</p>
		<a href="%s" class="btn">Download Receipt</a>
		<p>Please keep this receipt for your tax records. Donations are eligible for deduction under section 80G.</p>
	`, name, receiptURL)

	go SendEmail([]string{email}, subject, getEmailTemplate("Receipt Issued", body))
}

// 3. Payment failed
func SendDonationFailedEmail(email, name string, amount uint) {
	subject := "Donation Payment Failed"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Unfortunately your donation of <strong>₹%d</strong> could not be processed.</p>
		<p>No money has been deducted. Please try again, or contact us if the problem persists.</p>
	`, name, amount)

	go SendEmail([]string{email}, subject, getEmailTemplate("Payment Failed", body))
}
