package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendCheckoutLink(toEmail, productName, initPoint string) error
	SendPaymentPending(toEmail, storeName, reference string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendCheckoutLink(toEmail, productName, initPoint string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Tu link de pago está listo")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Pago pendiente</h2>
			<p>Generamos un link de pago para <strong>%s</strong>.</p>
			<a href="%s" style="background-color: #009EE3; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Pagar con Mercado Pago</a>
			<p>O copia este link:</p>
			<p>%s</p>
			<p>Si no solicitaste este pago, ignora este correo.</p>
		</div>
	`, productName, initPoint, initPoint)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send checkout link to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Checkout link sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendPaymentPending(toEmail, storeName, reference string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Tienes un pago pendiente")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Pago pendiente</h2>
			<p>Hay un pago pendiente de confirmación en tu tienda <strong>%s</strong>.</p>
			<p>Referencia: <strong>%s</strong></p>
			<p>Revisa el estado del pago desde tu panel de Mercado Pago.</p>
		</div>
	`, storeName, reference)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send payment pending notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Payment pending notice sent to %s\n", toEmail)
	return nil
}
