package mailer

import (
	"fmt"
	"strings"
	"time"

	"ai-ordering-be/internal/entity"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOrderConfirmed(toEmail string, order *entity.Order) error
	SendOrderCancelled(toEmail string, order *entity.Order) error
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

func (s *emailService) SendOrderConfirmed(toEmail string, order *entity.Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New order from %s", order.CustomerId))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New order received</h2>
			<p>Customer: %s (%s)</p>
			%s
			<p>Schedule: %s</p>
			<p><b>Total: %.2f</b></p>
		</div>
	`, order.CustomerId, order.DeliveryType, linesTable(order.Lines), scheduleText(order.ScheduledFor), order.Total)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send order notification to %s: %v\n", toEmail, err)
		return err
	}
	return nil
}

func (s *emailService) SendOrderCancelled(toEmail string, order *entity.Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order cancelled by %s", order.CustomerId))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Order cancelled</h2>
			<p>Customer %s withdrew their order.</p>
			%s
			<p>Schedule was: %s</p>
		</div>
	`, order.CustomerId, linesTable(order.Lines), scheduleText(order.ScheduledFor))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send cancellation notification to %s: %v\n", toEmail, err)
		return err
	}
	return nil
}

func linesTable(lines []entity.OrderLine) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, line := range lines {
		b.WriteString(fmt.Sprintf("<li>%dx %s (%.2f)</li>", line.Quantity, line.Name, line.UnitPrice))
	}
	b.WriteString("</ul>")
	return b.String()
}

func scheduleText(t *time.Time) string {
	if t == nil {
		return "as soon as possible"
	}
	return t.Format("Mon, 02 Jan 2006 15:04")
}
