// internal/services/mail_service.go
package services

import (
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/config"
	"github.com/sintacc/sintacc-backend/internal/models"
)

// Mailer sends transactional email. Checkout fires the confirmation after
// commit and ignores failures beyond logging them.
type Mailer interface {
	SendOrderConfirmation(to, fullName string, order *models.Order) error
}

type MailService struct {
	client *sendgrid.Client
	cfg    *config.Config
}

func NewMailService(cfg *config.Config) *MailService {
	svc := &MailService{cfg: cfg}
	if cfg.Mail.SendGridAPIKey != "" {
		svc.client = sendgrid.NewSendClient(cfg.Mail.SendGridAPIKey)
	}
	return svc
}

func (s *MailService) SendOrderConfirmation(to, fullName string, order *models.Order) error {
	if s.client == nil || s.cfg.Mail.FromEmail == "" {
		return apperrors.MailNotConfigured("SENDGRID_API_KEY o MAIL_FROM_EMAIL no configurados")
	}

	from := sgmail.NewEmail(s.cfg.Mail.FromName, s.cfg.Mail.FromEmail)
	recipient := sgmail.NewEmail(fullName, to)
	subject := fmt.Sprintf("Confirmacion de pedido %s", order.OrderNumber)

	plain := fmt.Sprintf("Tu pedido %s fue registrado con estado %s. Total: $%.2f",
		order.OrderNumber, order.Status, order.Total)
	message := sgmail.NewSingleEmail(from, subject, recipient, plain, orderConfirmationHTML(order))

	response, err := s.client.Send(message)
	if err != nil {
		return apperrors.MailSendFailed(err)
	}
	if response.StatusCode >= 400 {
		return apperrors.MailSendFailed(fmt.Errorf("sendgrid responded %d: %s", response.StatusCode, response.Body))
	}
	return nil
}

// orderConfirmationHTML renders the itemized table plus shipping and billing
// blocks from the order's frozen snapshots.
func orderConfirmationHTML(order *models.Order) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("<h2>Pedido %s</h2>", html.EscapeString(order.OrderNumber)))
	b.WriteString(fmt.Sprintf("<p>Estado: <strong>%s</strong></p>", html.EscapeString(string(order.Status))))

	b.WriteString(`<table border="1" cellpadding="6" cellspacing="0">`)
	b.WriteString("<tr><th>Producto</th><th>Cantidad</th><th>Precio unitario</th><th>Subtotal</th></tr>")
	for _, item := range order.Items {
		title := snapshotString(item.ProductSnapshot, "title")
		b.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%d</td><td>$%.2f</td><td>$%.2f</td></tr>",
			html.EscapeString(title), item.Quantity, item.UnitPrice,
			float64(item.Quantity)*item.UnitPrice))
	}
	b.WriteString(fmt.Sprintf(
		`<tr><td colspan="3"><strong>Total</strong></td><td><strong>$%.2f</strong></td></tr>`,
		order.Total))
	b.WriteString("</table>")

	if order.ShippingSnapshot != nil {
		b.WriteString("<h3>Envio</h3><p>")
		b.WriteString(html.EscapeString(strings.Join(nonEmpty(
			snapshotString(order.ShippingSnapshot, "full_name"),
			snapshotString(order.ShippingSnapshot, "street"),
			snapshotString(order.ShippingSnapshot, "apartment"),
			snapshotString(order.ShippingSnapshot, "city"),
			snapshotString(order.ShippingSnapshot, "state"),
			snapshotString(order.ShippingSnapshot, "country"),
			snapshotString(order.ShippingSnapshot, "postal_code"),
		), ", ")))
		b.WriteString("</p>")
	}

	if order.BillingSnapshot != nil {
		b.WriteString("<h3>Facturacion</h3><p>")
		b.WriteString(html.EscapeString(strings.Join(nonEmpty(
			snapshotString(order.BillingSnapshot, "legal_name"),
			snapshotString(order.BillingSnapshot, "tax_id"),
			snapshotString(order.BillingSnapshot, "address_line1"),
			snapshotString(order.BillingSnapshot, "city"),
			snapshotString(order.BillingSnapshot, "country"),
		), ", ")))
		b.WriteString("</p>")
	}

	if order.Notes != "" {
		b.WriteString(fmt.Sprintf("<p>Notas: %s</p>", html.EscapeString(order.Notes)))
	}

	return b.String()
}

func snapshotString(snapshot models.JSONB, key string) string {
	if snapshot == nil {
		return ""
	}
	if value, ok := snapshot[key].(string); ok {
		return value
	}
	return ""
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
