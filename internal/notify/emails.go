package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/unique-reservas/booking-service/internal/domain"
)

// displayDateFormat дата в письмах в бразильском формате
const displayDateFormat = "02/01/2006"

func confirmationEmail(b *domain.Booking, baseURL string) (subject, html, text string) {
	subject = fmt.Sprintf("Reserva confirmada - %s", b.BookingNumber)
	cancelURL := fmt.Sprintf("%s/cancelar/%s", strings.TrimRight(baseURL, "/"), b.CancelToken)

	var h strings.Builder
	h.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	h.WriteString(`<h2 style="color: #16a34a;">Reserva confirmada!</h2>`)
	fmt.Fprintf(&h, `<p>Olá, %s! Sua reserva foi confirmada com sucesso.</p>`, b.CustomerName)
	h.WriteString(`<div style="background: #f3f4f6; border-radius: 8px; padding: 16px;">`)
	fmt.Fprintf(&h, `<p><strong>Número da reserva:</strong> %s</p>`, b.BookingNumber)
	fmt.Fprintf(&h, `<p><strong>Serviço:</strong> %s</p>`, serviceLabel(b.ServiceType))
	fmt.Fprintf(&h, `<p><strong>Data:</strong> %s</p>`, displayDate(b.Date))
	fmt.Fprintf(&h, `<p><strong>Horários:</strong> %s</p>`, strings.Join(b.TimeSlots, ", "))
	fmt.Fprintf(&h, `<p><strong>Valor total:</strong> %s</p>`, formatMoney(b.TotalAmount))
	h.WriteString(`</div>`)
	fmt.Fprintf(&h, `<p>Se precisar cancelar, use o link abaixo com até 2 horas de antecedência:</p>`)
	fmt.Fprintf(&h, `<p><a href="%s" style="color: #dc2626;">Cancelar reserva</a></p>`, cancelURL)
	h.WriteString(`<p style="color: #6b7280; font-size: 12px;">Guarde este e-mail. O link de cancelamento é pessoal e intransferível.</p>`)
	h.WriteString(`</div>`)

	var t strings.Builder
	fmt.Fprintf(&t, "Olá, %s! Sua reserva foi confirmada.\n\n", b.CustomerName)
	fmt.Fprintf(&t, "Número da reserva: %s\n", b.BookingNumber)
	fmt.Fprintf(&t, "Serviço: %s\n", serviceLabel(b.ServiceType))
	fmt.Fprintf(&t, "Data: %s\n", displayDate(b.Date))
	fmt.Fprintf(&t, "Horários: %s\n", strings.Join(b.TimeSlots, ", "))
	fmt.Fprintf(&t, "Valor total: %s\n\n", formatMoney(b.TotalAmount))
	fmt.Fprintf(&t, "Para cancelar (até 2 horas antes): %s\n", cancelURL)

	return subject, h.String(), t.String()
}

func ownerEmail(b *domain.Booking) (subject, html, text string) {
	subject = fmt.Sprintf("Nova reserva - %s - %s %s", b.BookingNumber, displayDate(b.Date), firstSlot(b))

	var h strings.Builder
	h.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	h.WriteString(`<h2>Nova reserva recebida</h2>`)
	h.WriteString(`<div style="background: #f3f4f6; border-radius: 8px; padding: 16px;">`)
	fmt.Fprintf(&h, `<p><strong>Número:</strong> %s</p>`, b.BookingNumber)
	fmt.Fprintf(&h, `<p><strong>Serviço:</strong> %s</p>`, serviceLabel(b.ServiceType))
	fmt.Fprintf(&h, `<p><strong>Data:</strong> %s</p>`, displayDate(b.Date))
	fmt.Fprintf(&h, `<p><strong>Horários:</strong> %s</p>`, strings.Join(b.TimeSlots, ", "))
	fmt.Fprintf(&h, `<p><strong>Cliente:</strong> %s</p>`, b.CustomerName)
	fmt.Fprintf(&h, `<p><strong>Telefone:</strong> %s</p>`, b.CustomerPhone)
	fmt.Fprintf(&h, `<p><strong>Email:</strong> %s</p>`, b.CustomerEmail)
	fmt.Fprintf(&h, `<p><strong>Valor:</strong> %s</p>`, formatMoney(b.TotalAmount))
	if b.Observations != nil && *b.Observations != "" {
		fmt.Fprintf(&h, `<p><strong>Observações:</strong> %s</p>`, *b.Observations)
	}
	h.WriteString(`</div></div>`)

	var t strings.Builder
	t.WriteString("Nova reserva recebida\n\n")
	fmt.Fprintf(&t, "Número: %s\n", b.BookingNumber)
	fmt.Fprintf(&t, "Serviço: %s\n", serviceLabel(b.ServiceType))
	fmt.Fprintf(&t, "Data: %s\n", displayDate(b.Date))
	fmt.Fprintf(&t, "Horários: %s\n", strings.Join(b.TimeSlots, ", "))
	fmt.Fprintf(&t, "Cliente: %s\n", b.CustomerName)
	fmt.Fprintf(&t, "Telefone: %s\n", b.CustomerPhone)
	fmt.Fprintf(&t, "Email: %s\n", b.CustomerEmail)
	fmt.Fprintf(&t, "Valor: %s\n", formatMoney(b.TotalAmount))
	if b.Observations != nil && *b.Observations != "" {
		fmt.Fprintf(&t, "Observações: %s\n", *b.Observations)
	}

	return subject, h.String(), t.String()
}

func cancellationEmail(b *domain.Booking) (subject, html, text string) {
	subject = fmt.Sprintf("Reserva cancelada - %s", b.BookingNumber)

	var h strings.Builder
	h.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	h.WriteString(`<h2 style="color: #dc2626;">Reserva cancelada</h2>`)
	fmt.Fprintf(&h, `<p>Olá, %s. Sua reserva foi cancelada.</p>`, b.CustomerName)
	h.WriteString(`<div style="background: #f3f4f6; border-radius: 8px; padding: 16px;">`)
	fmt.Fprintf(&h, `<p><strong>Número da reserva:</strong> %s</p>`, b.BookingNumber)
	fmt.Fprintf(&h, `<p><strong>Serviço:</strong> %s</p>`, serviceLabel(b.ServiceType))
	fmt.Fprintf(&h, `<p><strong>Data:</strong> %s</p>`, displayDate(b.Date))
	fmt.Fprintf(&h, `<p><strong>Horários:</strong> %s</p>`, strings.Join(b.TimeSlots, ", "))
	if b.CancelReason != nil && *b.CancelReason != "" {
		fmt.Fprintf(&h, `<p><strong>Motivo:</strong> %s</p>`, *b.CancelReason)
	}
	h.WriteString(`</div>`)
	h.WriteString(`<p>Esperamos vê-lo novamente em breve!</p>`)
	h.WriteString(`</div>`)

	var t strings.Builder
	fmt.Fprintf(&t, "Olá, %s. Sua reserva foi cancelada.\n\n", b.CustomerName)
	fmt.Fprintf(&t, "Número da reserva: %s\n", b.BookingNumber)
	fmt.Fprintf(&t, "Serviço: %s\n", serviceLabel(b.ServiceType))
	fmt.Fprintf(&t, "Data: %s\n", displayDate(b.Date))
	fmt.Fprintf(&t, "Horários: %s\n", strings.Join(b.TimeSlots, ", "))
	if b.CancelReason != nil && *b.CancelReason != "" {
		fmt.Fprintf(&t, "Motivo: %s\n", *b.CancelReason)
	}

	return subject, h.String(), t.String()
}

// serviceLabel отображаемое имя услуги
func serviceLabel(serviceType domain.ServiceType) string {
	switch serviceType {
	case domain.ServiceCourt:
		return "Quadra"
	case domain.ServiceEvent:
		return "Evento"
	case domain.ServiceParty:
		return "Festa"
	default:
		return string(serviceType)
	}
}

// displayDate переводит дату из формата хранения в dd/mm/yyyy
func displayDate(date string) string {
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return date
	}
	return parsed.Format(displayDateFormat)
}

func formatMoney(amount int64) string {
	return fmt.Sprintf("R$ %d,00", amount)
}

func firstSlot(b *domain.Booking) string {
	if len(b.TimeSlots) == 0 {
		return ""
	}
	return b.TimeSlots[0]
}
