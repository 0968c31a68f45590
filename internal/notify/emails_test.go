package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unique-reservas/booking-service/pkg/ptr"
)

func TestConfirmationEmail(t *testing.T) {
	subject, html, text := confirmationEmail(testBooking(), "https://unique.com.br/")

	assert.Equal(t, "Reserva confirmada - UNQ-12345", subject)

	// Ссылка отмены без двойного слэша
	cancelURL := "https://unique.com.br/cancelar/7c9e6679-7425-40de-944b-e07fc1f90ae7"
	assert.Contains(t, html, cancelURL)
	assert.Contains(t, text, cancelURL)

	assert.Contains(t, html, "15/03/2026")
	assert.Contains(t, html, "14:00, 15:00")
	assert.Contains(t, html, "R$ 200,00")
	assert.Contains(t, html, "Quadra")
}

func TestOwnerEmail(t *testing.T) {
	subject, html, _ := ownerEmail(testBooking())

	assert.Contains(t, subject, "UNQ-12345")
	assert.Contains(t, subject, "15/03/2026")
	assert.Contains(t, html, "João Silva")
	assert.Contains(t, html, "11987654321")
}

func TestCancellationEmail_WithReason(t *testing.T) {
	booking := testBooking()
	booking.CancelReason = ptr.Ptr("Imprevisto no trabalho")

	subject, html, text := cancellationEmail(booking)

	assert.Equal(t, "Reserva cancelada - UNQ-12345", subject)
	assert.Contains(t, html, "Imprevisto no trabalho")
	assert.Contains(t, text, "Imprevisto no trabalho")
}

func TestCancellationEmail_WithoutReason(t *testing.T) {
	_, html, _ := cancellationEmail(testBooking())

	assert.NotContains(t, html, "Motivo")
}

func TestServiceLabel(t *testing.T) {
	assert.Equal(t, "Quadra", serviceLabel("quadra"))
	assert.Equal(t, "Evento", serviceLabel("evento"))
	assert.Equal(t, "Festa", serviceLabel("festa"))
	assert.Equal(t, "outro", serviceLabel("outro"))
}
