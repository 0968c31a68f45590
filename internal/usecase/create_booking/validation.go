package create_booking

import (
	"regexp"
	"strings"
	"time"

	"github.com/unique-reservas/booking-service/internal/domain"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// validateRequest проверяет входные данные и собирает все ошибочные поля
func validateRequest(req *Request, now time.Time) *ValidationError {
	var fields []string

	if strings.TrimSpace(req.CustomerName) == "" {
		fields = append(fields, "customerName")
	}

	if !emailPattern.MatchString(req.CustomerEmail) {
		fields = append(fields, "customerEmail")
	}

	if phoneDigits := nonDigitPattern.ReplaceAllString(req.CustomerPhone, ""); len(phoneDigits) < domain.MinPhoneDigits {
		fields = append(fields, "customerPhone")
	}

	if !domain.IsValidServiceType(domain.ServiceType(req.ServiceType)) {
		fields = append(fields, "serviceType")
	}

	if !validDate(req.Date, now) {
		fields = append(fields, "date")
	}

	if !validTimeSlots(req.TimeSlots) {
		fields = append(fields, "timeSlots")
	}

	if req.TotalAmount <= 0 {
		fields = append(fields, "totalAmount")
	}

	if req.Observations != nil && len(*req.Observations) > domain.MaxObservationsLength {
		fields = append(fields, "observations")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return nil
}

// validDate дата обязана парситься и быть сегодня или позже
func validDate(date string, now time.Time) bool {
	parsed, err := time.ParseInLocation(domain.DateFormat, date, now.Location())
	if err != nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !parsed.Before(today)
}

// validTimeSlots слоты обязаны быть из каталога и без дублей
func validTimeSlots(slots []string) bool {
	if len(slots) == 0 {
		return false
	}

	seen := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		if !domain.IsCatalogSlot(slot) {
			return false
		}
		if _, dup := seen[slot]; dup {
			return false
		}
		seen[slot] = struct{}{}
	}

	return true
}
