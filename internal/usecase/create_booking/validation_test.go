package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unique-reservas/booking-service/pkg/ptr"
)

var validationNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestValidateRequest_OK(t *testing.T) {
	assert.Nil(t, validateRequest(validRequest(), validationNow))
}

func TestValidateRequest_Fields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
		field  string
	}{
		{name: "empty name", mutate: func(r *Request) { r.CustomerName = "  " }, field: "customerName"},
		{name: "bad email", mutate: func(r *Request) { r.CustomerEmail = "joao@" }, field: "customerEmail"},
		{name: "email without domain dot", mutate: func(r *Request) { r.CustomerEmail = "joao@host" }, field: "customerEmail"},
		{name: "short phone", mutate: func(r *Request) { r.CustomerPhone = "12345" }, field: "customerPhone"},
		{name: "unknown service", mutate: func(r *Request) { r.ServiceType = "piscina" }, field: "serviceType"},
		{name: "bad date", mutate: func(r *Request) { r.Date = "15-03-2026" }, field: "date"},
		{name: "past date", mutate: func(r *Request) { r.Date = "2026-02-28" }, field: "date"},
		{name: "no slots", mutate: func(r *Request) { r.TimeSlots = nil }, field: "timeSlots"},
		{name: "off-catalog slot", mutate: func(r *Request) { r.TimeSlots = []string{"12:00"} }, field: "timeSlots"},
		{name: "duplicate slot", mutate: func(r *Request) { r.TimeSlots = []string{"14:00", "14:00"} }, field: "timeSlots"},
		{name: "zero amount", mutate: func(r *Request) { r.TotalAmount = 0 }, field: "totalAmount"},
		{name: "negative amount", mutate: func(r *Request) { r.TotalAmount = -10 }, field: "totalAmount"},
		{name: "observations too long", mutate: func(r *Request) { r.Observations = ptr.Ptr(strings.Repeat("x", 501)) }, field: "observations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			verr := validateRequest(req, validationNow)
			require.NotNil(t, verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestValidateRequest_TodayAllowed(t *testing.T) {
	req := validRequest()
	req.Date = "2026-03-01"

	assert.Nil(t, validateRequest(req, validationNow))
}

func TestValidateRequest_PhoneWithFormatting(t *testing.T) {
	req := validRequest()
	req.CustomerPhone = "+55 (11) 98765-4321"

	assert.Nil(t, validateRequest(req, validationNow))
}

func TestValidateRequest_CollectsAllFields(t *testing.T) {
	req := &Request{}

	verr := validateRequest(req, validationNow)
	require.NotNil(t, verr)
	assert.ElementsMatch(t, verr.Fields, []string{
		"customerName", "customerEmail", "customerPhone",
		"serviceType", "date", "timeSlots", "totalAmount",
	})
}

func TestComputeTotalAmount(t *testing.T) {
	assert.Equal(t, int64(300), computeTotalAmount("quadra", 3, testPricing))
	assert.Equal(t, int64(100), computeTotalAmount("quadra", 1, testPricing))
	assert.Equal(t, int64(500), computeTotalAmount("evento", 2, testPricing))
	assert.Equal(t, int64(500), computeTotalAmount("festa", 5, testPricing))
}
