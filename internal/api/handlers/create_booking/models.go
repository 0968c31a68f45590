package create_booking

import (
	"time"

	createBooking "github.com/unique-reservas/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceType   string   `json:"serviceType"`
	Date          string   `json:"date"` // "2026-03-15"
	TimeSlots     []string `json:"timeSlots"`
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	CustomerPhone string   `json:"customerPhone"`
	Observations  *string  `json:"observations,omitempty"`
	TotalAmount   int64    `json:"totalAmount"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string   `json:"id"`
	BookingNumber string   `json:"bookingNumber"`
	ServiceType   string   `json:"serviceType"`
	Date          string   `json:"date"`
	TimeSlots     []string `json:"timeSlots"`
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	CustomerPhone string   `json:"customerPhone"`
	Observations  *string  `json:"observations"`
	TotalAmount   int64    `json:"totalAmount"`
	Status        string   `json:"status"`
	CancelToken   string   `json:"cancelToken"`
	CreatedAt     string   `json:"createdAt"`
}

// ValidationErrorResponse тело ответа 400 со списком ошибочных полей
type ValidationErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

// ConflictResponse тело ответа 409 с занятыми и свободными слотами
type ConflictResponse struct {
	Error            string   `json:"error"`
	Message          string   `json:"message"`
	UnavailableSlots []string `json:"unavailableSlots"`
	AvailableSlots   []string `json:"availableSlots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ServiceType:   r.ServiceType,
		Date:          r.Date,
		TimeSlots:     r.TimeSlots,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Observations:  r.Observations,
		TotalAmount:   r.TotalAmount,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		BookingNumber: resp.BookingNumber,
		ServiceType:   resp.ServiceType,
		Date:          resp.Date,
		TimeSlots:     resp.TimeSlots,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		Observations:  resp.Observations,
		TotalAmount:   resp.TotalAmount,
		Status:        resp.Status,
		CancelToken:   resp.CancelToken,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
