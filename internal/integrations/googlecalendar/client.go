package googlecalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/unique-reservas/booking-service/internal/domain"
	"github.com/unique-reservas/booking-service/pkg/types"
)

// eventIDSeparator события всех слотов бронирования хранятся одной строкой
const eventIDSeparator = ","

// Client клиент Google Calendar на сервисном аккаунте
type Client struct {
	service    *calendar.Service
	calendarID string
	timeZone   string
	location   string
	loc        *time.Location
	log        Logger
}

// NewClient creates a calendar client authenticated with a service-account
// JWT read from credentialsFile.
func NewClient(ctx context.Context, credentialsFile, calendarID, timeZone, location string, log Logger) (*Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: read credentials file: %v", ErrInit, err)
	}

	conf, err := google.JWTConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parse credentials: %v", ErrInit, err)
	}

	service, err := calendar.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("%w: create service: %v", ErrInit, err)
	}

	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: load timezone %s: %v", ErrInit, timeZone, err)
	}

	return &Client{
		service:    service,
		calendarID: calendarID,
		timeZone:   timeZone,
		location:   location,
		loc:        loc,
		log:        log,
	}, nil
}

// CreateEvents creates one calendar event per booked slot and returns the
// comma-joined event ids. Events already created are kept if a later insert
// fails; the caller decides whether to retry.
func (c *Client) CreateEvents(ctx context.Context, booking *domain.Booking) (string, error) {
	date, err := time.ParseInLocation(domain.DateFormat, booking.Date, c.loc)
	if err != nil {
		return "", fmt.Errorf("%w: parse booking date %q: %v", ErrCreateEvent, booking.Date, err)
	}

	eventIDs := make([]string, 0, len(booking.TimeSlots))

	for _, slot := range booking.TimeSlots {
		start, err := types.TimeString(slot).AtDate(date, c.loc)
		if err != nil {
			return strings.Join(eventIDs, eventIDSeparator),
				fmt.Errorf("%w: parse slot %q: %v", ErrCreateEvent, slot, err)
		}
		end := start.Add(domain.SlotDurationMinutes * time.Minute)

		event := &calendar.Event{
			Summary:     fmt.Sprintf("%s - %s", booking.ServiceType, booking.CustomerName),
			Description: eventDescription(booking),
			Location:    c.location,
			ColorId:     colorForService(booking.ServiceType),
			Start: &calendar.EventDateTime{
				DateTime: start.Format(time.RFC3339),
				TimeZone: c.timeZone,
			},
			End: &calendar.EventDateTime{
				DateTime: end.Format(time.RFC3339),
				TimeZone: c.timeZone,
			},
		}

		created, err := c.service.Events.Insert(c.calendarID, event).Context(ctx).Do()
		if err != nil {
			return strings.Join(eventIDs, eventIDSeparator),
				fmt.Errorf("%w: booking=%s slot=%s: %v", ErrCreateEvent, booking.BookingNumber, slot, err)
		}

		c.log.Info("googlecalendar: event created id=%s booking=%s slot=%s",
			created.Id, booking.BookingNumber, slot)
		eventIDs = append(eventIDs, created.Id)
	}

	return strings.Join(eventIDs, eventIDSeparator), nil
}

// DeleteEvents deletes previously created events. Events that no longer exist
// are skipped silently.
func (c *Client) DeleteEvents(ctx context.Context, eventIDs string) error {
	if eventIDs == "" {
		return nil
	}

	for _, eventID := range strings.Split(eventIDs, eventIDSeparator) {
		eventID = strings.TrimSpace(eventID)
		if eventID == "" {
			continue
		}

		err := c.service.Events.Delete(c.calendarID, eventID).Context(ctx).Do()
		if err != nil {
			var apiErr *googleapi.Error
			if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
				c.log.Warn("googlecalendar: event %s already gone", eventID)
				continue
			}
			return fmt.Errorf("%w: event=%s: %v", ErrDeleteEvent, eventID, err)
		}

		c.log.Info("googlecalendar: event deleted id=%s", eventID)
	}

	return nil
}

// eventDescription текст события с данными бронирования
func eventDescription(b *domain.Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Reserva %s\n\n", b.BookingNumber)
	fmt.Fprintf(&sb, "Cliente: %s\n", b.CustomerName)
	fmt.Fprintf(&sb, "Telefone: %s\n", b.CustomerPhone)
	fmt.Fprintf(&sb, "Email: %s\n", b.CustomerEmail)
	fmt.Fprintf(&sb, "Valor: R$ %d,00", b.TotalAmount)
	if b.Observations != nil && *b.Observations != "" {
		fmt.Fprintf(&sb, "\n\nObservações: %s", *b.Observations)
	}
	return sb.String()
}

// colorForService цвета событий по типу услуги
func colorForService(serviceType domain.ServiceType) string {
	switch serviceType {
	case domain.ServiceCourt:
		return "1"
	case domain.ServiceParty:
		return "10"
	default:
		return "5"
	}
}
