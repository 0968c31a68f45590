package create_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError carries the names of the request fields that failed
// validation so the handler can report them to the client.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("create_booking: invalid fields: %s", strings.Join(e.Fields, ", "))
}

// Is допускает проверку через errors.Is(err, ErrInvalidInput)
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// SlotConflictError is returned when at least one requested slot is already
// booked. AvailableSlots holds up to three alternatives for the same date.
type SlotConflictError struct {
	UnavailableSlots []string
	AvailableSlots   []string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("create_booking: slots not available: %s", strings.Join(e.UnavailableSlots, ", "))
}
