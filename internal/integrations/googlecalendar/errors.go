package googlecalendar

import "errors"

var (
	// ErrCreateEvent возвращается при ошибке создания события
	ErrCreateEvent = errors.New("googlecalendar: failed to create event")

	// ErrDeleteEvent возвращается при ошибке удаления события
	ErrDeleteEvent = errors.New("googlecalendar: failed to delete event")

	// ErrInit возвращается при ошибке инициализации клиента
	ErrInit = errors.New("googlecalendar: failed to initialize client")
)
