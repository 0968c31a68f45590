package create_booking

import (
	"time"
)

// Pricing серверные цены, источник истины для totalAmount
type Pricing struct {
	CourtPricePerSlot int64 // Цена одного часового слота квадры
	EventFlatPrice    int64 // Фиксированная цена на evento и festa (весь день)
}

// Request модель запроса на создание бронирования
type Request struct {
	ServiceType   string   // Тип услуги (quadra, evento, festa)
	Date          string   // Дата бронирования (YYYY-MM-DD)
	TimeSlots     []string // Выбранные слоты (формат HH:MM)
	CustomerName  string   // Имя клиента
	CustomerEmail string   // Email клиента
	CustomerPhone string   // Телефон клиента
	Observations  *string  // Примечания (опционально)
	TotalAmount   int64    // Сумма, посчитанная клиентом (целые реалы)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string    // UUID созданного бронирования
	BookingNumber string    // Публичный номер (UNQ-XXXXX)
	ServiceType   string    // Тип услуги
	Date          string    // Дата бронирования
	TimeSlots     []string  // Слоты в каноническом порядке
	CustomerName  string    // Имя клиента
	CustomerEmail string    // Email клиента
	CustomerPhone string    // Телефон клиента
	Observations  *string   // Примечания
	TotalAmount   int64     // Итоговая сумма (серверный расчет)
	Status        string    // Статус бронирования
	CancelToken   string    // Токен для отмены, отдается только при создании
	CreatedAt     time.Time // Время создания
}
