package get_available_slots

// Request модель запроса на получение доступных слотов
type Request struct {
	Date        string // Дата в формате YYYY-MM-DD
	ServiceType string // Тип услуги (quadra, evento, festa)
}

// Response модель ответа со списком слотов
type Response struct {
	Date        string // Дата, на которую запрашивались слоты
	ServiceType string // Тип услуги из запроса
	Slots       []Slot // Полный каталог слотов с признаком доступности
}

// Slot модель временного слота
type Slot struct {
	Time      string // Время начала слота (например, "10:00")
	Available bool   // Свободен ли слот
}
