package holidays

// federalHolidays — фиксированная таблица праздничных дат за 2023–2025 годы.
// Каждая дата хранится отдельной записью, без правил переноса: расширение
// покрытия на новые годы делается добавлением строк в эту таблицу.
var federalHolidays = []string{
	// 2023
	"2023-01-01", // Новый год
	"2023-01-16", // День Мартина Лютера Кинга
	"2023-02-20", // День президентов
	"2023-05-29", // День памяти
	"2023-06-19", // День освобождения
	"2023-07-04", // День независимости
	"2023-09-04", // День труда
	"2023-10-09", // День Колумба
	"2023-11-11", // День ветеранов
	"2023-11-23", // День благодарения
	"2023-12-25", // Рождество

	// 2024
	"2024-01-01",
	"2024-01-15",
	"2024-02-19",
	"2024-05-27",
	"2024-06-19",
	"2024-07-04",
	"2024-09-02",
	"2024-10-14",
	"2024-11-11",
	"2024-11-28",
	"2024-12-25",

	// 2025
	"2025-01-01",
	"2025-01-20",
	"2025-02-17",
	"2025-05-26",
	"2025-06-19",
	"2025-07-04",
	"2025-09-01",
	"2025-10-13",
	"2025-11-11",
	"2025-11-27",
	"2025-12-25",
}
