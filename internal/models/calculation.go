// Package models содержит доменные структуры, описывающие запрос на расчёт
// заработной платы и его результат, а также вспомогательные типы для работы
// с данными из внешних источников (например, JSON-запросы).
package models

import "time"

// CalculationEntry представляет собой разобранный и провалидированный запрос
// на расчёт зарплаты, используемый в бизнес-логике.
// Даты хранятся как календарные дни (полночь UTC, без компоненты времени).
type CalculationEntry struct {
	StartDate                time.Time // Первый день периода (включительно)
	EndDate                  time.Time // Последний день периода (включительно)
	HourlyRate               float64   // Ставка за час
	HoursPerDay              float64   // Часов в рабочем дне, (0, 24]
	WorkedWeekends           bool      // Считать ли выходные рабочими
	WeekendPremiumMultiplier float64   // Множитель ставки за выходные, >= 1
	ExcludeHolidays          bool      // Исключать ли праздничные дни из оплаты
}

// DummyCalculationRequest используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в CalculationEntry.
// Даты приходят в виде строк формата 2006-01-02, чтобы их можно было
// валидировать и парсить вручную.
type DummyCalculationRequest struct {
	StartDate                string  `json:"start_date" validate:"required,datetime=2006-01-02"`  // Первый день периода
	EndDate                  string  `json:"end_date" validate:"required,datetime=2006-01-02"`    // Последний день периода
	HourlyRate               float64 `json:"hourly_rate" validate:"required,gt=0"`                // Ставка за час (>0)
	HoursPerDay              float64 `json:"hours_per_day" validate:"required,gt=0,lte=24"`       // Часов в день (0, 24]
	WorkedWeekends           bool    `json:"worked_weekends"`                                     // Работа в выходные
	WeekendPremiumMultiplier float64 `json:"weekend_premium_multiplier" validate:"omitempty,gte=1"` // Множитель за выходные (>=1)
	ExcludeHolidays          bool    `json:"exclude_holidays"`                                    // Исключать праздники
}

// PayBreakdown представляет результат расчёта: количество дней каждой
// категории, оплату по категориям и агрегаты за весь период.
// Все денежные поля округлены до двух знаков, счётчики и часы — нет.
type PayBreakdown struct {
	WeekdayCount         int      `json:"weekday_count"`          // Обычные будние дни
	WeekendCount         int      `json:"weekend_count"`          // Выходные дни
	HolidayCount         int      `json:"holiday_count"`          // Праздничные дни, независимо от исключения
	HolidayDates         []string `json:"holiday_dates"`          // Даты праздников периода в формате 2006-01-02, по возрастанию
	WeekdaySalary        float64  `json:"weekday_salary"`         // Оплата за будние дни
	WeekendSalary        float64  `json:"weekend_salary"`         // Оплата за выходные дни
	HolidaySalary        float64  `json:"holiday_salary"`         // Оплата за праздники (по базовой ставке)
	TotalSalary          float64  `json:"total_salary"`           // Итоговая сумма
	TotalHours           float64  `json:"total_hours"`            // Итоговые часы
	TotalDays            int      `json:"total_days"`             // Итоговые оплачиваемые дни
	EffectiveWeekendRate float64  `json:"effective_weekend_rate"` // Ставка за час в выходной, для отображения
}

// CalculationRecord представляет сохранённую в истории запись о выполненном
// расчёте. Используется при выдаче истории расчётов пользователя.
type CalculationRecord struct {
	ID                       int       `json:"id"`
	Username                 string    `json:"username"`
	StartDate                time.Time `json:"start_date"`
	EndDate                  time.Time `json:"end_date"`
	HourlyRate               float64   `json:"hourly_rate"`
	HoursPerDay              float64   `json:"hours_per_day"`
	WorkedWeekends           bool      `json:"worked_weekends"`
	WeekendPremiumMultiplier float64   `json:"weekend_premium_multiplier"`
	ExcludeHolidays          bool      `json:"exclude_holidays"`
	TotalSalary              float64   `json:"total_salary"`
	TotalHours               float64   `json:"total_hours"`
	TotalDays                int       `json:"total_days"`
	CreatedAt                time.Time `json:"created_at"`
}
