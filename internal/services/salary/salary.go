// Package services содержит бизнес-логику расчёта заработной платы
// за календарный период с учётом выходных и праздничных дней.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/salary-calculator/internal/lib/money"
	"github.com/magabrotheeeer/salary-calculator/internal/models"
)

// dateLayout — формат календарных дат во входных запросах и отчётах.
const dateLayout = "2006-01-02"

// HistoryRepository определяет методы для работы с историей расчётов в хранилище.
type HistoryRepository interface {
	// SaveCalculation сохраняет выполненный расчёт и возвращает его ID.
	SaveCalculation(ctx context.Context, record models.CalculationRecord) (int, error)
	// ListCalculations возвращает расчёты пользователя с пагинацией, новые первыми.
	ListCalculations(ctx context.Context, username string, limit, offset int) ([]*models.CalculationRecord, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// HolidayCalendar описывает доступ к фиксированному календарю праздников.
type HolidayCalendar interface {
	// IsHoliday сообщает, является ли календарный день праздничным.
	IsHoliday(day time.Time) bool
	// Between возвращает праздничные даты диапазона по возрастанию.
	Between(from, to time.Time) []string
}

// ValidationError описывает отклонённый запрос на расчёт. Любой другой
// корректный запрос, включая вырожденные (один день, период целиком из
// исключённых дней), ошибкой не является.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// CalculatorService реализует расчёт зарплаты, включая кеширование
// результатов и ведение истории расчётов.
type CalculatorService struct {
	repo     HistoryRepository
	cache    Cache
	calendar HolidayCalendar
	log      *slog.Logger
}

// NewCalculatorService создает новый экземпляр CalculatorService.
func NewCalculatorService(repo HistoryRepository, cache Cache, calendar HolidayCalendar, log *slog.Logger) *CalculatorService {
	return &CalculatorService{
		repo:     repo,
		cache:    cache,
		calendar: calendar,
		log:      log,
	}
}

// Calculate выполняет расчёт по запросу пользователя: парсит даты, валидирует
// параметры, классифицирует каждый день периода и агрегирует оплату.
// Результат кешируется, а итоговые значения сохраняются в историю расчётов.
func (s *CalculatorService) Calculate(ctx context.Context, username string, req models.DummyCalculationRequest) (*models.PayBreakdown, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}

	entry := models.CalculationEntry{
		StartDate:                startDate,
		EndDate:                  endDate,
		HourlyRate:               req.HourlyRate,
		HoursPerDay:              req.HoursPerDay,
		WorkedWeekends:           req.WorkedWeekends,
		WeekendPremiumMultiplier: req.WeekendPremiumMultiplier,
		ExcludeHolidays:          req.ExcludeHolidays,
	}
	if entry.WeekendPremiumMultiplier == 0 {
		entry.WeekendPremiumMultiplier = 1
	}

	if err := Validate(entry); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("calculation:%s:%s:%s:%g:%g:%t:%g:%t",
		username, req.StartDate, req.EndDate, entry.HourlyRate, entry.HoursPerDay,
		entry.WorkedWeekends, entry.WeekendPremiumMultiplier, entry.ExcludeHolidays)

	var cached models.PayBreakdown
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read calculation from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return &cached, nil
	}

	breakdown := ComputeBreakdown(entry, s.calendar)

	record := models.CalculationRecord{
		Username:                 username,
		StartDate:                entry.StartDate,
		EndDate:                  entry.EndDate,
		HourlyRate:               entry.HourlyRate,
		HoursPerDay:              entry.HoursPerDay,
		WorkedWeekends:           entry.WorkedWeekends,
		WeekendPremiumMultiplier: entry.WeekendPremiumMultiplier,
		ExcludeHolidays:          entry.ExcludeHolidays,
		TotalSalary:              breakdown.TotalSalary,
		TotalHours:               breakdown.TotalHours,
		TotalDays:                breakdown.TotalDays,
	}
	id, err := s.repo.SaveCalculation(ctx, record)
	if err != nil {
		return nil, err
	}
	s.log.Info("saved calculation to history", slog.Int("id", id))

	if err := s.cache.Set(cacheKey, breakdown, time.Hour); err != nil {
		s.log.Warn("failed to cache calculation", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return &breakdown, nil
}

// History возвращает сохранённые расчёты пользователя с пагинацией.
func (s *CalculatorService) History(ctx context.Context, username string, limit, offset int) ([]*models.CalculationRecord, error) {
	return s.repo.ListCalculations(ctx, username, limit, offset)
}

// Holidays возвращает праздничные даты таблицы внутри диапазона [from, to].
func (s *CalculatorService) Holidays(from, to string) ([]string, error) {
	fromDate, err := time.Parse(dateLayout, from)
	if err != nil {
		return nil, &ValidationError{Reason: "from date must be in format YYYY-MM-DD"}
	}
	toDate, err := time.Parse(dateLayout, to)
	if err != nil {
		return nil, &ValidationError{Reason: "to date must be in format YYYY-MM-DD"}
	}
	if fromDate.After(toDate) {
		return nil, &ValidationError{Reason: "from date is after to date"}
	}
	return s.calendar.Between(fromDate, toDate), nil
}

// Validate проверяет параметры расчёта и возвращает ValidationError
// при нарушении любого из ограничений.
func Validate(entry models.CalculationEntry) error {
	if entry.StartDate.After(entry.EndDate) {
		return &ValidationError{Reason: "start date is after end date"}
	}
	if entry.HourlyRate <= 0 {
		return &ValidationError{Reason: "hourly rate must be positive"}
	}
	if entry.HoursPerDay <= 0 || entry.HoursPerDay > 24 {
		return &ValidationError{Reason: "hours per day must be in (0, 24]"}
	}
	if entry.WeekendPremiumMultiplier < 1 {
		return &ValidationError{Reason: "weekend premium multiplier must be at least 1"}
	}
	return nil
}

// ComputeBreakdown проходит период день за днём и раскладывает его на три
// исчерпывающие категории. Приоритет классификации: праздник > выходной >
// будний день; праздник, выпавший на выходной, считается праздником и
// оплачивается по базовой ставке, без множителя за выходные.
func ComputeBreakdown(entry models.CalculationEntry, calendar HolidayCalendar) models.PayBreakdown {
	var weekdayCount, weekendCount, holidayCount int
	holidayDates := make([]string, 0)

	for d := entry.StartDate; !d.After(entry.EndDate); d = d.AddDate(0, 0, 1) {
		switch {
		case calendar.IsHoliday(d):
			holidayCount++
			// Праздник фиксируется в отчёте даже при exclude_holidays.
			holidayDates = append(holidayDates, d.Format(dateLayout))
		case isWeekend(d):
			weekendCount++
		default:
			weekdayCount++
		}
	}

	weekdayHours := float64(weekdayCount) * entry.HoursPerDay
	weekdaySalary := weekdayHours * entry.HourlyRate

	var weekendHours float64
	if entry.WorkedWeekends {
		weekendHours = float64(weekendCount) * entry.HoursPerDay
	}
	effectiveWeekendRate := entry.HourlyRate * entry.WeekendPremiumMultiplier
	weekendSalary := weekendHours * effectiveWeekendRate

	var holidayHours float64
	if !entry.ExcludeHolidays {
		holidayHours = float64(holidayCount) * entry.HoursPerDay
	}
	holidaySalary := holidayHours * entry.HourlyRate

	totalDays := weekdayCount
	if entry.WorkedWeekends {
		totalDays += weekendCount
	}
	if !entry.ExcludeHolidays {
		totalDays += holidayCount
	}

	return models.PayBreakdown{
		WeekdayCount:         weekdayCount,
		WeekendCount:         weekendCount,
		HolidayCount:         holidayCount,
		HolidayDates:         holidayDates,
		WeekdaySalary:        money.Round2(weekdaySalary),
		WeekendSalary:        money.Round2(weekendSalary),
		HolidaySalary:        money.Round2(holidaySalary),
		TotalSalary:          money.Round2(weekdaySalary + weekendSalary + holidaySalary),
		TotalHours:           weekdayHours + weekendHours + holidayHours,
		TotalDays:            totalDays,
		EffectiveWeekendRate: money.Round2(effectiveWeekendRate),
	}
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
