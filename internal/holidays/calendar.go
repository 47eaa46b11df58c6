// Package holidays реализует неизменяемый календарь официальных праздничных
// дат. Календарь наполняется один раз при старте из фиксированной таблицы и
// далее используется только для проверки принадлежности даты к праздникам.
//
// Таблица покрывает ограниченный набор лет; даты за его пределами считаются
// обычными днями, а не ошибкой — это осознанное ограничение.
package holidays

import (
	"sort"
	"time"
)

// dateLayout — канонический формат ключа даты в таблице.
const dateLayout = "2006-01-02"

// Calendar хранит множество праздничных дат, ключ — строка вида 2006-01-02.
type Calendar struct {
	dates map[string]struct{}
}

// NewCalendar создает календарь из списка дат в формате 2006-01-02.
func NewCalendar(dates []string) *Calendar {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return &Calendar{dates: set}
}

// Default возвращает календарь, построенный из встроенной таблицы
// федеральных праздников за 2023–2025 годы.
func Default() *Calendar {
	return NewCalendar(federalHolidays)
}

// IsHoliday сообщает, является ли календарный день праздничным.
// Компонента времени и часовой пояс при проверке не учитываются.
func (c *Calendar) IsHoliday(day time.Time) bool {
	_, ok := c.dates[day.Format(dateLayout)]
	return ok
}

// Between возвращает праздничные даты в диапазоне [from, to] включительно,
// отсортированные по возрастанию, в формате 2006-01-02.
func (c *Calendar) Between(from, to time.Time) []string {
	lo := from.Format(dateLayout)
	hi := to.Format(dateLayout)

	var result []string
	for d := range c.dates {
		// Лексикографический порядок ключей совпадает с хронологическим.
		if d >= lo && d <= hi {
			result = append(result, d)
		}
	}
	sort.Strings(result)
	return result
}
