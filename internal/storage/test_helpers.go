package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя
func (f *TestDataFactory) CreateUser(t *testing.T, userUID, username, email, passwordHash, role string) {
	_, err := f.storage.DB.Exec(`INSERT INTO users (uid, username, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)`,
		userUID, username, email, passwordHash, role)
	require.NoError(t, err)
}

// CreateCalculation создает тестовую запись истории расчётов
func (f *TestDataFactory) CreateCalculation(t *testing.T, username string, startDate, endDate time.Time,
	hourlyRate, hoursPerDay float64, workedWeekends bool, multiplier float64,
	excludeHolidays bool, totalSalary, totalHours float64, totalDays int) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO calculations
		(username, start_date, end_date, hourly_rate, hours_per_day, worked_weekends,
		 weekend_premium_multiplier, exclude_holidays, total_salary, total_hours, total_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
		username, startDate, endDate, hourlyRate, hoursPerDay, workedWeekends,
		multiplier, excludeHolidays, totalSalary, totalHours, totalDays).Scan(&id)
	require.NoError(t, err)
	return id
}

// TestUserData содержит стандартные тестовые данные пользователя
type TestUserData struct {
	UID          string
	Username     string
	Email        string
	PasswordHash string
	Role         string
}

// GetTestUserData возвращает стандартные тестовые данные пользователя
func GetTestUserData() TestUserData {
	uid := uuid.New().String()
	return TestUserData{
		UID:          uid,
		Username:     "user_" + uid[:8],
		Email:        "user_" + uid[:8] + "@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         "user",
	}
}
