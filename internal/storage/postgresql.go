// Package storage реализует хранилище данных на основе PostgreSQL
// для ведения истории расчётов заработной платы и учёта пользователей.
// Предоставляет методы сохранения и выборки расчётов, а также
// регистрации и поиска пользователей.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/magabrotheeeer/salary-calculator/internal/models"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с расчётами и пользователями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'calculations'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table calculations missing or query error: %w", err)
	}
	return nil
}

// ===== CALCULATION METHODS =====

// SaveCalculation вставляет запись о выполненном расчёте и возвращает её ID.
func (s *Storage) SaveCalculation(ctx context.Context, record models.CalculationRecord) (int, error) {
	const op = "storage.SaveCalculation"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO calculations (username, start_date, end_date, hourly_rate,
			      hours_per_day, worked_weekends, weekend_premium_multiplier,
			      exclude_holidays, total_salary, total_hours, total_days)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		record.Username, record.StartDate, record.EndDate, record.HourlyRate,
		record.HoursPerDay, record.WorkedWeekends, record.WeekendPremiumMultiplier,
		record.ExcludeHolidays, record.TotalSalary, record.TotalHours, record.TotalDays).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListCalculations возвращает историю расчётов пользователя с пагинацией,
// новые записи первыми.
func (s *Storage) ListCalculations(ctx context.Context, username string, limit, offset int) ([]*models.CalculationRecord, error) {
	const op = "storage.ListCalculations"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, start_date, end_date, hourly_rate, hours_per_day,
			      worked_weekends, weekend_premium_multiplier, exclude_holidays,
			      total_salary, total_hours, total_days, created_at
			  FROM calculations
			  WHERE username = $1
			  ORDER BY id DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, username, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.CalculationRecord
	for rows.Next() {
		var item models.CalculationRecord
		if err := rows.Scan(&item.ID, &item.Username, &item.StartDate, &item.EndDate,
			&item.HourlyRate, &item.HoursPerDay, &item.WorkedWeekends,
			&item.WeekendPremiumMultiplier, &item.ExcludeHolidays,
			&item.TotalSalary, &item.TotalHours, &item.TotalDays, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = rows.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ===== USER METHODS =====

// RegisterUser сохраняет нового пользователя в базу данных и возвращает его UID.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID string
	query := `INSERT INTO users (email, username, password_hash, role)
			  VALUES ($1, $2, $3, $4)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.Username, user.PasswordHash, user.Role).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetUserByUsername возвращает пользователя по его имени.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, username, password_hash, role, created_at
			  FROM users WHERE username = $1`
	row := s.DB.QueryRowContext(ctx, query, username)

	var user models.User
	if err := row.Scan(&user.UUID, &user.Email, &user.Username,
		&user.PasswordHash, &user.Role, &user.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}
