package history

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/salary-calculator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/salary-calculator/internal/models"
)

// MockService реализует интерфейс history.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) History(ctx context.Context, username string, limit, offset int) ([]*models.CalculationRecord, error) {
	args := m.Called(ctx, username, limit, offset)
	records, _ := args.Get(0).([]*models.CalculationRecord)
	return records, args.Error(1)
}

func TestHistoryHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sampleRecords := []*models.CalculationRecord{
		{
			ID:          2,
			Username:    "testuser",
			StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			HourlyRate:  20,
			HoursPerDay: 8,
			TotalSalary: 640,
			TotalHours:  32,
			TotalDays:   4,
		},
	}

	tests := []struct {
		name           string
		url            string
		username       string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное получение истории",
			url:      "/salary/history",
			username: "testuser",
			setupMock: func(m *MockService) {
				m.On("History", mock.Anything, "testuser", 10, 0).
					Return(sampleRecords, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"list_count":1`,
		},
		{
			name:     "limit и offset из query",
			url:      "/salary/history?limit=5&offset=20",
			username: "testuser",
			setupMock: func(m *MockService) {
				m.On("History", mock.Anything, "testuser", 5, 20).
					Return([]*models.CalculationRecord{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"list_count":0`,
		},
		{
			name:     "некорректный limit откатывается к значению по умолчанию",
			url:      "/salary/history?limit=abc&offset=-5",
			username: "testuser",
			setupMock: func(m *MockService) {
				m.On("History", mock.Anything, "testuser", 10, 0).
					Return([]*models.CalculationRecord{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"list_count":0`,
		},
		{
			name:           "отсутствует авторизация",
			url:            "/salary/history",
			username:       "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:     "ошибка сервиса",
			url:      "/salary/history",
			username: "testuser",
			setupMock: func(m *MockService) {
				m.On("History", mock.Anything, "testuser", 10, 0).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list calculations"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)

			ctx := req.Context()
			if tt.username != "" {
				ctx = context.WithValue(ctx, middlewarectx.User, tt.username)
			}
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
