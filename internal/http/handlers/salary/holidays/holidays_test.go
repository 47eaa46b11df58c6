package holidays

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	services "github.com/magabrotheeeer/salary-calculator/internal/services/salary"
)

// MockService реализует интерфейс holidays.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Holidays(from, to string) ([]string, error) {
	args := m.Called(from, to)
	dates, _ := args.Get(0).([]string)
	return dates, args.Error(1)
}

func TestHolidaysHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное получение праздников",
			url:  "/holidays?from=2024-01-01&to=2024-02-29",
			setupMock: func(m *MockService) {
				m.On("Holidays", "2024-01-01", "2024-02-29").
					Return([]string{"2024-01-01", "2024-01-15", "2024-02-19"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"holidays_count":3`,
		},
		{
			name: "пустой диапазон",
			url:  "/holidays?from=2024-03-02&to=2024-03-08",
			setupMock: func(m *MockService) {
				m.On("Holidays", "2024-03-02", "2024-03-08").
					Return([]string{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"holidays_count":0`,
		},
		{
			name: "некорректный период",
			url:  "/holidays?from=2024-03-01&to=2024-02-01",
			setupMock: func(m *MockService) {
				m.On("Holidays", "2024-03-01", "2024-02-01").
					Return(nil, &services.ValidationError{Reason: "from date is after to date"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"from date is after to date"}`,
		},
		{
			name: "ошибка сервиса",
			url:  "/holidays?from=2024-01-01&to=2024-02-01",
			setupMock: func(m *MockService) {
				m.On("Holidays", "2024-01-01", "2024-02-01").
					Return(nil, errors.New("internal error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list holidays"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
