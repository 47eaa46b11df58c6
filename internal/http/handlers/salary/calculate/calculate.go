// Package calculate реализует HTTP-обработчик для расчёта зарплаты за период.
//
// Handler принимает JSON-запрос с параметрами расчёта, валидирует их, извлекает имя пользователя из контекста,
// вызывает бизнес-логику расчёта через сервис и возвращает разбивку зарплаты в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package calculate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/salary-calculator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/salary-calculator/internal/http/response"
	"github.com/magabrotheeeer/salary-calculator/internal/lib/sl"
	"github.com/magabrotheeeer/salary-calculator/internal/models"
	services "github.com/magabrotheeeer/salary-calculator/internal/services/salary"
)

// Handler управляет HTTP-запросами на расчёт зарплаты.
//
// Использует логгер для записи операций и ошибок,
// сервис бизнес-логики для выполнения расчёта,
// а также валидатор для проверки структуры входных данных.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики расчёта зарплаты
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики расчёта зарплаты.
type Service interface {
	Calculate(ctx context.Context, username string, req models.DummyCalculationRequest) (*models.PayBreakdown, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Рассчитать зарплату за период
// @Description Классифицирует каждый день периода как будний, выходной или праздничный и возвращает разбивку зарплаты.
// @Tags Salary
// @Accept  json
// @Produce  json
// @Param request body models.DummyCalculationRequest true "Параметры расчёта"
// @Success 200 {object} map[string]any "Разбивка зарплаты"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или параметры расчёта"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при расчёте"
// @Router /salary/calculate [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.salary.calculate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyCalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	breakdown, err := h.service.Calculate(r.Context(), username, req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			log.Error("invalid calculation parameters", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(verr.Reason))
			return
		}
		log.Error("failed to calculate salary", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not calculate salary"))
		return
	}

	log.Info("salary calculated", slog.Float64("total_salary", breakdown.TotalSalary))
	render.JSON(w, r, response.OKWithData(breakdown))
}
