// Package history реализует HTTP-обработчик для получения истории расчётов пользователя.
package history

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/salary-calculator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/salary-calculator/internal/http/response"
	"github.com/magabrotheeeer/salary-calculator/internal/lib/sl"
	"github.com/magabrotheeeer/salary-calculator/internal/models"
)

// Service описывает интерфейс бизнес-логики получения истории расчётов.
type Service interface {
	History(ctx context.Context, username string, limit, offset int) ([]*models.CalculationRecord, error)
}

// Handler обрабатывает HTTP-запросы на получение истории расчётов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary История расчётов
// @Description Возвращает сохранённые расчёты текущего пользователя, новые первыми.
// @Tags Salary
// @Produce  json
// @Param limit query int false "Максимум записей (по умолчанию 10)"
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Success 200 {object} map[string]any "Список расчётов"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /salary/history [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.salary.history"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limitStr := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 10
	}

	offsetStr := r.URL.Query().Get("offset")
	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		offset = 0
	}

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.History(r.Context(), username, limit, offset)
	if err != nil {
		log.Error("failed to list calculations", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list calculations"))
		return
	}

	log.Info("list calculations", "count", len(res))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"list_count": len(res),
		"entries":    res,
	}))
}
