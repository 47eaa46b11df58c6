// Package holidays реализует HTTP-обработчик для получения списка праздничных дней за период.
package holidays

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/salary-calculator/internal/http/response"
	"github.com/magabrotheeeer/salary-calculator/internal/lib/sl"
	services "github.com/magabrotheeeer/salary-calculator/internal/services/salary"
)

// Service описывает интерфейс бизнес-логики поиска праздников.
type Service interface {
	Holidays(from, to string) ([]string, error)
}

// Handler обрабатывает HTTP-запросы на получение праздничных дней.
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
// @Summary Праздничные дни за период
// @Description Возвращает отсортированный список праздничных дат в диапазоне from..to включительно.
// @Tags Salary
// @Produce  json
// @Param from query string true "Начало периода (YYYY-MM-DD)"
// @Param to query string true "Конец периода (YYYY-MM-DD)"
// @Success 200 {object} map[string]any "Список праздничных дат"
// @Failure 400 {object} response.ErrorResponse "Некорректный период"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /holidays [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.salary.holidays"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	dates, err := h.service.Holidays(from, to)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			log.Error("invalid holidays range", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(verr.Reason))
			return
		}
		log.Error("failed to list holidays", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list holidays"))
		return
	}

	log.Info("list holidays", "count", len(dates))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"holidays_count": len(dates),
		"holidays":       dates,
	}))
}
