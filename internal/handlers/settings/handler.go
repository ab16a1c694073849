package settings

import (
	"encoding/json"
	"net/http"
	"tiara/infras/otel"
	"tiara/internal/domains/settings/model/dto"
	"tiara/internal/domains/settings/service"
	"tiara/shared/constant"
	"tiara/shared/validator"
	"tiara/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Settings
	otel    otel.Otel
}

func New(service service.Settings, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/alert", handler.GetAlert)
		routerGroup.Get("/blocked-dates", handler.GetBlockedDates)
		routerGroup.Get("/watch", handler.Watch)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Put("/alert", handler.SetAlert)
		routerGroup.Post("/blocked-dates", handler.BlockDate)
		routerGroup.Delete("/blocked-dates/{date}", handler.UnblockDate)
	})
}

// GetAlert returns the global site alert.
// @Summary Get the site alert
// @Description Retrieve the global site alert banner.
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SiteAlertResponse] "Site alert"
// @Failure 500 {object} response.Error
// @Router /v1/settings/alert [get]
func (handler *Handler) GetAlert(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAlert")
	defer scope.End()

	alert, err := handler.service.GetAlert(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get site alert")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Site alert retrieved successfully")

	response.WithJSON(w, http.StatusOK, alert)
}

// SetAlert replaces the global site alert.
// @Summary Set the site alert
// @Description Replace the global site alert banner.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.SetAlertRequest true "Set Alert Request"
// @Success 200 {object} response.Message "Site alert updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/settings/alert [put]
// @Security BearerAuth
func (handler *Handler) SetAlert(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetAlert")
	defer scope.End()

	req := dto.SetAlertRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetAlert(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set site alert")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Site alert updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Site alert updated successfully")
}

// GetBlockedDates returns the dates closed for reservations.
// @Summary Get blocked dates
// @Description Retrieve the dates that are closed for new reservations.
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetBlockedDatesResponse] "Blocked dates"
// @Failure 500 {object} response.Error
// @Router /v1/settings/blocked-dates [get]
func (handler *Handler) GetBlockedDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlockedDates")
	defer scope.End()

	dates, err := handler.service.GetBlockedDates(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blocked dates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blocked dates retrieved successfully")

	response.WithJSON(w, http.StatusOK, dates)
}

// BlockDate closes a date for new reservations.
// @Summary Block a date
// @Description Close a date for new reservations.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.BlockDateRequest true "Block Date Request"
// @Success 201 {object} response.Message "Date blocked successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/settings/blocked-dates [post]
// @Security BearerAuth
func (handler *Handler) BlockDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BlockDate")
	defer scope.End()

	req := dto.BlockDateRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.BlockDate(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to block date")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Date blocked successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Date blocked successfully")
}

// UnblockDate reopens a date for reservations.
// @Summary Unblock a date
// @Description Reopen a previously blocked date for reservations.
// @Tags Settings
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Message "Date unblocked successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/settings/blocked-dates/{date} [delete]
// @Security BearerAuth
func (handler *Handler) UnblockDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnblockDate")
	defer scope.End()

	date := chi.URLParam(r, constant.RequestParamDate)

	if err := handler.service.UnblockDate(ctx, date); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unblock date")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Date unblocked successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Date unblocked successfully")
}

// Watch streams settings changes as server-sent events so the public site can
// refresh its alert banner and calendar without polling.
// @Summary Watch settings changes
// @Description Stream settings change notifications as server-sent events.
// @Tags Settings
// @Produce text/event-stream
// @Success 200 {string} string "SSE stream of settings changes"
// @Router /v1/settings/watch [get]
func (handler *Handler) Watch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Watch")
	defer scope.End()

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.WithMessage(w, http.StatusNotImplemented, "streaming unsupported")

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	changes := handler.service.Watch(ctx)

	for change := range changes {
		payload, err := json.Marshal(change)
		if err != nil {
			log.Error().Err(err).Msg("failed to encode settings change")

			continue
		}

		if _, err := w.Write([]byte("data: " + string(payload) + "\n\n")); err != nil {
			return
		}

		flusher.Flush()
	}
}
