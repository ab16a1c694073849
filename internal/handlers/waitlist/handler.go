package waitlist

import (
	"net/http"
	"tiara/infras/otel"
	"tiara/internal/domains/waitlist/model"
	"tiara/internal/domains/waitlist/model/dto"
	"tiara/internal/domains/waitlist/service"
	"tiara/shared/constant"
	gDto "tiara/shared/dto"
	"tiara/shared/validator"
	"tiara/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Waitlist
	otel    otel.Otel
}

func New(service service.Waitlist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/waitlist", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.JoinWaitlist)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/waitlist", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetWaitlist)
		routerGroup.Delete("/{id}", handler.RemoveEntry)
	})
}

// JoinWaitlist adds a guest to the waitlist for a fully committed date.
// @Summary Join the waitlist
// @Description Join the waitlist for a date with no available tables.
// @Tags Waitlist
// @Accept json
// @Produce json
// @Param request body dto.CreateEntryRequest true "Join Waitlist Request"
// @Success 201 {object} response.Message "Added to the waitlist successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/waitlist [post]
func (handler *Handler) JoinWaitlist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".JoinWaitlist")
	defer scope.End()

	req := dto.CreateEntryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to join waitlist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Waitlist entry created successfully")

	response.WithMessage(w, http.StatusCreated, "Added to the waitlist successfully")
}

// GetWaitlist retrieves waitlist entries with their WhatsApp contact links.
// @Summary Get the waitlist
// @Description Retrieve waitlist entries with optional date filtering and pagination.
// @Tags Waitlist
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param date query string false "Filter by requested date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetEntriesResponse] "List of waitlist entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/waitlist [get]
// @Security BearerAuth
func (handler *Handler) GetWaitlist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWaitlist")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	date := r.URL.Query().Get(constant.RequestParamDate)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if date != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorEq,
			Value:    date,
			Table:    model.TableName,
		})
	}

	entries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get waitlist entries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Waitlist entries retrieved successfully")

	response.WithJSON(w, http.StatusOK, entries)
}

// RemoveEntry deletes a waitlist entry by its ID.
// @Summary Remove a waitlist entry
// @Description Remove a guest from the waitlist once they have been contacted.
// @Tags Waitlist
// @Accept json
// @Produce json
// @Param id path string true "Waitlist entry ID"
// @Success 200 {object} response.Message "Waitlist entry removed successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/waitlist/{id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveEntry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove waitlist entry")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Waitlist entry removed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Waitlist entry removed successfully")
}
