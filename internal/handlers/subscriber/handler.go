package subscriber

import (
	"net/http"
	"tiara/infras/otel"
	"tiara/internal/domains/subscriber/model/dto"
	"tiara/internal/domains/subscriber/service"
	"tiara/shared/constant"
	gDto "tiara/shared/dto"
	"tiara/shared/validator"
	"tiara/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Subscriber
	otel    otel.Otel
}

func New(service service.Subscriber, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/subscribers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Subscribe)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/subscribers", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSubscribers)
	})
}

// Subscribe adds an email to the newsletter list.
// @Summary Subscribe to the newsletter
// @Description Subscribe an email address to the newsletter. Duplicate signups are welcomed the same way.
// @Tags Subscriber
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscribe Request"
// @Success 201 {object} response.Message "Subscribed successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/subscribers [post]
func (handler *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Subscribe")
	defer scope.End()

	req := dto.SubscribeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	message, err := handler.service.Subscribe(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to subscribe")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Subscriber added successfully")

	response.WithMessage(w, http.StatusCreated, message)
}

// GetSubscribers retrieves the newsletter list.
// @Summary Get all subscribers
// @Description Retrieve newsletter subscribers with pagination.
// @Tags Subscriber
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetSubscribersResponse] "List of subscribers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/subscribers [get]
// @Security BearerAuth
func (handler *Handler) GetSubscribers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubscribers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	subscribers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get subscribers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Subscribers retrieved successfully")

	response.WithJSON(w, http.StatusOK, subscribers)
}
