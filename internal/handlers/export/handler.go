package export

import (
	"net/http"
	"tiara/infras/otel"
	"tiara/internal/domains/export/service"
	"tiara/shared/constant"
	"tiara/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Export
	otel    otel.Otel
}

func New(service service.Export, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/export", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Export)
	})
}

// Export streams a zip archive of all business data.
// @Summary Export all data
// @Description Build a zip archive of every collection as CSV and stream it back.
// @Tags Export
// @Accept json
// @Produce application/zip
// @Success 200 {file} binary "Backup archive"
// @Failure 500 {object} response.Error
// @Router /v1/admin/export [post]
// @Security BearerAuth
func (handler *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Export")
	defer scope.End()

	archive, err := handler.service.BuildArchive(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build export archive")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Export archive built successfully by user " + user)

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeZip)
	w.Header().Set(constant.RequestHeaderContentDisposition, `attachment; filename="`+archive.FileName+`"`)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(archive.Data); err != nil {
		log.Error().Err(err).Msg("failed to stream export archive")
	}
}
