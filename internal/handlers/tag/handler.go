package tag

import (
	"net/http"

	"deskhub/infras/otel"
	"deskhub/internal/domains/tag/service"
	"deskhub/shared/constant"
	"deskhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Tag
	otel    otel.Otel
}

func New(tagService service.Tag, otl otel.Otel) Handler {
	return Handler{
		service: tagService,
		otel:    otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tags", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTags)
	})
}

// GetTags retrieves every tag.
// @Summary List tags
// @Description Retrieve all tags available for office listings.
// @Tags Tag
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]dto.TagResponse] "List of tags"
// @Failure 500 {object} response.Error
// @Router /v1/tags [get]
func (handler *Handler) GetTags(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTags")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tags")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
