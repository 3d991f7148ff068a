package office

import (
	"net/http"
	"strconv"

	"deskhub/infras/otel"
	imageDto "deskhub/internal/domains/image/model/dto"
	imageService "deskhub/internal/domains/image/service"
	"deskhub/internal/domains/office/model/dto"
	"deskhub/internal/domains/office/service"
	"deskhub/shared/constant"
	gDto "deskhub/shared/dto"
	"deskhub/shared/failure"
	"deskhub/shared/validator"
	"deskhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Office
	imageService imageService.Image
	otel         otel.Otel
}

func New(officeService service.Office, imgService imageService.Image, otl otel.Otel) Handler {
	return Handler{
		service:      officeService,
		imageService: imgService,
		otel:         otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/offices", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetOffices)
		routerGroup.Post("/", handler.CreateOffice)
		routerGroup.Get("/{id}", handler.GetOfficeByID)
		routerGroup.Put("/{id}", handler.UpdateOffice)
		routerGroup.Delete("/{id}", handler.DeleteOffice)
		routerGroup.Post("/{id}/images", handler.StoreImage)
		routerGroup.Delete("/{id}/images/{imageID}", handler.DeleteImage)
	})
}

// GetOffices retrieves a page of offices.
// @Summary List offices
// @Description Retrieve visible offices with optional owner, visitor and proximity filters.
// @Tags Office
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param user_id query string false "Filter by owner"
// @Param visitor_id query string false "Filter by visitor with a reservation"
// @Param lat query number false "Order by distance from this latitude"
// @Param lng query number false "Order by distance from this longitude"
// @Success 200 {object} response.Paginated[[]dto.OfficeResponse] "Page of offices"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offices [get]
func (handler *Handler) GetOffices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOffices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, constant.OfficePageSize)

	query, err := parseListQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse office filters")
		response.WithError(w, err)

		return
	}

	res, err := handler.service.List(ctx, queryParams, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get offices")
		response.WithError(w, err)

		return
	}

	response.WithPagination(w, http.StatusOK, res.Offices, res.Meta, res.Links)
}

// GetOfficeByID retrieves a single office with its relations.
// @Summary Get office
// @Description Retrieve one office with tags, images, owner and reservation count.
// @Tags Office
// @Accept json
// @Produce json
// @Param id path string true "Office ID"
// @Success 200 {object} response.Data[dto.OfficeResponse] "Office"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offices/{id} [get]
func (handler *Handler) GetOfficeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOfficeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get office")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateOffice creates a new office listing.
// @Summary Create office
// @Description Create an office listing. It enters the pending approval state.
// @Tags Office
// @Accept json
// @Produce json
// @Param office body dto.CreateOfficeRequest true "Office payload"
// @Success 201 {object} response.Data[dto.OfficeResponse] "Created office"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/offices [post]
// @Security BearerAuth
func (handler *Handler) CreateOffice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOffice")
	defer scope.End()

	var req dto.CreateOfficeRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create office")
		response.WithError(w, err)

		return
	}

	scope.AddEvent("Office created by user " + res.UserID)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateOffice partially updates an office listing.
// @Summary Update office
// @Description Update an office. Changing lat, lng or price resets approval to pending.
// @Tags Office
// @Accept json
// @Produce json
// @Param id path string true "Office ID"
// @Param office body dto.UpdateOfficeRequest true "Changed fields"
// @Success 200 {object} response.Data[dto.OfficeResponse] "Updated office"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/offices/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateOffice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOffice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateOfficeRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update office")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteOffice removes an office listing.
// @Summary Delete office
// @Description Delete an office without active reservations.
// @Tags Office
// @Produce json
// @Param id path string true "Office ID"
// @Success 200 {object} response.Message "Office deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/offices/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOffice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOffice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete office")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Office deleted successfully")
}

// StoreImage attaches an image to an office.
// @Summary Upload office image
// @Description Upload a jpg/png image of at most 5000 KB for an owned office.
// @Tags Office
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Office ID"
// @Param image formData file true "Image file"
// @Success 201 {object} response.Data[imageDto.ImageResponse] "Stored image"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/offices/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) StoreImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StoreImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := imageDto.StoreImageRequest{}

	file, fileHeader, err := r.FormFile(constant.FormFileImage)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")
		response.WithError(w, err)

		return
	}

	res, err := handler.imageService.Store(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to store image")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// DeleteImage removes an office image.
// @Summary Delete office image
// @Description Delete an image unless it is the only one or the featured one.
// @Tags Office
// @Produce json
// @Param id path string true "Office ID"
// @Param imageID path string true "Image ID"
// @Success 200 {object} response.Message "Image deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/offices/{id}/images/{imageID} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	imageID := chi.URLParam(r, constant.RequestParamImageID)

	if err := handler.imageService.Delete(ctx, id, imageID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Str("imageID", imageID).Msg("failed to delete image")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Image deleted successfully")
}

// parseListQuery validates the recognised office listing filters. Lat and lng
// must be supplied together and parse as coordinates.
func parseListQuery(r *http.Request) (dto.ListOfficesQuery, error) {
	values := r.URL.Query()

	query := dto.ListOfficesQuery{
		UserID:    values.Get(constant.RequestParamUserID),
		VisitorID: values.Get(constant.RequestParamVisitorID),
	}

	latStr := values.Get(constant.RequestParamLat)
	lngStr := values.Get(constant.RequestParamLng)

	if latStr == "" && lngStr == "" {
		return query, nil
	}

	if latStr == "" || lngStr == "" {
		return query, failure.InvalidCoordinateParam
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return query, failure.InvalidCoordinateParam
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return query, failure.InvalidCoordinateParam
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return query, failure.InvalidCoordinateParam
	}

	query.Lat = &lat
	query.Lng = &lng

	return query, nil
}
