package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"deskhub/config"
	"deskhub/infras/otel"
	"deskhub/infras/postgres"
	"deskhub/infras/s3"
	imageRepository "deskhub/internal/domains/image/repository"
	notificationService "deskhub/internal/domains/notification/service"
	"deskhub/internal/domains/office/model"
	"deskhub/internal/domains/office/model/dto"
	"deskhub/internal/domains/office/repository"
	reservationRepository "deskhub/internal/domains/reservation/repository"
	tagRepository "deskhub/internal/domains/tag/repository"
	userRepository "deskhub/internal/domains/user/repository"
	"deskhub/shared"
	"deskhub/shared/cache"
	"deskhub/shared/constant"
	gDto "deskhub/shared/dto"
	"deskhub/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetOffice    = "office:get"
	cacheGetAllOffice = "office:gets"

	listBasePath = "/v1/offices"
)

type Office interface {
	List(ctx context.Context, params gDto.QueryParams, query dto.ListOfficesQuery) (dto.GetOfficesResponse, error)
	Get(ctx context.Context, id string) (dto.OfficeResponse, error)
	Create(ctx context.Context, req dto.CreateOfficeRequest) (dto.OfficeResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateOfficeRequest) (dto.OfficeResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo            repository.Office
	tagRepo         tagRepository.Tag
	imageRepo       imageRepository.Image
	reservationRepo reservationRepository.Reservation
	userRepo        userRepository.User
	notifier        notificationService.Notification
	db              postgres.TxRunner
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
	s3              s3.S3
}

func New(
	repo repository.Office,
	tagRepo tagRepository.Tag,
	imageRepo imageRepository.Image,
	reservationRepo reservationRepository.Reservation,
	userRepo userRepository.User,
	notifier notificationService.Notification,
	db postgres.TxRunner,
	cfg *config.Config,
	redisCache cache.RedisCache,
	otl otel.Otel,
	s3Client s3.S3,
) Office {
	return &serviceImpl{
		repo:            repo,
		tagRepo:         tagRepo,
		imageRepo:       imageRepo,
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		db:              db,
		cfg:             cfg,
		cache:           redisCache,
		otel:            otl,
		s3:              s3Client,
	}
}

// visibleOnly reports whether the listing must be restricted to publicly
// visible offices. Owners browsing their own listings see everything.
func visibleOnly(ctx context.Context, query dto.ListOfficesQuery) bool {
	requester := shared.UserID(ctx)

	return query.UserID == "" || requester == "" || requester != query.UserID
}

func listCacheKey(params gDto.QueryParams, query dto.ListOfficesQuery, publicOnly bool) string {
	parts := []string{
		cacheGetAllOffice,
		strconv.Itoa(params.Page),
		query.UserID,
		query.VisitorID,
		strconv.FormatBool(publicOnly),
	}

	if query.Lat != nil && query.Lng != nil {
		parts = append(parts, fmt.Sprintf("%f:%f", *query.Lat, *query.Lng))
	}

	return strings.Join(parts, ":")
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams, query dto.ListOfficesQuery) (res dto.GetOfficesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".office.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	publicOnly := visibleOnly(ctx, query)

	cacheKey := listCacheKey(params, query, publicOnly)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for offices")

		return res, nil
	}

	total, err := s.repo.CountList(ctx, query, publicOnly)
	if err != nil {
		return res, err
	}

	offices, err := s.repo.List(ctx, params, query, publicOnly)
	if err != nil {
		return res, err
	}

	relations, err := s.loadRelations(ctx, offices)
	if err != nil {
		return res, err
	}

	meta := gDto.NewPageMeta(params.Page, params.Limit, total)
	links := gDto.NewPageLinks(listBasePath, meta)

	res.FromModels(offices, relations, meta, links)

	if err = s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to cache offices")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.OfficeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".office.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	office, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return res, err
	}

	if office.ID == "" {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	public := !office.Hidden && office.ApprovalStatus == model.ApprovalStatusApproved
	if !public && shared.UserID(ctx) != office.UserID {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if public {
		cacheKey := shared.BuildCacheKey(cacheGetOffice, id)

		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Info().Str("cacheKey", cacheKey).Msg("cache hit for office")

			return res, nil
		}
	}

	res, err = s.buildResponse(ctx, office)
	if err != nil {
		return res, err
	}

	if public {
		cacheKey := shared.BuildCacheKey(cacheGetOffice, id)

		if err = s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to cache office")
		}
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOfficeRequest) (res dto.OfficeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".office.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !shared.HasScope(ctx, constant.ScopeOfficeCreate) {
		return res, failure.ForbiddenError //nolint:wrapcheck
	}

	userID := shared.UserID(ctx)

	if err = s.checkTags(ctx, req.Tags); err != nil {
		return res, err
	}

	office := req.ToModel(userID)

	err = s.db.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if txErr := s.repo.InsertTx(ctx, tx, office); txErr != nil {
			return txErr
		}

		return s.syncTags(ctx, tx, office.ID, req.Tags)
	})
	if err != nil {
		return res, err
	}

	s.afterWrite(ctx, office, notificationService.EventCreated, true)

	return s.buildResponse(ctx, office)
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateOfficeRequest) (res dto.OfficeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".office.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !shared.HasScope(ctx, constant.ScopeOfficeUpdate) {
		return res, failure.ForbiddenError //nolint:wrapcheck
	}

	office, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return res, err
	}

	if office.ID == "" {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if office.UserID != shared.UserID(ctx) {
		return res, failure.ResourceRestrictedError //nolint:wrapcheck
	}

	if err = s.checkTags(ctx, req.Tags); err != nil {
		return res, err
	}

	changes, critical := req.Changes(office, office.UserID)

	err = s.db.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if txErr := s.repo.UpdateByIDTx(ctx, tx, id, changes); txErr != nil {
			return txErr
		}

		if req.Tags == nil {
			return nil
		}

		return s.tagRepo.SyncTx(ctx, tx, id, req.Tags)
	})
	if err != nil {
		return res, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return res, err
	}

	s.afterWrite(ctx, updated, notificationService.EventUpdated, critical)

	return s.buildResponse(ctx, updated)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".office.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !shared.HasScope(ctx, constant.ScopeOfficeDelete) {
		return failure.ForbiddenError //nolint:wrapcheck
	}

	office, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if office.ID == "" {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if office.UserID != shared.UserID(ctx) {
		return failure.ResourceRestrictedError //nolint:wrapcheck
	}

	hasActive, err := s.reservationRepo.ExistActiveByOffice(ctx, id)
	if err != nil {
		return err
	}

	if hasActive {
		return failure.Validation(model.EntityName, "cannot delete this office") //nolint:wrapcheck
	}

	images, err := s.imageRepo.GetAllByOffices(ctx, []string{id})
	if err != nil {
		return err
	}

	if err = s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		bucketName := s.cfg.External.S3.BucketName
		for _, image := range images[id] {
			objectName := s.s3.GetObjectNameFromURL(bucketName, image.Path)
			if delErr := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); delErr != nil {
				log.Error().Err(delErr).Str("image", image.ID).Msg("failed to delete image object")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllOffice)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetOffice, id))
	}()

	return nil
}

// checkTags rejects requests that reference unknown tag ids.
func (s *serviceImpl) checkTags(ctx context.Context, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	count, err := s.tagRepo.CountByIDs(ctx, tagIDs)
	if err != nil {
		return err
	}

	if count != len(tagIDs) {
		return failure.Validation("tags", "one or more tags do not exist") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) syncTags(ctx context.Context, tx *sqlx.Tx, officeID string, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	return s.tagRepo.SyncTx(ctx, tx, officeID, tagIDs)
}

// afterWrite runs the post-commit side effects in a detached goroutine:
// cache invalidation always, the pending approval notification only when the
// office actually entered pending.
func (s *serviceImpl) afterWrite(ctx context.Context, office model.Office, event string, notify bool) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllOffice)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetOffice, office.ID))

		if !notify {
			return
		}

		err := s.notifier.NotifyPendingApproval(c, notificationService.PendingOffice{
			OfficeID: office.ID,
			Title:    office.Title,
			OwnerID:  office.UserID,
			Event:    event,
		})
		if err != nil {
			log.Error().Err(err).Str("officeID", office.ID).Msg("failed to notify pending approval")
		}
	}()
}

// loadRelations eager-loads tags, images, owners and active reservation
// counts for a page of offices in a bounded number of round-trips.
func (s *serviceImpl) loadRelations(ctx context.Context, offices []model.Office) (map[string]dto.OfficeRelations, error) {
	relations := map[string]dto.OfficeRelations{}
	if len(offices) == 0 {
		return relations, nil
	}

	officeIDs := make([]string, 0, len(offices))
	ownerIDs := make([]string, 0, len(offices))

	for _, office := range offices {
		officeIDs = append(officeIDs, office.ID)
		ownerIDs = append(ownerIDs, office.UserID)
	}

	tags, err := s.tagRepo.GetByOffices(ctx, officeIDs)
	if err != nil {
		return nil, err
	}

	images, err := s.imageRepo.GetAllByOffices(ctx, officeIDs)
	if err != nil {
		return nil, err
	}

	owners, err := s.userRepo.GetByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	counts, err := s.reservationRepo.CountActiveByOffices(ctx, officeIDs)
	if err != nil {
		return nil, err
	}

	for _, office := range offices {
		relations[office.ID] = dto.OfficeRelations{
			Tags:              tags[office.ID],
			Images:            images[office.ID],
			Owner:             owners[office.UserID],
			ActiveReservation: counts[office.ID],
		}
	}

	return relations, nil
}

func (s *serviceImpl) buildResponse(ctx context.Context, office model.Office) (res dto.OfficeResponse, err error) {
	relations, err := s.loadRelations(ctx, []model.Office{office})
	if err != nil {
		return res, err
	}

	res.FromModel(office, relations[office.ID])

	return res, nil
}
