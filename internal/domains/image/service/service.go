package service

import (
	"context"
	"fmt"
	"strings"

	"deskhub/config"
	"deskhub/infras/otel"
	"deskhub/infras/s3"
	"deskhub/internal/domains/image/model"
	"deskhub/internal/domains/image/model/dto"
	"deskhub/internal/domains/image/repository"
	officeModel "deskhub/internal/domains/office/model"
	officeRepository "deskhub/internal/domains/office/repository"
	"deskhub/shared"
	"deskhub/shared/cache"
	"deskhub/shared/constant"
	"deskhub/shared/failure"
	gModel "deskhub/shared/model"
	"deskhub/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetOffice    = "office:get"
	cacheGetAllOffice = "office:gets"
)

type Image interface {
	Store(ctx context.Context, officeID string, req dto.StoreImageRequest) (dto.ImageResponse, error)
	Delete(ctx context.Context, officeID, imageID string) error
}

type serviceImpl struct {
	repo       repository.Image
	officeRepo officeRepository.Office
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	s3         s3.S3
}

func New(repo repository.Image, officeRepo officeRepository.Office, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel, s3Client s3.S3) Image {
	return &serviceImpl{
		repo:       repo,
		officeRepo: officeRepo,
		cfg:        cfg,
		cache:      redisCache,
		otel:       otl,
		s3:         s3Client,
	}
}

// guardOffice loads the office and enforces the update scope plus ownership.
func (s *serviceImpl) guardOffice(ctx context.Context, officeID string) (officeModel.Office, error) {
	if !shared.HasScope(ctx, constant.ScopeOfficeUpdate) {
		return officeModel.Office{}, failure.ForbiddenError //nolint:wrapcheck
	}

	office, err := s.officeRepo.GetByID(ctx, officeID)
	if err != nil {
		return office, err
	}

	if office.ID == "" {
		return office, failure.NotFound(officeModel.EntityName) //nolint:wrapcheck
	}

	if office.UserID != shared.UserID(ctx) {
		return office, failure.ResourceRestrictedError //nolint:wrapcheck
	}

	return office, nil
}

func (s *serviceImpl) Store(ctx context.Context, officeID string, req dto.StoreImageRequest) (res dto.ImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".image.Store")
	defer scope.End()
	defer scope.TraceIfError(err)

	office, err := s.guardOffice(ctx, officeID)
	if err != nil {
		return res, err
	}

	bucketName := s.cfg.External.S3.BucketName

	filename := uuid.NewString()
	parts := strings.Split(req.Image.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err := s.s3.UploadFile(ctx, bucketName, officeModel.EntityName, req.ImageFile, req.Image, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload image to S3")

		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	userID := shared.UserID(ctx)

	image := model.Image{
		ID:       uuid.NewString(),
		OfficeID: office.ID,
		Path:     url,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}

	if err = s.repo.Insert(ctx, image); err != nil {
		_ = s.s3.DeleteFile(ctx, bucketName, officeModel.EntityName, filename)

		return res, err
	}

	s.invalidate(ctx, office.ID)

	res.FromModel(image)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, officeID, imageID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".image.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	office, err := s.guardOffice(ctx, officeID)
	if err != nil {
		return err
	}

	image, err := s.repo.GetByOffice(ctx, imageID, office.ID)
	if err != nil {
		return err
	}

	if image.ID == "" {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	count, err := s.repo.CountByOffice(ctx, office.ID)
	if err != nil {
		return err
	}

	if count <= 1 {
		return failure.Validation(model.EntityName, "cannot delete the only image") //nolint:wrapcheck
	}

	if office.FeaturedImageID.Valid && office.FeaturedImageID.String == image.ID {
		return failure.Validation(model.EntityName, "cannot delete the featured image") //nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName
	objectName := s.s3.GetObjectNameFromURL(bucketName, image.Path)

	if err = s.s3.DeleteFile(ctx, bucketName, officeModel.EntityName, objectName); err != nil {
		log.Error().Err(err).Str("image", image.ID).Msg("failed to delete image object")

		return fmt.Errorf("failed to delete image object: %w", err)
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(image.ID, model.FieldID, model.TableName)); err != nil {
		return err
	}

	s.invalidate(ctx, office.ID)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, officeID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllOffice)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetOffice, officeID))
	}()
}
