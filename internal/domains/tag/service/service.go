package service

import (
	"context"

	"deskhub/config"
	"deskhub/infras/otel"
	"deskhub/internal/domains/tag/model"
	"deskhub/internal/domains/tag/model/dto"
	"deskhub/internal/domains/tag/repository"
	"deskhub/shared/cache"
	"deskhub/shared/constant"
	gDto "deskhub/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheGetAllTag = "tag:gets"

type Tag interface {
	GetAll(ctx context.Context) ([]dto.TagResponse, error)
}

type serviceImpl struct {
	repo  repository.Tag
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Tag, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) Tag {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: redisCache,
		otel:  otl,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.TagResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tag.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllTag, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllTag).Msg("cache hit for tags")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldID, SortDir: gDto.SortDirAsc}

	tags, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		return nil, err
	}

	res = dto.FromModels(tags)

	if err = s.cache.Save(ctx, cacheGetAllTag, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to cache tags")
	}

	return res, nil
}
