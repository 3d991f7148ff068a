package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"deskhub/config"
	"deskhub/infras/otel/mocks"
	pgMocks "deskhub/infras/postgres/mocks"
	s3Mocks "deskhub/infras/s3/mocks"
	imageMocks "deskhub/internal/domains/image/mocks"
	imgModel "deskhub/internal/domains/image/model"
	notificationMocks "deskhub/internal/domains/notification/mocks"
	officeMocks "deskhub/internal/domains/office/mocks"
	"deskhub/internal/domains/office/model"
	"deskhub/internal/domains/office/model/dto"
	"deskhub/internal/domains/office/service"
	reservationMocks "deskhub/internal/domains/reservation/mocks"
	tagMocks "deskhub/internal/domains/tag/mocks"
	userMocks "deskhub/internal/domains/user/mocks"
	userModel "deskhub/internal/domains/user/model"
	cacheMocks "deskhub/shared/cache/mocks"
	"deskhub/shared/constant"
	gDto "deskhub/shared/dto"
	"deskhub/shared/failure"
	gModel "deskhub/shared/model"
	"deskhub/shared/timezone"
)

type officeServiceMocks struct {
	repo        *officeMocks.MockOffice
	tagRepo     *tagMocks.MockTag
	imageRepo   *imageMocks.MockImage
	reservation *reservationMocks.MockReservation
	userRepo    *userMocks.MockUser
	notifier    *notificationMocks.MockNotification
	tx          *pgMocks.MockTxRunner
	cache       *cacheMocks.MockRedisCache
	s3          *s3Mocks.MockS3
}

func newOfficeService(ctrl *gomock.Controller) (service.Office, officeServiceMocks) {
	m := officeServiceMocks{
		repo:        officeMocks.NewMockOffice(ctrl),
		tagRepo:     tagMocks.NewMockTag(ctrl),
		imageRepo:   imageMocks.NewMockImage(ctrl),
		reservation: reservationMocks.NewMockReservation(ctrl),
		userRepo:    userMocks.NewMockUser(ctrl),
		notifier:    notificationMocks.NewMockNotification(ctrl),
		tx:          pgMocks.NewMockTxRunner(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		s3:          s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "test-bucket"

	svc := service.New(m.repo, m.tagRepo, m.imageRepo, m.reservation, m.userRepo, m.notifier, m.tx, cfg, m.cache, mocks.NewOtel(), m.s3)

	return svc, m
}

func authContext(userID string, scopes ...string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyScopes, scopes)
}

func testOffice(id, userID string) model.Office {
	return model.Office{
		ID:             id,
		UserID:         userID,
		Title:          "Downtown Loft",
		Description:    "Bright open workspace",
		AddressLine1:   "1 Main St",
		Lat:            39.74,
		Lng:            -8.80,
		PricePerDay:    10000,
		ApprovalStatus: model.ApprovalStatusApproved,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

func expectRelations(m officeServiceMocks, offices ...model.Office) {
	m.tagRepo.EXPECT().
		GetByOffices(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	m.imageRepo.EXPECT().
		GetAllByOffices(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	owners := map[string]userModel.User{}
	for _, office := range offices {
		owners[office.UserID] = userModel.User{ID: office.UserID, Name: "Owner"}
	}

	m.userRepo.EXPECT().
		GetByIDs(gomock.Any(), gomock.Any()).
		Return(owners, nil)

	m.reservation.EXPECT().
		CountActiveByOffices(gomock.Any(), gomock.Any()).
		Return(map[string]int{}, nil)
}

func runInTx(m officeServiceMocks) {
	m.tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func TestOfficeService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOfficeService(ctrl)

	params := gDto.QueryParams{Page: 1, Limit: constant.OfficePageSize}

	tests := []struct {
		name      string
		ctx       context.Context
		query     dto.ListOfficesQuery
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name:  "cache hit",
			ctx:   context.Background(),
			query: dto.ListOfficesQuery{},
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:  "cache miss, successful listing",
			ctx:   context.Background(),
			query: dto.ListOfficesQuery{},
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					CountList(gomock.Any(), gomock.Any(), true).
					Return(2, nil)

				m.repo.EXPECT().
					List(gomock.Any(), gomock.Any(), gomock.Any(), true).
					Return([]model.Office{
						testOffice("office-1", "owner-1"),
						testOffice("office-2", "owner-2"),
					}, nil)

				expectRelations(m, testOffice("office-1", "owner-1"), testOffice("office-2", "owner-2"))

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 2,
		},
		{
			name:  "owner browsing own listings sees hidden ones",
			ctx:   authContext("owner-1"),
			query: dto.ListOfficesQuery{UserID: "owner-1"},
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					CountList(gomock.Any(), gomock.Any(), false).
					Return(1, nil)

				m.repo.EXPECT().
					List(gomock.Any(), gomock.Any(), gomock.Any(), false).
					Return([]model.Office{testOffice("office-1", "owner-1")}, nil)

				expectRelations(m, testOffice("office-1", "owner-1"))

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name:  "stranger filtering by user stays public",
			ctx:   authContext("visitor-9"),
			query: dto.ListOfficesQuery{UserID: "owner-1"},
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					CountList(gomock.Any(), gomock.Any(), true).
					Return(0, nil)

				m.repo.EXPECT().
					List(gomock.Any(), gomock.Any(), gomock.Any(), true).
					Return(nil, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:  "count error",
			ctx:   context.Background(),
			query: dto.ListOfficesQuery{},
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					CountList(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.List(tt.ctx, params, tt.query)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantTotal > 0 {
					assert.Equal(t, tt.wantTotal, result.Meta.Total)
					assert.Len(t, result.Offices, tt.wantTotal)
				}
			}
		})
	}
}

func TestOfficeService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOfficeService(ctrl)

	hidden := testOffice("office-1", "owner-1")
	hidden.Hidden = true

	pending := testOffice("office-2", "owner-1")
	pending.ApprovalStatus = model.ApprovalStatusPending

	tests := []struct {
		name      string
		ctx       context.Context
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantID    string
	}{
		{
			name: "office not found",
			ctx:  context.Background(),
			id:   "missing-id",
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "missing-id").
					Return(model.Office{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "hidden office is invisible to strangers",
			ctx:  authContext("visitor-9"),
			id:   "office-1",
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(hidden, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "pending office is invisible to guests",
			ctx:  context.Background(),
			id:   "office-2",
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-2").
					Return(pending, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "owner sees own hidden office, uncached",
			ctx:  authContext("owner-1"),
			id:   "office-1",
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(hidden, nil)

				expectRelations(m, hidden)
			},
			wantErr: false,
			wantID:  "office-1",
		},
		{
			name: "public office cache hit",
			ctx:  context.Background(),
			id:   "office-3",
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-3").
					Return(testOffice("office-3", "owner-1"), nil)

				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "public office cache miss",
			ctx:  context.Background(),
			id:   "office-3",
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-3").
					Return(testOffice("office-3", "owner-1"), nil)

				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				expectRelations(m, testOffice("office-3", "owner-1"))

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "office-3",
		},
		{
			name: "repository error",
			ctx:  context.Background(),
			id:   "office-1",
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(model.Office{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(tt.ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestOfficeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOfficeService(ctrl)

	lat, lng, price := 39.74, -8.80, 10000
	req := dto.CreateOfficeRequest{
		Title:        "Downtown Loft",
		Description:  "Bright open workspace",
		AddressLine1: "1 Main St",
		Lat:          &lat,
		Lng:          &lng,
		PricePerDay:  &price,
		Tags:         []int64{1, 2},
	}

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreateOfficeRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "missing scope",
			ctx:       authContext("user-1"),
			req:       req,
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusForbidden,
		},
		{
			name: "unknown tags rejected",
			ctx:  authContext("user-1", constant.ScopeOfficeCreate),
			req:  req,
			setupMock: func() {
				m.tagRepo.EXPECT().
					CountByIDs(gomock.Any(), []int64{1, 2}).
					Return(1, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "successful creation notifies admins",
			ctx:  authContext("user-1", constant.ScopeOfficeCreate),
			req:  req,
			setupMock: func() {
				m.tagRepo.EXPECT().
					CountByIDs(gomock.Any(), []int64{1, 2}).
					Return(2, nil)

				runInTx(m)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, office model.Office) error {
						assert.Equal(t, model.ApprovalStatusPending, office.ApprovalStatus)
						assert.Equal(t, "user-1", office.UserID)

						return nil
					})

				m.tagRepo.EXPECT().
					SyncTx(gomock.Any(), gomock.Any(), gomock.Any(), []int64{1, 2}).
					Return(nil)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.notifier.EXPECT().
					NotifyPendingApproval(gomock.Any(), gomock.Any()).
					Return(nil)

				expectRelations(m, testOffice("", "user-1"))
			},
			wantErr: false,
		},
		{
			name: "insert error",
			ctx:  authContext("user-1", constant.ScopeOfficeCreate),
			req:  req,
			setupMock: func() {
				m.tagRepo.EXPECT().
					CountByIDs(gomock.Any(), []int64{1, 2}).
					Return(2, nil)

				runInTx(m)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Create(tt.ctx, tt.req)

			time.Sleep(50 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOfficeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOfficeService(ctrl)

	office := testOffice("office-1", "owner-1")

	newTitle := "Renamed Loft"
	newPrice := 20000

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.UpdateOfficeRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "missing scope",
			ctx:       authContext("owner-1"),
			req:       dto.UpdateOfficeRequest{Title: &newTitle},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusForbidden,
		},
		{
			name: "office not found",
			ctx:  authContext("owner-1", constant.ScopeOfficeUpdate),
			req:  dto.UpdateOfficeRequest{Title: &newTitle},
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(model.Office{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "only the owner may update",
			ctx:  authContext("intruder-1", constant.ScopeOfficeUpdate),
			req:  dto.UpdateOfficeRequest{Title: &newTitle},
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(office, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "title change keeps approval and stays quiet",
			ctx:  authContext("owner-1", constant.ScopeOfficeUpdate),
			req:  dto.UpdateOfficeRequest{Title: &newTitle},
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(office, nil)

				runInTx(m)

				m.repo.EXPECT().
					UpdateByIDTx(gomock.Any(), gomock.Any(), "office-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ string, changes map[string]any) error {
						assert.Equal(t, newTitle, changes[model.FieldTitle])
						assert.NotContains(t, changes, model.FieldApprovalStatus)

						return nil
					})

				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(office, nil)

				expectRelations(m, office)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "price change resets approval and notifies",
			ctx:  authContext("owner-1", constant.ScopeOfficeUpdate),
			req:  dto.UpdateOfficeRequest{PricePerDay: &newPrice},
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(office, nil)

				runInTx(m)

				m.repo.EXPECT().
					UpdateByIDTx(gomock.Any(), gomock.Any(), "office-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ string, changes map[string]any) error {
						assert.Equal(t, model.ApprovalStatusPending, changes[model.FieldApprovalStatus])

						return nil
					})

				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(office, nil)

				expectRelations(m, office)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.notifier.EXPECT().
					NotifyPendingApproval(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "tag replacement runs in the same transaction",
			ctx:  authContext("owner-1", constant.ScopeOfficeUpdate),
			req:  dto.UpdateOfficeRequest{Tags: []int64{3}},
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(office, nil)

				m.tagRepo.EXPECT().
					CountByIDs(gomock.Any(), []int64{3}).
					Return(1, nil)

				runInTx(m)

				m.repo.EXPECT().
					UpdateByIDTx(gomock.Any(), gomock.Any(), "office-1", gomock.Any()).
					Return(nil)

				m.tagRepo.EXPECT().
					SyncTx(gomock.Any(), gomock.Any(), "office-1", []int64{3}).
					Return(nil)

				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(office, nil)

				expectRelations(m, office)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "update error",
			ctx:  authContext("owner-1", constant.ScopeOfficeUpdate),
			req:  dto.UpdateOfficeRequest{Title: &newTitle},
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(office, nil)

				runInTx(m)

				m.repo.EXPECT().
					UpdateByIDTx(gomock.Any(), gomock.Any(), "office-1", gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Update(tt.ctx, "office-1", tt.req)

			time.Sleep(50 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOfficeService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOfficeService(ctrl)

	office := testOffice("office-1", "owner-1")

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "missing scope",
			ctx:       authContext("owner-1"),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusForbidden,
		},
		{
			name: "office not found",
			ctx:  authContext("owner-1", constant.ScopeOfficeDelete),
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(model.Office{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "only the owner may delete",
			ctx:  authContext("intruder-1", constant.ScopeOfficeDelete),
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(office, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "blocked by an active reservation",
			ctx:  authContext("owner-1", constant.ScopeOfficeDelete),
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(office, nil)

				m.reservation.EXPECT().
					ExistActiveByOffice(gomock.Any(), "office-1").
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "successful deletion removes stored images",
			ctx:  authContext("owner-1", constant.ScopeOfficeDelete),
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(office, nil)

				m.reservation.EXPECT().
					ExistActiveByOffice(gomock.Any(), "office-1").
					Return(false, nil)

				m.imageRepo.EXPECT().
					GetAllByOffices(gomock.Any(), []string{"office-1"}).
					Return(map[string][]imgModel.Image{"office-1": nil}, nil)

				m.repo.EXPECT().
					DeleteByID(gomock.Any(), "office-1").
					Return(nil)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "delete error",
			ctx:  authContext("owner-1", constant.ScopeOfficeDelete),
			setupMock: func() {
				m.repo.EXPECT().
					GetByID(gomock.Any(), "office-1").
					Return(office, nil)

				m.reservation.EXPECT().
					ExistActiveByOffice(gomock.Any(), "office-1").
					Return(false, nil)

				m.imageRepo.EXPECT().
					GetAllByOffices(gomock.Any(), []string{"office-1"}).
					Return(nil, nil)

				m.repo.EXPECT().
					DeleteByID(gomock.Any(), "office-1").
					Return(errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(tt.ctx, "office-1")

			time.Sleep(50 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
