package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"deskhub/config"
	"deskhub/infras/kafka"
	kafkaMocks "deskhub/infras/kafka/mocks"
	"deskhub/infras/otel/mocks"
	"deskhub/internal/domains/notification/service"
	userMocks "deskhub/internal/domains/user/mocks"
	userModel "deskhub/internal/domains/user/model"
)

func TestNotificationService_NotifyPendingApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.Topics.OfficePendingApproval = "office.pending-approval"

	svc := service.New(mockUserRepo, mockKafka, cfg, mockOtel)

	pending := service.PendingOffice{
		OfficeID: "office-1",
		Title:    "Downtown Loft",
		OwnerID:  "owner-1",
		Event:    service.EventCreated,
	}

	admins := []userModel.User{
		{ID: "admin-1", Name: "Admin One", IsAdmin: true},
		{ID: "admin-2", Name: "Admin Two", IsAdmin: true},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "one message per administrator",
			setupMock: func() {
				mockUserRepo.EXPECT().
					GetAdmins(gomock.Any()).
					Return(admins, nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "office.pending-approval", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
						assert.Len(t, messages, 2)
						assert.Equal(t, "admin-1", messages[0].Key)
						assert.Equal(t, "admin-2", messages[1].Key)

						// The wire payload must come out of the wrapper as a
						// JSON object, not a re-encoded byte string.
						kafkaMsg, err := messages[0].ToKafkaMessage()
						assert.NoError(t, err)

						var payload map[string]any
						assert.NoError(t, json.Unmarshal(kafkaMsg.Value, &payload))
						assert.Equal(t, "office-1", payload["office_id"])
						assert.Equal(t, "admin-1", payload["admin_id"])
						assert.Equal(t, service.EventCreated, payload["event"])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "no administrators is a no-op",
			setupMock: func() {
				mockUserRepo.EXPECT().
					GetAdmins(gomock.Any()).
					Return(nil, nil)
			},
			wantErr: false,
		},
		{
			name: "admin lookup error",
			setupMock: func() {
				mockUserRepo.EXPECT().
					GetAdmins(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "publish error",
			setupMock: func() {
				mockUserRepo.EXPECT().
					GetAdmins(gomock.Any()).
					Return(admins, nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("broker unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.NotifyPendingApproval(context.Background(), pending)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
