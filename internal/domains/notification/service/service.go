package service

import (
	"context"
	"fmt"
	"time"

	"deskhub/config"
	"deskhub/infras/kafka"
	"deskhub/infras/otel"
	userRepository "deskhub/internal/domains/user/repository"
	"deskhub/shared/constant"
	"deskhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

// PendingOffice describes an office that just entered the pending approval
// state, either by being created or by a critical field change.
type PendingOffice struct {
	OfficeID string `json:"office_id"`
	Title    string `json:"title"`
	OwnerID  string `json:"owner_id"`
	Event    string `json:"event"`
}

const (
	EventCreated = "created"
	EventUpdated = "updated"
)

type pendingApprovalMessage struct {
	AdminID    string `json:"admin_id"`
	OfficeID   string `json:"office_id"`
	Title      string `json:"title"`
	OwnerID    string `json:"owner_id"`
	Event      string `json:"event"`
	OccurredAt string `json:"occurred_at"`
}

type Notification interface {
	NotifyPendingApproval(ctx context.Context, office PendingOffice) error
}

type serviceImpl struct {
	userRepo userRepository.User
	kafka    kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(userRepo userRepository.User, kafkaClient kafka.Client, cfg *config.Config, otl otel.Otel) Notification {
	return &serviceImpl{
		userRepo: userRepo,
		kafka:    kafkaClient,
		cfg:      cfg,
		otel:     otl,
	}
}

// NotifyPendingApproval publishes one message per administrator on the
// pending-approval topic. Callers run it after commit and treat errors as
// log-only.
func (s *serviceImpl) NotifyPendingApproval(ctx context.Context, office PendingOffice) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelNotifierScopeName, constant.OtelNotifierScopeName+".NotifyPendingApproval")
	defer scope.End()
	defer scope.TraceIfError(err)

	admins, err := s.userRepo.GetAdmins(ctx)
	if err != nil {
		return fmt.Errorf("failed to load administrators: %w", err)
	}

	if len(admins) == 0 {
		log.Warn().Str("officeID", office.OfficeID).Msg("no administrators to notify")

		return nil
	}

	occurredAt := timezone.Format(timezone.Now(), time.RFC3339)

	messages := make([]kafka.Message, 0, len(admins))
	for _, admin := range admins {
		messages = append(messages, kafka.Message{
			Key: admin.ID,
			Value: pendingApprovalMessage{
				AdminID:    admin.ID,
				OfficeID:   office.OfficeID,
				Title:      office.Title,
				OwnerID:    office.OwnerID,
				Event:      office.Event,
				OccurredAt: occurredAt,
			},
		})
	}

	topic := s.cfg.Kafka.Topics.OfficePendingApproval

	err = s.kafka.SendMessages(ctx, topic, messages...)
	if err != nil {
		return fmt.Errorf("failed to publish pending approval messages: %w", err)
	}

	log.Info().
		Str("officeID", office.OfficeID).
		Str("event", office.Event).
		Int("admins", len(admins)).
		Msg("published pending approval notifications")

	return nil
}
