// Package postgres contains the subscription store backed by GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"

	"danyowa/internal/domain/entity"
	domainerrors "danyowa/internal/domain/errors"
	"danyowa/internal/domain/repository"
	"danyowa/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ repository.SubscriptionRepository = (*SubscriptionStore)(nil)

// SubscriptionStore implements the repository.SubscriptionRepository interface.
type SubscriptionStore struct {
	db          *gorm.DB
	logger      *slog.Logger
	stopMonitor context.CancelFunc
}

// NewSubscriptionStore is the constructor for SubscriptionStore.
func NewSubscriptionStore(db *gorm.DB, logger *slog.Logger) *SubscriptionStore {
	return &SubscriptionStore{
		db:     db,
		logger: logger,
	}
}

// ListSubscriptions returns every stored record ordered by user id.
func (repo *SubscriptionStore) ListSubscriptions(ctx context.Context) ([]*entity.SubscriptionRecord, error) {
	var recordModels []*model.SubscriptionRecordModel

	if err := repo.db.WithContext(ctx).
		Order("user_id ASC").
		Find(&recordModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list subscriptions")
	}

	records := make([]*entity.SubscriptionRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toRecordDomain(recordM))
	}

	return records, nil
}

// SaveSubscription creates or replaces the record of record.UserID.
func (repo *SubscriptionStore) SaveSubscription(ctx context.Context, record *entity.SubscriptionRecord) error {
	recordM := fromRecordDomain(record)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"subscription", "children", "schedules", "briefing_settings", "updated_at"}),
		}).
		Create(recordM).Error; err != nil {
		if isRejectedRecord(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("subscription record rejected by store")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save subscription")
	}

	return nil
}

// FindSubscription retrieves the record of a user.
func (repo *SubscriptionStore) FindSubscription(ctx context.Context, userID string) (*entity.SubscriptionRecord, error) {
	var recordM model.SubscriptionRecordModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by user")
	}

	return toRecordDomain(&recordM), nil
}

// DeleteSubscription removes the record of a user.
func (repo *SubscriptionStore) DeleteSubscription(ctx context.Context, userID string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.SubscriptionRecordModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// DeleteSubscriptionIfEndpoint removes the record of a user while its subscription still holds endpoint.
// The comparison runs in the DELETE itself, so a concurrent re-subscribe is never removed.
func (repo *SubscriptionStore) DeleteSubscriptionIfEndpoint(ctx context.Context, userID, endpoint string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND subscription->>'endpoint' = ?", userID, endpoint).
		Delete(&model.SubscriptionRecordModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete expired subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// SQLSTATE codes for a row the table itself refuses.
const (
	sqlStateNotNullViolation = "23502"
	sqlStateCheckViolation   = "23514"
	sqlStateInvalidJSON      = "22P02"
)

// isRejectedRecord reports whether a write failed because of the record's content
// rather than the connection or the server.
func isRejectedRecord(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case sqlStateNotNullViolation, sqlStateCheckViolation, sqlStateInvalidJSON:
		return true
	default:
		return false
	}
}

// --- Mapper Functions ---

// toRecordDomain converts a GORM SubscriptionRecordModel to a domain SubscriptionRecord entity.
func toRecordDomain(data *model.SubscriptionRecordModel) *entity.SubscriptionRecord {
	if data == nil {
		return nil
	}

	return &entity.SubscriptionRecord{
		UserID:           data.UserID,
		Subscription:     data.Subscription,
		Children:         data.Children,
		Schedules:        data.Schedules,
		BriefingSettings: data.BriefingSettings,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromRecordDomain converts a domain SubscriptionRecord entity to a GORM SubscriptionRecordModel.
func fromRecordDomain(data *entity.SubscriptionRecord) *model.SubscriptionRecordModel {
	if data == nil {
		return nil
	}

	children := data.Children
	if children == nil {
		children = []entity.Child{}
	}
	schedules := data.Schedules
	if schedules == nil {
		schedules = []entity.ScheduleEntry{}
	}

	return &model.SubscriptionRecordModel{
		UserID:           data.UserID,
		Subscription:     data.Subscription,
		Children:         children,
		Schedules:        schedules,
		BriefingSettings: data.BriefingSettings,
		UpdatedAt:        data.UpdatedAt,
	}
}
