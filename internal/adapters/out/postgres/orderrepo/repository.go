package orderrepo

import (
	"context"
	"errors"
	"time"

	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/core/domain/model/order"
	"chefbook/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Concurrency control is the conditional update: every write after Add matches
// on both id and an expected prior state, and a zero-row result is surfaced as
// ObjectNotFound. Whoever commits first wins; everyone else learns they lost.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateInStatus saves the order only if its stored lifecycle status still
// matches expected. Zero matched rows means a concurrent caller moved the
// order first; that is reported as ObjectNotFound.
func (r *GormOrderRepository) UpdateInStatus(
	ctx context.Context,
	aggregate *order.Order,
	expected order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") forces zero-valued columns (booleans) into the update.
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order in status "+expected.String(), aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateInPaymentStatus saves the order only if its stored payment status
// still matches expected. Same zero-row semantics as UpdateInStatus.
func (r *GormOrderRepository) UpdateInPaymentStatus(
	ctx context.Context,
	aggregate *order.Order,
	expected order.PaymentStatus,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND payment_status = ?", dto.ID, int(expected)).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order in payment status "+expected.String(), aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllPendingForChef retrieves the chef's orders still awaiting a decision,
// oldest first.
func (r *GormOrderRepository) GetAllPendingForChef(
	ctx context.Context,
	chefID kernel.UUID,
) ([]*order.Order, error) {
	if err := chefID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("chef_id = ? AND status = ?", chefID.Bytes(), int(order.Pending)).
		Order("placed_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllOverdueUnnotified retrieves pending orders whose acceptance window
// lapsed before now and whose expiration email has not been requested yet.
func (r *GormOrderRepository) GetAllOverdueUnnotified(
	ctx context.Context,
	now time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND timer_expiry < ? AND expired_email_sent = ?",
			int(order.Pending), now, false).
		Order("timer_expiry").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
