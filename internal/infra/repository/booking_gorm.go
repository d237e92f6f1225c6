package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/vinchivii/book-savvy-studio/internal/domain/scheduling"
	"github.com/vinchivii/book-savvy-studio/internal/httperr"
	"github.com/vinchivii/book-savvy-studio/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

const occupyingFilter = "status IN ('pending', 'confirmed') AND payment_status <> 'refunded'"

// --------------------------------------------------
// Creator
// --------------------------------------------------

func (r *BookingGormRepository) GetCreatorByID(
	ctx context.Context,
	id uint,
) (*models.Creator, error) {

	var creator models.Creator
	if err := r.db.WithContext(ctx).First(&creator, id).Error; err != nil {
		return nil, err
	}
	return &creator, nil
}

func (r *BookingGormRepository) GetCreatorBySlug(
	ctx context.Context,
	slug string,
) (*models.Creator, error) {

	var creator models.Creator
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&creator).Error; err != nil {
		return nil, err
	}
	return &creator, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveService(
	ctx context.Context,
	creatorID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND creator_id = ? AND active = true", serviceID, creatorID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveRules(
	ctx context.Context,
	creatorID uint,
	weekday int,
) ([]models.AvailabilityRule, error) {

	var rules []models.AvailabilityRule
	if err := r.db.WithContext(ctx).
		Where("creator_id = ? AND weekday = ? AND active = true", creatorID, weekday).
		Order("start_time ASC").
		Find(&rules).Error; err != nil {
		return nil, err
	}

	return rules, nil
}

func (r *BookingGormRepository) ListTimeOff(
	ctx context.Context,
	creatorID uint,
	start time.Time,
	end time.Time,
) ([]models.TimeOff, error) {

	var periods []models.TimeOff
	if err := r.db.WithContext(ctx).
		Where(
			"creator_id = ? AND start_time < ? AND end_time > ?",
			creatorID, end, start,
		).
		Order("start_time ASC").
		Find(&periods).Error; err != nil {
		return nil, err
	}

	return periods, nil
}

func (r *BookingGormRepository) ListOccupyingBookings(
	ctx context.Context,
	creatorID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "status", "payment_status").
		Where("creator_id = ?", creatorID).
		Where(occupyingFilter).
		Where("start_time < ? AND end_time > ?", end, start).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	creatorID uint,
	name string,
	email string,
	phone string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("creator_id = ? AND email = ?", creatorID, email).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		CreatorID: creatorID,
		Name:      name,
		Email:     email,
		Phone:     phone,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

// CreateBookingGuarded serializes the conflict re-check and the insert.
// The transaction takes a Postgres advisory lock keyed on the creator and
// the start minute, so two requests racing for the same slot queue behind
// each other and the loser sees the winner's row.
func (r *BookingGormRepository) CreateBookingGuarded(
	ctx context.Context,
	b *models.Booking,
	buffer time.Duration,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?, ?)",
			int32(b.CreatorID),
			int32(b.StartTime.Unix()/60),
		).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Where("creator_id = ?", b.CreatorID).
			Where(occupyingFilter).
			Where(
				"start_time < ? AND end_time > ?",
				b.EndTime,
				b.StartTime.Add(-buffer),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeTimeConflict)
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForCreator(
	ctx context.Context,
	bookingID uint,
	creatorID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND creator_id = ?", bookingID, creatorID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) GetBookingByPaymentRef(
	ctx context.Context,
	ref string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("payment_ref = ?", ref).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	creatorID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"creator_id = ? AND start_time >= ? AND start_time < ?",
			creatorID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
