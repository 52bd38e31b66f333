package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", bookingID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("booking_day ASC, booking_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) UpdateBookingTime(
	ctx context.Context,
	bookingID string,
	day string,
	timeOfDay string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"booking_day":  day,
			"booking_time": timeOfDay,
		}).Error
}

func (r *BookingGormRepository) SetSquareBookingID(
	ctx context.Context,
	bookingID string,
	squareBookingID string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("square_booking_id", squareBookingID).Error
}

// DeleteBooking reports rows affected so a double-tap cancel resolves to
// not-found instead of an error.
func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	bookingID string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("id = ?", bookingID).
		Delete(&models.Booking{})
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Profile
// --------------------------------------------------

func (r *BookingGormRepository) GetProfile(
	ctx context.Context,
	userID string,
) (*models.Profile, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BookingGormRepository) SaveProfile(
	ctx context.Context,
	p *models.Profile,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"square_customer_id"}),
		}).
		Create(p).Error
}
