package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"roamio/internal/models/db_models"
)

type ItineraryRepository interface {
	CreateItinerary(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error)
	GetDetailsOfItineraryById(ctx context.Context, itineraryID string) (*db_models.Itinerary, error)
	GetListOfItinerariesByAccountId(ctx context.Context, page, pageSize int, accountID string) ([]db_models.Itinerary, error)
	DeleteItinerary(ctx context.Context, itineraryID string, accountID string) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// CreateItinerary persists the itinerary with all of its days and
// activities in one transaction, so a half-written trip never becomes
// visible.
func (r *itineraryRepository) CreateItinerary(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		days := itinerary.Days
		itinerary.Days = nil
		if err := tx.Create(itinerary).Error; err != nil {
			return err
		}

		for i := range days {
			day := days[i]
			activities := day.Activities
			day.Activities = nil
			day.ItineraryID = itinerary.ID
			if err := tx.Create(&day).Error; err != nil {
				return err
			}
			for j := range activities {
				activities[j].ItineraryDayID = day.ID
			}
			if len(activities) > 0 {
				if err := tx.Create(&activities).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return itinerary.ID, nil
}

func (r *itineraryRepository) GetDetailsOfItineraryById(ctx context.Context, itineraryID string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", itineraryID).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_day_records.day_number ASC")
		}).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_activity_records.position ASC")
		}).
		First(&itinerary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) GetListOfItinerariesByAccountId(ctx context.Context, page, pageSize int, accountID string) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Preload("Days").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) DeleteItinerary(ctx context.Context, itineraryID string, accountID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", itineraryID, accountID).
		Delete(&db_models.Itinerary{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
