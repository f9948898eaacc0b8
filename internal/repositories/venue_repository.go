package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"roamio/internal/models/db_models"
)

type VenueRepository interface {
	SearchVenuesByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Venue, error)
	ListVenuesByDestination(ctx context.Context, destination string, limit int) ([]db_models.Venue, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

// SearchVenuesByVector returns venues whose embeddings sit above a 70%
// cosine similarity against the query vector, nearest first.
func (v *venueRepository) SearchVenuesByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Venue, error) {
	var ids []string
	query := `
        SELECT venue_id
        FROM venue_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $2
    `
	if err := v.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var venues []db_models.Venue
	if err := v.db.WithContext(ctx).Where("id IN ?", ids).Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (v *venueRepository) ListVenuesByDestination(ctx context.Context, destination string, limit int) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	err := v.db.WithContext(ctx).
		Where("LOWER(destination) = LOWER(?)", destination).
		Limit(limit).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}
