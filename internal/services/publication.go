package services

import (
	"context"
	"encoding/json"
	"errors"
	"pubfeed/internal/cache"
	"pubfeed/internal/models"

	"gorm.io/gorm"
)

// PublicationEntity names the cache key space for publication payloads.
const PublicationEntity = "Publication"

// DefaultPageSize is used when the caller passes no usable limit.
const DefaultPageSize = 10

// PublicationService orchestrates publication CRUD against the database and
// keeps the cache consistent: every mutation drops the publication's cache
// entry after the commit and before the caller gets its response.
type PublicationService struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPublicationService(db *gorm.DB, c *cache.Cache) *PublicationService {
	return &PublicationService{db: db, cache: c}
}

// Create inserts a new publication. Nothing is cached yet, so there is no
// cache interaction.
func (s *PublicationService) Create(ctx context.Context, text string, authorID uint) (*models.Publication, error) {
	publication := models.Publication{
		Text:     text,
		AuthorID: authorID,
	}
	if err := s.db.WithContext(ctx).Create(&publication).Error; err != nil {
		return nil, err
	}

	publication.Votes = []models.Vote{}
	return &publication, nil
}

// Get returns the serialized publication, cache first. On a miss the full
// representation (votes and rating included) is loaded, cached with the
// configured TTL and returned. This is the only read path touching the cache.
func (s *PublicationService) Get(ctx context.Context, id uint) (json.RawMessage, error) {
	if payload, ok := s.cache.Get(ctx, PublicationEntity, id); ok {
		return payload, nil
	}

	var publication models.Publication
	err := s.db.WithContext(ctx).Preload("Votes").First(&publication, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, publicationNotFound(id)
		}
		return nil, err
	}

	if publication.Votes == nil {
		publication.Votes = []models.Vote{}
	}
	publication.ComputeRating()

	payload, err := json.Marshal(&publication)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, PublicationEntity, id, payload)

	return payload, nil
}

// List returns publications ordered by summed vote value, highest first,
// publications without votes last. Ties carry no defined order beyond what
// the store returns. Always hits the database; the cache only serves
// single-publication reads.
//
// Negative skip clamps to 0 and a non-positive limit falls back to
// DefaultPageSize rather than passing through to the store.
func (s *PublicationService) List(ctx context.Context, skip, limit int) ([]models.Publication, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}

	var publications []models.Publication
	err := s.db.WithContext(ctx).
		Model(&models.Publication{}).
		Select("publications.*").
		Joins("LEFT JOIN votes ON votes.publication_id = publications.id").
		Group("publications.id").
		Order("SUM(votes.value) DESC NULLS LAST").
		Offset(skip).
		Limit(limit).
		Preload("Votes").
		Find(&publications).Error
	if err != nil {
		return nil, err
	}

	for i := range publications {
		if publications[i].Votes == nil {
			publications[i].Votes = []models.Vote{}
		}
		publications[i].ComputeRating()
	}
	return publications, nil
}

// Update replaces the text of an existing publication. Only the author may
// update; a missing id is NotFound, never an implicit create.
func (s *PublicationService) Update(ctx context.Context, id uint, text string, requesterID uint) (*models.Publication, error) {
	var publication models.Publication
	err := s.db.WithContext(ctx).First(&publication, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, publicationNotFound(id)
		}
		return nil, err
	}

	if publication.AuthorID != requesterID {
		return nil, ErrForbidden
	}

	publication.Text = text
	if err := s.db.WithContext(ctx).Save(&publication).Error; err != nil {
		return nil, err
	}

	// Invalidate after the commit so the next read never sees the old text.
	s.cache.Drop(ctx, PublicationEntity, id)

	publication.Votes = []models.Vote{}
	return &publication, nil
}

// Delete removes a publication and its votes in one transaction. Owner only.
func (s *PublicationService) Delete(ctx context.Context, id, requesterID uint) error {
	var publication models.Publication
	err := s.db.WithContext(ctx).First(&publication, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return publicationNotFound(id)
		}
		return err
	}

	if publication.AuthorID != requesterID {
		return ErrForbidden
	}

	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Where("publication_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&publication).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return err
	}

	s.cache.Drop(ctx, PublicationEntity, id)
	return nil
}
