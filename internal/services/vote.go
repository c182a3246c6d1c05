package services

import (
	"context"
	"errors"
	"pubfeed/internal/cache"
	"pubfeed/internal/models"

	"gorm.io/gorm"
)

// VoteService maintains the one-vote-per-(user, publication) invariant and
// invalidates the publication's cache entry whenever the visible rating can
// have changed.
type VoteService struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewVoteService(db *gorm.DB, c *cache.Cache) *VoteService {
	return &VoteService{db: db, cache: c}
}

// CreateOrUpdate records a vote. An existing vote by the same user on the
// same publication is overwritten, never duplicated. The value is validated
// at the schema boundary before it reaches this layer.
func (s *VoteService) CreateOrUpdate(ctx context.Context, publicationID, userID uint, value int) (*models.Vote, error) {
	var vote models.Vote
	err := s.db.WithContext(ctx).
		Where("publication_id = ? AND user_id = ?", publicationID, userID).
		First(&vote).Error

	switch {
	case err == nil:
		vote.Value = value
		if err := s.db.WithContext(ctx).Save(&vote).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// First vote: the publication must exist.
		var publication models.Publication
		err := s.db.WithContext(ctx).First(&publication, publicationID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, publicationNotFound(publicationID)
			}
			return nil, err
		}

		vote = models.Vote{
			PublicationID: publicationID,
			UserID:        userID,
			Value:         value,
		}
		if err := s.db.WithContext(ctx).Create(&vote).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	// The vote changes the publication's visible rating, so its cache
	// entry goes, not the vote's.
	s.cache.Drop(ctx, PublicationEntity, publicationID)

	return &vote, nil
}

// Delete removes the caller's vote on a publication. Idempotent: a missing
// vote succeeds silently, and the cache is only touched when a row was
// actually deleted.
func (s *VoteService) Delete(ctx context.Context, publicationID, userID uint) error {
	res := s.db.WithContext(ctx).
		Where("publication_id = ? AND user_id = ?", publicationID, userID).
		Delete(&models.Vote{})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected > 0 {
		s.cache.Drop(ctx, PublicationEntity, publicationID)
	}
	return nil
}

// GetByUserAndPublication returns the user's vote on a publication, or nil.
func (s *VoteService) GetByUserAndPublication(ctx context.Context, publicationID, userID uint) (*models.Vote, error) {
	var vote models.Vote
	err := s.db.WithContext(ctx).
		Where("publication_id = ? AND user_id = ?", publicationID, userID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}
