package repositories

import (
	"fmt"
	"time"

	"offerhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMOfferRepository is a GORM implementation of OfferRepository.
type GORMOfferRepository struct {
	db *gorm.DB
}

// NewGORMOfferRepository creates a new instance of GORMOfferRepository.
func NewGORMOfferRepository(db *gorm.DB) *GORMOfferRepository {
	return &GORMOfferRepository{
		db: db,
	}
}

func preloadUsers(db *gorm.DB) *gorm.DB {
	return db.Preload("Users", func(db *gorm.DB) *gorm.DB {
		return db.Order("users.created_at, users.id")
	})
}

// GetAll retrieves offers with their users, plus the unpaginated total.
func (r *GORMOfferRepository) GetAll(query models.ListQuery) ([]models.Offer, int64, error) {
	search := searchScope(query.Search, "name")

	var total int64
	if err := r.db.Model(&models.Offer{}).Scopes(search).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count offers: %w", err)
	}

	var offers []models.Offer
	err := r.db.Scopes(search, paginateScope(query), preloadUsers).
		Order("created_at, id").
		Find(&offers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get all offers: %w", err)
	}
	return offers, total, nil
}

// GetByID retrieves a single offer with its users.
func (r *GORMOfferRepository) GetByID(id string) (*models.Offer, error) {
	return r.find(r.db, id)
}

func (r *GORMOfferRepository) find(db *gorm.DB, id string) (*models.Offer, error) {
	var offer models.Offer
	if err := db.Scopes(preloadUsers).First(&offer, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("offer with ID %s: %w", id, translateError(err))
	}
	return &offer, nil
}

// Create inserts the offer and links it to userIDs in one transaction.
func (r *GORMOfferRepository) Create(offer *models.Offer, userIDs []string) error {
	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(offer).Error; err != nil {
			return fmt.Errorf("failed to create offer: %w", translateError(err))
		}
		_, add := diffIDs(nil, userIDs)
		if err := attach(tx, offer.ID, add); err != nil {
			return err
		}
		return r.reload(tx, offer)
	})
}

// Update replaces the offer's name and status and syncs its users to exactly
// userIDs: links missing from userIDs are removed, new ones are added and the
// rest are kept untouched.
func (r *GORMOfferRepository) Update(offer *models.Offer, userIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Offer{}).Where("id = ?", offer.ID).Updates(map[string]interface{}{
			"name":       offer.Name,
			"status":     offer.Status,
			"updated_at": time.Now(),
		})
		if res.Error != nil {
			return fmt.Errorf("failed to update offer: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("offer with ID %s: %w", offer.ID, ErrNotFound)
		}

		var current []string
		if err := tx.Model(&models.OfferUser{}).Where("offer_id = ?", offer.ID).Pluck("user_id", &current).Error; err != nil {
			return fmt.Errorf("failed to load users of offer %s: %w", offer.ID, err)
		}

		remove, add := diffIDs(current, userIDs)
		if len(remove) > 0 {
			err := tx.Where("offer_id = ? AND user_id IN ?", offer.ID, remove).Delete(&models.OfferUser{}).Error
			if err != nil {
				return fmt.Errorf("failed to detach users from offer %s: %w", offer.ID, err)
			}
		}
		if err := attach(tx, offer.ID, add); err != nil {
			return err
		}
		return r.reload(tx, offer)
	})
}

// Delete removes an offer and its user links.
func (r *GORMOfferRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offer_id = ?", id).Delete(&models.OfferUser{}).Error; err != nil {
			return fmt.Errorf("failed to detach users from offer %s: %w", id, err)
		}
		res := tx.Delete(&models.Offer{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete offer: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("offer with ID %s: %w", id, ErrNotFound)
		}
		return nil
	})
}

func attach(tx *gorm.DB, offerID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	links := make([]models.OfferUser, 0, len(userIDs))
	for _, id := range userIDs {
		links = append(links, models.OfferUser{OfferID: offerID, UserID: id})
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("failed to attach users to offer %s: %w", offerID, translateError(err))
	}
	return nil
}

func (r *GORMOfferRepository) reload(tx *gorm.DB, offer *models.Offer) error {
	fresh, err := r.find(tx, offer.ID)
	if err != nil {
		return err
	}
	*offer = *fresh
	return nil
}
