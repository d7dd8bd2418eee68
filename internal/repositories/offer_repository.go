package repositories

import "offerhub/internal/models"

// OfferRepository defines the interface for offer data access. Create and
// Update receive the complete set of user ids the offer must end up with.
type OfferRepository interface {
	GetAll(query models.ListQuery) ([]models.Offer, int64, error)
	GetByID(id string) (*models.Offer, error)
	Create(offer *models.Offer, userIDs []string) error
	Update(offer *models.Offer, userIDs []string) error
	Delete(id string) error
}
