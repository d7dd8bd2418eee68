package services

import (
	"offerhub/internal/models"
	"offerhub/internal/repositories"
	"offerhub/internal/validation"
)

// OfferService handles business logic related to offers.
type OfferService struct {
	offerRepo repositories.OfferRepository
	userRepo  repositories.UserRepository
	publisher EventPublisher
}

// NewOfferService creates a new OfferService. publisher may be nil.
func NewOfferService(offerRepo repositories.OfferRepository, userRepo repositories.UserRepository, publisher EventPublisher) *OfferService {
	return &OfferService{
		offerRepo: offerRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// GetAllOffers retrieves offers matching query and the total before pagination.
func (s *OfferService) GetAllOffers(query models.ListQuery) ([]models.Offer, int64, error) {
	return s.offerRepo.GetAll(query)
}

// GetOfferByID retrieves a single offer with its users.
func (s *OfferService) GetOfferByID(id string) (*models.Offer, error) {
	return s.offerRepo.GetByID(id)
}

// CreateOffer stores the offer and attaches it to userIDs.
func (s *OfferService) CreateOffer(offer *models.Offer, userIDs []string) error {
	ids, err := s.existingUsers(userIDs)
	if err != nil {
		return err
	}
	if err := s.offerRepo.Create(offer, ids); err != nil {
		return err
	}
	publish(s.publisher, EventOfferCreated, offer.ID, map[string]interface{}{"users": ids})
	return nil
}

// UpdateOffer replaces name and status and makes userIDs the exact user set.
func (s *OfferService) UpdateOffer(id string, changes *models.Offer, userIDs []string) (*models.Offer, error) {
	ids, err := s.existingUsers(userIDs)
	if err != nil {
		return nil, err
	}
	offer := &models.Offer{ID: id, Name: changes.Name, Status: changes.Status}
	if err := s.offerRepo.Update(offer, ids); err != nil {
		return nil, err
	}
	publish(s.publisher, EventOfferUpdated, offer.ID, map[string]interface{}{"users": ids})
	return offer, nil
}

// DeleteOffer removes an offer and its user links.
func (s *OfferService) DeleteOffer(id string) error {
	if err := s.offerRepo.Delete(id); err != nil {
		return err
	}
	publish(s.publisher, EventOfferDeleted, id, nil)
	return nil
}

// existingUsers deduplicates ids and checks every one belongs to a user.
func (s *OfferService) existingUsers(userIDs []string) ([]string, error) {
	ids := uniqueIDs(userIDs)
	if len(ids) == 0 {
		return nil, validation.Single("users", "The users field is required.")
	}
	count, err := s.userRepo.CountByIDs(ids)
	if err != nil {
		return nil, err
	}
	if count != int64(len(ids)) {
		return nil, validation.Single("users", msgUsersInvalid)
	}
	return ids, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
