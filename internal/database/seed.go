package database

import (
	"fmt"

	"offerhub/internal/models"
	"offerhub/internal/repositories"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedOffers        = 5
	seedUsersPerOffer = 3
	seedPassword      = "password"
)

// Seed populates an empty database with demo offers, each attached to a few
// new users. It does nothing when offers already exist.
func Seed(users repositories.UserRepository, offers repositories.OfferRepository) error {
	_, total, err := offers.GetAll(models.ListQuery{PerPage: 1})
	if err != nil {
		return fmt.Errorf("failed to count offers: %w", err)
	}
	if total > 0 {
		log.Info().Int64("offers", total).Msg("Database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	n := 0
	for i := 1; i <= seedOffers; i++ {
		userIDs := make([]string, 0, seedUsersPerOffer)
		for j := 0; j < seedUsersPerOffer; j++ {
			n++
			user := &models.User{
				Name:     fmt.Sprintf("Seed User %d", n),
				Email:    fmt.Sprintf("seed.user%d@offerhub.local", n),
				DNI:      fmt.Sprintf("%08d", 30000000+n),
				DNIType:  "DNI",
				Password: string(hash),
			}
			if err := users.Create(user); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", user.Email, err)
			}
			userIDs = append(userIDs, user.ID)
		}

		status := models.OfferStatusActive
		if i%2 == 0 {
			status = models.OfferStatusInactive
		}
		offer := &models.Offer{Name: fmt.Sprintf("Offer %d", i), Status: status}
		if err := offers.Create(offer, userIDs); err != nil {
			return fmt.Errorf("failed to seed offer %s: %w", offer.Name, err)
		}
		log.Debug().Str("offer_id", offer.ID).Str("name", offer.Name).Msg("Seeded offer")
	}

	log.Info().Int("offers", seedOffers).Int("users", n).Msg("Database seeded")
	return nil
}
