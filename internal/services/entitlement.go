package services

import (
	"log"
	"time"

	"github.com/pawradius/backend/internal/repositories"
)

// Entitlement is a user's resolved subscription state at one point in time
type Entitlement struct {
	EffectiveTier  string `json:"effective_tier"`
	OverrideActive bool   `json:"override_active"`
}

// EntitlementService resolves a user's effective tier, applying one hop of
// family-plan inheritance and any active add-on credit
type EntitlementService struct {
	userRepository   repositories.UserRepository
	creditRepository repositories.CreditRepository
}

// NewEntitlementService creates a new EntitlementService
func NewEntitlementService(userRepo repositories.UserRepository, creditRepo repositories.CreditRepository) *EntitlementService {
	return &EntitlementService{
		userRepository:   userRepo,
		creditRepository: creditRepo,
	}
}

// Resolve returns the user's entitlement. A family-plan invitee inherits the
// inviter's tier, exactly one hop: the inviter's own family link is ignored.
// Side lookups failing must not block broadcasting, so a failed inviter or
// credit lookup degrades to the user's own tier with no override.
func (s *EntitlementService) Resolve(userID uint) (*Entitlement, error) {
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	tier := user.Tier
	if user.FamilyInviterID != nil {
		inviter, err := s.userRepository.GetUserByID(*user.FamilyInviterID)
		if err != nil {
			log.Printf("Family inviter lookup failed for user %d, keeping own tier: %v", userID, err)
		} else {
			tier = inviter.Tier
		}
	}

	override, err := s.creditRepository.HasActiveCredit(userID, time.Now())
	if err != nil {
		log.Printf("Credit lookup failed for user %d, assuming no override: %v", userID, err)
		override = false
	}

	return &Entitlement{EffectiveTier: tier, OverrideActive: override}, nil
}

// ResolveCaps is a convenience wrapper: entitlement straight to ceilings.
func (s *EntitlementService) ResolveCaps(userID uint) (BroadcastCaps, string, error) {
	ent, err := s.Resolve(userID)
	if err != nil {
		return BroadcastCaps{}, "", err
	}
	return ResolveCaps(ent.EffectiveTier, ent.OverrideActive), ent.EffectiveTier, nil
}
