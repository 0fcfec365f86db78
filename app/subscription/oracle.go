package subscription

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avelichko/linksense/app/database"
)

const tokenTTL = 24 * time.Hour

// StatusClaims is the payload of a signed subscription-status token the
// extension caches client-side.
type StatusClaims struct {
	UserID             string `json:"userId"`
	SubscriptionStatus string `json:"subscriptionStatus"`
	jwt.RegisteredClaims
}

// Oracle answers subscription-status questions from the synced billing
// records. It never writes; the billing worker owns the table.
type Oracle struct {
	subscriptionRepo database.SubscriptionRepository
	tokenSecret      []byte
}

func NewOracle(subscriptionRepo database.SubscriptionRepository, tokenSecret string) *Oracle {
	return &Oracle{
		subscriptionRepo: subscriptionRepo,
		tokenSecret:      []byte(tokenSecret),
	}
}

// IsSubscribed reports whether the user has an active subscription. A
// missing record means "not subscribed", not an error.
func (o *Oracle) IsSubscribed(userID string) (bool, error) {
	status, found, err := o.subscriptionRepo.GetStatus(userID)
	if err != nil {
		return false, fmt.Errorf("failed to look up subscription: %w", err)
	}
	if !found {
		slog.Debug("No subscription record", "user_id", userID)
		return false, nil
	}

	return status == database.SubStatusActive, nil
}

// IssueToken signs a 24h status token embedding the user's current
// subscription state.
func (o *Oracle) IssueToken(userID string) (string, error) {
	subscribed, err := o.IsSubscribed(userID)
	if err != nil {
		return "", err
	}

	status := database.SubStatusInactive
	if subscribed {
		status = database.SubStatusActive
	}

	now := time.Now()
	claims := StatusClaims{
		UserID:             userID,
		SubscriptionStatus: status,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(o.tokenSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign subscription token: %w", err)
	}

	return token, nil
}
