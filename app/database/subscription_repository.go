package database

import (
	"database/sql"
	"fmt"
)

var _ SubscriptionRepository = (*subscriptionRepository)(nil)

type subscriptionRepository struct {
	db *DB
}

func NewSubscriptionRepository(db *DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetStatus(userID string) (string, bool, error) {
	var status string
	err := r.db.QueryRow(`
		SELECT current_sub_status
		FROM stripe_customers
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`, userID).Scan(&status)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get subscription status: %w", err)
	}

	return status, true, nil
}
