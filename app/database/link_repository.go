package database

import (
	"fmt"

	"github.com/google/uuid"
)

var _ LinkRepository = (*linkRepository)(nil)

type linkRepository struct {
	db *DB
}

func NewLinkRepository(db *DB) LinkRepository {
	return &linkRepository{db: db}
}

// SaveLink inserts a new link row and returns its ID. Links are immutable
// once saved; repeated submissions of the same URL create separate rows.
func (r *linkRepository) SaveLink(link Link) (string, error) {
	id := link.ID
	if id == "" {
		id = uuid.NewString()
	}

	var insertedID string
	err := r.db.QueryRow(`
		INSERT INTO links (id, url, title, site_name, user_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, id, link.URL, link.Title, link.SiteName, link.UserID, link.CategoryID).Scan(&insertedID)

	if err != nil {
		return "", fmt.Errorf("failed to insert link: %w", err)
	}

	return insertedID, nil
}
