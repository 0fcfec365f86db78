package database

import (
	"database/sql"
	"fmt"
)

var _ CategoryRepository = (*categoryRepository)(nil)

type categoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetByNameAndUser(name, userID string) (*Category, error) {
	var category Category
	err := r.db.QueryRow(`
		SELECT id, name, user_id, created_at, updated_at
		FROM categories
		WHERE name = $1 AND user_id = $2
	`, name, userID).Scan(
		&category.ID, &category.Name, &category.UserID,
		&category.CreatedAt, &category.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	return &category, nil
}

func (r *categoryRepository) GetNamesByUser(userID string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT name
		FROM categories
		WHERE user_id = $1
		ORDER BY name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories for user: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return names, nil
}
