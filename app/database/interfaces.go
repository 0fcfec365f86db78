package database

type CategoryRepository interface {
	// GetByNameAndUser returns nil (not an error) when no category with that
	// name exists for the user.
	GetByNameAndUser(name, userID string) (*Category, error)
	GetNamesByUser(userID string) ([]string, error)
}

type LinkRepository interface {
	SaveLink(link Link) (string, error)
}

type SubscriptionRepository interface {
	// GetStatus reports the current billing status for a user. found is false
	// when no record exists, which callers treat as "not subscribed".
	GetStatus(userID string) (status string, found bool, err error)
}
