package repository

import "context"

// RepositoryFactory hands out repository instances bound to a single
// transaction. Use cases receive one inside TransactionManager.Execute.
type RepositoryFactory interface {
	UserRepo() UserRepository
	RestaurantRepo() RestaurantRepository
	RatingRepo() RatingRepository
}

// TransactionManager runs a unit of application logic within one database
// transaction. The transaction commits when fn returns nil and rolls back
// otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
