package user

import "context"

type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, userID uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
