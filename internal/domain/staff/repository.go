package staff

import "context"

type Repository interface {
	Save(ctx context.Context, s *Staff) error
	Update(ctx context.Context, s *Staff) error
	Delete(ctx context.Context, staffID uint) error
	FindByID(ctx context.Context, staffID uint) (*Staff, error)
	FindByUserID(ctx context.Context, userID uint) (*Staff, error)
	List(ctx context.Context, filter Filter) ([]*Staff, int64, error)
}

type Filter struct {
	PropertyID *uint
	Active     *bool
	Page       int
	Limit      int
}
