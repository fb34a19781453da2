package repository

import (
	"context"

	"janaseva/internal/domain/entity"
)

// ProduceFilter narrows produce listings. Zero values mean "no filter".
type ProduceFilter struct {
	Category      string
	District      string
	State         string
	OrganicOnly   bool
	AvailableOnly bool
}

type ProducePostRepository interface {
	Create(ctx context.Context, post *entity.ProducePost) error
	GetByID(ctx context.Context, id string) (*entity.ProducePost, error)
	List(ctx context.Context, filter ProduceFilter, limit, offset int) ([]*entity.ProducePost, int64, error)
	ListByFarmer(ctx context.Context, farmerID string) ([]*entity.ProducePost, error)
	Update(ctx context.Context, post *entity.ProducePost) error
	IncrementViews(ctx context.Context, id string) error
}
