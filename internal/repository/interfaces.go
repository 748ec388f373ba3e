package repository

import (
	"context"

	"github.com/alexanderramin/ganttviz/internal/domain"
)

type RunRepo interface {
	Create(ctx context.Context, r *domain.Run) error
	GetByID(ctx context.Context, id string) (*domain.Run, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Run, error)
	Delete(ctx context.Context, id string) error
}
