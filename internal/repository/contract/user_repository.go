package contract

import (
	"context"

	"ichibetsu-be/internal/entity"
	"ichibetsu-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// GetOrCreateBySessionId resolves a session to its durable user row,
	// creating it if absent. The insert races through the unique index on
	// session_id (ON CONFLICT DO NOTHING), so concurrent calls with the same
	// session never produce duplicate rows.
	GetOrCreateBySessionId(ctx context.Context, sessionId string) (*entity.User, error)
}
