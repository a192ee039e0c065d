package implementation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ichibetsu-be/internal/entity"
	"ichibetsu-be/internal/mapper"
	"ichibetsu-be/internal/model"
	"ichibetsu-be/internal/repository/contract"
	"ichibetsu-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.User{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetOrCreateBySessionId is a single conditional upsert, not a read-then-write
// pair: the insert no-ops when another request already created the row, and
// the follow-up read returns whichever row won.
func (r *UserRepositoryImpl) GetOrCreateBySessionId(ctx context.Context, sessionId string) (*entity.User, error) {
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO users (id, session_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (session_id) DO NOTHING
	`, uuid.New(), sessionId, time.Now()).Error
	if err != nil {
		return nil, err
	}

	user, err := r.FindOne(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user upsert for session %q yielded no row", sessionId)
	}
	return user, nil
}
