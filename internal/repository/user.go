package repository

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/model"
	ctxutil "github.com/Aaron-Ontoyin/enerlytics-backend/pkg/context"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/logger"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/query"
)

type UserRepository struct {
	db     *gorm.DB
	fields query.FieldSet
}

// Text fields the search term expands over.
var userSearchFields = []string{"email", "first_name", "last_name"}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
		fields: query.NewFieldSet(
			"id", "email", "first_name", "last_name", "other_names",
			"phone", "type", "created_at", "updated_at",
		),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Create")

	start := time.Now()
	result := r.db.WithContext(ctx).Create(user)
	duration := time.Since(start)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to create user").
			String("email", user.Email).
			Duration(duration).
			Err(result.Error).
			Log()
		return result.Error
	}

	logger.InfoWithContext(ctx, "User created successfully").
		String("email", user.Email).
		String("user_id", user.ID.String()).
		Duration(duration).
		Log()

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetByID")

	var user model.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&user)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to get user by ID").
			String("user_id", id.String()).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetByEmail")

	logger.DebugWithContext(ctx, "Getting user by email").
		String("email", email).
		Log()

	var user model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

// List returns one filtered, searched, paginated page of users.
func (r *UserRepository) List(ctx context.Context, params url.Values, page query.PageParams) (*query.PaginatedResponse[model.User], error) {
	ctx = ctxutil.WithScope(ctx, "repository", "List")

	start := time.Now()
	result, err := listResource[model.User](ctx, r.db, params, r.fields, userSearchFields, page)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list users").
			Duration(time.Since(start)).
			Err(err).
			Log()
		return nil, err
	}

	logger.DebugWithContext(ctx, "Users listed successfully").
		Int64("total", result.Total).
		Int("returned_count", len(result.Items)).
		Duration(time.Since(start)).
		Log()

	return result, nil
}
