package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/progressly/internal/error_values"
	"github.com/limbo/progressly/internal/repository/mocks"
	"github.com/limbo/progressly/internal/service"
	"github.com/limbo/progressly/pkg/entity"
	"github.com/limbo/progressly/pkg/logger"
)

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("owned by user with default color", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockCategoriesRepositoryI(ctrl)
		svc := service.NewCategoriesService(repo, logger.Nop())
		id := uuid.New()
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *entity.Category) (uuid.UUID, error) {
				require.NotNil(t, c.UserID)
				assert.Equal(t, ownerID, *c.UserID)
				assert.Equal(t, "Side project", c.Name)
				assert.Equal(t, "#888888", c.Color)
				return id, nil
			})
		c, err := svc.CreateCategory(ctx, ownerID, &service.CreateCategoryRequest{Name: "  Side project "})
		require.NoError(t, err)
		assert.Equal(t, id, c.ID)
	})
	t.Run("invalid request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.NewCategoriesService(mocks.NewMockCategoriesRepositoryI(ctrl), nil)
		_, err := svc.CreateCategory(ctx, ownerID, &service.CreateCategoryRequest{Name: "   "})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
		_, err = svc.CreateCategory(ctx, ownerID, &service.CreateCategoryRequest{Name: "Music", Color: "blue"})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockCategoriesRepositoryI(ctrl)
		svc := service.NewCategoriesService(repo, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errorvalues.ErrCategoryExists)
		_, err := svc.CreateCategory(ctx, ownerID, &service.CreateCategoryRequest{Name: "Music", Color: "#112233"})
		assert.ErrorIs(t, err, errorvalues.ErrCategoryExists)
	})
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCategoriesRepositoryI(ctrl)
	svc := service.NewCategoriesService(repo, nil)

	own := ownerID
	repo.EXPECT().ListForUser(gomock.Any(), ownerID).Return([]entity.Category{
		{ID: codingID, Name: "Coding", Color: "#4F7CAC"},
		{ID: uuid.New(), UserID: &own, Name: "Music", Color: "#112233"},
	}, nil)
	got, err := svc.ListCategories(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Nil(t, got[0].UserID)

	dbErr := errors.New("connection refused")
	repo.EXPECT().ListForUser(gomock.Any(), ownerID).Return(nil, dbErr)
	_, err = svc.ListCategories(ctx, ownerID)
	assert.ErrorIs(t, err, dbErr)
}
