package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/progressly/internal/error_values"
	"github.com/limbo/progressly/internal/repository"
	"github.com/limbo/progressly/pkg/entity"
	"github.com/limbo/progressly/pkg/logger"
)

const defaultCategoryColor = "#888888"

type CategoriesService struct {
	repo repository.CategoriesRepositoryI
	log  *logger.Logger
}

func NewCategoriesService(categoriesRepo repository.CategoriesRepositoryI, lg *logger.Logger) *CategoriesService {
	if categoriesRepo == nil {
		log.Fatal("provided nil categoriesRepo")
	}
	if lg == nil {
		lg = logger.Nop()
	}
	return &CategoriesService{
		repo: categoriesRepo,
		log:  lg.With("service", "CategoriesService"),
	}
}

func (cs *CategoriesService) CreateCategory(ctx context.Context, uid uuid.UUID, req *CreateCategoryRequest) (*entity.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	owner := uid
	category := entity.Category{
		UserID: &owner,
		Name:   req.Name,
		Color:  req.Color,
	}
	if category.Color == "" {
		category.Color = defaultCategoryColor
	}
	id, err := cs.repo.Create(ctx, &category)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCategoryExists) {
			return nil, err
		}
		return nil, fmt.Errorf("categories repository error: %w", err)
	}
	category.ID = id
	cs.log.Debug("category created", "category_id", id.String(), "uid", uid.String())
	return &category, nil
}

func (cs *CategoriesService) ListCategories(ctx context.Context, uid uuid.UUID) ([]entity.Category, error) {
	categories, err := cs.repo.ListForUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("categories repository error: %w", err)
	}
	return categories, nil
}
