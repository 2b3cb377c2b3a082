package sqlite

import (
	"errors"

	"github.com/fintrackbot/fintrack/internal"
	"github.com/fintrackbot/fintrack/internal/category"
	categoryDatamodel "github.com/fintrackbot/fintrack/internal/core/datamodel/category"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.RepositoryAPI {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListVisible(ownerID *int64, typeFilter string) ([]*categoryDatamodel.Category, error) {
	var categories []*categoryDatamodel.Category

	q := r.db.Model(&categoryDatamodel.Category{})
	if ownerID != nil {
		q = q.Where("user_id IS NULL OR user_id = ?", *ownerID)
	} else {
		q = q.Where("user_id IS NULL")
	}
	if typeFilter != "" {
		q = q.Where("type = ?", typeFilter)
	}

	if err := q.Order("type ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, internal.TranslateDBError(err)
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(id int64) (*categoryDatamodel.Category, error) {
	var cat categoryDatamodel.Category
	err := r.db.Where("id = ?", id).First(&cat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internal.TranslateDBError(err)
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *categoryDatamodel.Category) error {
	if err := r.db.Create(cat).Error; err != nil {
		return internal.TranslateDBError(err)
	}
	return nil
}
