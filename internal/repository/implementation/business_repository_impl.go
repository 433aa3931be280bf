package implementation

import (
	"context"
	"errors"

	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/mapper"
	"ai-ordering-be/internal/model"
	"ai-ordering-be/internal/repository/contract"
	"ai-ordering-be/internal/repository/specification"

	"gorm.io/gorm"
)

type BusinessRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewBusinessRepository(db *gorm.DB) contract.BusinessRepository {
	return &BusinessRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *BusinessRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BusinessRepositoryImpl) Create(ctx context.Context, business *entity.Business) error {
	m := r.mapper.BusinessToModel(business)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*business = *r.mapper.BusinessToEntity(m)
	return nil
}

func (r *BusinessRepositoryImpl) Update(ctx context.Context, business *entity.Business) error {
	m := r.mapper.BusinessToModel(business)
	if err := r.db.WithContext(ctx).Omit("OpeningHours").Save(m).Error; err != nil {
		return err
	}
	*business = *r.mapper.BusinessToEntity(m)
	return nil
}

func (r *BusinessRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Business, error) {
	var m model.Business
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("OpeningHours"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BusinessToEntity(&m), nil
}

func (r *BusinessRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Business, error) {
	var models []*model.Business
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("OpeningHours"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Business, len(models))
	for i, m := range models {
		entities[i] = r.mapper.BusinessToEntity(m)
	}
	return entities, nil
}
