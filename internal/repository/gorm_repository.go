package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormRepository implements the domain Repository contract for any soft-deletable
// model whose primary key column is id.
type gormRepository[T any] struct{}

func (r *gormRepository[T]) Create(ctx context.Context, db *gorm.DB, entity *T) error {
	return translateError(db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error)
}

func (r *gormRepository[T]) FindByID(ctx context.Context, db *gorm.DB, id uint, relations ...string) (*T, error) {
	var entity T
	err := preload(db.WithContext(ctx), relations).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *gormRepository[T]) FindAll(ctx context.Context, db *gorm.DB, limit, offset int, relations ...string) ([]T, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	entities := make([]T, 0, limit)
	err := preload(db.WithContext(ctx), relations).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&entities).Error
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// Update writes every scalar column of entity. Associations are never saved.
func (r *gormRepository[T]) Update(ctx context.Context, db *gorm.DB, entity *T) error {
	return translateError(db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error)
}

// Delete soft deletes the row and reports how many rows were affected.
func (r *gormRepository[T]) Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	return result.RowsAffected, result.Error
}

func (r *gormRepository[T]) ExistsActive(ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormRepository[T]) IsUnique(ctx context.Context, db *gorm.DB, column string, value any, ignoreID uint) (bool, error) {
	query := db.WithContext(ctx).Model(new(T)).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	if ignoreID != 0 {
		query = query.Where("id <> ?", ignoreID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func preload(db *gorm.DB, relations []string) *gorm.DB {
	for _, relation := range relations {
		db = db.Preload(relation, func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id ASC")
		})
	}
	return db
}
