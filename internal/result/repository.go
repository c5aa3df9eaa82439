package result

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(r *Result) error
	GetByID(id uuid.UUID) (*Result, error)
	ListByUser(userID uuid.UUID) ([]*Result, error)
	ListBySeriesCreator(creatorID uuid.UUID) ([]*Result, error)
	Delete(id uuid.UUID) error
}

type resultRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(res *Result) error {
	return r.db.Create(res).Error
}

func (r *resultRepository) GetByID(id uuid.UUID) (*Result, error) {
	var res Result
	if err := r.db.First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *resultRepository) ListByUser(userID uuid.UUID) ([]*Result, error) {
	var list []*Result
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListBySeriesCreator returns results of every series created by creatorID.
// Results whose series was deleted drop out of the join.
func (r *resultRepository) ListBySeriesCreator(creatorID uuid.UUID) ([]*Result, error) {
	var list []*Result
	if err := r.db.
		Select("results.*").
		Joins("JOIN series ON series.id = results.series_id").
		Where("series.creator_id = ?", creatorID).
		Order("results.created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *resultRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Result{}, "id = ?", id).Error
}
