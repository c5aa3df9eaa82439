package series

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SeriesRepository interface {
	Create(s *Series) error
	GetByID(id uuid.UUID) (*Series, error)
	GetByIDs(ids []uuid.UUID) (map[uuid.UUID]*Series, error)
	List() ([]*Series, error)
	Update(s *Series) error
	Delete(id uuid.UUID) error

	AddQuestion(q *Question) error
	UpdateQuestion(q *Question) error
	DeleteQuestion(id uuid.UUID) error
}

type seriesRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) SeriesRepository {
	return &seriesRepository{db: db}
}

func orderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC")
}

func (r *seriesRepository) Create(s *Series) error {
	return r.db.Create(s).Error
}

func (r *seriesRepository) GetByID(id uuid.UUID) (*Series, error) {
	var s Series
	if err := r.db.Preload("Questions", orderedQuestions).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// GetByIDs loads series without their questions. Missing ids are absent from the map.
func (r *seriesRepository) GetByIDs(ids []uuid.UUID) (map[uuid.UUID]*Series, error) {
	out := make(map[uuid.UUID]*Series, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var list []*Series
	if err := r.db.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	for _, s := range list {
		out[s.ID] = s
	}
	return out, nil
}

func (r *seriesRepository) List() ([]*Series, error) {
	var list []*Series
	if err := r.db.
		Preload("Questions", orderedQuestions).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *seriesRepository) Update(s *Series) error {
	return r.db.Model(s).
		Select("*").
		Omit("ID", "CreatorID", "CreatedAt", "Questions").
		Updates(s).Error
}

func (r *seriesRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("series_id = ?", id).Delete(&Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Series{}, "id = ?", id).Error
	})
}

func (r *seriesRepository) AddQuestion(q *Question) error {
	return r.db.Create(q).Error
}

func (r *seriesRepository) UpdateQuestion(q *Question) error {
	return r.db.Model(q).
		Select("Text", "Options", "Answer", "Image").
		Updates(q).Error
}

func (r *seriesRepository) DeleteQuestion(id uuid.UUID) error {
	return r.db.Delete(&Question{}, "id = ?", id).Error
}
