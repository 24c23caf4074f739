package repository

import (
	"github.com/prepforge/testbank/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(result *model.Result) error
	FindByAttemptID(attemptID string) (*model.Result, error)
	FindAllByTestID(testID string) ([]model.Result, error)
	FindAll() ([]model.Result, error)
	DeleteByTestID(testID string) (int64, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindByAttemptID(attemptID string) (*model.Result, error) {
	var result model.Result
	if err := r.db.Where("attempt_id = ?", attemptID).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindAllByTestID(testID string) ([]model.Result, error) {
	var results []model.Result
	if err := r.db.Where("test_id = ?", testID).Order("completed_at desc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) FindAll() ([]model.Result, error) {
	var results []model.Result
	if err := r.db.Order("completed_at desc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteByTestID removes every result referencing the given test id and
// reports how many rows went away. Used by the cascade on test deletion.
func (r *resultRepository) DeleteByTestID(testID string) (int64, error) {
	res := r.db.Where("test_id = ?", testID).Delete(&model.Result{})
	return res.RowsAffected, res.Error
}
