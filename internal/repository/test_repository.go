package repository

import (
	"github.com/prepforge/testbank/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.Test) error
	CreateInBatch(tests []model.Test) error
	FindAll() ([]model.Test, error)
	FindByTestID(testID string) (*model.Test, error)
	Save(test *model.Test) error
	Delete(test *model.Test) error
	Count() (int64, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	return r.db.Create(test).Error
}

func (r *testRepository) CreateInBatch(tests []model.Test) error {
	return r.db.Create(&tests).Error
}

func (r *testRepository) FindAll() ([]model.Test, error) {
	var tests []model.Test
	if err := r.db.Order("created_at desc").Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *testRepository) FindByTestID(testID string) (*model.Test, error) {
	var test model.Test
	if err := r.db.Where("test_id = ?", testID).First(&test).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) Save(test *model.Test) error {
	return r.db.Save(test).Error
}

func (r *testRepository) Delete(test *model.Test) error {
	return r.db.Delete(test).Error
}

func (r *testRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Test{}).Count(&count).Error
	return count, err
}
