package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/prepforge/testbank/internal/dto"
	"github.com/prepforge/testbank/internal/model"
	"github.com/prepforge/testbank/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type TestService interface {
	ListTests() ([]dto.TestResponseDTO, error)
	GetTest(testID string) (*dto.TestResponseDTO, error)
	CreateTest(req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
	UpdateTest(testID string, req dto.TestUpdateDTO) (*dto.TestResponseDTO, error)
	DeleteTest(testID string) error
	SeedTests(reqs []dto.TestCreateDTO) (string, error)
}

type testService struct {
	testRepo   repository.TestRepository
	resultRepo repository.ResultRepository
}

func NewTestService(testRepo repository.TestRepository, resultRepo repository.ResultRepository) TestService {
	return &testService{testRepo: testRepo, resultRepo: resultRepo}
}

func (s *testService) ListTests() ([]dto.TestResponseDTO, error) {
	tests, err := s.testRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list tests from repository")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}

	resp := make([]dto.TestResponseDTO, 0, len(tests))
	for _, test := range tests {
		var item dto.TestResponseDTO
		if err := copier.Copy(&item, &test); err != nil {
			return nil, fmt.Errorf("error preparing test list response: %w", err)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *testService) GetTest(testID string) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByTestID(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		log.Error().Err(err).Str("testID", testID).Msg("Failed to get test from repository")
		return nil, fmt.Errorf("error fetching test %s: %w", testID, err)
	}

	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		return nil, fmt.Errorf("error preparing test response: %w", err)
	}
	return &resp, nil
}

func (s *testService) CreateTest(req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	var test model.Test
	if err := copier.Copy(&test, &req); err != nil {
		return nil, fmt.Errorf("error preparing test model: %w", err)
	}
	test.UpdatedAt = time.Now()

	if err := s.testRepo.Create(&test); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTestID
		}
		log.Error().Err(err).Str("testID", req.TestID).Msg("Failed to create test in database")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}

	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, &test); err != nil {
		return nil, fmt.Errorf("error preparing create response: %w", err)
	}
	return &resp, nil
}

func (s *testService) UpdateTest(testID string, req dto.TestUpdateDTO) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByTestID(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("error fetching test %s for update: %w", testID, err)
	}

	test.Name = req.Name
	test.Subject = req.Subject
	test.Duration = req.Duration
	test.Questions = nil
	if err := copier.Copy(&test.Questions, &req.Questions); err != nil {
		return nil, fmt.Errorf("error preparing questions for update: %w", err)
	}
	test.UpdatedAt = time.Now()

	if err := s.testRepo.Save(test); err != nil {
		log.Error().Err(err).Str("testID", testID).Msg("Failed to update test in database")
		return nil, fmt.Errorf("database error updating test: %w", err)
	}

	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		return nil, fmt.Errorf("error preparing update response: %w", err)
	}
	return &resp, nil
}

// DeleteTest removes the test, then cascades to its results. The cascade is
// best-effort: a failure there is logged but does not undo the test deletion.
func (s *testService) DeleteTest(testID string) error {
	test, err := s.testRepo.FindByTestID(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTestNotFound
		}
		return fmt.Errorf("error fetching test %s for deletion: %w", testID, err)
	}

	if err := s.testRepo.Delete(test); err != nil {
		log.Error().Err(err).Str("testID", testID).Msg("Failed to delete test from database")
		return fmt.Errorf("database error deleting test: %w", err)
	}

	deleted, err := s.resultRepo.DeleteByTestID(testID)
	if err != nil {
		log.Warn().Err(err).Str("testID", testID).Msg("Cascade delete of results failed; orphaned results remain")
	} else if deleted > 0 {
		log.Info().Str("testID", testID).Int64("results", deleted).Msg("Cascade deleted results for test")
	}
	return nil
}

// SeedTests inserts the supplied tests only when the collection is empty.
// It is a guarded one-time seed, not an upsert.
func (s *testService) SeedTests(reqs []dto.TestCreateDTO) (string, error) {
	count, err := s.testRepo.Count()
	if err != nil {
		return "", fmt.Errorf("error counting tests: %w", err)
	}
	if count > 0 {
		return fmt.Sprintf("Database already contains %d tests", count), nil
	}

	tests := make([]model.Test, 0, len(reqs))
	now := time.Now()
	for _, req := range reqs {
		var test model.Test
		if err := copier.Copy(&test, &req); err != nil {
			return "", fmt.Errorf("error preparing seed test %s: %w", req.TestID, err)
		}
		test.UpdatedAt = now
		tests = append(tests, test)
	}

	if len(tests) > 0 {
		if err := s.testRepo.CreateInBatch(tests); err != nil {
			log.Error().Err(err).Int("count", len(tests)).Msg("Failed to seed tests")
			return "", fmt.Errorf("database error seeding tests: %w", err)
		}
	}
	return fmt.Sprintf("Initialized database with %d tests", len(tests)), nil
}
