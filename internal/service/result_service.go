package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jinzhu/copier"
	"github.com/prepforge/testbank/internal/dto"
	"github.com/prepforge/testbank/internal/model"
	"github.com/prepforge/testbank/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ResultService interface {
	SubmitResult(req dto.ResultSubmitDTO) (*dto.ResultResponseDTO, error)
	ListResultsByTest(testID string) ([]dto.ResultResponseDTO, dto.StatsDTO, error)
	GetResult(attemptID string) (*dto.ResultResponseDTO, error)
	History() (map[string]dto.HistoryEntryDTO, error)
}

type resultService struct {
	resultRepo repository.ResultRepository
}

func NewResultService(resultRepo repository.ResultRepository) ResultService {
	return &resultService{resultRepo: resultRepo}
}

func (s *resultService) SubmitResult(req dto.ResultSubmitDTO) (*dto.ResultResponseDTO, error) {
	var result model.Result
	if err := copier.Copy(&result, &req); err != nil {
		return nil, fmt.Errorf("error preparing result model: %w", err)
	}

	result.AttemptID = NewAttemptID()
	if req.CompletedAt != nil {
		result.CompletedAt = *req.CompletedAt
	} else {
		result.CompletedAt = time.Now()
	}

	if err := s.resultRepo.Create(&result); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateAttemptID
		}
		log.Error().Err(err).Str("testID", req.TestID).Msg("Failed to save result in database")
		return nil, fmt.Errorf("database error saving result: %w", err)
	}

	var resp dto.ResultResponseDTO
	if err := copier.Copy(&resp, &result); err != nil {
		return nil, fmt.Errorf("error preparing result response: %w", err)
	}
	return &resp, nil
}

func (s *resultService) ListResultsByTest(testID string) ([]dto.ResultResponseDTO, dto.StatsDTO, error) {
	results, err := s.resultRepo.FindAllByTestID(testID)
	if err != nil {
		log.Error().Err(err).Str("testID", testID).Msg("Failed to list results from repository")
		return nil, dto.StatsDTO{}, fmt.Errorf("error fetching results for test %s: %w", testID, err)
	}

	resp := make([]dto.ResultResponseDTO, 0, len(results))
	for _, result := range results {
		var item dto.ResultResponseDTO
		if err := copier.Copy(&item, &result); err != nil {
			return nil, dto.StatsDTO{}, fmt.Errorf("error preparing results response: %w", err)
		}
		resp = append(resp, item)
	}
	return resp, computeStats(results), nil
}

func (s *resultService) GetResult(attemptID string) (*dto.ResultResponseDTO, error) {
	result, err := s.resultRepo.FindByAttemptID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		log.Error().Err(err).Str("attemptID", attemptID).Msg("Failed to get result from repository")
		return nil, fmt.Errorf("error fetching result %s: %w", attemptID, err)
	}

	var resp dto.ResultResponseDTO
	if err := copier.Copy(&resp, result); err != nil {
		return nil, fmt.Errorf("error preparing result response: %w", err)
	}
	return &resp, nil
}

// History folds every stored result, newest first, into a per-test summary.
// Tests without results never appear in the map.
func (s *resultService) History() (map[string]dto.HistoryEntryDTO, error) {
	results, err := s.resultRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load results for history")
		return nil, fmt.Errorf("error fetching results for history: %w", err)
	}

	history := make(map[string]dto.HistoryEntryDTO)
	for _, result := range results {
		entry, seen := history[result.TestID]
		if !seen {
			// First hit is the most recent attempt for this test.
			entry.Last = result.Percentage
			entry.LastAttemptID = result.AttemptID
		}
		entry.Attempts++
		if result.Percentage > entry.Best {
			entry.Best = result.Percentage
		}
		history[result.TestID] = entry
	}
	return history, nil
}

// computeStats derives the aggregate over one test's results, which arrive
// ordered by completion time descending. Empty input yields all zeros.
func computeStats(results []model.Result) dto.StatsDTO {
	stats := dto.StatsDTO{Attempts: len(results)}
	if len(results) == 0 {
		return stats
	}

	stats.Last = results[0].Percentage
	var sum float64
	for _, result := range results {
		if result.Percentage > stats.Best {
			stats.Best = result.Percentage
		}
		sum += result.Percentage
	}
	stats.Average = math.Round(sum/float64(len(results))*100) / 100
	return stats
}
