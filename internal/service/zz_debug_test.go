package service

import (
	"testing"

	"github.com/jinzhu/copier"
	"github.com/prepforge/testbank/internal/dto"
	"github.com/prepforge/testbank/internal/model"
	"github.com/prepforge/testbank/internal/repository"
)

func TestZZDebugQuestions(t *testing.T) {
	req := sampleTest("t1")

	var m model.Test
	if err := copier.Copy(&m, &req); err != nil {
		t.Fatalf("copier: %v", err)
	}
	t.Logf("after copier: len(m.Questions)=%d %+v", len(m.Questions), m.Questions)

	db := newTestDB(t)
	repo := repository.NewTestRepository(db)
	if err := repo.Create(&m); err != nil {
		t.Fatalf("create: %v", err)
	}

	var raw string
	if err := db.Raw("select questions from tests where test_id = ?", "t1").Scan(&raw).Error; err != nil {
		t.Fatalf("raw: %v", err)
	}
	t.Logf("raw column: %q", raw)

	got, err := repo.FindByTestID("t1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	t.Logf("after find: len=%d", len(got.Questions))

	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, got); err != nil {
		t.Fatalf("copier resp: %v", err)
	}
	t.Logf("resp questions: len=%d", len(resp.Questions))
}
