package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	businessdomain "github.com/smallbiznis/voicepost/internal/business/domain"
	"github.com/smallbiznis/voicepost/internal/clock"
	surveydomain "github.com/smallbiznis/voicepost/internal/survey/domain"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&businessdomain.Business{},
		&surveydomain.SurveyDefinition{},
		&surveydomain.SurveyResponse{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T, db *gorm.DB) surveydomain.Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	return NewService(ServiceParam{DB: db, Log: zap.NewNop(), GenID: node, Clock: clock.SystemClock{}})
}

func insertBusinessWithSurvey(t *testing.T, db *gorm.DB, versions int) snowflake.ID {
	t.Helper()
	node, err := snowflake.NewNode(2)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}

	now := time.Now().UTC()
	biz := businessdomain.Business{
		ID:          node.Generate(),
		ServiceName: "〇〇整体",
		Category:    "健康・美容",
		AdminToken:  "token-" + t.Name(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.Create(&biz).Error; err != nil {
		t.Fatalf("insert business: %v", err)
	}

	questions, err := json.Marshal([]businessdomain.Question{
		{ID: "q1", Type: "rating", Label: "満足度"},
		{ID: "q3", Type: "free_text", Label: "感想"},
	})
	if err != nil {
		t.Fatalf("marshal questions: %v", err)
	}
	for v := 1; v <= versions; v++ {
		definition := surveydomain.SurveyDefinition{
			ID:         node.Generate(),
			BusinessID: biz.ID,
			Version:    v,
			Questions:  questions,
			CreatedAt:  now.Add(time.Duration(v) * time.Minute),
		}
		if err := db.Create(&definition).Error; err != nil {
			t.Fatalf("insert definition v%d: %v", v, err)
		}
	}
	return biz.ID
}

func TestLatestForBusinessPicksHighestVersion(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	bizID := insertBusinessWithSurvey(t, db, 3)

	resp, err := svc.LatestForBusiness(context.Background(), bizID.String())
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if resp.Version != 3 {
		t.Fatalf("version = %d, want 3", resp.Version)
	}
}

func TestLatestForBusinessUnknown(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)

	_, err := svc.LatestForBusiness(context.Background(), "123456789")
	if !errors.Is(err, surveydomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmitStoresAnswers(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	bizID := insertBusinessWithSurvey(t, db, 1)

	resp, err := svc.Submit(context.Background(), surveydomain.SubmitRequest{
		BusinessID: bizID.String(),
		Answers: []surveydomain.Answer{
			{QuestionID: "q1", Value: float64(5)},
			{QuestionID: "q3", Value: "肩の痛みが楽になりました"},
		},
		FreeComment: "  また通いたいです  ",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(resp.Answers) != 2 {
		t.Fatalf("got %d answers back, want 2", len(resp.Answers))
	}
	if resp.FreeComment != "また通いたいです" {
		t.Fatalf("free comment not trimmed: %q", resp.FreeComment)
	}

	loaded, err := svc.GetResponse(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("get response: %v", err)
	}
	if loaded.Answers[0].QuestionID != "q1" {
		t.Fatalf("answers did not round-trip: %+v", loaded.Answers)
	}
}

func TestSubmitRequiresAnswers(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	bizID := insertBusinessWithSurvey(t, db, 1)

	_, err := svc.Submit(context.Background(), surveydomain.SubmitRequest{
		BusinessID: bizID.String(),
	})
	if !errors.Is(err, surveydomain.ErrInvalidAnswers) {
		t.Fatalf("expected ErrInvalidAnswers, got %v", err)
	}
}

func TestSubmitUnknownBusiness(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)

	_, err := svc.Submit(context.Background(), surveydomain.SubmitRequest{
		BusinessID: "123456789",
		Answers:    []surveydomain.Answer{{QuestionID: "q1", Value: float64(4)}},
	})
	if !errors.Is(err, surveydomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmitBindsLatestDefinition(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	bizID := insertBusinessWithSurvey(t, db, 2)

	resp, err := svc.Submit(context.Background(), surveydomain.SubmitRequest{
		BusinessID: bizID.String(),
		Answers:    []surveydomain.Answer{{QuestionID: "q1", Value: float64(4)}},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	var definition surveydomain.SurveyDefinition
	if err := db.Where("id = ?", resp.SurveyID).First(&definition).Error; err != nil {
		t.Fatalf("load bound definition: %v", err)
	}
	if definition.Version != 2 {
		t.Fatalf("bound to version %d, want latest 2", definition.Version)
	}
}

func TestListResponsesForBusiness(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db)
	bizID := insertBusinessWithSurvey(t, db, 1)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := svc.Submit(ctx, surveydomain.SubmitRequest{
			BusinessID: bizID.String(),
			Answers:    []surveydomain.Answer{{QuestionID: "q1", Value: float64(5)}},
		})
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	items, err := svc.ListResponses(ctx, bizID.String())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d responses, want 2", len(items))
	}
}
