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
	if err := db.AutoMigrate(&businessdomain.Business{}, &surveydomain.SurveyDefinition{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T, db *gorm.DB, cl clock.Clock) businessdomain.Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	return NewService(ServiceParam{DB: db, Log: zap.NewNop(), GenID: node, Clock: cl})
}

func TestCreateRegistersBusinessWithInitialSurvey(t *testing.T) {
	db := setupTestDB(t)
	at := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(t, db, clock.FixedClock{At: at})

	resp, err := svc.Create(context.Background(), businessdomain.CreateRequest{
		ServiceName: "〇〇整体",
		Description: "肩こり専門の整体院",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.AdminToken == "" {
		t.Fatalf("expected an admin token on creation")
	}
	if resp.Category != "その他" {
		t.Fatalf("category = %q, want default その他", resp.Category)
	}
	if !resp.CreatedAt.Equal(at) {
		t.Fatalf("created_at = %v, want pinned clock %v", resp.CreatedAt, at)
	}

	var definition surveydomain.SurveyDefinition
	if err := db.Where("business_id = ?", resp.ID).First(&definition).Error; err != nil {
		t.Fatalf("expected survey definition in same transaction: %v", err)
	}
	if definition.Version != 1 {
		t.Fatalf("version = %d, want 1", definition.Version)
	}
	var questions []businessdomain.Question
	if err := json.Unmarshal(definition.Questions, &questions); err != nil {
		t.Fatalf("unmarshal questions: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d default questions, want 3", len(questions))
	}
	if questions[0].Type != "rating" || questions[1].Type != "multi_select" || questions[2].Type != "free_text" {
		t.Fatalf("unexpected default question types: %+v", questions)
	}
}

func TestCreateRejectsEmptyServiceName(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db, clock.SystemClock{})

	_, err := svc.Create(context.Background(), businessdomain.CreateRequest{ServiceName: "   "})
	if !errors.Is(err, businessdomain.ErrInvalidServiceName) {
		t.Fatalf("expected ErrInvalidServiceName, got %v", err)
	}
}

func TestGetByIDUnknown(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db, clock.SystemClock{})

	if _, err := svc.GetByID(context.Background(), "123456789"); !errors.Is(err, businessdomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), "not-a-snowflake"); !errors.Is(err, businessdomain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestListStripsAdminToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db, clock.SystemClock{})

	if _, err := svc.Create(context.Background(), businessdomain.CreateRequest{ServiceName: "ABC美容室"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := svc.List(context.Background(), businessdomain.ListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d businesses, want 1", len(items))
	}
	if items[0].AdminToken != "" {
		t.Fatalf("list leaked admin token")
	}
}

func TestListFiltersByCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db, clock.SystemClock{})

	ctx := context.Background()
	if _, err := svc.Create(ctx, businessdomain.CreateRequest{ServiceName: "〇〇整体", Category: "健康・美容"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, businessdomain.CreateRequest{ServiceName: "サンプル学習塾", Category: "教育"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := svc.List(ctx, businessdomain.ListRequest{Category: "教育"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].ServiceName != "サンプル学習塾" {
		t.Fatalf("unexpected filter result: %+v", items)
	}
}

func TestUpdateRejectsUnknownToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db, clock.SystemClock{})

	desc := "new"
	_, err := svc.Update(context.Background(), businessdomain.UpdateRequest{
		AdminToken:  "missing-token",
		Description: &desc,
	})
	if !errors.Is(err, businessdomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateWithQuestionsCreatesNextSurveyVersion(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db, clock.SystemClock{})

	ctx := context.Background()
	created, err := svc.Create(ctx, businessdomain.CreateRequest{ServiceName: "〇〇整体"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, businessdomain.UpdateRequest{
		AdminToken: created.AdminToken,
		Questions: []businessdomain.Question{
			{ID: "q1", Type: "rating", Label: "満足度"},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ServiceName != "〇〇整体" {
		t.Fatalf("update changed untouched fields: %+v", updated)
	}

	var latest surveydomain.SurveyDefinition
	err = db.Where("business_id = ?", created.ID).Order("version DESC").First(&latest).Error
	if err != nil {
		t.Fatalf("load definitions: %v", err)
	}
	if latest.Version != 2 {
		t.Fatalf("latest version = %d, want 2", latest.Version)
	}
}

func TestDefaultQuestionsAreWellFormed(t *testing.T) {
	questions := DefaultQuestions()
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}
	if len(questions[1].Options) == 0 {
		t.Fatalf("multi_select question needs options")
	}
	for _, q := range questions {
		if q.ID == "" || q.Label == "" {
			t.Fatalf("question missing id or label: %+v", q)
		}
	}
}
