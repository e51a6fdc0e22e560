package seed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	businessdomain "github.com/smallbiznis/voicepost/internal/business/domain"
	businessservice "github.com/smallbiznis/voicepost/internal/business/service"
	surveydomain "github.com/smallbiznis/voicepost/internal/survey/domain"
	"gorm.io/gorm"
)

type demoBusiness struct {
	serviceName string
	description string
	whatYouDo   string
	category    string
	ownerName   string
}

var demoBusinesses = []demoBusiness{
	{
		serviceName: "〇〇整体",
		description: "地域密着の整体院",
		whatYouDo:   "肩こり・腰痛の施術",
		category:    "健康・美容",
		ownerName:   "山田太郎",
	},
	{
		serviceName: "ABC美容室",
		description: "丁寧なカウンセリングが自慢の美容室",
		whatYouDo:   "カット・カラー・パーマ",
		category:    "健康・美容",
		ownerName:   "佐藤花子",
	},
	{
		serviceName: "サンプル学習塾",
		description: "少人数制の個別指導塾",
		whatYouDo:   "小中学生向けの学習指導",
		category:    "教育",
		ownerName:   "鈴木一郎",
	},
}

// EnsureDemoBusinesses seeds sample businesses with their default survey
// so a fresh install has something to click through. Existing rows are
// left alone.
func EnsureDemoBusinesses(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	questions, err := json.Marshal(businessservice.DefaultQuestions())
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, demo := range demoBusinesses {
			var existing businessdomain.Business
			err := tx.Where("service_name = ?", demo.serviceName).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			now := time.Now().UTC()
			owner := demo.ownerName
			biz := businessdomain.Business{
				ID:              node.Generate(),
				ServiceName:     demo.serviceName,
				Description:     demo.description,
				WhatYouDo:       demo.whatYouDo,
				Category:        demo.category,
				OwnerName:       &owner,
				IsPublicGallery: true,
				AdminToken:      uuid.NewString(),
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := tx.Create(&biz).Error; err != nil {
				return err
			}
			definition := surveydomain.SurveyDefinition{
				ID:         node.Generate(),
				BusinessID: biz.ID,
				Version:    1,
				Questions:  questions,
				CreatedAt:  now,
			}
			if err := tx.Create(&definition).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
