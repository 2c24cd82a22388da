package database

import (
	"github.com/glebarez/sqlite"
	"github.com/thesisai/backend/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func InitDB(dbType, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch dbType {
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		// 使用 github.com/glebarez/sqlite 驱动
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.Thesis{},
		&model.AdvisorComment{},
		&model.ChapterSection{},
		&model.Profile{},
		&model.Message{},
		&model.OnboardingState{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
