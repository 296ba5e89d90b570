package catalog

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewModule(db *gorm.DB, logger *zap.Logger) (*Controller, *GormProductRepository) {
	repo := NewGormProductRepository(db)
	return NewController(repo, logger), repo
}
