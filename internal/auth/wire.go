package auth

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AshleyKendi786/Delivery-App/internal/config"
)

func NewModule(db *gorm.DB, cfg config.AuthConfig, logger *zap.Logger) (*Controller, *TokenManager) {
	tokens := NewTokenManager(cfg)
	repo := NewGormUserRepository(db)
	svc := NewService(repo, tokens, logger)
	return NewController(svc, svc, logger), tokens
}
