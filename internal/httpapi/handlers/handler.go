package handlers

import (
	"github.com/devray27/studypal-backend/internal/ai"
	"github.com/devray27/studypal-backend/internal/auth"
	"github.com/devray27/studypal-backend/internal/chat"
	"github.com/devray27/studypal-backend/internal/config"
	"github.com/devray27/studypal-backend/internal/store/redisstore"
	"gorm.io/gorm"
)

type Handler struct {
	DB      *gorm.DB
	Cfg     config.Config
	Cache   *redisstore.Store // nil when REDIS_ADDR is unset
	AuthSvc *auth.Service
	ChatSvc *chat.Service
	Gateway *ai.Gateway
}

func NewHandler(db *gorm.DB, cfg config.Config, cache *redisstore.Store) *Handler {
	policy := auth.PasswordPolicy{
		MinLength:     cfg.PasswordMinLength,
		RequireLetter: cfg.PasswordRequireLetter,
		RequireDigit:  cfg.PasswordRequireDigit,
	}
	provider := ai.NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	return &Handler{
		DB:      db,
		Cfg:     cfg,
		Cache:   cache,
		AuthSvc: auth.NewService(db, policy, cfg.BcryptCost),
		ChatSvc: chat.NewService(chat.NewRepo(db)),
		Gateway: ai.NewGateway(provider),
	}
}
