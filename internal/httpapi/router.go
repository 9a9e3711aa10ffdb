package httpapi

import (
	"net/http"
	"time"

	"github.com/devray27/studypal-backend/internal/common"
	"github.com/devray27/studypal-backend/internal/config"
	"github.com/devray27/studypal-backend/internal/httpapi/handlers"
	"github.com/devray27/studypal-backend/internal/httpapi/middleware"
	"github.com/devray27/studypal-backend/internal/store/redisstore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, cfg config.Config, cache *redisstore.Store) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-ID")
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, "route not found", "not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, "method not allowed", "method not allowed")
	})

	h := handlers.NewHandler(db, cfg, cache)

	r.GET("/ping", h.Ping)

	// auth
	r.POST("/register", h.Register)
	r.POST("/signIn", h.SignIn)

	// AI tasks
	r.POST("/summarize", h.Summarize)
	r.POST("/getCode", h.GetCode)
	r.POST("/pdfSummary", h.PDFSummary)
	r.POST("/pdfQuestions", h.PDFQuestions)
	r.POST("/askDoubt", h.AskDoubt)

	// chat history
	r.POST("/saveChat", h.SaveChat)
	r.GET("/getAllChats", h.GetAllChats)

	return r
}
