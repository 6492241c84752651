package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/database"
	"github.com/mrlokans/katalog/internal/database/books"
)

// RouterConfig holds the dependencies of the HTTP router.
type RouterConfig struct {
	Catalog        *catalog.Catalog
	Notices        *catalog.NoticeLog
	Database       *database.Database
	SessionManager *SessionManager
	CSRFSecret     []byte // nil disables CSRF protection
	SecureCookies  bool
	ExportDir      string
	Version        string
	Logger         *zap.Logger
}

// NewRouter creates the router serving the catalog window.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(cfg.Logger))
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.LoadSave())
	}

	router.SetHTMLTemplate(loadTemplates())

	var counter BookCounter
	if cfg.Database != nil {
		counter = books.NewRepository(cfg.Database.DB)
	}
	healthController := NewHealthController(cfg.Database, counter, cfg.Version)
	router.GET("/health", healthController.Status)

	cc := NewCatalogController(cfg.Catalog, cfg.Notices, cfg.SessionManager, cfg.ExportDir, cfg.Logger)
	router.GET("/", cc.Index)
	router.GET("/api/state", cc.State)
	router.GET("/search", cc.Search)
	router.POST("/books", cc.Submit)
	router.POST("/form/reset", cc.ResetForm)
	router.POST("/rows/edit", cc.BeginEdit)
	router.POST("/rows/select", cc.SelectRow)
	router.POST("/rows/delete", cc.DeleteSelected)
	router.POST("/cells", cc.EditCell)
	router.POST("/export", cc.Export)
	router.GET("/export.csv", cc.Download)

	return router
}
