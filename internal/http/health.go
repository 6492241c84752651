package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/katalog/internal/database"
)

// BookCounter reports how many books the catalog holds.
type BookCounter interface {
	Count() (int64, error)
}

// HealthResponse reports whether the catalog file is usable.
type HealthResponse struct {
	Status   string `json:"status"`
	Time     string `json:"time"`
	Version  string `json:"version,omitempty"`
	Database string `json:"database"`
	Path     string `json:"path,omitempty"`
	Books    int64  `json:"books"`
}

type HealthController struct {
	db      *database.Database
	books   BookCounter
	version string
}

func NewHealthController(db *database.Database, books BookCounter, version string) *HealthController {
	return &HealthController{db: db, books: books, version: version}
}

// Status pings the catalog database and counts its books.
// GET /health
func (h *HealthController) Status(c *gin.Context) {
	resp := HealthResponse{
		Status:  "healthy",
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
	}

	if err := h.check(&resp); err != nil {
		resp.Status = "unhealthy"
		resp.Database = "error: " + err.Error()
		c.IndentedJSON(http.StatusServiceUnavailable, resp)
		return
	}

	resp.Database = "ok"
	c.IndentedJSON(http.StatusOK, resp)
}

func (h *HealthController) check(resp *HealthResponse) error {
	if h.db == nil {
		return errNoDatabase
	}
	resp.Path = h.db.Path

	sqlDB, err := h.db.SQLDB()
	if err != nil {
		return err
	}
	if err := sqlDB.Ping(); err != nil {
		return err
	}

	if h.books != nil {
		count, err := h.books.Count()
		if err != nil {
			return err
		}
		resp.Books = count
	}
	return nil
}
