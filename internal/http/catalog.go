package http

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/katalog/internal/catalog"
)

// CatalogController binds the main window's controls to the catalog.
type CatalogController struct {
	catalog   *catalog.Catalog
	notices   *catalog.NoticeLog
	sessions  *SessionManager
	exportDir string
	log       *zap.Logger
}

// NewCatalogController creates the controller. notices must be the
// Notifier the catalog was built with.
func NewCatalogController(cat *catalog.Catalog, notices *catalog.NoticeLog, sessions *SessionManager, exportDir string, log *zap.Logger) *CatalogController {
	return &CatalogController{
		catalog:   cat,
		notices:   notices,
		sessions:  sessions,
		exportDir: exportDir,
		log:       log,
	}
}

// StateResponse is the JSON form of the main window.
type StateResponse struct {
	Headers  []string         `json:"headers"`
	Rows     [][]string       `json:"rows"`
	Selected int              `json:"selected"`
	Keyword  string           `json:"keyword"`
	Form     FormState        `json:"form"`
	Notices  []catalog.Notice `json:"notices"`
}

type FormState struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Year     string `json:"year"`
	EditMode bool   `json:"edit_mode"`
	EditID   uint   `json:"edit_id,omitempty"`
}

// Index renders the main window.
// GET /
func (cc *CatalogController) Index(c *gin.Context) {
	notices := cc.pendingNotices(c)
	state := cc.catalog.State()

	selectedID := ""
	if state.Selected >= 0 && state.Selected < len(state.Rows) {
		selectedID = state.Rows[state.Selected][catalog.ColumnID]
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"State":      state,
		"SelectedID": selectedID,
		"Notices":    notices,
		"CSRFToken":  GetCSRFToken(c),
	})
}

// State returns the main window as JSON.
// GET /api/state
func (cc *CatalogController) State(c *gin.Context) {
	c.JSON(http.StatusOK, cc.stateResponse(cc.pendingNotices(c)))
}

// Search filters the table by title.
// GET /search?q=
func (cc *CatalogController) Search(c *gin.Context) {
	_ = cc.catalog.Search(c.Query("q"))
	cc.respond(c)
}

// Submit saves the form.
// POST /books
func (cc *CatalogController) Submit(c *gin.Context) {
	_ = cc.catalog.SubmitForm(c.PostForm("title"), c.PostForm("author"), c.PostForm("year"))
	cc.respond(c)
}

// ResetForm leaves edit mode.
// POST /form/reset
func (cc *CatalogController) ResetForm(c *gin.Context) {
	cc.catalog.ResetForm()
	cc.respond(c)
}

// BeginEdit loads a table row into the form.
// POST /rows/edit
func (cc *CatalogController) BeginEdit(c *gin.Context) {
	row, ok := parseIntForm(c, "row")
	if !ok || !cc.rowShowsPostedID(c, row) {
		return
	}
	if err := cc.catalog.BeginEditRow(row); err != nil {
		respondBadRequest(c, "row can not be edited")
		return
	}
	cc.respond(c)
}

// SelectRow marks a table row as current.
// POST /rows/select
func (cc *CatalogController) SelectRow(c *gin.Context) {
	row, ok := parseIntForm(c, "row")
	if !ok || !cc.rowShowsPostedID(c, row) {
		return
	}
	cc.catalog.SelectRow(row)
	cc.respond(c)
}

// EditCell is an in-place edit of one table cell.
// POST /cells
func (cc *CatalogController) EditCell(c *gin.Context) {
	row, ok := parseIntForm(c, "row")
	if !ok {
		return
	}
	col, ok := parseIntForm(c, "col")
	if !ok {
		return
	}
	if col <= catalog.ColumnID || col >= catalog.ColumnCount {
		respondBadRequest(c, "column is not editable")
		return
	}
	if !cc.rowShowsPostedID(c, row) {
		return
	}
	cc.catalog.EditCell(row, col, c.PostForm("value"))
	cc.respond(c)
}

// DeleteSelected deletes the selected row. The confirm field carries the
// user's answer to the confirmation question; only "yes" deletes.
// POST /rows/delete
func (cc *CatalogController) DeleteSelected(c *gin.Context) {
	if selected := cc.catalog.State().Selected; selected >= 0 && !cc.rowShowsPostedID(c, selected) {
		return
	}
	answer := catalog.ConfirmFunc(func(string, string) bool {
		return strings.EqualFold(c.PostForm("confirm"), "yes")
	})
	if err := cc.catalog.DeleteSelected(answer); err != nil && !errors.Is(err, catalog.ErrNoSelection) {
		cc.log.Warn("delete failed", zap.Error(err))
	}
	cc.respond(c)
}

// Export writes the shown rows to a file. Relative paths are resolved in
// the export directory; an empty path means the user cancelled.
// POST /export
func (cc *CatalogController) Export(c *gin.Context) {
	chooser := catalog.FileChooserFunc(func(string, string) string {
		return cc.resolveExportPath(c.PostForm("path"))
	})
	_, _ = cc.catalog.ExportCSV(chooser)
	cc.respond(c)
}

// Download streams the shown rows as a CSV attachment.
// GET /export.csv
func (cc *CatalogController) Download(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="buku.csv"`)
	c.Status(http.StatusOK)
	if _, err := cc.catalog.WriteCSV(c.Writer); err != nil {
		cc.log.Error("failed to stream csv", zap.Error(err))
	}
}

// rowShowsPostedID checks the optional id field of a row action against the
// book the grid shows in that row now. A page rendered before another
// search or delete would otherwise act on a different book.
func (cc *CatalogController) rowShowsPostedID(c *gin.Context, row int) bool {
	posted := c.PostForm("id")
	if posted == "" {
		return true
	}
	id, err := strconv.ParseUint(posted, 10, 64)
	if err != nil {
		respondBadRequest(c, "invalid id")
		return false
	}
	if shown, ok := cc.catalog.RowID(row); !ok || shown != uint(id) {
		c.AbortWithStatusJSON(http.StatusConflict, ErrorResponse{Error: "table changed, reload the page"})
		return false
	}
	return true
}

func (cc *CatalogController) resolveExportPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cc.exportDir, path)
}

// respond finishes a user action: JSON clients get the new state and the
// notices directly, browsers are redirected to the main page which shows
// the notices from the session.
func (cc *CatalogController) respond(c *gin.Context) {
	notices := cc.notices.Drain()

	if wantsJSON(c) {
		c.JSON(http.StatusOK, cc.stateResponse(notices))
		return
	}

	if cc.sessions != nil {
		cc.sessions.AddNotices(c.Request, notices)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (cc *CatalogController) pendingNotices(c *gin.Context) []catalog.Notice {
	var notices []catalog.Notice
	if cc.sessions != nil {
		notices = cc.sessions.PopNotices(c.Request)
	}
	return append(notices, cc.notices.Drain()...)
}

func (cc *CatalogController) stateResponse(notices []catalog.Notice) StateResponse {
	state := cc.catalog.State()
	id, editing := state.Target.ID()
	if notices == nil {
		notices = []catalog.Notice{}
	}
	return StateResponse{
		Headers:  state.Headers[:],
		Rows:     state.Rows,
		Selected: state.Selected,
		Keyword:  state.Keyword,
		Form: FormState{
			Title:    state.Title,
			Author:   state.Author,
			Year:     state.Year,
			EditMode: editing,
			EditID:   id,
		},
		Notices: notices,
	}
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

func parseIntForm(c *gin.Context, field string) (int, bool) {
	value, err := strconv.Atoi(c.PostForm(field))
	if err != nil {
		respondBadRequest(c, "invalid "+field)
		return 0, false
	}
	return value, true
}
