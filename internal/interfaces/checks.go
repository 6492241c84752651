package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/katalog/internal/audit"
	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/cli"
	"github.com/mrlokans/katalog/internal/database/books"
	"github.com/mrlokans/katalog/internal/exporters"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ catalog.Store = (*books.Repository)(nil)

// =============================================================================
// Front End Adapters
// =============================================================================

var _ catalog.Notifier = (*catalog.NoticeLog)(nil)
var _ catalog.Notifier = (*cli.ConsoleNotifier)(nil)
var _ catalog.Confirmer = catalog.ConfirmFunc(nil)
var _ catalog.FileChooser = catalog.FileChooserFunc(nil)

// =============================================================================
// Export & Audit
// =============================================================================

var _ exporters.Table = (*catalog.Grid)(nil)
var _ catalog.Auditor = (*audit.Auditor)(nil)
