// Package interfaces documents the core abstractions of the catalog.
//
// # Interface Categories
//
// ## Data Access
//
//   - catalog.Store: the record store (internal/catalog/ports.go),
//     implemented by books.Repository over gorm.
//
// ## Front End Adapters
//
// The catalog never talks to a terminal or a browser directly. Each front
// end supplies:
//
//   - catalog.Notifier: shows info, warning and error messages
//     (catalog.NoticeLog for the web UI, cli.ConsoleNotifier for the CLI)
//   - catalog.Confirmer: answers the delete confirmation
//   - catalog.FileChooser: picks the CSV destination, "" cancels
//
// ## Export & Audit
//
//   - exporters.Table: a rendered grid the CSV exporter reads
//   - catalog.Auditor: stores a snapshot of a deleted book
//
// # Adding a New Front End
//
//  1. Implement catalog.Notifier
//
//     type DesktopNotifier struct{ window *Window }
//
//     func (n *DesktopNotifier) Info(title, message string)
//     func (n *DesktopNotifier) Warning(title, message string)
//     func (n *DesktopNotifier) Error(title, message string)
//
//  2. Build the catalog with catalog.New and call its methods from the
//     toolkit's event handlers. catalog.Catalog serialises them.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
