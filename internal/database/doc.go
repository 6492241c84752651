// Package database opens the catalog's SQLite file and hands out the
// connection to the domain repositories.
//
//	database/
//	├── database.go      # Connection setup and table initialization
//	└── books/           # Book record CRUD and title search
//
// # Usage
//
//	db, err := database.NewDatabase("./buku.db", logger.Warn, log)
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//
//	repo := books.NewRepository(db.DB)
//	all, err := repo.ListAll()
//
// The schema is created with a fixed CREATE TABLE IF NOT EXISTS statement
// rather than AutoMigrate; there is no migration system.
package database
