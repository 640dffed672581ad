// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration. The database fragment source keeps
// its fragments in a single table and uses the inspector to verify that table.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table (PRAGMA table_info on sqlite,
// SHOW COLUMNS on mysql); MissingColumns reports which required columns are absent.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "fragments", "ref", "markup")
package database
