// Package database handles database connections and schema inspection.
//
// It wraps GORM and configures either a MySQL connection (timeouts in the DSN, pool
// limits) or a SQLite file, including ":memory:" for tests and demos.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table using SHOW COLUMNS or PRAGMA table_info.
// MissingColumns builds on it so feature repositories can refuse to sync into a
// table whose schema does not match their model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "products", []string{"id", "sku"})
package database
