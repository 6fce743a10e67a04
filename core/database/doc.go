// Package database handles the optional SQL connection used by the library
// mirror.
//
// It wraps GORM to configure MySQL or SQLite connections from the application
// configuration. The mirror is optional, so Connect failures are reported to the
// caller and the library keeps working without it.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read a table's columns through GORM's
// migrator, which lets the mirror health check confirm that an existing table
// still carries every column it writes.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Mirror database unavailable", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "prompt_mirror", []string{"hash"})
package database
