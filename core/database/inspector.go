package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one column of a table.
type ColumnInfo struct {
	Field    string
	Type     string
	Nullable bool
}

// GetTableColumns returns the columns of tableName through the dialect's
// migrator. A missing table yields no columns and no error.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	migrator := db.Migrator()
	if !migrator.HasTable(tableName) {
		return nil, nil
	}

	types, err := migrator.ColumnTypes(tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	columns := make([]ColumnInfo, 0, len(types))
	for _, ct := range types {
		nullable, _ := ct.Nullable()
		columns = append(columns, ColumnInfo{
			Field:    strings.ToLower(ct.Name()),
			Type:     strings.ToLower(ct.DatabaseTypeName()),
			Nullable: nullable,
		})
	}
	return columns, nil
}

// MissingColumns returns the expected column names absent from tableName.
func MissingColumns(db *gorm.DB, tableName string, expected []string) ([]string, error) {
	columns, err := GetTableColumns(db, tableName)
	if err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[c.Field] = struct{}{}
	}

	var missing []string
	for _, name := range expected {
		if _, ok := present[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
