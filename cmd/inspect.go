package cmd

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mtang/cursor-insight/internal"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

var inspectSampleRows int

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [database-path]",
	Short: "Inspect store schema and structure",
	Long: `Inspect the schema and structure of a Cursor state database.

This command provides detailed information about:
  • Database schema (tables, columns, types)
  • Row counts
  • Sample data from each table

Examples:
  cursor-insight inspect                          # Inspect the global store
  cursor-insight inspect /path/to/state.vscdb     # Inspect a specific store
  cursor-insight inspect --sample 5               # Show 5 sample rows`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var dbPath string
		if len(args) > 0 {
			dbPath = args[0]
		}

		if dbPath == "" {
			paths, err := resolvePaths()
			if err != nil {
				return fmt.Errorf("failed to resolve storage paths: %w", err)
			}
			if !paths.GlobalStoreExists() {
				return fmt.Errorf("global store not found at %s - pass a database path", paths.GlobalStoreDBPath())
			}
			dbPath = paths.GlobalStoreDBPath()
		}

		return inspectStore(dbPath)
	},
}

func inspectStore(dbPath string) error {
	db, err := internal.OpenStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	tables, err := getTables(db)
	if err != nil {
		return fmt.Errorf("failed to get tables: %w", err)
	}

	if len(tables) == 0 {
		fmt.Println("no tables found in database")
		return nil
	}

	fmt.Printf("database: %s\n", dbPath)
	fmt.Printf("found %d table(s)\n\n", len(tables))

	for _, tableName := range tables {
		if err := inspectTable(db, tableName); err != nil {
			fmt.Printf("error inspecting table %s: %v\n", tableName, err)
			continue
		}
		fmt.Println()
	}

	return nil
}

func getTables(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`
		SELECT name FROM sqlite_master
		WHERE type='table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			continue
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

type columnInfo struct {
	Name       string
	Type       string
	NotNull    bool
	PrimaryKey bool
}

func inspectTable(db *sql.DB, tableName string) error {
	fmt.Printf("table: %s\n", tableName)

	var rowCount int
	if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", tableName)).Scan(&rowCount); err != nil {
		return fmt.Errorf("failed to get row count: %w", err)
	}
	fmt.Printf("rows: %d\n", rowCount)

	columns, err := getTableSchema(db, tableName)
	if err != nil {
		return fmt.Errorf("failed to get schema: %w", err)
	}

	fmt.Printf("schema:\n")
	for _, col := range columns {
		pk := ""
		if col.PrimaryKey {
			pk = " [PRIMARY KEY]"
		}
		notNull := ""
		if col.NotNull {
			notNull = " NOT NULL"
		}
		fmt.Printf("  %s: %s%s%s\n", col.Name, col.Type, notNull, pk)
	}

	if rowCount > 0 && inspectSampleRows > 0 {
		if err := showSampleData(db, tableName, columns, inspectSampleRows); err != nil {
			fmt.Printf("error showing sample data: %v\n", err)
		}
	}

	return nil
}

func getTableSchema(db *sql.DB, tableName string) ([]columnInfo, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", tableName))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var columns []columnInfo
	for rows.Next() {
		var col columnInfo
		var cid int
		var notNull, pk int
		var defaultValue sql.NullString

		if err := rows.Scan(&cid, &col.Name, &col.Type, &notNull, &defaultValue, &pk); err != nil {
			continue
		}
		col.NotNull = notNull == 1
		col.PrimaryKey = pk == 1
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

func showSampleData(db *sql.DB, tableName string, columns []columnInfo, limit int) error {
	if len(columns) == 0 {
		return nil
	}

	colNames := make([]string, len(columns))
	for i, col := range columns {
		colNames[i] = col.Name
	}

	query := fmt.Sprintf("SELECT %s FROM %s LIMIT %d", strings.Join(colNames, ", "), tableName, limit)
	rows, err := db.Query(query)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	fmt.Printf("sample data (first %d rows):\n", limit)
	rowNum := 0
	for rows.Next() {
		rowNum++
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			fmt.Printf("  row %d: error scanning: %v\n", rowNum, err)
			continue
		}

		fmt.Printf("\n  row %d:\n", rowNum)
		for i, col := range columns {
			val := values[i]
			var valStr string
			if val == nil {
				valStr = "<NULL>"
			} else {
				valStr = fmt.Sprintf("%v", val)
				// Truncate long values
				if len(valStr) > 200 {
					valStr = valStr[:200] + "..."
				}
				// Show first line only for multi-line values
				if strings.Contains(valStr, "\n") {
					valStr = strings.Split(valStr, "\n")[0] + "..."
				}
			}
			fmt.Printf("    %s: %s\n", col.Name, valStr)
		}
	}

	return rows.Err()
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVar(&inspectSampleRows, "sample", 3, "Number of sample rows to show")
}
