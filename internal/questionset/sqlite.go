package questionset

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// questionsTable is the table read from SQLite question sets.
const questionsTable = "questions"

// parseSQLiteFile reads table questions(question, answer, explanation) in
// rowid order. The database is opened read-only.
func parseSQLiteFile(ctx context.Context, path string, rep *Report) error {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := applyPragmas(ctx, db); err != nil {
		db.Close()
		return fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	defer drv.Close()

	query, args := entsql.Dialect(dialect.SQLite).
		Select("rowid", columnQuestion, columnAnswer, columnExplanation).
		From(entsql.Table(questionsTable)).
		OrderBy("rowid").
		Query()

	var rows entsql.Rows
	if err := drv.Query(ctx, query, args, &rows); err != nil {
		return fmt.Errorf("query %s: %w", questionsTable, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rowid int64
		var question, answer, explanation sql.NullString
		if err := rows.Scan(&rowid, &question, &answer, &explanation); err != nil {
			return fmt.Errorf("scan %s: %w", questionsTable, err)
		}
		rep.add(fmt.Sprintf("rowid %d", rowid), question.String, answer.String, explanation.String)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read %s: %w", questionsTable, err)
	}
	return nil
}

// applyPragmas configures SQLite for a short-lived read-only connection.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA query_only = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
