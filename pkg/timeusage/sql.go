package timeusage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver.
)

// SummedTableName is the view of the per-respondent summaries the grouping
// query runs against.
const SummedTableName = "summed"

const createSummed = `CREATE TABLE IF NOT EXISTS ` + SummedTableName + ` (
	working TEXT NOT NULL,
	sex TEXT NOT NULL,
	age TEXT NOT NULL,
	primaryNeeds REAL NOT NULL,
	work REAL NOT NULL,
	other REAL NOT NULL
)`

const insertSummed = `INSERT INTO ` + SummedTableName +
	` (working, sex, age, primaryNeeds, work, other) VALUES (?, ?, ?, ?, ?, ?)`

// GroupedQuery is the declarative equivalent of Group. SQLite's ROUND
// rounds on the value's decimal expansion, half away from zero — the same
// rule round1 applies on the direct path — and its default TEXT ordering is
// bytewise, matching Go string comparison.
const GroupedQuery = `SELECT working, sex, age,
	ROUND(AVG(primaryNeeds), 1), ROUND(AVG(work), 1), ROUND(AVG(other), 1)
FROM ` + SummedTableName + `
GROUP BY working, sex, age
ORDER BY working, sex, age`

// OpenMemoryDB opens a fresh in-memory SQLite database for GroupSQL. The
// caller owns closing it.
func OpenMemoryDB() (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	return db, nil
}

// GroupSQL computes the same grouped summary as Group by loading the
// summaries into a SQLite table and running GroupedQuery. The two paths
// must produce row-for-row identical results; divergence is a bug in one of
// them.
func GroupSQL(ctx context.Context, db *sql.DB, summaries []Summary) ([]Summary, error) {
	_, err := db.ExecContext(ctx, createSummed)
	if err != nil {
		return nil, fmt.Errorf("creating %s table: %w", SummedTableName, err)
	}
	_, err = db.ExecContext(ctx, `DELETE FROM `+SummedTableName)
	if err != nil {
		return nil, fmt.Errorf("clearing %s table: %w", SummedTableName, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		// No-op once the transaction has committed.
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, insertSummed)
	if err != nil {
		return nil, fmt.Errorf("preparing insert: %w", err)
	}

	for _, summary := range summaries {
		_, err = stmt.ExecContext(ctx,
			summary.Working, summary.Sex, summary.Age,
			summary.PrimaryNeeds, summary.Work, summary.Other)
		if err != nil {
			return nil, fmt.Errorf("inserting summary: %w", err)
		}
	}

	err = stmt.Close()
	if err != nil {
		return nil, fmt.Errorf("closing insert statement: %w", err)
	}
	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("committing summaries: %w", err)
	}

	rows, err := db.QueryContext(ctx, GroupedQuery)
	if err != nil {
		return nil, fmt.Errorf("querying grouped summary: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var grouped []Summary
	for rows.Next() {
		var summary Summary
		err = rows.Scan(&summary.Working, &summary.Sex, &summary.Age,
			&summary.PrimaryNeeds, &summary.Work, &summary.Other)
		if err != nil {
			return nil, fmt.Errorf("scanning grouped row: %w", err)
		}
		grouped = append(grouped, summary)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("reading grouped rows: %w", err)
	}

	return grouped, nil
}
