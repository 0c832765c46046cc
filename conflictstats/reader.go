package conflictstats

import (
	"context"
	"database/sql"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
)

// Reader reads recorded sweep results back from an SQLite database.
type Reader struct {
	*sql.DB
}

// NewReader opens the database file path + ".sqlite3" for reading.
func NewReader(path string) *Reader {
	db, err := sql.Open("sqlite3", path+".sqlite3")
	if err != nil {
		panic(err)
	}

	return &Reader{DB: db}
}

// Sweeps returns all recorded sweep results, ordered by mapper and stride.
func (r *Reader) Sweeps(ctx context.Context) ([]SweepResult, error) {
	query := "SELECT Mapper, NumBanks, Stride, Accesses, " +
		"BanksTouched, BusiestCount, ConflictFactor FROM " + sweepTable +
		" ORDER BY Mapper, NumBanks, Stride"

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SweepResult
	for rows.Next() {
		var res SweepResult
		err := rows.Scan(
			&res.Mapper, &res.NumBanks, &res.Stride, &res.Accesses,
			&res.BanksTouched, &res.BusiestCount, &res.ConflictFactor,
		)
		if err != nil {
			return nil, err
		}

		results = append(results, res)
	}

	return results, rows.Err()
}

// Close closes the reader.
func (r *Reader) Close() error {
	return r.DB.Close()
}
