package conflictstats

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/structs"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

const sweepTable = "stride_sweep"

// Recorder persists stride-sweep results into an SQLite database.
type Recorder struct {
	*sql.DB

	dbName    string
	pending   []SweepResult
	batchSize int
}

// NewRecorder creates a Recorder backed by the database file path +
// ".sqlite3". An empty path picks a generated name. Buffered results are
// flushed at exit.
func NewRecorder(path string) *Recorder {
	r := &Recorder{
		dbName:    path,
		batchSize: 1024,
	}

	r.init()

	atexit.Register(func() { r.Flush() })

	return r
}

func (r *Recorder) init() {
	if r.dbName == "" {
		r.dbName = "bankhash_sweep_" + xid.New().String()
	}

	filename := r.dbName + ".sqlite3"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Database created for recording: %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	r.DB = db
	r.createTable()
}

func (r *Recorder) createTable() {
	fields := strings.Join(structs.Names(SweepResult{}), ", \n\t")

	createTableSQL := `CREATE TABLE ` + sweepTable +
		` (` + "\n\t" + fields + "\n" + `);`
	r.mustExecute(createTableSQL)
}

// Record buffers one sweep result for insertion.
func (r *Recorder) Record(result SweepResult) {
	r.pending = append(r.pending, result)

	if len(r.pending) >= r.batchSize {
		r.Flush()
	}
}

// Flush writes all buffered results into the database.
func (r *Recorder) Flush() {
	if len(r.pending) == 0 {
		return
	}

	r.mustExecute("BEGIN TRANSACTION")
	defer r.mustExecute("COMMIT TRANSACTION")

	stmt := r.prepareInsert()
	defer stmt.Close()

	for _, result := range r.pending {
		_, err := stmt.Exec(structs.Values(result)...)
		if err != nil {
			panic(err)
		}
	}

	r.pending = nil
}

func (r *Recorder) prepareInsert() *sql.Stmt {
	n := structs.Names(SweepResult{})
	for i := range n {
		n[i] = "?"
	}

	sqlStr := "INSERT INTO " + sweepTable +
		" VALUES (" + strings.Join(n, ", ") + ")"

	stmt, err := r.Prepare(sqlStr)
	if err != nil {
		panic(err)
	}

	return stmt
}

func (r *Recorder) mustExecute(query string) sql.Result {
	res, err := r.Exec(query)
	if err != nil {
		fmt.Printf("Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}
