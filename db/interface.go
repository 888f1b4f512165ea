package db

import "database/sql"

// Querier is satisfied by both *sql.DB and *Tx so readers can run inside or outside a tx
type Querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
