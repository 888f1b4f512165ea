package types

// Migration is an embedded SQL migration. SQL holds both directions split by the
// "-- +migrate Down" / "-- +migrate Up" markers, Down first.
type Migration struct {
	ID  string
	SQL string
}
