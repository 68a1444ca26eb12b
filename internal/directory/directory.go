// Package directory reads the externally-owned school account database.
// This side only ever queries; the web application owns the schema and all
// writes. Every query opens its own read-only connection so no connection
// state is carried between report runs.
package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// UnknownName is the display name substituted when a lookup degrades.
const UnknownName = "Unknown"

// Record is one account row with named fields. The column order in the
// upstream schema is (id, email, password_hash, name, role, student_class,
// balance, ...); legacy consumers addressed name/role/class by positions
// 3/4/5, so the select list below must stay aligned with that schema while
// both systems run.
type Record struct {
	ID           int64   `db:"id"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password_hash"`
	Name         string  `db:"name"`
	Role         string  `db:"role"`
	Class        string  `db:"student_class"`
	Balance      float64 `db:"balance"`
}

const (
	selectColumns = `SELECT id, email, password_hash, name, role,
		COALESCE(student_class, '') AS student_class,
		COALESCE(balance, 0) AS balance
	FROM user`
	selectByID      = selectColumns + ` WHERE id = ?`
	selectAllByRank = selectColumns + ` ORDER BY id`
)

// Directory resolves user records from the school database at dbPath.
type Directory struct {
	dbPath string
}

// New returns a directory reading the SQLite database at dbPath. The file is
// not touched until the first query.
func New(dbPath string) *Directory {
	return &Directory{dbPath: dbPath}
}

func (d *Directory) open() (*sqlx.DB, error) {
	return sqlx.Connect("sqlite", "file:"+d.dbPath+"?mode=ro")
}

// Resolution is the outcome of a display-name lookup: either a record, or a
// degraded marker when the store was unreachable or had no matching row.
// Degraded lookups are a recoverable condition, not an error: reports must
// still generate when account metadata is partially available.
type Resolution struct {
	Record   *Record
	Degraded bool
}

// DisplayName returns the resolved name, or UnknownName when degraded.
func (r Resolution) DisplayName() string {
	if r.Degraded || r.Record == nil {
		return UnknownName
	}
	return r.Record.Name
}

// ResolveDisplayName looks up a record by its absolute identifier. Failures
// degrade to an Unknown resolution and are logged, never propagated.
//
// Note the contrast with ResolveByRank: the argument here is the record's
// own id, not a 1-based rank.
func (d *Directory) ResolveDisplayName(ctx context.Context, id int64) Resolution {
	db, err := d.open()
	if err != nil {
		log.Printf("directory: lookup for user id %d degraded: %v", id, err)
		return Resolution{Degraded: true}
	}
	defer db.Close()

	var rec Record
	if err := db.GetContext(ctx, &rec, selectByID, id); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("directory: lookup for user id %d degraded: %v", id, err)
		} else {
			log.Printf("directory: no record for user id %d", id)
		}
		return Resolution{Degraded: true}
	}
	return Resolution{Record: &rec}
}

var rankToken = regexp.MustCompile(`^user([0-9]+)$`)

// ResolveByRank resolves a ledger user token to a record. A "userN" token is
// a 1-based rank into all records ordered by ascending id — the Nth account,
// not the account whose id is N. A bare integer token gets the same rank
// reading (preserved upstream behavior; see DESIGN.md). Any other token
// shape, an out-of-range rank, or a store failure yields nil; store failures
// are logged and never propagated.
func (d *Directory) ResolveByRank(ctx context.Context, token string) *Record {
	rank, ok := parseRank(token)
	if !ok {
		return nil
	}

	db, err := d.open()
	if err != nil {
		log.Printf("directory: lookup for token %q degraded: %v", token, err)
		return nil
	}
	defer db.Close()

	var recs []Record
	if err := db.SelectContext(ctx, &recs, selectAllByRank); err != nil {
		log.Printf("directory: lookup for token %q degraded: %v", token, err)
		return nil
	}
	if rank < 1 || rank > len(recs) {
		return nil
	}
	return &recs[rank-1]
}

func parseRank(token string) (int, bool) {
	if m := rankToken.FindStringSubmatch(token); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return n, true
	}
	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	return 0, false
}

// LoadPrices reads the dish price table from the menu_item table of the same
// database. Unlike the user lookups this does propagate failure: the caller
// decides whether to fall back to a default table.
func (d *Directory) LoadPrices(ctx context.Context) (map[string]float64, error) {
	db, err := d.open()
	if err != nil {
		return nil, fmt.Errorf("open menu price source: %w", err)
	}
	defer db.Close()

	var rows []struct {
		Name  string  `db:"name"`
		Price float64 `db:"price"`
	}
	if err := db.SelectContext(ctx, &rows, `SELECT name, price FROM menu_item`); err != nil {
		return nil, fmt.Errorf("query menu prices: %w", err)
	}

	prices := make(map[string]float64, len(rows))
	for _, row := range rows {
		prices[row.Name] = row.Price
	}
	return prices, nil
}
