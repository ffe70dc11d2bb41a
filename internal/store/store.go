// Package store persists revenue and expense records in SQLite.
package store

import (
	"database/sql"
	"fmt"

	"github.com/Goulart21/gestao-frota/pkg/constants"
	"github.com/Goulart21/gestao-frota/pkg/ledger"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is the SQLite-backed ledger store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the ledger database.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertRevenue stores one day's total hours-worked revenue for a machine.
func (s *Store) InsertRevenue(machine string, amount float64, workDate string) error {
	_, err := s.db.Exec(`INSERT INTO entradas (maquina, tipo, valor, data_registro)
		VALUES (?, ?, ?, ?)`,
		machine, constants.RevenueKindHoursWorked, amount, workDate,
	)
	if err != nil {
		return fmt.Errorf("inserting revenue: %w", err)
	}
	return nil
}

// InsertExpense stores one expense record.
func (s *Store) InsertExpense(title string, amount float64, firstDate string, recurring bool, frequency ledger.Frequency) error {
	recurringInt := 0
	if recurring {
		recurringInt = 1
	}
	_, err := s.db.Exec(`INSERT INTO despesas (titulo, valor, data_saida, recorrente, frequencia)
		VALUES (?, ?, ?, ?, ?)`,
		title, amount, firstDate, recurringInt, string(frequency),
	)
	if err != nil {
		return fmt.Errorf("inserting expense: %w", err)
	}
	return nil
}

// AllExpenses returns every stored expense record.
func (s *Store) AllExpenses() ([]ledger.ExpenseEntry, error) {
	rows, err := s.db.Query(`SELECT titulo, valor, data_saida, recorrente, frequencia FROM despesas`)
	if err != nil {
		return nil, fmt.Errorf("querying expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanExpenses(rows)
}

// RevenueTotalsByDate returns the summed hours-worked revenue per work date.
func (s *Store) RevenueTotalsByDate() ([]ledger.RevenueTotal, error) {
	rows, err := s.db.Query(`SELECT data_registro, SUM(valor)
		FROM entradas
		WHERE tipo = ?
		GROUP BY data_registro`, constants.RevenueKindHoursWorked)
	if err != nil {
		return nil, fmt.Errorf("querying revenue totals: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanRevenueTotals(rows)
}

// Snapshot reads all expenses and the grouped revenue totals inside a single
// transaction so the two result sets are consistent with each other.
func (s *Store) Snapshot() (ledger.Snapshot, error) {
	var snap ledger.Snapshot

	tx, err := s.db.Begin()
	if err != nil {
		return snap, fmt.Errorf("starting snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	expRows, err := tx.Query(`SELECT titulo, valor, data_saida, recorrente, frequencia FROM despesas`)
	if err != nil {
		return snap, fmt.Errorf("querying expenses: %w", err)
	}
	snap.Expenses, err = scanExpenses(expRows)
	_ = expRows.Close()
	if err != nil {
		return snap, err
	}

	revRows, err := tx.Query(`SELECT data_registro, SUM(valor)
		FROM entradas
		WHERE tipo = ?
		GROUP BY data_registro`, constants.RevenueKindHoursWorked)
	if err != nil {
		return snap, fmt.Errorf("querying revenue totals: %w", err)
	}
	snap.RevenueTotals, err = scanRevenueTotals(revRows)
	_ = revRows.Close()
	if err != nil {
		return snap, err
	}

	if err := tx.Commit(); err != nil {
		return snap, fmt.Errorf("closing snapshot: %w", err)
	}
	return snap, nil
}

func scanExpenses(rows *sql.Rows) ([]ledger.ExpenseEntry, error) {
	var entries []ledger.ExpenseEntry
	for rows.Next() {
		var e ledger.ExpenseEntry
		var recurring int
		var frequency sql.NullString
		if err := rows.Scan(&e.Title, &e.Amount, &e.FirstDate, &recurring, &frequency); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}
		e.Recurring = recurring != 0
		e.Frequency = ledger.Frequency(frequency.String)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanRevenueTotals(rows *sql.Rows) ([]ledger.RevenueTotal, error) {
	var totals []ledger.RevenueTotal
	for rows.Next() {
		var rt ledger.RevenueTotal
		if err := rows.Scan(&rt.Date, &rt.Amount); err != nil {
			return nil, fmt.Errorf("scanning revenue total: %w", err)
		}
		totals = append(totals, rt)
	}
	return totals, rows.Err()
}
