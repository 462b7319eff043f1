package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/openalabama/courtrecords/internal/records"
)

// Store persists archives and parsed tables in a SQL database. The same
// schema and statements serve both supported engines; only placeholder
// syntax differs, handled by bind.
type Store struct {
	db       *sql.DB
	postgres bool
}

const storeSchema = `
CREATE TABLE IF NOT EXISTS archive (
	path      TEXT NOT NULL,
	body      TEXT NOT NULL,
	retrieved DOUBLE PRECISION NOT NULL
);
CREATE TABLE IF NOT EXISTS cases (
	case_number       TEXT NOT NULL,
	name              TEXT NOT NULL,
	retrieved         TEXT NOT NULL,
	court_action      TEXT NOT NULL,
	court_action_date TEXT NOT NULL,
	total_amt_due     DOUBLE PRECISION NOT NULL,
	total_amt_paid    DOUBLE PRECISION NOT NULL,
	total_balance     DOUBLE PRECISION NOT NULL,
	payment_to_restore DOUBLE PRECISION NOT NULL
);
CREATE TABLE IF NOT EXISTS charges (
	case_number       TEXT NOT NULL,
	num               TEXT NOT NULL,
	code              TEXT NOT NULL,
	description       TEXT NOT NULL,
	type_description  TEXT NOT NULL,
	category          TEXT NOT NULL,
	court_action      TEXT NOT NULL,
	court_action_date TEXT NOT NULL,
	conviction        BOOLEAN NOT NULL,
	felony            BOOLEAN NOT NULL,
	cerv_disq_charge        BOOLEAN NOT NULL,
	cerv_disq_conviction    BOOLEAN NOT NULL,
	pardon_disq_charge      BOOLEAN NOT NULL,
	pardon_disq_conviction  BOOLEAN NOT NULL,
	permanent_disq_charge     BOOLEAN NOT NULL,
	permanent_disq_conviction BOOLEAN NOT NULL
);
CREATE TABLE IF NOT EXISTS fees (
	case_number TEXT NOT NULL,
	total_row   BOOLEAN NOT NULL,
	admin_fee   TEXT NOT NULL,
	fee_status  TEXT NOT NULL,
	code        TEXT NOT NULL,
	payor       TEXT NOT NULL,
	payee       TEXT NOT NULL,
	amt_due     DOUBLE PRECISION,
	amt_paid    DOUBLE PRECISION,
	balance     DOUBLE PRECISION NOT NULL,
	amt_hold    DOUBLE PRECISION
);`

func newStore(db *sql.DB, postgres bool) (*Store, error) {
	s := &Store{db: db, postgres: postgres}
	for _, stmt := range strings.Split(storeSchema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("initializing schema: %w", err)
		}
	}
	return s, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// bind rewrites ? placeholders to $n for postgres.
func (s *Store) bind(query string) string {
	if !s.postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SaveArchive appends the archive's documents.
func (s *Store) SaveArchive(ctx context.Context, a *Archive) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("saving archive: %w", err)
	}
	defer tx.Rollback()

	q := s.bind(`INSERT INTO archive (path, body, retrieved) VALUES (?, ?, ?)`)
	for _, c := range a.Cases {
		if _, err := tx.ExecContext(ctx, q, c.Path, c.Text, c.Timestamp); err != nil {
			return fmt.Errorf("saving archive row %s: %w", c.Path, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("saving archive: %w", err)
	}
	return nil
}

// LoadArchive reads every archived document back, in insertion order.
func (s *Store) LoadArchive(ctx context.Context) (*Archive, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, body, retrieved FROM archive`)
	if err != nil {
		return nil, fmt.Errorf("loading archive: %w", err)
	}
	defer rows.Close()

	a := &Archive{}
	for rows.Next() {
		var c records.RawCase
		if err := rows.Scan(&c.Path, &c.Text, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("loading archive: %w", err)
		}
		a.Cases = append(a.Cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading archive: %w", err)
	}
	return a, nil
}

// SaveTables writes the three parsed tables in one transaction.
func (s *Store) SaveTables(ctx context.Context, cases []records.CaseRecord, charges []records.ChargeRecord, fees []records.FeeRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("saving tables: %w", err)
	}
	defer tx.Rollback()

	caseQ := s.bind(`INSERT INTO cases (case_number, name, retrieved,
		court_action, court_action_date, total_amt_due, total_amt_paid,
		total_balance, payment_to_restore)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	for _, c := range cases {
		if _, err := tx.ExecContext(ctx, caseQ, c.CaseNumber, c.Name,
			c.Retrieved, c.CourtAction, c.CourtActionDate, c.TotalAmtDue,
			c.TotalAmtPaid, c.TotalBalance, c.PaymentToRestore); err != nil {
			return fmt.Errorf("saving case %s: %w", c.CaseNumber, err)
		}
	}

	chargeQ := s.bind(`INSERT INTO charges (case_number, num, code,
		description, type_description, category, court_action,
		court_action_date, conviction, felony, cerv_disq_charge,
		cerv_disq_conviction, pardon_disq_charge, pardon_disq_conviction,
		permanent_disq_charge, permanent_disq_conviction)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	for _, c := range charges {
		if _, err := tx.ExecContext(ctx, chargeQ, c.CaseNumber, c.Num,
			c.Code, c.Description, c.TypeDescription, c.Category,
			c.CourtAction, c.CourtActionDate, c.Conviction, c.Felony,
			c.CERVDisqCharge, c.CERVDisqConviction, c.PardonDisqCharge,
			c.PardonDisqConviction, c.PermanentDisqCharge,
			c.PermanentDisqConviction); err != nil {
			return fmt.Errorf("saving charge %s %s: %w", c.CaseNumber, c.Num, err)
		}
	}

	feeQ := s.bind(`INSERT INTO fees (case_number, total_row, admin_fee,
		fee_status, code, payor, payee, amt_due, amt_paid, balance, amt_hold)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	for _, f := range fees {
		if _, err := tx.ExecContext(ctx, feeQ, f.CaseNumber, f.Total,
			f.AdminFee, f.FeeStatus, f.Code, f.Payor, f.Payee,
			nullable(f.AmtDue), nullable(f.AmtPaid), f.Balance,
			nullable(f.AmtHold)); err != nil {
			return fmt.Errorf("saving fee %s %s: %w", f.CaseNumber, f.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("saving tables: %w", err)
	}
	return nil
}

func nullable(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
