package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/clock"
	"github.com/cleared-dev/ledger/internal/model"
)

// Store owns the in-memory ledger and mirrors it to a single file.
// It assumes exclusive access to that file for the life of the process.
type Store struct {
	path    string
	clock   clock.Clock
	logger  *slog.Logger
	txns    []model.Transaction
	skipped []MalformedRecordError

	// loadErr is set when an existing ledger could not be read. Writes are
	// refused while it is set so the file on disk is never replaced.
	loadErr error
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp new transactions.
func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithLogger sets the logger that receives load warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// SeedTransactions returns the two rows a new ledger starts with.
func SeedTransactions() []model.Transaction {
	return []model.Transaction{
		{
			Date:        time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC),
			Time:        model.TimeOfDay{Hour: 10, Minute: 13, Second: 25},
			Description: "ergonomic keyboard",
			Vendor:      "Amazon",
			Amount:      decimal.RequireFromString("-89.50"),
		},
		{
			Date:        time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC),
			Time:        model.TimeOfDay{Hour: 11, Minute: 15, Second: 0},
			Description: "Invoice 1001 paid",
			Vendor:      "Joe",
			Amount:      decimal.RequireFromString("1500.00"),
		},
	}
}

// Open loads the ledger at path, creating it with the seed rows if it does
// not exist. Malformed lines are logged and skipped.
//
// On an I/O failure Open still returns a usable, empty Store alongside an
// error wrapping ErrStoreUnavailable. If the file exists but could not be
// read, every later Add or Append fails with that same error.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:   path,
		clock:  clock.System{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, s.seed()
	}
	if err != nil {
		s.loadErr = unavailable("opening", path, err)
		return s, s.loadErr
	}
	defer f.Close()

	txns, skipped, err := ReadTransactions(f)
	if err != nil {
		s.loadErr = unavailable("reading", path, err)
		return s, s.loadErr
	}
	for _, m := range skipped {
		s.logger.Warn("skipping malformed ledger line",
			"path", path, "line", m.Line, "reason", m.Reason.Error())
	}

	s.txns = txns
	s.skipped = skipped
	s.logger.Debug("ledger loaded", "path", path, "transactions", len(txns), "skipped", len(skipped))
	return s, nil
}

func (s *Store) seed() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return unavailable("creating directory for", s.path, err)
	}

	s.txns = SeedTransactions()
	if err := s.save(); err != nil {
		s.txns = nil
		return err
	}
	s.logger.Info("created ledger with sample data", "path", s.path)
	return nil
}

// Add records a new transaction stamped with the store clock and rewrites
// the ledger file. amountText is negated unless isDeposit is set.
// An unparsable amount fails with ErrInvalidAmount before anything changes.
// If the write fails the transaction is dropped from memory as well.
func (s *Store) Add(description, vendor, amountText string, isDeposit bool) (model.Transaction, error) {
	if s.loadErr != nil {
		return model.Transaction{}, s.loadErr
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(amountText))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w %q: %w", ErrInvalidAmount, amountText, err)
	}
	if !isDeposit {
		amount = amount.Neg()
	}

	now := s.clock.Now()
	txn := model.Transaction{
		Date:        model.Day(now),
		Time:        model.TimeOfDayOf(now),
		Description: description,
		Vendor:      vendor,
		Amount:      amount,
	}

	s.txns = append(s.txns, txn)
	if err := s.save(); err != nil {
		s.txns = s.txns[:len(s.txns)-1]
		return model.Transaction{}, err
	}
	return txn, nil
}

// Append records already-dated transactions, such as bank imports, with a
// single rewrite of the ledger file. Nothing is kept if the write fails.
func (s *Store) Append(txns ...model.Transaction) error {
	if s.loadErr != nil {
		return s.loadErr
	}
	if len(txns) == 0 {
		return nil
	}
	n := len(s.txns)
	for _, t := range txns {
		t.Date = model.Day(t.Date)
		s.txns = append(s.txns, t)
	}
	if err := s.save(); err != nil {
		s.txns = s.txns[:n]
		return err
	}
	return nil
}

// save rewrites the whole ledger through a temp file renamed into place, so
// a crash mid-write leaves the previous file intact. The existing file's
// permissions are kept; a new file gets 0644.
func (s *Store) save() error {
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(s.path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return unavailable("creating temp file for", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteTransactions(tmp, s.txns); err != nil {
		tmp.Close()
		return unavailable("writing", s.path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return unavailable("syncing", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return unavailable("closing", s.path, err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return unavailable("setting mode on", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return unavailable("replacing", s.path, err)
	}
	return nil
}

// All returns every transaction, newest first by date then time.
func (s *Store) All() []model.Transaction {
	out := slices.Clone(s.txns)
	slices.SortStableFunc(out, newestFirst)
	return out
}

// Deposits returns transactions with a positive amount, newest first.
func (s *Store) Deposits() []model.Transaction {
	return s.filter(model.Transaction.IsDeposit)
}

// Payments returns transactions with a negative amount, newest first.
func (s *Store) Payments() []model.Transaction {
	return s.filter(model.Transaction.IsPayment)
}

// ByVendor returns transactions whose vendor matches name, ignoring case.
func (s *Store) ByVendor(name string) []model.Transaction {
	return s.filter(func(t model.Transaction) bool {
		return strings.EqualFold(t.Vendor, name)
	})
}

// ByDateRange returns transactions dated between start and end, both
// inclusive. Only the calendar dates of start and end are used.
func (s *Store) ByDateRange(start, end time.Time) []model.Transaction {
	start, end = model.Day(start), model.Day(end)
	return s.filter(func(t model.Transaction) bool {
		return !t.Date.Before(start) && !t.Date.After(end)
	})
}

// Skipped returns the lines dropped as malformed when the ledger was opened.
func (s *Store) Skipped() []MalformedRecordError {
	return s.skipped
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Len returns the number of transactions held.
func (s *Store) Len() int { return len(s.txns) }

func (s *Store) filter(keep func(model.Transaction) bool) []model.Transaction {
	var out []model.Transaction
	for _, t := range s.All() {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func newestFirst(a, b model.Transaction) int {
	switch {
	case b.Before(a):
		return -1
	case a.Before(b):
		return 1
	}
	return 0
}
