// Package ledger holds the in-memory transaction store. It is the only place
// transactions are mutated, and every successful mutation is written through
// the repository before the call returns.
//
// Transaction ids are 1-based positions within a category. They are not
// stable: deleting id 2 moves id 3 to 2.
package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/finance-tracker/internal/logger"
	"github.com/example/finance-tracker/pkg/transaction"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrInvalidIndex     = fmt.Errorf("transaction id %w", ErrNotFound)
)

// Repository loads and saves the whole book
type Repository interface {
	Load() *transaction.Book
	Save(book *transaction.Book) error
}

// Patch carries the fields of an update. Nil fields keep their current value.
type Patch struct {
	Amount *float64
	Type   *transaction.Type
	Date   *string
}

// DeleteResult tells what a delete removed
type DeleteResult int

const (
	DeletedTransaction DeleteResult = iota
	DeletedCategory
)

// Store owns the transaction book
type Store struct {
	book *transaction.Book
	repo Repository
	log  *logger.Logger
}

// Open loads the book from repo
func Open(repo Repository, log *logger.Logger) *Store {
	return &Store{
		book: repo.Load(),
		repo: repo,
		log:  log.WithComponent("ledger"),
	}
}

// NormalizeCategory is the key form every category is stored under
func NormalizeCategory(category string) string {
	return strings.ToLower(category)
}

// Add validates and appends a transaction to the category
func (s *Store) Add(category string, amount float64, typ transaction.Type, date string) error {
	category = NormalizeCategory(category)

	tx := transaction.Transaction{Amount: amount, Type: typ, Date: date}
	if err := tx.Validate(); err != nil {
		return err
	}

	s.book.Append(category, tx)
	if err := s.save(); err != nil {
		return err
	}

	s.log.Debugw("Transaction added", "category", category, "amount", amount, "type", typ, "date", date)
	return nil
}

// List returns a snapshot of every category in insertion order
func (s *Store) List() []transaction.Group {
	return s.book.Groups()
}

// Book returns a copy of the whole book
func (s *Store) Book() *transaction.Book {
	return s.book.Clone()
}

// IsEmpty reports whether there are no categories at all
func (s *Store) IsEmpty() bool {
	return s.book.Len() == 0
}

// Has reports whether the category exists
func (s *Store) Has(category string) bool {
	return s.book.Has(NormalizeCategory(category))
}

// Update replaces the fields set in patch on transaction id of category
func (s *Store) Update(category string, id int, patch Patch) error {
	category = NormalizeCategory(category)

	list, ok := s.book.Transactions(category)
	if !ok {
		return fmt.Errorf("%q: %w", category, ErrCategoryNotFound)
	}
	if id < 1 || id > len(list) {
		return fmt.Errorf("%d in %q: %w", id, category, ErrInvalidIndex)
	}

	tx := list[id-1]
	if patch.Amount != nil {
		tx.Amount = *patch.Amount
	}
	if patch.Type != nil {
		tx.Type = *patch.Type
	}
	if patch.Date != nil {
		tx.Date = *patch.Date
	}
	if err := tx.Validate(); err != nil {
		return err
	}

	s.book.Set(category, id-1, tx)
	if err := s.save(); err != nil {
		return err
	}

	s.log.Debugw("Transaction updated", "category", category, "id", id)
	return nil
}

// Delete removes transaction id from category. When the category is already
// empty the category itself is removed and id is ignored.
func (s *Store) Delete(category string, id int) (DeleteResult, error) {
	category = NormalizeCategory(category)

	list, ok := s.book.Transactions(category)
	if !ok {
		return 0, fmt.Errorf("%q: %w", category, ErrCategoryNotFound)
	}

	if len(list) == 0 {
		s.book.Remove(category)
		if err := s.save(); err != nil {
			return 0, err
		}
		s.log.Debugw("Category deleted", "category", category)
		return DeletedCategory, nil
	}

	if id < 1 || id > len(list) {
		return 0, fmt.Errorf("%d in %q: %w", id, category, ErrInvalidIndex)
	}

	s.book.RemoveAt(category, id-1)
	if err := s.save(); err != nil {
		return 0, err
	}

	s.log.Debugw("Transaction deleted", "category", category, "id", id)
	return DeletedTransaction, nil
}

// BulkImport appends one transaction per line and saves once at the end.
//
// A malformed line stops the import. Lines before it stay appended in memory
// but are not saved; the next successful mutation persists them.
func (s *Store) BulkImport(lines []string) (int, error) {
	for i, line := range lines {
		category, tx, err := transaction.ParseRecord(line)
		if err != nil {
			s.log.WithError(err).Warnw("Bulk import aborted", "line", i+1, "appended_unsaved", i)
			return i, fmt.Errorf("line %d: %w", i+1, err)
		}
		s.book.Append(category, tx)
	}

	if err := s.save(); err != nil {
		return len(lines), err
	}

	s.log.Debugw("Bulk import finished", "transactions", len(lines))
	return len(lines), nil
}

func (s *Store) save() error {
	if err := s.repo.Save(s.book); err != nil {
		s.log.WithError(err).Errorw("Failed to save transactions")
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}
