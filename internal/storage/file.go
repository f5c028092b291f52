// Package storage persists the transaction book as a single JSON document.
//
// The document has one field, "transactions", holding the categories in
// insertion order. Writes overwrite the file in place; a crash in the middle
// of a write can leave a truncated file, which the next Load treats as empty.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/example/finance-tracker/internal/logger"
	"github.com/example/finance-tracker/pkg/transaction"
	"github.com/spf13/afero"
)

type document struct {
	Transactions *transaction.Book `json:"transactions"`
}

// FileRepository reads and writes the book on an afero file system
type FileRepository struct {
	fs   afero.Fs
	path string
	log  *logger.Logger
}

// NewFileRepository returns a repository for path on fs
func NewFileRepository(fs afero.Fs, path string, log *logger.Logger) *FileRepository {
	return &FileRepository{
		fs:   fs,
		path: path,
		log:  log.WithComponent("storage").WithFields("path", path),
	}
}

// Path returns the file the repository writes to
func (r *FileRepository) Path() string {
	return r.path
}

// Load returns the persisted book. A missing or unreadable file yields an
// empty book; the reason is only logged.
func (r *FileRepository) Load() *transaction.Book {
	book, err := r.read()
	switch {
	case err == nil:
		r.log.Debugw("Transactions loaded", "categories", book.Len(), "transactions", book.Count())
		return book
	case errors.Is(err, fs.ErrNotExist):
		r.log.Infow("No transactions file, starting empty")
	default:
		r.log.WithError(err).Warnw("Transactions file is unreadable, starting empty")
	}
	return transaction.NewBook()
}

func (r *FileRepository) read() (*transaction.Book, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		return nil, err
	}

	doc := document{Transactions: transaction.NewBook()}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	if doc.Transactions == nil {
		return transaction.NewBook(), nil
	}
	return doc.Transactions, nil
}

// Save overwrites the file with the full book
func (r *FileRepository) Save(book *transaction.Book) error {
	data, err := json.Marshal(document{Transactions: book})
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	if err := afero.WriteFile(r.fs, r.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	r.log.Debugw("Transactions saved", "categories", book.Len(), "bytes", len(data))
	return nil
}
