package importer

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"

	"github.com/example/finance-tracker/internal/logger"
	"github.com/spf13/afero"
)

// ErrFileNotFound is returned when the bulk file does not exist
var ErrFileNotFound = errors.New("bulk transactions file not found")

// Store receives the lines read from a bulk file
type Store interface {
	BulkImport(lines []string) (int, error)
}

// Importer reads category,amount,transaction_type,date lines from a file
type Importer struct {
	fs    afero.Fs
	store Store
	log   *logger.Logger
}

// New returns an importer reading from fs into store
func New(fs afero.Fs, store Store, log *logger.Logger) *Importer {
	return &Importer{fs: fs, store: store, log: log.WithComponent("importer")}
}

// ImportFile imports every line of path. It returns how many lines were
// appended before the import finished or stopped.
func (i *Importer) ImportFile(path string) (int, error) {
	lines, err := i.readLines(path)
	if err != nil {
		return 0, err
	}

	n, err := i.store.BulkImport(lines)
	if err != nil {
		return n, fmt.Errorf("import %s: %w", path, err)
	}

	i.log.Infow("Bulk import complete", "path", path, "transactions", n)
	return n, nil
}

func (i *Importer) readLines(path string) ([]string, error) {
	f, err := i.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrFileNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}
