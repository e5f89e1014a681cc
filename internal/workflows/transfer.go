package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/holecard/internal/audit"
	"github.com/PolarWolf314/holecard/internal/deck"
	herrors "github.com/PolarWolf314/holecard/internal/errors"
	"github.com/PolarWolf314/holecard/internal/storage"
)

// ExportOptions configures the export workflow.
type ExportOptions struct {
	// OutPath is where the encrypted export file lands.
	OutPath string

	// ExportPassword protects the export file. Independent of the master
	// password; anyone holding it (and nothing else) can import the file.
	ExportPassword string

	// Password supplies the master password when no session is live.
	Password PasswordFunc
}

// ExportResult contains the outcome of an export operation.
type ExportResult struct {
	OutPath    string
	HandsCount int
}

// Export writes the active deck as a portable encrypted file keyed by the
// export password alone.
func Export(ctx context.Context, dc *DeckContext, opts ExportOptions) (*ExportResult, error) {
	if opts.ExportPassword == "" {
		return nil, fmt.Errorf("%w: export password must not be empty", herrors.ErrInvalidInput)
	}

	d, info, err := dc.loadActive(opts.Password)
	if err != nil {
		return nil, err
	}

	envelope, err := deck.EncodeExport(d, opts.ExportPassword)
	if err != nil {
		return nil, err
	}

	if err := storage.WriteAtomic(opts.OutPath, envelope); err != nil {
		return nil, err
	}

	result := &ExportResult{OutPath: opts.OutPath, HandsCount: len(d.Hands)}
	audit.Log(dc.Dir, audit.Entry{
		Operation:  "export",
		Deck:       info.Name,
		HandsCount: result.HandsCount,
		OutputPath: opts.OutPath,
	})
	return result, nil
}

// ImportOptions configures the import workflow.
type ImportOptions struct {
	// InPath is the export file to read.
	InPath string

	// ExportPassword decrypts the export file.
	ExportPassword string

	// Overwrite replaces colliding hands instead of skipping them.
	Overwrite bool

	// Password supplies the master password for the mutating merge.
	Password PasswordFunc
}

// ImportResult contains the outcome of an import operation.
type ImportResult struct {
	Imported int
	Skipped  int
}

// Import merges hands from an export file into the active deck. Colliding
// hand names are skipped unless Overwrite is set.
func Import(ctx context.Context, dc *DeckContext, opts ImportOptions) (*ImportResult, error) {
	data, err := os.ReadFile(opts.InPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("export file %q: %w", opts.InPath, herrors.ErrNotFound)
		}
		return nil, fmt.Errorf("reading export file: %w", err)
	}

	incoming, err := deck.DecodeExport(data, opts.ExportPassword)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	info, err := dc.mutateActive(opts.Password, func(d *deck.Deck) error {
		for _, name := range incoming.HandNames() {
			hand, herr := incoming.Hand(name)
			if herr != nil {
				return herr
			}
			if d.ImportHand(name, hand, opts.Overwrite) {
				result.Imported++
			} else {
				result.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	mode := "skip"
	if opts.Overwrite {
		mode = "overwrite"
	}
	audit.Log(dc.Dir, audit.Entry{
		Operation:  "import",
		Deck:       info.Name,
		HandsCount: result.Imported,
		Skipped:    result.Skipped,
		Mode:       mode,
	})
	return result, nil
}
