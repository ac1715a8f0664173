package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/prabinsunar/library-app/internal/config"
	"github.com/prabinsunar/library-app/internal/database/integrity"
	"github.com/prabinsunar/library-app/internal/tasks"
)

// ErrDanglingReferences is returned when the check finds references it did not repair.
var ErrDanglingReferences = errors.New("catalog has dangling references")

type CheckIntegrityCommand struct {
	Database DatabaseFlags
	Repair   bool
	JSON     bool

	out io.Writer
}

func NewCheckIntegrityCommand() *CheckIntegrityCommand {
	return &CheckIntegrityCommand{out: os.Stdout}
}

func (cmd *CheckIntegrityCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("check-integrity", flag.ContinueOnError)

	cmd.Database.register(fs, config.NewConfig())
	fs.BoolVar(&cmd.Repair, "repair", false, "Remove genre references that point to missing genres")
	fs.BoolVar(&cmd.JSON, "json", false, "Print the report as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s check-integrity [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Report references to authors, genres and books that no longer exist.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s check-integrity\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s check-integrity --repair --db ./library.db\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *CheckIntegrityCommand) Run() error {
	db, err := cmd.Database.open()
	if err != nil {
		return err
	}
	defer db.Close()

	report, repaired, err := tasks.RunIntegrityCheck(context.Background(), integrity.NewRepository(db.DB), cmd.Repair)
	if err != nil {
		return err
	}

	if cmd.JSON {
		enc := json.NewEncoder(cmd.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			*integrity.Report
			Repaired int64 `json:"repaired"`
		}{report, repaired}); err != nil {
			return err
		}
	} else {
		cmd.printReport(report, repaired)
	}

	remaining := report.Total() - int(repaired)
	if remaining > 0 {
		return fmt.Errorf("%w: %d left", ErrDanglingReferences, remaining)
	}
	return nil
}

func (cmd *CheckIntegrityCommand) printReport(report *integrity.Report, repaired int64) {
	fmt.Fprintf(cmd.out, "=== Integrity Report ===\n")
	fmt.Fprintf(cmd.out, "Books without author: %d\n", len(report.BooksWithoutAuthor))
	for _, id := range report.BooksWithoutAuthor {
		fmt.Fprintf(cmd.out, "  book %s\n", id)
	}
	fmt.Fprintf(cmd.out, "Missing genre references: %d\n", len(report.DanglingGenreRefs))
	for _, ref := range report.DanglingGenreRefs {
		fmt.Fprintf(cmd.out, "  book %s -> genre %s\n", ref.BookID, ref.GenreID)
	}
	fmt.Fprintf(cmd.out, "Copies without book: %d\n", len(report.CopiesWithoutBook))
	for _, id := range report.CopiesWithoutBook {
		fmt.Fprintf(cmd.out, "  copy %s\n", id)
	}
	if repaired > 0 {
		fmt.Fprintf(cmd.out, "Removed %d genre references\n", repaired)
	}
	if report.Clean() {
		fmt.Fprintf(cmd.out, "No dangling references found\n")
	}
}
