package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/checktree/pkg/logger"
	"github.com/dmitrymomot/checktree/pkg/validator"
)

type fileKey struct{}

// report is the outcome of checking one file.
type report struct {
	Path     string
	Records  int
	Problems []string
}

// checkFile validates every contact of path as an independent branch.
func checkFile(ctx context.Context, log *slog.Logger, path, format string) (report, error) {
	ctx = context.WithValue(ctx, fileKey{}, path)
	r := report{Path: path}

	contacts, err := loadFile(path, format)
	if err != nil {
		return r, err
	}
	r.Records = len(contacts)

	v := validator.New(validator.WithLogger(log))
	for i, c := range contacts {
		v.IsValid(fmt.Sprintf("contacts[%d]", i), c)
		log.DebugContext(ctx, "record registered", logger.Record(c.Identifier()))
	}

	err = v.ValidateContext(ctx)
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		r.Problems = verrs.Messages()
	} else if err != nil {
		return r, err
	}

	log.InfoContext(ctx, "file checked",
		slog.Int("records", r.Records),
		logger.Count(v.Len()),
		logger.Failures(len(r.Problems)),
	)
	return r, nil
}

func (r report) write(w io.Writer) {
	if len(r.Problems) == 0 {
		fmt.Fprintf(w, "%s: %d records, ok\n", r.Path, r.Records)
		return
	}
	fmt.Fprintf(w, "%s: %d records, %d problems\n", r.Path, r.Records, len(r.Problems))
	for _, p := range r.Problems {
		fmt.Fprintf(w, "  - %s\n", p)
	}
}
