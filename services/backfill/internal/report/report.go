// Package report renders backfill results for a terminal.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/services/backfill/internal/backfill"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"go.uber.org/zap"
)

// Render writes the per-employer table followed by a one-line summary.
func Render(w io.Writer, r *backfill.Report) error {
	data := pterm.TableData{
		{"Employer", "Scanned", "Matched", "Updated", "Failed", "Skipped"},
	}
	for _, c := range r.Employers {
		data = append(data, row(c.Employer, c))
	}
	data = append(data, row("TOTAL", r.Total))

	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render report table: %w", err)
	}

	mode := "preview (no changes written, pass --save to write)"
	if r.Save {
		mode = "save"
	}
	_, err = fmt.Fprintf(w, "%s\nmode: %s, finished in %s\n", table, mode, r.Duration.Round(time.Millisecond))
	return err
}

func row(label string, c backfill.Counts) []string {
	return []string{
		label,
		humanize.Comma(int64(c.Scanned)),
		humanize.Comma(int64(c.Matched)),
		humanize.Comma(int64(c.Updated)),
		humanize.Comma(int64(c.Failed)),
		humanize.Comma(int64(c.Skipped)),
	}
}

// Log writes one structured line per employer and one for the totals.
func Log(logger *zap.Logger, r *backfill.Report) {
	for _, c := range r.Employers {
		logger.Info("backfill employer result", fields(c)...)
	}
	logger.Info("backfill complete", append(fields(r.Total),
		zap.Bool("save", r.Save),
		zap.Duration("duration", r.Duration))...)
}

func fields(c backfill.Counts) []zap.Field {
	return []zap.Field{
		zap.String("employer", c.Employer),
		zap.Int("scanned", c.Scanned),
		zap.Int("matched", c.Matched),
		zap.Int("updated", c.Updated),
		zap.Int("failed", c.Failed),
		zap.Int("skipped", c.Skipped),
	}
}

type barProgress struct {
	out io.Writer
	bar *pb.ProgressBar
}

// NewProgress returns a pb progress bar writing to out, or a silent tracker
// when quiet is set.
func NewProgress(out io.Writer, quiet bool) backfill.Progress {
	if quiet {
		return nopProgress{}
	}
	return &barProgress{out: out}
}

func (p *barProgress) Start(total int) {
	p.bar = pb.New(total).SetWriter(p.out)
	p.bar.Start()
}

func (p *barProgress) Increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *barProgress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}

type nopProgress struct{}

func (nopProgress) Start(int)  {}
func (nopProgress) Increment() {}
func (nopProgress) Finish()    {}
