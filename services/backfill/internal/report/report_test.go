package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/services/backfill/internal/backfill"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func sampleReport(save bool) *backfill.Report {
	return &backfill.Report{
		Save: save,
		Employers: []backfill.Counts{
			{Employer: "mercy-health", Scanned: 1200, Matched: 1100, Updated: 1100, Skipped: 100},
			{Employer: "ohio-health", Scanned: 3, Matched: 1, Updated: 0, Failed: 1, Skipped: 2},
		},
		Total:    backfill.Counts{Scanned: 1203, Matched: 1101, Updated: 1100, Failed: 1, Skipped: 102},
		Duration: 1500 * time.Millisecond,
	}
}

func TestRender(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(true)))

	out := buf.String()
	assert.Contains(t, out, "mercy-health")
	assert.Contains(t, out, "ohio-health")
	assert.Contains(t, out, "1,200")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "mode: save")
	assert.Contains(t, out, "1.5s")
}

func TestRender_Preview(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(false)))
	assert.Contains(t, buf.String(), "pass --save to write")
}

func TestLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Log(zap.New(core), sampleReport(true))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "mercy-health", entries[0].ContextMap()["employer"])
	assert.Equal(t, int64(1100), entries[0].ContextMap()["updated"])
	assert.Equal(t, "backfill complete", entries[2].Message)
	assert.Equal(t, true, entries[2].ContextMap()["save"])
}

func TestNewProgress(t *testing.T) {
	quiet := NewProgress(&bytes.Buffer{}, true)
	quiet.Start(3)
	quiet.Increment()
	quiet.Finish()
	assert.IsType(t, nopProgress{}, quiet)

	var buf bytes.Buffer
	bar := NewProgress(&buf, false)
	bar.Start(2)
	bar.Increment()
	bar.Increment()
	bar.Finish()
	assert.IsType(t, &barProgress{}, bar)
}
