package bricklayer

import (
	"fmt"
	"io"
	"log"
	"time"
)

// logCategory mirrors the teacher's rcLogCategory: a small closed set of
// message severities collected during a build (here, a search) rather than
// routed through a general-purpose logging library.
type logCategory int

const (
	logProgress logCategory = iota
	logWarning
)

// SearchLimits bounds the resources a single Solve call may consume. It is
// the YAML-serialisable counterpart of the teacher's BuildSettings: written
// out by "bricklayer config" and read back by "bricklayer solve --config".
type SearchLimits struct {
	// MaxVisited caps the number of distinct PartialPose fingerprints the
	// search will remember. Zero means unlimited.
	MaxVisited int `yaml:"max_visited"`
	// MaxExpansions caps the number of stack pops the search will perform.
	// Zero means unlimited.
	MaxExpansions int `yaml:"max_expansions"`
	// Timeout bounds wall-clock search time. Zero means unlimited.
	Timeout time.Duration `yaml:"timeout"`
	// StepEvery controls how often (in expansions) StepReport fires on the
	// SearchContext. Zero disables periodic reporting.
	StepEvery int `yaml:"step_every"`
}

// DefaultSearchLimits returns the limits "bricklayer config" writes out when
// no file is present, mirroring recast.yml's filled-in defaults.
func DefaultSearchLimits() SearchLimits {
	return SearchLimits{
		MaxVisited:    2_000_000,
		MaxExpansions: 5_000_000,
		Timeout:       30 * time.Second,
		StepEvery:     50_000,
	}
}

// StepInfo is reported to a SearchContext's StepReport callback every
// StepEvery expansions.
type StepInfo struct {
	Expansions   int
	VisitedSize  int
	StackDepth   int
	BestDislikes int
	HaveSolution bool
}

// SearchContext provides optional logging and progress tracking for a
// search run, the way the teacher's rcContext/BuildContext pair provides
// logging and timers for a recast build: a concrete, minimal implementation
// callers can swap out, defaulting to near-silence.
type SearchContext struct {
	logger     *log.Logger
	enableLog  bool
	StepReport func(StepInfo)

	startedAt time.Time
}

// NewSearchContext returns a SearchContext writing to w (io.Discard silences
// it entirely, the package default).
func NewSearchContext(w io.Writer) *SearchContext {
	if w == nil {
		w = io.Discard
	}
	return &SearchContext{logger: log.New(w, "", log.LstdFlags), enableLog: true}
}

func (c *SearchContext) logf(cat logCategory, format string, args ...interface{}) {
	if c == nil || !c.enableLog {
		return
	}
	prefix := "PROG "
	if cat == logWarning {
		prefix = "WARN "
	}
	c.logger.Printf(prefix+format, args...)
}

// Logf records a progress message.
func (c *SearchContext) Logf(format string, args ...interface{}) { c.logf(logProgress, format, args...) }

// Warnf records a warning message.
func (c *SearchContext) Warnf(format string, args ...interface{}) { c.logf(logWarning, format, args...) }

func (c *SearchContext) report(info StepInfo) {
	if c == nil || c.StepReport == nil {
		return
	}
	c.StepReport(info)
}

func (c *SearchContext) start() { c.startedAt = time.Now() }

func (c *SearchContext) elapsed() time.Duration {
	if c == nil || c.startedAt.IsZero() {
		return 0
	}
	return time.Since(c.startedAt)
}

func (c *SearchContext) String() string {
	return fmt.Sprintf("SearchContext(elapsed=%s)", c.elapsed())
}
