package recast

import (
	"fmt"
	"time"
)

// LogCategory classifies a message recorded through Context.
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota // A progress log entry.
	LogWarning                         // A warning log entry.
	LogError                           // An error log entry.
)

const maxMessages = 1000

// TimerLabel names one of the named stage timers a Context tracks.
type TimerLabel int

const (
	TimerRasterize TimerLabel = iota
	TimerBuildHeightfield
	TimerFilterWalkable
	TimerBuildRegions
	TimerTotal

	maxTimers
)

var timerNames = [maxTimers]string{
	TimerRasterize:        "Rasterize",
	TimerBuildHeightfield: "BuildHeightfield",
	TimerFilterWalkable:   "FilterWalkable",
	TimerBuildRegions:     "BuildRegions",
	TimerTotal:            "Total",
}

// Context carries diagnostics through a pipeline run: a bounded buffer of
// log messages (messages past maxMessages are dropped) and a fixed set of
// named stage timers. Logging and timing are
// independently enabled; a caller that wants timings without the message
// overhead, or vice-versa, can disable either one.
type Context struct {
	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration

	messages    [maxMessages]string
	categories  [maxMessages]LogCategory
	numMessages int

	logEnabled   bool
	timerEnabled bool
}

// NewContext returns a Context with logging and timers both enabled if
// enabled is true, or both disabled if it is false.
func NewContext(enabled bool) *Context {
	return &Context{logEnabled: enabled, timerEnabled: enabled}
}

// EnableLog turns message logging on or off.
func (ctx *Context) EnableLog(state bool) { ctx.logEnabled = state }

// EnableTimer turns stage timing on or off.
func (ctx *Context) EnableTimer(state bool) { ctx.timerEnabled = state }

// ResetLog discards all recorded messages.
func (ctx *Context) ResetLog() {
	if ctx.logEnabled {
		ctx.numMessages = 0
	}
}

// ResetTimers zeroes every accumulated timer.
func (ctx *Context) ResetTimers() {
	if ctx.timerEnabled {
		for i := range ctx.accTime {
			ctx.accTime[i] = 0
		}
	}
}

func (ctx *Context) Progressf(format string, v ...interface{}) { ctx.log(LogProgress, format, v...) }
func (ctx *Context) Warningf(format string, v ...interface{})  { ctx.log(LogWarning, format, v...) }
func (ctx *Context) Errorf(format string, v ...interface{})    { ctx.log(LogError, format, v...) }

func (ctx *Context) log(category LogCategory, format string, v ...interface{}) {
	if ctx.logEnabled && ctx.numMessages < maxMessages {
		ctx.categories[ctx.numMessages] = category
		ctx.messages[ctx.numMessages] = fmt.Sprintf(format, v...)
		ctx.numMessages++
	}
}

// LogCount returns the number of messages currently recorded.
func (ctx *Context) LogCount() int { return ctx.numMessages }

// LogText returns the i-th recorded message, prefixed with its category.
func (ctx *Context) LogText(i int) string {
	prefix := "PROG"
	switch ctx.categories[i] {
	case LogWarning:
		prefix = "WARN"
	case LogError:
		prefix = "ERR "
	}
	return prefix + " " + ctx.messages[i]
}

// DumpLog prints a header followed by every recorded message, one per line.
func (ctx *Context) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for i := 0; i < ctx.numMessages; i++ {
		fmt.Println(ctx.LogText(i))
	}
}

// StartTimer starts the named timer. Starting a running timer restarts it.
func (ctx *Context) StartTimer(label TimerLabel) {
	if ctx.timerEnabled {
		ctx.startTime[label] = time.Now()
	}
}

// StopTimer accumulates elapsed time since the matching StartTimer call.
func (ctx *Context) StopTimer(label TimerLabel) {
	if ctx.timerEnabled {
		ctx.accTime[label] += time.Since(ctx.startTime[label])
	}
}

// AccumulatedTime returns the total time recorded against label, or 0 if
// timers are disabled.
func (ctx *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if !ctx.timerEnabled {
		return 0
	}
	return ctx.accTime[label]
}
