package recast

import "time"

func logLine(ctx *Context, label TimerLabel, pc float64) {
	t := ctx.AccumulatedTime(label)
	ctx.Progressf("- %s:\t%.2fms\t(%.1f%%)", timerNames[label], float64(t)/float64(time.Millisecond), float64(t)*pc)
}

// LogBuildTimes writes one progress line per pipeline stage timer, each as
// a percentage of totalTime, followed by a closing total line.
func LogBuildTimes(ctx *Context, totalTime time.Duration) {
	pc := 100.0 / float64(totalTime)
	ctx.Progressf("Build Times")
	logLine(ctx, TimerRasterize, pc)
	logLine(ctx, TimerBuildHeightfield, pc)
	logLine(ctx, TimerFilterWalkable, pc)
	logLine(ctx, TimerBuildRegions, pc)
	ctx.Progressf("=== TOTAL:\t%v", totalTime)
}
