package lattice

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and face-count metrics.
// Only populated when Engine debug mode is on.
type debugStats struct {
	projectTime time.Duration // world -> camera -> screen for all objects
	drawTime    time.Duration // sort + rasterize + bloom composite
	faceCount   int
	objectCount int
}

// debugLog prints timing and face stats to stderr.
func debugLog(stats debugStats) {
	total := stats.projectTime + stats.drawTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[lattice] project: %v | draw: %v | total: %v\n",
		stats.projectTime, stats.drawTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[lattice] objects: %d | faces drawn: %d\n",
		stats.objectCount, stats.faceCount)
}
