package pipeline

// RunStats tracks aggregate counters across one invocation.
type RunStats struct {
	Requested  int // Paths given on the command line.
	Valid      int
	Invalid    int
	Scanned    int // Scans that produced a report.
	Failed     int // Scans aborted by a filesystem error.
	MediaFiles int // Media files across all scanned libraries.
}
