// Package pipeline orchestrates path validation, concurrent library scans,
// and report rendering.
//
// Run validates every requested path, drops invalid ones with a notice,
// then scans the rest on a bounded pool (at most cfg.MaxWorkers at once)
// and prints each report as its scan completes. Print order is completion
// order, not argument order.
package pipeline
