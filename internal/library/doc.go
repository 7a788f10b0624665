// Package library validates library roots and scans them for companion
// metadata coverage.
//
// Types:
//   - ScanResult (Root, Total; Info, Subtitles, Images coverage and Status
//     when Total > 0)
//   - Scanner (walks a go-billy filesystem, one Scan per root)
//   - PathError (ErrUnresolvable, ErrNotExist, ErrNotDir)
//
// Functions:
//   - ValidatePath(raw) → absolute, symlink-resolved directory
//   - Classify(name) → Kind by lowercased extension
//   - StatusFor(avg, palette) → Status tier (85/70 thresholds)
//
// Subtitle and image companions are directory-scoped: one subtitle file or
// cover image in a folder counts for every media file in that folder.
package library
