package library

import (
	"path/filepath"
	"strings"
)

// Kind classifies a file by its extension.
type Kind int

const (
	KindOther Kind = iota
	KindMedia
	KindSubtitle
	KindImage
	KindInfo
)

// InfoExt is the extension of the sidecar metadata file.
const InfoExt = ".nfo"

// Supported extensions (lowercase, with leading dot).
var (
	mediaExtensions = map[string]bool{
		".mkv":  true,
		".mp4":  true,
		".avi":  true,
		".mov":  true,
		".wmv":  true,
		".flv":  true,
		".mpeg": true,
		".mpg":  true,
		".m4v":  true,
	}
	subtitleExtensions = map[string]bool{
		".srt": true,
		".sub": true,
		".ass": true,
		".vtt": true,
	}
	imageExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".bmp":  true,
		".gif":  true,
		".tbn":  true,
	}
)

// coverNames are the artwork filenames (lowercase) that count as an image
// companion for every media file in the same folder.
var coverNames = map[string]bool{
	"folder.jpg": true, "folder.png": true,
	"poster.jpg": true, "poster.png": true,
	"cover.jpg": true, "cover.png": true,
	"fanart.jpg": true, "fanart.png": true,
	"banner.jpg": true, "banner.png": true,
	"thumb.jpg": true, "thumb.png": true,
}

// Ext returns the extension of the base name of path, including the dot.
// A name whose only dot is the leading one (".mkv") or whose last dot is
// the final character has no extension.
func Ext(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// Classify returns the Kind of path by its lowercased extension.
func Classify(path string) Kind {
	ext := strings.ToLower(Ext(path))
	switch {
	case mediaExtensions[ext]:
		return KindMedia
	case subtitleExtensions[ext]:
		return KindSubtitle
	case imageExtensions[ext]:
		return KindImage
	case ext == InfoExt:
		return KindInfo
	default:
		return KindOther
	}
}

// IsCoverName reports whether name is one of the recognised artwork
// filenames, ignoring case.
func IsCoverName(name string) bool {
	return coverNames[strings.ToLower(filepath.Base(name))]
}

// infoName returns the sidecar name for a media file. The extension is
// dropped, then the next remaining suffix is replaced by [InfoExt], so
// "Show.S01E01.mkv" pairs with "Show.nfo" and "movie.mkv" with "movie.nfo".
func infoName(mediaName string) string {
	stem := strings.TrimSuffix(mediaName, Ext(mediaName))
	return strings.TrimSuffix(stem, Ext(stem)) + InfoExt
}
