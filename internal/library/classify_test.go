package library

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backmassage/mediareport/internal/term"
)

func TestExt(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"movie.mkv", ".mkv"},
		{"/lib/Show/ep.01.MP4", ".MP4"},
		{"archive.tar.gz", ".gz"},
		{".mkv", ""},
		{"noext", ""},
		{"trailing.", ""},
		{"/dir.with.dots/file", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Ext(tt.in), "Ext(%q)", tt.in)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"a.mkv", KindMedia},
		{"a.MP4", KindMedia},
		{"a.avi", KindMedia},
		{"a.mov", KindMedia},
		{"a.wmv", KindMedia},
		{"a.flv", KindMedia},
		{"a.mpeg", KindMedia},
		{"a.mpg", KindMedia},
		{"a.m4v", KindMedia},
		{"a.webm", KindOther},
		{"a.srt", KindSubtitle},
		{"a.SUB", KindSubtitle},
		{"a.ass", KindSubtitle},
		{"a.vtt", KindSubtitle},
		{"a.jpg", KindImage},
		{"a.jpeg", KindImage},
		{"a.png", KindImage},
		{"a.bmp", KindImage},
		{"a.gif", KindImage},
		{"a.tbn", KindImage},
		{"a.nfo", KindInfo},
		{"a.NFO", KindInfo},
		{"a.txt", KindOther},
		{".mkv", KindOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name))
		})
	}
}

func TestIsCoverName(t *testing.T) {
	for _, base := range []string{"folder", "poster", "cover", "fanart", "banner", "thumb"} {
		assert.True(t, IsCoverName(base+".jpg"), base)
		assert.True(t, IsCoverName(base+".png"), base)
	}
	assert.True(t, IsCoverName("/lib/Movie/FOLDER.JPG"))
	assert.False(t, IsCoverName("folder.jpeg"))
	assert.False(t, IsCoverName("movie-poster.jpg"))
	assert.False(t, IsCoverName("backdrop.jpg"))
}

func TestInfoName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"movie.mkv", "movie.nfo"},
		{"show.s01e01.MP4", "show.nfo"},
		{"Show.S01E01.1080p.mkv", "Show.S01E01.nfo"},
		{".hidden.mkv", ".hidden.nfo"},
		{"trailing..mkv", "trailing..nfo"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, infoName(tt.in), "infoName(%q)", tt.in)
	}
}

func TestStatusSeverity_Boundaries(t *testing.T) {
	tests := []struct {
		avg  float64
		want term.Severity
	}{
		{100, term.SeverityGood},
		{85.0, term.SeverityGood},
		{84.999, term.SeverityFair},
		{70.0, term.SeverityFair},
		{69.999, term.SeverityPoor},
		{0, term.SeverityPoor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusSeverity(tt.avg), "StatusSeverity(%v)", tt.avg)
	}
}

func TestStatusFor(t *testing.T) {
	pal := term.Default()

	good := StatusFor(90, pal)
	assert.Equal(t, Status{term.SeverityGood, "GOOD", "Most items are complete", pal.Good}, good)

	fair := StatusFor(75, pal)
	assert.Equal(t, Status{term.SeverityFair, "FAIR", "Some missing metadata", pal.Fair}, fair)

	poor := StatusFor(10, pal.Plain())
	assert.Equal(t, Status{term.SeverityPoor, "POOR", "Many items incomplete", ""}, poor)
}

func TestScanResult_Average(t *testing.T) {
	r := ScanResult{
		Total:     4,
		Info:      Coverage{4, 100},
		Subtitles: Coverage{4, 100},
		Images:    Coverage{1, 55},
	}
	assert.InDelta(t, 85.0, r.Average(), 1e-9)
	assert.Equal(t, term.SeverityGood, StatusSeverity(r.Average()))
}
