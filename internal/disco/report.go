// Package disco renders the discography HTML report from store reads.
package disco

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/CaelumWraith/WraithTrack/internal/domain"
	"github.com/CaelumWraith/WraithTrack/internal/logger"
)

// ReportFileName is the name of the generated report file.
const ReportFileName = "discography.html"

type albumView struct {
	domain.Album
	Tracks []domain.Song
}

type reportData struct {
	Artist      domain.Artist
	Albums      []albumView
	Singles     []domain.Song
	GeneratedAt string
}

// FormatReleaseDate converts an ISO date to a readable form, tolerating
// the partial year and year-month dates upstream sometimes returns.
func FormatReleaseDate(date string) string {
	if date == "" {
		return "Unknown Date"
	}
	switch len(date) {
	case 4:
		return date
	case 7:
		if t, err := time.Parse("2006-01", date); err == nil {
			return t.Format("January 2006")
		}
	case 10:
		if t, err := time.Parse("2006-01-02", date); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return "Invalid Date Format"
}

// Write renders the report for one discography to w.
func Write(disco *domain.Discography, w io.Writer) error {
	data := reportData{
		Artist:      disco.Artist,
		Singles:     disco.Singles(),
		GeneratedAt: time.Now().Format("January 2, 2006"),
	}
	for _, album := range disco.Albums {
		data.Albums = append(data.Albums, albumView{
			Album:  album,
			Tracks: disco.AlbumTracks(album.AlbumID),
		})
	}

	tmpl, err := template.New("discography").Funcs(template.FuncMap{
		"formatDate": FormatReleaseDate,
	}).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// Render writes the report file for one discography and returns its path.
func Render(disco *domain.Discography, outDir string, log *logger.Logger) (string, error) {
	if log == nil {
		log = logger.Default()
	}
	log = log.WithComponent("disco")

	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	outPath := filepath.Join(outDir, ReportFileName)

	f, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // deferred cleanup

	if err := Write(disco, f); err != nil {
		return "", err
	}

	if info, err := os.Stat(outPath); err == nil {
		log.Info("report generated", "path", outPath, "size", humanize.Bytes(uint64(info.Size())))
	}
	return outPath, nil
}
