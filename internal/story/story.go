// Package story composites a social-media story image for one song:
// cover art, captions, and streaming link on a fixed-size canvas.
package story

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/jpeg" // JPEG decoder registration

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/CaelumWraith/WraithTrack/internal/constants"
	"github.com/CaelumWraith/WraithTrack/internal/domain"
	"github.com/CaelumWraith/WraithTrack/internal/logger"
)

const streamingLine = "NOW STREAMING EVERYWHERE"
const linkLine = "https://link.tr/caelumwraith"

// Renderer builds story images from song rows.
type Renderer struct {
	httpClient *http.Client
	log        *logger.Logger
}

func NewRenderer(log *logger.Logger) *Renderer {
	if log == nil {
		log = logger.Default()
	}
	return &Renderer{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log.WithComponent("story"),
	}
}

// Create renders the story PNG for one song and returns its path.
func (r *Renderer) Create(ctx context.Context, song *domain.Song, outDir string) (string, error) {
	if song.ImageLargeURI == "" {
		return "", fmt.Errorf("song %s has no cover art", song.Name)
	}

	art, err := r.fetchArt(ctx, song.ImageLargeURI)
	if err != nil {
		return "", fmt.Errorf("failed to fetch cover art: %w", err)
	}

	canvas := compose(art, song.Name)

	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	outPath := filepath.Join(outDir, fileName(song.Name))

	f, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // deferred cleanup

	if err := png.Encode(f, canvas); err != nil {
		return "", fmt.Errorf("failed to encode story: %w", err)
	}

	r.log.Info("story generated", "song", song.Name, "path", outPath)
	return outPath, nil
}

func (r *Renderer) fetchArt(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // deferred cleanup

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cover art fetch returned status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	return img, err
}

// compose lays out the story: black canvas, scaled art in the middle
// with a dark overlay, title above, captions below.
func compose(art image.Image, title string) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, constants.StoryWidth, constants.StoryHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	// Scale art to the canvas width minus side padding, keeping aspect
	artWidth := constants.StoryWidth - 2*constants.StorySidePad
	artHeight := artWidth * art.Bounds().Dy() / art.Bounds().Dx()
	scaled := image.NewRGBA(image.Rect(0, 0, artWidth, artHeight))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), art, art.Bounds(), xdraw.Over, nil)

	overlay := image.NewUniform(color.RGBA{0, 0, 0, 128})
	draw.Draw(scaled, scaled.Bounds(), overlay, image.Point{}, draw.Over)

	x := (constants.StoryWidth - artWidth) / 2
	y := (constants.StoryHeight-artHeight)/2 - 20
	draw.Draw(canvas, image.Rect(x, y, x+artWidth, y+artHeight), scaled, image.Point{}, draw.Over)

	face := basicfont.Face7x13
	drawCenteredText(canvas, face, strings.ToUpper(title), y-60, color.White)
	drawCenteredText(canvas, face, streamingLine, y+artHeight+40, color.White)
	drawCenteredText(canvas, face, linkLine, y+artHeight+80, color.White)

	return canvas
}

func drawCenteredText(dst *image.RGBA, face font.Face, text string, y int, c color.Color) {
	width := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.P(
			(dst.Bounds().Dx()-width)/2,
			y,
		),
	}
	d.DrawString(text)
}

// fileName derives a filesystem-safe story file name from a song name.
func fileName(songName string) string {
	name := strings.ToLower(songName)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '_'
		default:
			return -1
		}
	}, name)
	return name + "_story.png"
}
