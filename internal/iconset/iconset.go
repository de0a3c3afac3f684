// Package iconset writes the full set of application icon files (PNG,
// ICO, ICNS) composed from a single source logo.
package iconset

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/jackmordaunt/icns/v3"
	ico "github.com/sergeymakinen/go-ico"

	"github.com/Mavwarf/mkicons/internal/compose"
	"github.com/Mavwarf/mkicons/internal/paths"
)

// Target maps an output filename to its pixel size.
type Target struct {
	Name string
	Size int
}

// PNGTargets is the fixed table of standalone PNG outputs. The 512px
// size is written twice on purpose: once under the size-named file and
// once as the default icon.png.
var PNGTargets = []Target{
	{"32x32.png", 32},
	{"64x64.png", 64},
	{"128x128.png", 128},
	{"128x128@2x.png", 256},
	{"512x512.png", 512},
	{"icon.png", 512},
}

// ICOSizes lists the representations embedded in icon.ico, largest
// first so 256 ends up as the primary image.
var ICOSizes = []int{256, 64, 48, 32, 24, 16}

// ICNSSize is the composite size handed to the ICNS encoder, which
// derives the remaining representations itself.
const ICNSSize = 512

const (
	ICOName  = "icon.ico"
	ICNSName = "icon.icns"
)

// Generator writes all icon files for one source logo. Progress
// receives one line per generated file; nil disables progress output.
type Generator struct {
	Logo     string
	OutDir   string
	Progress io.Writer
}

// Run decodes the logo once, then composes and writes every target.
// The output directory is created only after the logo decodes, so a
// missing or broken source leaves a fresh target directory untouched.
// The first failure aborts the run; files already written stay on disk.
func (g *Generator) Run() error {
	logo, err := imaging.Open(g.Logo)
	if err != nil {
		return fmt.Errorf("loading logo %s: %w", g.Logo, err)
	}

	if err := os.MkdirAll(g.OutDir, paths.DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", g.OutDir, err)
	}

	for _, t := range PNGTargets {
		if err := g.writePNG(logo, t); err != nil {
			return err
		}
		g.progressf("Generated %s (%dx%d)\n", t.Name, t.Size, t.Size)
	}

	if err := g.writeICO(logo); err != nil {
		return err
	}
	g.progressf("Generated %s (%s)\n", ICOName, sizesLabel(ICOSizes))

	if err := g.writeICNS(logo); err != nil {
		return err
	}
	g.progressf("Generated %s\n", ICNSName)

	return nil
}

func (g *Generator) writePNG(logo image.Image, t Target) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, compose.Icon(logo, t.Size)); err != nil {
		return fmt.Errorf("encoding %s: %w", t.Name, err)
	}
	return g.persist(t.Name, buf.Bytes())
}

func (g *Generator) writeICO(logo image.Image) error {
	imgs := make([]image.Image, 0, len(ICOSizes))
	for _, s := range ICOSizes {
		imgs = append(imgs, compose.Icon(logo, s))
	}
	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, imgs); err != nil {
		return fmt.Errorf("encoding %s: %w", ICOName, err)
	}
	return g.persist(ICOName, buf.Bytes())
}

func (g *Generator) writeICNS(logo image.Image) error {
	var buf bytes.Buffer
	if err := icns.Encode(&buf, compose.Icon(logo, ICNSSize)); err != nil {
		return fmt.Errorf("encoding %s: %w", ICNSName, err)
	}
	return g.persist(ICNSName, buf.Bytes())
}

func (g *Generator) persist(name string, data []byte) error {
	path := filepath.Join(g.OutDir, name)
	if err := paths.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (g *Generator) progressf(format string, args ...any) {
	if g.Progress != nil {
		fmt.Fprintf(g.Progress, format, args...)
	}
}

// sizesLabel formats sizes as "256x256, 64x64, ..." for progress lines.
func sizesLabel(sizes []int) string {
	labels := make([]string, len(sizes))
	for i, s := range sizes {
		labels[i] = fmt.Sprintf("%dx%d", s, s)
	}
	return strings.Join(labels, ", ")
}
