// Package pdf binds the pipeline's PDF engine interface to pdfcpu for
// structural parsing and embedded-text extraction, and to the external
// pdftoppm tool for page rasterization.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"ocrtoolkit/internal/config"
	"ocrtoolkit/internal/ocr"
)

// Engine opens PDF documents. It is safe for concurrent use; each opened
// document is owned by a single request.
type Engine struct {
	runner   Runner
	pdftoppm string
	dpi      int
}

// NewEngine creates an engine using the configured pdftoppm binary and
// rasterization DPI.
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		runner:   execRunner{},
		pdftoppm: cfg.PdftoppmPath,
		dpi:      cfg.RasterDPI,
	}
}

// NewEngineWithRunner creates an engine with an explicit runner (for testing).
func NewEngineWithRunner(cfg *config.Config, runner Runner) *Engine {
	e := NewEngine(cfg)
	e.runner = runner
	return e
}

// Open parses and validates the document structure.
func (e *Engine) Open(data []byte) (ocr.Document, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("pdfcpu page dims: %w", err)
	}

	return &document{
		ctx:    ctx,
		data:   data,
		dims:   dims,
		engine: e,
	}, nil
}

type document struct {
	ctx    *model.Context
	data   []byte
	dims   []types.Dim
	engine *Engine

	tmpPath string // lazily written copy for pdftoppm
}

func (d *document) PageCount() int {
	return d.ctx.PageCount
}

func (d *document) PageDimensions(page int) (float64, float64, error) {
	if page < 1 || page > len(d.dims) {
		return 0, 0, fmt.Errorf("page %d out of range (1..%d)", page, len(d.dims))
	}
	dim := d.dims[page-1]
	return dim.Width, dim.Height, nil
}

// PageText decodes the page's content stream and recovers the text shown by
// its text operators. Pages without extractable text yield "".
func (d *document) PageText(page int) (string, error) {
	if page < 1 || page > d.ctx.PageCount {
		return "", fmt.Errorf("page %d out of range (1..%d)", page, d.ctx.PageCount)
	}
	return extractPageText(d.ctx, page), nil
}

// RenderPage rasterizes one page to PNG via pdftoppm.
func (d *document) RenderPage(ctx context.Context, page int) ([]byte, error) {
	if err := d.ensureTempFile(); err != nil {
		return nil, err
	}

	outDir, err := os.MkdirTemp("", "ocrtk-raster-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(outDir)

	prefix := filepath.Join(outDir, "page")
	pageArg := fmt.Sprintf("%d", page)
	// pdftoppm -f N -l N -r <dpi> -png <in.pdf> <prefix>
	_, errb, err := d.engine.runner.Run(ctx, d.engine.pdftoppm,
		"-f", pageArg, "-l", pageArg,
		"-r", fmt.Sprintf("%d", d.engine.dpi),
		"-png", d.tmpPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("pdftoppm page %d: %w: %s", page, err, truncate(string(errb), 1<<10))
	}

	// pdftoppm zero-pads the page number in its output name, so glob.
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no image for page %d", page)
	}

	return os.ReadFile(matches[0])
}

func (d *document) ensureTempFile() error {
	if d.tmpPath != "" {
		return nil
	}
	f, err := os.CreateTemp("", "ocrtk-*.pdf")
	if err != nil {
		return err
	}
	if _, err := f.Write(d.data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	d.tmpPath = f.Name()
	return nil
}

func (d *document) Close() error {
	if d.tmpPath != "" {
		err := os.Remove(d.tmpPath)
		d.tmpPath = ""
		return err
	}
	return nil
}
