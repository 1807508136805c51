package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kerbaras/mkpdf/pkg/data"
	"github.com/kerbaras/mkpdf/pkg/pdf"
)

// Progress reports the state of a merge run.
type Progress struct {
	Stage   string // "counting", "converting", "merging", "finishing", "complete", "error"
	Path    string
	Current int
	Total   int
	Err     error
}

// Options configure a merge run.
type Options struct {
	Output     string
	PageFormat string // "letter", "a4" or "none"
	DPI        int
	Metadata   pdf.Metadata
	Warn       func(format string, args ...any)
}

// Composer runs the merge pipeline as a single pass: count pages, convert
// images, merge sources, attach outline and metadata, clean up temp files.
type Composer struct {
	opts         Options
	warn         func(format string, args ...any)
	progressChan chan Progress
}

// NewComposer creates a new Composer instance.
func NewComposer(opts Options) *Composer {
	warn := opts.Warn
	if warn == nil {
		warn = func(string, ...any) {}
	}
	return &Composer{
		opts:         opts,
		warn:         warn,
		progressChan: make(chan Progress, 100),
	}
}

// Progress returns the channel for receiving merge progress updates. It is
// closed when Compose returns.
func (c *Composer) Progress() <-chan Progress {
	return c.progressChan
}

// Compose merges the plan into the output file and returns its final path.
func (c *Composer) Compose(plan *data.Plan) (string, error) {
	defer close(c.progressChan)

	files := plan.Files()
	if len(files) == 0 {
		return "", fmt.Errorf("nothing to merge in %s", plan.Root)
	}

	out := c.opts.Output
	if ext := filepath.Ext(out); strings.ToLower(ext) != ".pdf" {
		out = strings.TrimSuffix(out, ext) + ".pdf"
	}

	c.sendProgress(Progress{Stage: "counting", Total: len(files)})
	pdf.CountPages(plan, c.warn)

	// Convert images before page offsets are assigned so that failed
	// conversions drop out of the page accounting.
	tempfiles := map[string]string{}
	defer c.cleanup(tempfiles)

	var images []*data.Entry
	for _, e := range files {
		if e.Type == data.TypeImage && e.Pages > 0 {
			images = append(images, e)
		}
	}

	for i, e := range images {
		c.sendProgress(Progress{Stage: "converting", Path: e.Path, Current: i + 1, Total: len(images)})

		dpi := c.opts.DPI
		if e.DPI > 0 {
			dpi = e.DPI
		}

		tmp, err := pdf.ConvertImage(e.Path, c.opts.PageFormat, dpi)
		if err != nil {
			c.warn("Failed to convert image %s: %v", e.Path, err)
			e.Pages = 0
			continue
		}
		tempfiles[e.Path] = tmp
	}

	pdf.AssignPageOffsets(plan)

	var sources []string
	for _, e := range files {
		if e.Pages == 0 {
			continue
		}
		if tmp, ok := tempfiles[e.Path]; ok {
			sources = append(sources, tmp)
		} else {
			sources = append(sources, e.Path)
		}
	}
	if len(sources) == 0 {
		return "", fmt.Errorf("no readable files to merge in %s", plan.Root)
	}

	c.sendProgress(Progress{Stage: "merging", Current: len(sources), Total: len(sources)})
	if err := pdf.MergeFiles(sources, out); err != nil {
		c.sendProgress(Progress{Stage: "error", Err: err})
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}

	c.sendProgress(Progress{Stage: "finishing"})
	if err := pdf.WriteOutline(out, pdf.BuildOutline(plan)); err != nil {
		return "", fmt.Errorf("failed to attach outline: %w", err)
	}
	if err := pdf.SetMetadata(out, c.metadata(plan)); err != nil {
		return "", fmt.Errorf("failed to set metadata: %w", err)
	}

	c.sendProgress(Progress{Stage: "complete", Current: len(sources), Total: len(sources)})
	return out, nil
}

// metadata fills in the defaults the flags leave empty.
func (c *Composer) metadata(plan *data.Plan) pdf.Metadata {
	meta := c.opts.Metadata
	if meta.Title == "" {
		meta.Title = filepath.Base(plan.Root)
	}
	return meta
}

func (c *Composer) cleanup(tempfiles map[string]string) {
	for _, tmp := range tempfiles {
		if err := os.Remove(tmp); err != nil {
			c.warn("Could not delete temp file %s: %v", tmp, err)
		}
	}
}

func (c *Composer) sendProgress(progress Progress) {
	select {
	case c.progressChan <- progress:
	default:
		// Drop updates nobody is reading.
	}
}
