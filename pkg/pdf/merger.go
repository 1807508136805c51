package pdf

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/kerbaras/mkpdf/pkg/data"
)

// pdfcpu page form names by --page flag value.
var pageForms = map[string]string{
	"letter": "Letter",
	"a4":     "A4",
}

// Metadata is written into the output document's Info dictionary.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
}

// newConfiguration returns the pdfcpu configuration used throughout: relaxed
// validation so slightly out-of-spec scans still merge.
func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// CountPages fills Pages for every file entry: the page count for PDFs, one
// page per decodable image. Unreadable sources get zero pages and a warning;
// they are later excluded from merge and outline.
func CountPages(plan *data.Plan, warn func(format string, args ...any)) {
	for _, e := range plan.Entries {
		switch e.Type {
		case data.TypePDF:
			count, err := api.PageCountFile(e.Path)
			if err != nil {
				warn("Skipping unreadable file %s: %v", e.Path, err)
				count = 0
			}
			e.Pages = count
		case data.TypeImage:
			if err := probeImage(e.Path); err != nil {
				warn("Skipping unreadable image %s: %v", e.Path, err)
				e.Pages = 0
			} else {
				e.Pages = 1
			}
		}
	}
}

// AssignPageOffsets walks the plan in order and sets each entry's zero-based
// page offset in the output document. Folders contribute no pages, so they
// end up pointing at the first page of the content that follows them.
func AssignPageOffsets(plan *data.Plan) {
	offset := 0
	for _, e := range plan.Entries {
		e.Page = offset
		offset += e.Pages
	}
}

// ConvertImage renders one image as a single-page temp PDF at the given page
// format and DPI. The caller removes the returned file.
func ConvertImage(path, format string, dpi int) (string, error) {
	page, err := preparePage(path, format, dpi)
	if err != nil {
		return "", fmt.Errorf("failed to prepare %s: %w", path, err)
	}
	defer os.Remove(page)

	imp, err := api.Import(importDescription(format, dpi), types.POINTS)
	if err != nil {
		return "", fmt.Errorf("invalid import settings: %w", err)
	}

	tmp, err := os.CreateTemp("", "mkpdf-*.pdf")
	if err != nil {
		return "", err
	}
	tmp.Close()
	// ImportImagesFile appends into an existing outFile, so the reserved
	// path must not exist when it runs.
	os.Remove(tmp.Name())

	if err := api.ImportImagesFile([]string{page}, tmp.Name(), imp, newConfiguration()); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to convert %s: %w", path, err)
	}

	return tmp.Name(), nil
}

// importDescription builds the pdfcpu import description: images are
// centered on the selected page form, or imported at their own size when no
// form is selected.
func importDescription(format string, dpi int) string {
	if form, ok := pageForms[format]; ok {
		return fmt.Sprintf("form:%s, pos:c, dpi:%d", form, dpi)
	}
	return fmt.Sprintf("dpi:%d", dpi)
}

// MergeFiles concatenates the sources into outFile in the given order.
func MergeFiles(inFiles []string, outFile string) error {
	if len(inFiles) == 0 {
		return fmt.Errorf("no files to merge")
	}
	return api.MergeCreateFile(inFiles, outFile, false, newConfiguration())
}

// BuildOutline derives the bookmark tree from the plan: one bookmark per
// folder, one per file with pages, nested the way the folders nest. Images
// inside image-only folders get no bookmark of their own.
func BuildOutline(plan *data.Plan) []pdfcpu.Bookmark {
	total := plan.TotalPages()
	if total == 0 {
		return nil
	}

	type outlineNode struct {
		bookmark pdfcpu.Bookmark
		kids     []*outlineNode
	}

	var materialize func(nodes []*outlineNode) []pdfcpu.Bookmark
	materialize = func(nodes []*outlineNode) []pdfcpu.Bookmark {
		var bms []pdfcpu.Bookmark
		for _, n := range nodes {
			bm := n.bookmark
			bm.Kids = materialize(n.kids)
			bms = append(bms, bm)
		}
		return bms
	}

	folders := map[string]*outlineNode{}
	var roots []*outlineNode

	for _, e := range plan.Entries {
		if e.IsFile() {
			if e.Pages == 0 {
				continue
			}
			if e.Type == data.TypeImage {
				if parent := plan.Folder(e.Parent); parent != nil && parent.ImageOnly {
					continue
				}
			}
		}

		// Trailing folders with no content of their own point at the
		// last page instead of one past the end.
		page := e.Page + 1
		if page > total {
			page = total
		}

		node := &outlineNode{bookmark: pdfcpu.Bookmark{Title: e.Label, PageFrom: page}}
		if parent, ok := folders[e.Parent]; ok {
			parent.kids = append(parent.kids, node)
		} else {
			roots = append(roots, node)
		}
		if e.IsFolder() {
			folders[e.Path] = node
		}
	}

	return materialize(roots)
}

// WriteOutline replaces path's bookmarks with the given tree.
func WriteOutline(path string, bookmarks []pdfcpu.Bookmark) error {
	if len(bookmarks) == 0 {
		return nil
	}
	return api.AddBookmarksFile(path, path, bookmarks, true, newConfiguration())
}

// SetMetadata writes the non-empty metadata fields into path's Info
// dictionary.
func SetMetadata(path string, meta Metadata) error {
	props := map[string]string{}
	for key, value := range map[string]string{
		"Title":    meta.Title,
		"Author":   meta.Author,
		"Subject":  meta.Subject,
		"Keywords": meta.Keywords,
		"Creator":  meta.Creator,
	} {
		if value != "" {
			props[key] = value
		}
	}
	if len(props) == 0 {
		return nil
	}
	return api.AddPropertiesFile(path, path, props, newConfiguration())
}
