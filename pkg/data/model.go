package data

// EntryType classifies a merge plan entry.
type EntryType string

const (
	TypeFolder EntryType = "folder"
	TypePDF    EntryType = "pdf"
	TypeImage  EntryType = "img"
)

// Entry is one resolved node of the merge plan: a folder that becomes an
// outline bookmark, or a source file that contributes pages.
type Entry struct {
	Path      string
	Parent    string // path of the parent folder, "" for the root entry
	Type      EntryType
	Label     string
	Depth     int
	DPI       int  // per-folder override for image conversion, 0 = use global
	ImageOnly bool // folder whose direct files are all images
	Pages     int  // page count contributed by this entry
	Page      int  // zero-based page offset in the output document
}

func (e *Entry) IsFolder() bool {
	return e.Type == TypeFolder
}

func (e *Entry) IsFile() bool {
	return e.Type == TypePDF || e.Type == TypeImage
}

// Plan is the ordered list of entries a run would merge, shared by dry runs
// and real runs.
type Plan struct {
	Root    string
	Entries []*Entry
}

// Files returns the entries that contribute pages, in merge order.
func (p *Plan) Files() []*Entry {
	var files []*Entry
	for _, e := range p.Entries {
		if e.IsFile() {
			files = append(files, e)
		}
	}
	return files
}

// Folder returns the folder entry for path, or nil.
func (p *Plan) Folder(path string) *Entry {
	for _, e := range p.Entries {
		if e.IsFolder() && e.Path == path {
			return e
		}
	}
	return nil
}

// TotalPages sums the page counts of all file entries.
func (p *Plan) TotalPages() int {
	total := 0
	for _, e := range p.Entries {
		total += e.Pages
	}
	return total
}
