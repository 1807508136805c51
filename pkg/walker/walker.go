package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/kerbaras/mkpdf/pkg/data"
)

type warnFunc func(format string, args ...any)

// Options configure a traversal. The zero value walks everything with raw
// labels and silent warnings.
type Options struct {
	Include []*regexp.Regexp // keep only paths matching at least one
	Exclude []*regexp.Regexp // drop paths matching any
	Pretty  bool
	Warn    func(format string, args ...any)
}

func (o Options) warnFn() warnFunc {
	if o.Warn != nil {
		return o.Warn
	}
	return func(string, ...any) {}
}

// Walk traverses the folder tree rooted at root and builds the merge plan:
// one entry per non-ignored folder (before its children) and one entry per
// non-ignored PDF or image, in resolved sibling order.
func Walk(root string, opts Options) (*data.Plan, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("cannot read input folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path %s is not a folder", absRoot)
	}

	w := &treeWalker{opts: opts, warn: opts.warnFn()}
	plan := &data.Plan{Root: absRoot}
	w.walkFolder(absRoot, "", "", 0, plan)
	return plan, nil
}

type treeWalker struct {
	opts Options
	warn warnFunc
}

func (w *treeWalker) walkFolder(dir, rel, parent string, depth int, plan *data.Plan) {
	cfg := loadFolderConfig(dir, w.warn)
	if cfg.IgnoreAll {
		return
	}
	if rel != "" && !w.matches(rel) {
		return
	}

	children, err := os.ReadDir(dir)
	if err != nil {
		w.warn("Cannot read folder %s: %v", dir, err)
		return
	}

	byName := make(map[string]os.DirEntry, len(children))
	for _, child := range children {
		byName[child.Name()] = child
	}

	folder := &data.Entry{
		Path:   dir,
		Parent: parent,
		Type:   data.TypeFolder,
		Label:  FolderLabel(filepath.Base(dir), cfg, w.opts.Pretty),
		Depth:  depth,
		DPI:    cfg.DPI,
	}
	plan.Entries = append(plan.Entries, folder)

	var pdfs, images int
	for _, name := range resolveOrder(children, cfg, dir, w.warn) {
		if strings.HasPrefix(name, ".") || cfg.Ignored[name] {
			continue
		}

		path := filepath.Join(dir, name)
		childRel := joinRel(rel, name)

		if byName[name].IsDir() {
			w.walkFolder(path, childRel, dir, depth+1, plan)
			continue
		}

		typ, ok := data.DetectType(name)
		if !ok {
			w.warn("Skipping unsupported file %s", path)
			continue
		}
		if !w.matches(childRel) {
			continue
		}

		entry := &data.Entry{
			Path:   path,
			Parent: dir,
			Type:   typ,
			Label:  FileLabel(name, cfg, w.opts.Pretty),
			Depth:  depth + 1,
		}
		if typ == data.TypeImage {
			entry.DPI = cfg.DPI
			images++
		} else {
			pdfs++
		}
		plan.Entries = append(plan.Entries, entry)
	}

	folder.ImageOnly = images > 0 && pdfs == 0
}

// matches applies the include/exclude filters to a slash-separated path
// relative to the root.
func (w *treeWalker) matches(rel string) bool {
	if len(w.opts.Include) > 0 {
		found := false
		for _, re := range w.opts.Include {
			if re.MatchString(rel) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, re := range w.opts.Exclude {
		if re.MatchString(rel) {
			return false
		}
	}
	return true
}

// resolveOrder sorts sibling names case-insensitively, then moves names
// listed in .order to the front in listed order. Unlisted siblings keep
// their lexicographic order.
func resolveOrder(children []os.DirEntry, cfg *FolderConfig, dir string, warn warnFunc) []string {
	names := make([]string, len(children))
	for i, child := range children {
		names[i] = child.Name()
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	if len(cfg.Order) == 0 {
		return names
	}

	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}

	rank := make(map[string]int, len(cfg.Order))
	for i, name := range cfg.Order {
		if !present[name] {
			warn("Unknown .order entry %q in %s", name, dir)
			continue
		}
		if _, seen := rank[name]; !seen {
			rank[name] = i
		}
	}

	sort.SliceStable(names, func(i, j int) bool {
		ri, iListed := rank[names[i]]
		rj, jListed := rank[names[j]]
		switch {
		case iListed && jListed:
			return ri < rj
		case iListed:
			return true
		default:
			return false
		}
	})

	return names
}

func joinRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}
