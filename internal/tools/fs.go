package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Ls renders a compact tree listing. No subprocess involved; depth,
// entry cap and skip list come from config.
func (p *Proxy) Ls(_ context.Context, path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Sprintf("[ls] error: `%s` does not exist", path)
	}
	if !info.IsDir() {
		return fmt.Sprintf("[ls] %s (file)", path)
	}

	w := treeWalker{
		maxDepth:   p.cfg.LsMaxDepth,
		maxEntries: p.cfg.LsMaxEntries,
		skip:       p.cfg.LsSkip,
	}
	w.walk(path, "", 0)

	if w.count > w.maxEntries {
		w.lines = append(w.lines, fmt.Sprintf(
			"… %d entries total, showing first %d", w.count, w.maxEntries))
	}

	return fmt.Sprintf("[ls] %s (%d entries)\n%s", path, w.count, strings.Join(w.lines, "\n"))
}

type treeWalker struct {
	maxDepth   int
	maxEntries int
	skip       []string

	lines []string
	count int
}

func (w *treeWalker) skipped(name string) bool {
	for _, s := range w.skip {
		if s == name {
			return true
		}
	}
	return false
}

func (w *treeWalker) walk(dir, prefix string, depth int) {
	if depth > w.maxDepth || w.count > w.maxEntries {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	visible := entries[:0:0]
	for _, e := range entries {
		if !w.skipped(e.Name()) {
			visible = append(visible, e)
		}
	}

	for i, entry := range visible {
		if w.count > w.maxEntries {
			return
		}

		last := i == len(visible)-1
		connector := "├── "
		if last {
			connector = "└── "
		}
		suffix := ""
		if entry.IsDir() {
			suffix = "/"
		}

		w.lines = append(w.lines, prefix+connector+entry.Name()+suffix)
		w.count++

		if entry.IsDir() {
			childPrefix := prefix + "│   "
			if last {
				childPrefix = prefix + "    "
			}
			w.walk(filepath.Join(dir, entry.Name()), childPrefix, depth+1)
		}
	}
}
