package source

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"a11ylint/src/config"
	"a11ylint/src/util"
)

// File is a source file discovered during the project walk
type File struct {
	Path    string // absolute
	RelPath string // relative to the project root
	Ext     string // lowercased extension, e.g. ".scss"
}

// Provider walks a project tree once and serves file lists and contents
// to checks, caching both.
type Provider struct {
	root   string
	cfg    config.ScanConfig
	ignore *util.IgnoreMatcher

	mu       sync.RWMutex
	files    []File
	contents map[string]string
}

// NewProvider creates a provider rooted at projectRoot
func NewProvider(projectRoot string, cfg config.ScanConfig) *Provider {
	abs, err := filepath.Abs(projectRoot)
	if err != nil {
		abs = filepath.Clean(projectRoot)
	}
	return &Provider{
		root:     abs,
		cfg:      cfg,
		ignore:   util.NewIgnoreMatcher(cfg.IgnorePatterns),
		contents: make(map[string]string),
	}
}

// Root returns the absolute project root
func (p *Provider) Root() string {
	return p.root
}

// Files returns every source file matching the configured extensions.
// The walk runs once; later calls return the cached list.
func (p *Provider) Files(ctx context.Context) ([]File, error) {
	p.mu.RLock()
	if p.files != nil {
		defer p.mu.RUnlock()
		util.Debug("Returning %d cached source files", len(p.files))
		return p.files, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock
	if p.files != nil {
		return p.files, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files := p.walk()
	if files == nil {
		files = []File{}
	}
	util.Info("Discovered %d source files under %s", len(files), p.root)
	p.files = files

	return files, nil
}

// Stylesheets returns the subset of files with stylesheet extensions
func (p *Provider) Stylesheets(ctx context.Context) ([]File, error) {
	return p.filesWithExt(ctx, p.cfg.StylesheetExtensions)
}

// Templates returns the subset of files with template extensions
func (p *Provider) Templates(ctx context.Context) ([]File, error) {
	return p.filesWithExt(ctx, p.cfg.TemplateExtensions)
}

func (p *Provider) filesWithExt(ctx context.Context, extensions []string) ([]File, error) {
	all, err := p.Files(ctx)
	if err != nil {
		return nil, err
	}

	var matched []File
	for _, f := range all {
		for _, ext := range extensions {
			if f.Ext == strings.ToLower(ext) {
				matched = append(matched, f)
				break
			}
		}
	}
	return matched, nil
}

// Content reads a file's text, caching it for later checks. Unreadable
// files return the error; callers decide whether to skip or abort.
func (p *Provider) Content(path string) (string, error) {
	p.mu.RLock()
	if content, ok := p.contents[path]; ok {
		p.mu.RUnlock()
		return content, nil
	}
	p.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	content := string(data)
	p.mu.Lock()
	p.contents[path] = content
	p.mu.Unlock()

	return content, nil
}

func (p *Provider) walk() []File {
	wanted := make(map[string]struct{})
	for _, ext := range p.cfg.StylesheetExtensions {
		wanted[strings.ToLower(ext)] = struct{}{}
	}
	for _, ext := range p.cfg.TemplateExtensions {
		wanted[strings.ToLower(ext)] = struct{}{}
	}

	maxSize := int64(p.cfg.MaxFileSizeKB) * 1024

	var files []File
	filepath.WalkDir(p.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if p.ignore.Matches(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := wanted[ext]; !ok {
			return nil
		}

		if maxSize > 0 {
			if info, err := d.Info(); err != nil || info.Size() > maxSize {
				return nil
			}
		}

		rel, err := filepath.Rel(p.root, path)
		if err != nil {
			rel = path
		}

		files = append(files, File{Path: path, RelPath: rel, Ext: ext})
		return nil
	})

	return files
}
