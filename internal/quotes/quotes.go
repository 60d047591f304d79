// Package quotes serves the daily motivational quote image from a
// directory of bundled assets.
package quotes

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var ErrNoQuotes = errors.New("no quote images available")

type Provider struct {
	dir string
}

func NewProvider(dir string) (*Provider, error) {
	if dir == "" {
		dir = "./data/quotes"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Provider{dir: dir}, nil
}

// ImageFor picks the quote image for a given day. The rotation is
// deterministic: same day, same image.
func (p *Provider) ImageFor(day time.Time) (string, error) {
	names, err := p.list()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", ErrNoQuotes
	}
	epochDay := int(day.UTC().Unix() / 86400)
	return names[epochDay%len(names)], nil
}

// Open returns the image bytes for a previously returned name. Names
// are flat file names; anything carrying a path is reduced to its base
// so callers cannot reach outside the quotes directory.
func (p *Provider) Open(name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(p.dir, filepath.Base(name)))
}

func (p *Provider) list() ([]string, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg", ".webp":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
