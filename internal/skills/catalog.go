package skills

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyCatalog is returned when a catalog source holds no skill names.
var ErrEmptyCatalog = errors.New("skill catalog is empty")

// Catalog is the read-only list of known skill names.
// Lookups ignore case; the first spelling of a name is the canonical one.
type Catalog struct {
	entries []string
	index   map[string]int // lower-cased name -> position in entries
}

// NewCatalog builds a catalog from entries. Blank entries are skipped and
// case-insensitive duplicates collapse onto their first occurrence.
func NewCatalog(entries []string) (*Catalog, error) {
	c := &Catalog{
		entries: make([]string, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		key := strings.ToLower(e)
		if _, ok := c.index[key]; ok {
			continue
		}
		c.index[key] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	if len(c.entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// LoadCatalog 从换行分隔的UTF-8文本文件加载技能库
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开技能库文件失败: %w", err)
	}
	defer f.Close()

	c, err := ReadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ReadCatalog reads one skill name per line from r.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	var entries []string
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		entries = append(entries, strings.TrimRight(line, "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取技能库失败: %w", err)
	}
	return NewCatalog(entries)
}

// Lookup returns the canonical spelling of candidate if the catalog holds it.
func (c *Catalog) Lookup(candidate string) (string, bool) {
	i, ok := c.lookupIndex(candidate)
	if !ok {
		return "", false
	}
	return c.entries[i], true
}

func (c *Catalog) lookupIndex(candidate string) (int, bool) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(candidate))]
	return i, ok
}

// Len returns the number of distinct skills.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the skill names in file order.
func (c *Catalog) Entries() []string {
	out := make([]string, len(c.entries))
	copy(out, c.entries)
	return out
}
