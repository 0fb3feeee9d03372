package filesystem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"vitrine/internal/domain"
)

// Record is one catalog entry as stored on disk
type Record struct {
	ID          string   `json:"id" yaml:"id"`
	URL         string   `json:"url" yaml:"url"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Developer   string   `json:"developer" yaml:"developer"`
	Published   string   `json:"published" yaml:"published"`
	Updated     string   `json:"updated" yaml:"updated"`
	Status      string   `json:"status" yaml:"status"`
	Tags        []string `json:"tags" yaml:"tags"`
	MyTags      []string `json:"my_tags" yaml:"my_tags"`
	CoverImg    string   `json:"cover_img" yaml:"cover_img"`
	Images      []string `json:"images" yaml:"images"`
}

// Catalog implements ports.Catalog over a JSON or YAML file
type Catalog struct {
	path string
}

// NewCatalog creates a catalog reader for path
func NewCatalog(path string) *Catalog {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &Catalog{path: path}
}

// Path returns the catalog file location
func (c *Catalog) Path() string {
	return c.path
}

// ModTime returns the catalog file's modification time
func (c *Catalog) ModTime() (time.Time, error) {
	info, err := os.Stat(c.path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat catalog: %w", err)
	}
	return info.ModTime(), nil
}

// LoadItems reads and converts every record of the catalog
func (c *Catalog) LoadItems(ctx context.Context) ([]domain.Item, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	records, err := decodeRecords(c.path, data)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(records))
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items = append(items, r.Item())
	}
	return items, nil
}

func decodeRecords(path string, data []byte) ([]Record, error) {
	var records []Record
	if len(bytes.TrimSpace(data)) == 0 {
		return records, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", filepath.Base(path), err)
		}
	default:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", filepath.Base(path), err)
		}
	}
	return records, nil
}

// Item converts the record to a domain item
func (r Record) Item() domain.Item {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		key := r.URL
		if key == "" {
			key = r.Title
		}
		id = uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
	}

	status := r.Status
	// values written as "GameStatus.COMPLETED"
	if i := strings.LastIndexByte(status, '.'); i >= 0 {
		status = status[i+1:]
	}

	return domain.Item{
		ID:          id,
		Title:       r.Title,
		URL:         r.URL,
		Description: plainText(r.Description),
		Developer:   r.Developer,
		Published:   r.Published,
		Updated:     r.Updated,
		Status:      domain.ParseStatus(status),
		Tags:        mergeTags(r.Tags, r.MyTags),
		Images:      mergeImages(r.CoverImg, r.Images),
	}
}

// descriptionPolicy strips every tag from scraped descriptions
var descriptionPolicy = bluemonday.StrictPolicy()

func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(descriptionPolicy.Sanitize(s)))
}

func mergeTags(tags, mine []string) []string {
	out := make([]string, 0, len(tags)+len(mine))
	for _, t := range slices.Concat(tags, mine) {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return slices.Compact(out)
}

func mergeImages(cover string, images []string) []string {
	seen := make(map[string]bool, len(images)+1)
	out := make([]string, 0, len(images)+1)
	for _, img := range append([]string{cover}, images...) {
		img = strings.TrimSpace(img)
		if img == "" || seen[img] {
			continue
		}
		seen[img] = true
		out = append(out, img)
	}
	return out
}
