package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"vitrine/internal/domain"
	"vitrine/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Index implements ports.CatalogIndex using SQLite
type Index struct {
	db          *sql.DB
	catalogPath string
	dbPath      string
	log         *logrus.Entry
}

// Ensure Index implements CatalogIndex
var _ ports.CatalogIndex = (*Index)(nil)

// NewIndex creates a new SQLite index. A nil logger discards output.
func NewIndex(log *logrus.Entry) *Index {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Index{log: log.WithField("component", "index")}
}

// Open initializes the index for the given catalog path
func (idx *Index) Open(catalogPath string) error {
	// Expand ~ in path
	if len(catalogPath) > 0 && catalogPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		catalogPath = filepath.Join(home, catalogPath[1:])
	}
	if abs, err := filepath.Abs(catalogPath); err == nil {
		catalogPath = abs
	}

	idx.catalogPath = catalogPath
	idx.dbPath = databasePath(catalogPath)

	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite", idx.dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS items (
			ordinal INTEGER PRIMARY KEY,
			id TEXT NOT NULL,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			host TEXT NOT NULL,
			description TEXT NOT NULL,
			developer TEXT NOT NULL,
			published TEXT NOT NULL,
			updated TEXT NOT NULL,
			status TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS item_tags (
			item_ordinal INTEGER NOT NULL,
			position INTEGER NOT NULL,
			tag TEXT NOT NULL,
			PRIMARY KEY (item_ordinal, position)
		);
		CREATE TABLE IF NOT EXISTS item_images (
			item_ordinal INTEGER NOT NULL,
			position INTEGER NOT NULL,
			url TEXT NOT NULL,
			PRIMARY KEY (item_ordinal, position)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_item_tags_tag ON item_tags(tag);
		CREATE INDEX IF NOT EXISTS idx_items_host ON items(host);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	idx.log.WithField("db", idx.dbPath).Debug("index opened")
	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Path returns the database file location
func (idx *Index) Path() string {
	return idx.dbPath
}

// NeedsRebuild reports whether the cached data is missing, from another
// schema or catalog, or older than catalogModTime
func (idx *Index) NeedsRebuild(catalogModTime time.Time) bool {
	version, _ := idx.meta("schema_version")
	pathHash, _ := idx.meta("catalog_path_hash")
	mtime, _ := idx.meta("catalog_mtime")

	return version != schemaVersion ||
		pathHash != hashCatalogPath(idx.catalogPath) ||
		mtime != strconv.FormatInt(catalogModTime.UnixNano(), 10)
}

func (idx *Index) meta(key string) (string, error) {
	var value string
	err := idx.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

// LoadItems returns every cached item in catalog order
func (idx *Index) LoadItems() ([]domain.Item, error) {
	rows, err := idx.db.Query(`
		SELECT ordinal, id, title, url, description, developer, published, updated, status
		FROM items ORDER BY ordinal
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	byOrdinal := make(map[int64]int)
	for rows.Next() {
		var ordinal int64
		var item domain.Item
		var status string
		if err := rows.Scan(&ordinal, &item.ID, &item.Title, &item.URL, &item.Description,
			&item.Developer, &item.Published, &item.Updated, &status); err != nil {
			return nil, err
		}
		item.Status = domain.Status(status)
		byOrdinal[ordinal] = len(items)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = idx.eachValue(`SELECT item_ordinal, tag FROM item_tags ORDER BY item_ordinal, position`,
		func(ordinal int64, tag string) {
			if i, ok := byOrdinal[ordinal]; ok {
				items[i].Tags = append(items[i].Tags, tag)
			}
		})
	if err != nil {
		return nil, err
	}

	err = idx.eachValue(`SELECT item_ordinal, url FROM item_images ORDER BY item_ordinal, position`,
		func(ordinal int64, url string) {
			if i, ok := byOrdinal[ordinal]; ok {
				items[i].Images = append(items[i].Images, url)
			}
		})
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (idx *Index) eachValue(query string, fn func(ordinal int64, value string)) error {
	rows, err := idx.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ordinal int64
		var value string
		if err := rows.Scan(&ordinal, &value); err != nil {
			return err
		}
		fn(ordinal, value)
	}
	return rows.Err()
}

// TagCounts returns every tag with the number of items carrying it, sorted by tag
func (idx *Index) TagCounts() ([]domain.TagCount, error) {
	rows, err := idx.db.Query(`
		SELECT tag, COUNT(DISTINCT item_ordinal)
		FROM item_tags GROUP BY tag ORDER BY tag
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.TagCount
	for rows.Next() {
		var tc domain.TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}

// Domains returns the distinct link hosts in first-seen catalog order
func (idx *Index) Domains() ([]string, error) {
	rows, err := idx.db.Query(`
		SELECT host FROM items
		WHERE host != ''
		GROUP BY host ORDER BY MIN(ordinal)
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var domains []string
	for rows.Next() {
		var host string
		if err := rows.Scan(&host); err != nil {
			return nil, err
		}
		domains = append(domains, host)
	}
	return domains, rows.Err()
}

// databasePath returns the path for the SQLite database
func databasePath(catalogPath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "vitrine", hashCatalogPath(catalogPath)+".db")
}

// hashCatalogPath returns a short hash of the catalog path
func hashCatalogPath(catalogPath string) string {
	h := sha256.Sum256([]byte(catalogPath))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}
