package sqlite

import (
	"database/sql"

	"vitrine/internal/domain"
)

// indexTx batches the writes of one rebuild
type indexTx struct {
	tx *sql.Tx
}

func (idx *Index) beginTx() (*indexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}

// clear removes every cached row
func (t *indexTx) clear() error {
	for _, table := range []string{"items", "item_tags", "item_images"} {
		if _, err := t.tx.Exec(`DELETE FROM ` + table); err != nil {
			return err
		}
	}
	return nil
}

// insertItem stores item at ordinal together with its tags and images
func (t *indexTx) insertItem(ordinal int, item domain.Item) error {
	host, err := item.Host()
	if err != nil {
		host = ""
	}

	_, err = t.tx.Exec(`
		INSERT INTO items (ordinal, id, title, url, host, description, developer, published, updated, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, ordinal, item.ID, item.Title, item.URL, host, item.Description,
		item.Developer, item.Published, item.Updated, string(item.Status))
	if err != nil {
		return err
	}

	for pos, tag := range item.Tags {
		if _, err := t.tx.Exec(`INSERT INTO item_tags (item_ordinal, position, tag) VALUES (?, ?, ?)`,
			ordinal, pos, tag); err != nil {
			return err
		}
	}
	for pos, url := range item.Images {
		if _, err := t.tx.Exec(`INSERT INTO item_images (item_ordinal, position, url) VALUES (?, ?, ?)`,
			ordinal, pos, url); err != nil {
			return err
		}
	}
	return nil
}

// setMeta records a metadata value
func (t *indexTx) setMeta(key, value string) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

// Commit commits the transaction
func (t *indexTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *indexTx) Rollback() error {
	return t.tx.Rollback()
}
