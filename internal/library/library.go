// Package library records generated decks in Postgres so repeated runs
// can be deduplicated by checksum and past output located again. It is
// entirely optional; callers skip it when no database URL is configured.
package library

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// Deck is one recorded generation.
type Deck struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	OutputPath  string    `json:"output_path"`
	Title       string    `json:"title"`
	SlideCount  int       `json:"slide_count"`
	Checksum    string    `json:"checksum"`
	SourcePath  string    `json:"source_path"`
	DriveFileID string    `json:"drive_file_id"`
	DriveLink   string    `json:"drive_link"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewConnection opens and pings a Postgres connection.
func NewConnection(connectStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connectStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	log.Println("Database connection established")
	return db, nil
}

const createDecksTable = `
	CREATE TABLE IF NOT EXISTS generated_decks (
		id UUID PRIMARY KEY,
		filename TEXT NOT NULL,
		output_path TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		slide_count INTEGER NOT NULL DEFAULT 0,
		checksum TEXT NOT NULL DEFAULT '',
		source_path TEXT NOT NULL DEFAULT '',
		drive_file_id TEXT NOT NULL DEFAULT '',
		drive_link TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

const deckColumns = "id, filename, output_path, title, slide_count, checksum, source_path, drive_file_id, drive_link, created_at"

const insertDeckQuery = `
	INSERT INTO generated_decks (id, filename, output_path, title, slide_count, checksum, source_path, drive_file_id, drive_link)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const deckByChecksumQuery = "SELECT " + deckColumns + " FROM generated_decks WHERE checksum = $1"

const allDecksQuery = "SELECT " + deckColumns + " FROM generated_decks ORDER BY created_at DESC"

// ensureID assigns a fresh id when the deck has none yet.
func (d *Deck) ensureID() {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
}

// EnsureSchema creates the decks table when missing.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(createDecksTable); err != nil {
		return fmt.Errorf("creating generated_decks table: %w", err)
	}
	return nil
}

// SaveDeck inserts a deck record, assigning an id when unset.
func SaveDeck(db *sql.DB, d *Deck) error {
	d.ensureID()
	_, err := db.Exec(insertDeckQuery, d.ID, d.Filename, d.OutputPath, d.Title, d.SlideCount, d.Checksum, d.SourcePath, d.DriveFileID, d.DriveLink)
	return err
}

// DeckByChecksum returns the deck with the given checksum, or
// sql.ErrNoRows when there is none.
func DeckByChecksum(db *sql.DB, checksum string) (*Deck, error) {
	var d Deck
	err := db.QueryRow(deckByChecksumQuery, checksum).Scan(&d.ID, &d.Filename, &d.OutputPath, &d.Title, &d.SlideCount, &d.Checksum, &d.SourcePath, &d.DriveFileID, &d.DriveLink, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// AllDecks lists recorded decks, newest first.
func AllDecks(db *sql.DB) ([]Deck, error) {
	rows, err := db.Query(allDecksQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decks []Deck
	for rows.Next() {
		var d Deck
		if err := rows.Scan(&d.ID, &d.Filename, &d.OutputPath, &d.Title, &d.SlideCount, &d.Checksum, &d.SourcePath, &d.DriveFileID, &d.DriveLink, &d.CreatedAt); err != nil {
			return nil, err
		}
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

// UpdateDriveLink records the Drive id and link after a later upload.
func UpdateDriveLink(db *sql.DB, id uuid.UUID, fileID, link string) error {
	_, err := db.Exec("UPDATE generated_decks SET drive_file_id = $1, drive_link = $2 WHERE id = $3", fileID, link, id)
	return err
}

// Clear deletes every recorded deck.
func Clear(db *sql.DB) error {
	_, err := db.Exec("DELETE FROM generated_decks")
	return err
}
