package library

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEnsureIDAssignsWhenUnset(t *testing.T) {
	d := &Deck{Filename: "deck.pptx"}
	d.ensureID()
	assert.NotEqual(t, uuid.Nil, d.ID)
}

func TestEnsureIDKeepsExisting(t *testing.T) {
	id := uuid.New()
	d := &Deck{ID: id}
	d.ensureID()
	assert.Equal(t, id, d.ID)
}

func TestSchemaAndQueriesAgree(t *testing.T) {
	assert.Contains(t, createDecksTable, "CREATE TABLE IF NOT EXISTS generated_decks")

	// Every column the queries read must exist in the schema.
	for _, col := range strings.Split(deckColumns, ", ") {
		assert.Contains(t, createDecksTable, col)
	}

	// created_at is filled by the database, the other nine columns by the
	// insert.
	assert.Equal(t, 9, strings.Count(insertDeckQuery, "$"))
	assert.NotContains(t, insertDeckQuery, "created_at")

	assert.Contains(t, deckByChecksumQuery, "WHERE checksum = $1")
	assert.Contains(t, allDecksQuery, "ORDER BY created_at DESC")
}
