// Package watcher regenerates decks whenever a verse source in the stage
// directory changes, and optionally records and uploads the results.
package watcher

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MervinPraison/PraisonAIPPT/internal/config"
	"github.com/MervinPraison/PraisonAIPPT/internal/deck"
	"github.com/MervinPraison/PraisonAIPPT/internal/gdrive"
	"github.com/MervinPraison/PraisonAIPPT/internal/library"
	"github.com/MervinPraison/PraisonAIPPT/internal/verses"
)

// debounce gives editors and file transfers time to finish writing
// before the source is read.
const debounce = 2 * time.Second

type Watcher struct {
	cfg         *config.Config
	db          *sql.DB          // nil when no library is configured
	uploader    *gdrive.Uploader // nil when Drive is not configured
	activeTasks int
	mu          sync.Mutex
	LogChan     chan string
}

func New(cfg *config.Config, db *sql.DB, uploader *gdrive.Uploader, logChan chan string) *Watcher {
	return &Watcher{
		cfg:      cfg,
		db:       db,
		uploader: uploader,
		LogChan:  logChan,
	}
}

func (w *Watcher) log(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	log.Println(msg)
	if w.LogChan != nil {
		select {
		case w.LogChan <- msg:
		default:
			// fast non-blocking drop if buffer full
		}
	}
}

func (w *Watcher) incrementTask() {
	w.mu.Lock()
	w.activeTasks++
	w.mu.Unlock()
}

func (w *Watcher) decrementTask() {
	w.mu.Lock()
	w.activeTasks--
	w.mu.Unlock()
}

// Start watches the stage directory until ctx is cancelled. Sources
// already present are processed once on startup.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	stageDir := w.cfg.Application.Storage.Stage
	if stageDir == "" {
		return fmt.Errorf("stage storage directory not configured")
	}
	if err := os.MkdirAll(stageDir, 0755); err != nil {
		return fmt.Errorf("failed to create stage directory: %v", err)
	}

	outputDir := w.cfg.Application.Storage.Output
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			w.log("Failed to create output directory: %v", err)
		}
	}

	if err := fsw.Add(stageDir); err != nil {
		return err
	}

	w.log("%s %s watcher started, observing: %s",
		w.cfg.Application.Name, w.cfg.Application.Version, stageDir)

	// Initial scan
	w.scanDirectory(stageDir)

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if isVerseSource(event.Name) {
					w.log("Detected change in: %s", event.Name)
					time.Sleep(debounce)
					w.processFile(event.Name)
				}
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log("Watcher error: %v", err)

		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) scanDirectory(dir string) {
	files, err := os.ReadDir(dir)
	if err != nil {
		w.log("Failed to scan directory: %v", err)
		return
	}

	for _, f := range files {
		if !f.IsDir() && isVerseSource(f.Name()) {
			w.processFile(filepath.Join(dir, f.Name()))
		}
	}
}

func (w *Watcher) processFile(path string) {
	w.incrementTask()
	defer w.decrementTask()

	filename := filepath.Base(path)
	w.log("Processing source: %s", filename)

	pres, err := loadSource(path)
	if err != nil {
		w.log("Failed to load %s: %v", filename, err)
		return
	}

	built := deck.Build(pres, deck.Options{
		MaxChars:       w.cfg.Deck.MaxChars,
		Author:         w.cfg.Application.Author,
		HighlightColor: w.cfg.Deck.HighlightColor,
		BodyColor:      w.cfg.Deck.BodyColor,
		ReferenceColor: w.cfg.Deck.ReferenceColor,
		SectionColor:   w.cfg.Deck.SectionColor,
	})

	outName := deck.OutputName(pres, "", "")
	outPath := filepath.Join(w.cfg.Application.Storage.Output, outName)
	if err := built.Save(outPath); err != nil {
		w.log("Failed to write deck for %s: %v", filename, err)
		return
	}
	w.log("Generated %s (%d slides)", outPath, built.SlideCount())

	checksum := fileChecksum(outPath)

	if w.db != nil && checksum != "" {
		if existing, err := library.DeckByChecksum(w.db, checksum); err == nil {
			w.log("Deck %s already recorded (ID: %s). Skipping duplicate.", outName, existing.ID)
			return
		} else if err != sql.ErrNoRows {
			w.log("Library lookup failed for %s: %v", outName, err)
		}
	}

	record := &library.Deck{
		Filename:   outName,
		OutputPath: outPath,
		Title:      pres.Title,
		SlideCount: built.SlideCount(),
		Checksum:   checksum,
		SourcePath: path,
	}

	if w.uploader != nil {
		w.uploadDeck(outPath, outName, record)
	}

	if w.db != nil {
		if err := library.SaveDeck(w.db, record); err != nil {
			w.log("Failed to record deck %s: %v", outName, err)
		}
	}

	w.log("Successfully processed: %s", filename)
}

func (w *Watcher) uploadDeck(outPath, outName string, record *library.Deck) {
	ctx := context.Background()

	folderID := w.cfg.Drive.FolderID
	if folderID == "" && w.cfg.Drive.FolderName != "" {
		id, err := w.uploader.EnsureFolder(ctx, w.cfg.Drive.FolderName)
		if err != nil {
			w.log("Failed to resolve Drive folder %q: %v", w.cfg.Drive.FolderName, err)
		} else {
			folderID = id
		}
	}

	result, err := w.uploader.Upload(ctx, outPath, folderID, "")
	if err != nil {
		w.log("Failed to upload %s: %v", outName, err)
		return
	}
	record.DriveFileID = result.ID
	record.DriveLink = result.WebViewLink

	if w.cfg.Drive.Share {
		if err := w.uploader.Share(ctx, result.ID); err != nil {
			w.log("Failed to share %s: %v", outName, err)
		}
	}
	w.log("Uploaded %s: %s", outName, result.WebViewLink)
}

// IsProcessing reports whether any source is currently being handled.
func (w *Watcher) IsProcessing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.activeTasks > 0
}

func loadSource(path string) (*verses.Presentation, error) {
	if strings.EqualFold(filepath.Ext(path), ".md") {
		return verses.LoadMarkdown(path)
	}
	return verses.LoadFile(path)
}

func isVerseSource(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".md":
		return true
	}
	return false
}

func fileChecksum(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
