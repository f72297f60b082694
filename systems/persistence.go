package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedProgress represents the run statistics stored on disk
type SavedProgress struct {
	BestLevelIndex int `json:"bestLevelIndex"`
	RunsPlayed     int `json:"runsPlayed"`
	TotalLivesLost int `json:"totalLivesLost"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "brickfall",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProgress loads saved progress from disk. Returns nil when nothing is
// saved yet.
func LoadProgress() (*SavedProgress, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}

	return &progress, nil
}

// SaveProgress saves progress to disk
func SaveProgress(p *SavedProgress) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("progress", data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}

// RecordRunEnd folds one finished run into the saved progress.
func RecordRunEnd(levelIndex, livesLost int) {
	progress, _ := LoadProgress()
	if progress == nil {
		progress = &SavedProgress{}
	}
	if levelIndex > progress.BestLevelIndex {
		progress.BestLevelIndex = levelIndex
	}
	progress.RunsPlayed++
	progress.TotalLivesLost += livesLost
	_ = SaveProgress(progress)
}
