package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	cfg "github.com/pixelforge/strider/config"
)

// SavedProfile is the single external flag the game persists: which
// character was selected last. Game state itself is never saved.
type SavedProfile struct {
	Character string `json:"character"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for profile storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "strider",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSelectedCharacter reads the persisted character key, falling back to
// the first selectable character when nothing was saved yet.
func LoadSelectedCharacter() string {
	fallback := cfg.Characters[0]

	if !gdataInitialized || gdataManager == nil {
		return fallback
	}

	data, err := gdataManager.LoadItem("profile")
	if err != nil {
		log.Printf("Warning: Could not load profile: %v", err)
		return fallback
	}
	if len(data) == 0 {
		return fallback
	}

	var profile SavedProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		log.Printf("Warning: Could not parse saved profile: %v", err)
		return fallback
	}

	if _, ok := cfg.CharacterClips[profile.Character]; !ok {
		return fallback
	}
	return profile.Character
}

// SaveSelectedCharacter persists the character key.
func SaveSelectedCharacter(character string) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(&SavedProfile{Character: character})
	if err != nil {
		log.Printf("Warning: Could not serialize profile: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("profile", data); err != nil {
		log.Printf("Warning: Could not save profile: %v", err)
		return err
	}
	return nil
}
