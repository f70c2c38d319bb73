package datastructures

import (
	"time"
)

// VoiceConfig is an optional catalogue entry for a voice directory. Voices
// found under the data dir work without one.
type VoiceConfig struct {
	Name           string   `bson:"name" json:"name"`
	DisplayName    string   `bson:"display_name" json:"display_name"`
	Directory      string   `bson:"directory" json:"directory"`
	PhoneTiers     []string `bson:"phone_tiers" json:"phone_tiers,omitempty"`
	SpectralWeight *float64 `bson:"spectral_weight" json:"spectral_weight,omitempty"`
	Disabled       bool     `bson:"disabled" json:"disabled"`
}

type Synthesis struct {
	ID         string        `bson:"_id" json:"id"`
	Voice      string        `bson:"voice" json:"voice"`
	Sentence   string        `bson:"sentence" json:"sentence,omitempty"`
	Phonemes   []string      `bson:"phonemes" json:"phonemes"`
	Options    SynthOptions  `bson:"options" json:"options"`
	SampleRate int           `bson:"sample_rate" json:"sample_rate"`
	Duration   time.Duration `bson:"duration" json:"duration"`
	Segments   []Segment     `bson:"segments" json:"segments"`
	Overlaps   []int         `bson:"overlaps" json:"overlaps"`
	CreatedAt  time.Time     `bson:"created_at" json:"created_at"`
}

type SynthOptions struct {
	Crossfade        bool    `bson:"crossfade" json:"crossfade"`
	CrossfadeOverlap float64 `bson:"crossfade_overlap" json:"crossfade_overlap"`
	DualSimilarity   bool    `bson:"dual_similarity" json:"dual_similarity"`
}

// Segment is one planned phoneme and the recording it was cut from.
type Segment struct {
	Symbol   string  `bson:"symbol" json:"symbol"`
	Word     string  `bson:"word" json:"word"`
	Position int     `bson:"position" json:"position"`
	Start    int     `bson:"start" json:"start"`
	End      int     `bson:"end" json:"end"`
	Context  float64 `bson:"context" json:"context"`
	Spectral float64 `bson:"spectral" json:"spectral"`
}
