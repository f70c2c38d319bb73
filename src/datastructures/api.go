package datastructures

type SynthesizeRequest struct {
	Voice    string `json:"voice"`
	Sentence string `json:"sentence"`
	// space separated ARPAbet, used instead of Sentence when set
	Phonemes string `json:"phonemes"`

	Crossfade        *bool    `json:"crossfade"`
	CrossfadeOverlap *float64 `json:"crossfade_overlap"`
	DualSimilarity   *bool    `json:"dual_similarity"`
}

type VoiceInfo struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Loaded      bool     `json:"loaded"`
	Words       int      `json:"words,omitempty"`
	Instances   int      `json:"instances,omitempty"`
	SampleRate  int      `json:"sample_rate,omitempty"`
	Symbols     []string `json:"symbols,omitempty"`
}

type Event struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

type EventSynthesis struct {
	ID       string  `json:"id"`
	Voice    string  `json:"voice"`
	Duration float64 `json:"duration"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
