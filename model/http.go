package model

import "github.com/jsphweid/scaledex/pitch"

type PitchResponse struct {
	Text       string `json:"text"`
	Symbol     string `json:"symbol"`
	Class      string `json:"class"`
	Accidental string `json:"accidental"`
	Octave     uint8  `json:"octave"`
	Chromatic  int    `json:"chromatic"`
	Key        *uint8 `json:"key,omitempty"`
}

type ScaleResponse struct {
	Root    pitch.Pitch   `json:"root"`
	Mode    string        `json:"mode"`
	Formula string        `json:"formula"`
	Pitches []pitch.Pitch `json:"pitches"`
	Display string        `json:"display"`
}

type ModeResult struct {
	Scale *ScaleResponse `json:"scale,omitempty"`
	Error string         `json:"error,omitempty"`
}

type ModeInfo struct {
	Name    string `json:"name"`
	Formula string `json:"formula"`
}

type ChordResponse struct {
	Name      string        `json:"name"`
	Quality   string        `json:"quality"`
	Pitches   []pitch.Pitch `json:"pitches"`
	Intervals []string      `json:"intervals"`
	Keys      []uint8       `json:"keys,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
