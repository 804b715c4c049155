package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jsphweid/scaledex/chord"
	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/pitch"
	"github.com/jsphweid/scaledex/scale"
)

func NewPitchResponse(p pitch.Pitch) model.PitchResponse {
	res := model.PitchResponse{
		Text:       p.String(),
		Symbol:     p.Symbol(),
		Class:      p.Class.String(),
		Accidental: p.Accidental.Name(),
		Octave:     p.Octave,
		Chromatic:  p.PitchClassValue(),
	}
	if key, err := p.Key(); err == nil {
		v := key.Value()
		res.Key = &v
	}
	return res
}

func NewScaleResponse(s scale.Scale) model.ScaleResponse {
	return model.ScaleResponse{
		Root:    s.Root,
		Mode:    s.Name,
		Formula: s.Formula.String(),
		Pitches: s.Pitches,
		Display: s.String(),
	}
}

func NewChordResponse(c chord.Chord) model.ChordResponse {
	res := model.ChordResponse{
		Name:    c.Name(),
		Quality: c.Quality.Name,
		Pitches: c.Pitches,
	}
	if intervals, err := c.Quality.Intervals(); err == nil {
		for _, i := range intervals {
			res.Intervals = append(res.Intervals, i.Short())
		}
	}
	if keys, err := c.Keys(); err == nil {
		for _, k := range keys {
			res.Keys = append(res.Keys, k.Value())
		}
	}
	return res
}

func (s *Server) handleModes(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ModeInfo, 0, len(s.modes))
	for _, name := range s.modes.Names() {
		res = append(res, model.ModeInfo{Name: name, Formula: s.modes[name].String()})
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handlePitch(w http.ResponseWriter, r *http.Request) {
	p, err := pitch.Parse(mux.Vars(r)["pitch"])
	if err != nil {
		writeError(w, tag(err, "bad pitch"))
		return
	}
	writeJSON(w, http.StatusOK, NewPitchResponse(p))
}

func (s *Server) handleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	root, err := pitch.Parse(vars["root"])
	if err != nil {
		writeError(w, tag(err, "bad root"))
		return
	}
	m, err := s.modes.Lookup(vars["mode"])
	if err != nil {
		writeError(w, tag(err, "bad mode"))
		return
	}
	built, err := m.Build(root)
	if err != nil {
		writeError(w, tag(err, "cannot build scale"))
		return
	}
	writeJSON(w, http.StatusOK, NewScaleResponse(built))
}

func (s *Server) handleAllScales(w http.ResponseWriter, r *http.Request) {
	root, err := pitch.Parse(mux.Vars(r)["root"])
	if err != nil {
		writeError(w, tag(err, "bad root"))
		return
	}

	res := make(map[string]model.ModeResult)
	for name, result := range s.modes.BuildAll(root) {
		if result.Err != nil {
			res[name] = model.ModeResult{Error: result.Err.Error()}
			continue
		}
		sr := NewScaleResponse(result.Scale)
		res[name] = model.ModeResult{Scale: &sr}
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleQualities(w http.ResponseWriter, r *http.Request) {
	var res []model.ModeInfo
	for _, q := range chord.Qualities() {
		var tones []string
		for _, t := range q.Tones {
			tones = append(tones, t.String())
		}
		res = append(res, model.ModeInfo{Name: q.Name, Formula: strings.Join(tones, " ")})
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleChord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	root, err := pitch.Parse(vars["root"])
	if err != nil {
		writeError(w, tag(err, "bad root"))
		return
	}
	q, err := chord.Lookup(vars["quality"])
	if err != nil {
		writeError(w, tag(err, "bad quality"))
		return
	}
	c, err := chord.Build(root, q)
	if err != nil {
		writeError(w, tag(err, "cannot build chord"))
		return
	}
	writeJSON(w, http.StatusOK, NewChordResponse(c))
}
