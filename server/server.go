package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/scaledex/chord"
	"github.com/jsphweid/scaledex/mode"
	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/pitch"
	"github.com/jsphweid/scaledex/scale"
	"github.com/rs/cors"
)

type Server struct {
	modes mode.Registry
}

func New(modes mode.Registry) *Server {
	return &Server{modes: modes}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(withRequestID)
	router.HandleFunc("/modes", s.handleModes).Methods("GET")
	router.HandleFunc("/pitches/{pitch}", s.handlePitch).Methods("GET")
	router.HandleFunc("/scales/{root}", s.handleAllScales).Methods("GET")
	router.HandleFunc("/scales/{root}/{mode}", s.handleScale).Methods("GET")
	router.HandleFunc("/chords", s.handleQualities).Methods("GET")
	router.HandleFunc("/chords/{root}/{quality}", s.handleChord).Methods("GET")
	return router
}

func (s *Server) Handler(allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet},
	})
	return c.Handler(s.Router())
}

func (s *Server) ListenAndServe(addr string, allowedOrigins []string) error {
	log.Printf("listening on %s with %d modes", addr, len(s.modes))
	return http.ListenAndServe(addr, s.Handler(allowedOrigins))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("[%s] %s %s %d", id, r.Method, r.URL.Path, rec.status)
	})
}

// tag marks domain errors with the kind the HTTP layer maps to a status.
func tag(err error, msg string) error {
	var pe *pitch.ParseError
	var se *pitch.InvalidSpellingError
	kind := ftag.Internal
	switch {
	case errors.As(err, &pe), errors.As(err, &se), errors.Is(err, scale.ErrInvalidFormula):
		kind = ftag.InvalidArgument
	case errors.Is(err, mode.ErrUnknownMode), errors.Is(err, chord.ErrUnknownQuality):
		kind = ftag.NotFound
	}
	return fault.Wrap(err, fmsg.With(msg), ftag.With(kind))
}

func statusFor(err error) int {
	switch ftag.Get(err) {
	case ftag.InvalidArgument:
		return http.StatusBadRequest
	case ftag.NotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("could not encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), model.ErrorResponse{Error: err.Error()})
}
