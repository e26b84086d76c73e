// Package web exposes the translation and cleanup pipeline over a small
// JSON API.
package web

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/chemtrace/prose2actions/internal/convert"
	"github.com/chemtrace/prose2actions/internal/postprocess"
	"github.com/chemtrace/prose2actions/internal/translate"
)

// Server provides the JSON API handlers.
type Server struct {
	translator    *translate.ParagraphTranslator
	converter     *convert.Converter
	postprocessor postprocess.Postprocessor
}

// NewServer creates the API server. The paragraph translator may be nil, in
// which case the translate endpoint reports the service as unconfigured.
func NewServer(translator *translate.ParagraphTranslator, converter *convert.Converter, postprocessor postprocess.Postprocessor) *Server {
	return &Server{
		translator:    translator,
		converter:     converter,
		postprocessor: postprocessor,
	}
}

// Routes returns the API router.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /translate", s.handleTranslate)
	mux.HandleFunc("POST /postprocess", s.handlePostprocess)
	return mux
}

type translateRequest struct {
	Text string `json:"text"`
}

type sentenceResult struct {
	Text    string `json:"text"`
	Actions string `json:"actions"`
}

type translateResponse struct {
	Sentences []sentenceResult `json:"sentences"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if s.translator == nil {
		http.Error(w, "translation service not configured", http.StatusServiceUnavailable)
		return
	}

	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	paragraph, err := s.translator.Extract(r.Context(), req.Text)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	resp := translateResponse{Sentences: make([]sentenceResult, 0, len(paragraph.Sentences))}
	for _, sentence := range paragraph.Sentences {
		line, err := s.converter.ActionsToString(sentence.Actions)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		resp.Sentences = append(resp.Sentences, sentenceResult{Text: sentence.Text, Actions: line})
	}
	writeJSON(w, resp)
}

type postprocessRequest struct {
	Actions string `json:"actions"`
}

type postprocessResponse struct {
	Actions string `json:"actions"`
}

func (s *Server) handlePostprocess(w http.ResponseWriter, r *http.Request) {
	var req postprocessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	seq, err := s.converter.StringToActions(req.Actions)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	line, err := s.converter.ActionsToString(s.postprocessor.Postprocess(seq))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, postprocessResponse{Actions: line})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write response")
	}
}
