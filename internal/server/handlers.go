package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

// TailorRequest represents the request body for /api/tailor.
type TailorRequest struct {
	CanonicalData  json.RawMessage `json:"canonicalData" validate:"required"`
	JobTitle       string          `json:"jobTitle" validate:"required"`
	JobDescription string          `json:"jobDescription" validate:"required"`
}

// Validate validates the TailorRequest using the validator.
func (r *TailorRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CoverLetterRequest represents the request body for /api/cover-letter.
type CoverLetterRequest struct {
	TailoredData   json.RawMessage `json:"tailoredData" validate:"required"`
	JobTitle       string          `json:"jobTitle" validate:"required"`
	JobDescription string          `json:"jobDescription" validate:"required"`
}

// Validate validates the CoverLetterRequest using the validator.
func (r *CoverLetterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CoverLetterResponse represents the response for /api/cover-letter.
type CoverLetterResponse struct {
	Text string `json:"text"`
}

// handleTailor runs the tailoring operation and returns the tailored
// document.
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	var req TailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "canonicalData, jobTitle and jobDescription are required")
		return
	}

	canonical, err := decodeResumeDocument(req.CanonicalData)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid canonicalData: "+err.Error())
		return
	}

	tailored, err := s.engine.TailorResume(r.Context(), canonical, req.JobTitle, req.JobDescription)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, tailored)
}

// handleCoverLetter generates a cover letter from a tailored document.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req CoverLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "tailoredData, jobTitle and jobDescription are required")
		return
	}

	tailored, err := decodeResumeDocument(req.TailoredData)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid tailoredData: "+err.Error())
		return
	}

	text, err := s.engine.CoverLetter(r.Context(), tailored, req.JobTitle, req.JobDescription)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, CoverLetterResponse{Text: text})
}

// decodeResumeDocument schema-checks and decodes a resume document
// carried in a request body.
func decodeResumeDocument(raw json.RawMessage) (*types.ResumeDocument, error) {
	if err := schemas.ValidateResumeDocument(raw); err != nil {
		return nil, err
	}
	var doc types.ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
