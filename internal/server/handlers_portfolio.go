package server

import "net/http"

// section returns the records of one portfolio section.
func (s *Server) section(name string) (any, error) {
	data, ok := s.store.Section(name)
	if !ok {
		return nil, &ErrUnknownSection{Name: name}
	}
	return data, nil
}

// handlePortfolio returns every section
func (s *Server) handlePortfolio(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Portfolio())
}

// handlePortfolioSection returns one section by name
func (s *Server) handlePortfolioSection(w http.ResponseWriter, r *http.Request) {
	data, err := s.section(r.PathValue("section"))
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, data)
}
