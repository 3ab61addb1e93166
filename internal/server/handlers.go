package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-hexmap-atlas/pkg/hexmap"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(s.html)
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(s.svg)
}

func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	if s.png == nil {
		writeError(w, http.StatusNotFound, "map is empty")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(s.png)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "cells": s.cells.Len()})
}

func (s *Server) handleCells(w http.ResponseWriter, r *http.Request) {
	cells := s.cells.Cells()
	if cells == nil {
		cells = []hexmap.Cell{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": cells})
}

func (s *Server) handleCell(w http.ResponseWriter, r *http.Request) {
	q, errQ := strconv.Atoi(chi.URLParam(r, "q"))
	rr, errR := strconv.Atoi(chi.URLParam(r, "r"))
	if errQ != nil || errR != nil {
		writeError(w, http.StatusBadRequest, "q and r must be integers")
		return
	}

	h := hexmap.Hex{Q: q, R: rr}
	if !s.scene.Layout.Contains(h) {
		writeError(w, http.StatusNotFound, h.String()+" is outside the map")
		return
	}
	cell, ok := s.cells.Lookup(h)
	if !ok {
		writeError(w, http.StatusNotFound, "no cell at "+h.String())
		return
	}
	writeJSON(w, http.StatusOK, cell)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.scene.Layout)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
