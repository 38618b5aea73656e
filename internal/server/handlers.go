package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/brand-research/internal/types"
)

// decodeRequest decodes and validates a JSON request body. A false return
// means the response has already been written.
func decodeRequest[T interface{ Validate() error }](s *Server, w http.ResponseWriter, r *http.Request, req T) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		decodeErr := &ErrBadRequestBody{Cause: err}
		s.errorResponse(w, HTTPStatus(decodeErr), decodeErr.Error())
		return false
	}
	if err := req.Validate(); err != nil {
		validationErr := &ErrValidation{Cause: err}
		s.errorResponse(w, HTTPStatus(validationErr), validationErr.Error())
		return false
	}
	return true
}

// handleProductResearch responds with the research envelope:
// {success, product_id, data}.
func (s *Server) handleProductResearch(w http.ResponseWriter, r *http.Request) {
	var req types.ProductResearchRequest
	if !decodeRequest(s, w, r, &req) {
		return
	}

	info := s.research.ResearchProduct(r.Context(), req.ProductName)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":    true,
		"product_id": req.ProductID,
		"data":       info,
	})
}

// handleProductResearchSimple responds with the flat workflow-automation
// shape: identifiers passed through, result fields under updateData.
func (s *Server) handleProductResearchSimple(w http.ResponseWriter, r *http.Request) {
	var req types.ProductResearchRequest
	if !decodeRequest(s, w, r, &req) {
		return
	}

	info := s.research.ResearchProduct(r.Context(), req.ProductName)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"product_id":   req.ProductID,
		"user_id":      req.UserID,
		"callback_url": req.CallbackURL,
		"updateData": map[string]any{
			"name":            info.Name,
			"brand":           info.Brand,
			"description":     info.Description,
			"ingredients":     info.Ingredients,
			"claims":          info.Claims,
			"price":           info.Price,
			"target_audience": info.TargetAudience,
			"main_category":   info.MainCategory,
			"sub_category":    info.SubCategory,
			"product_type":    info.ProductType,
			"what_it_does":    info.WhatItDoes,
			"main_difference": info.MainDifference,
			"status":          "ready",
		},
	})
}

func (s *Server) handleBrandResearch(w http.ResponseWriter, r *http.Request) {
	var req types.BrandResearchRequest
	if !decodeRequest(s, w, r, &req) {
		return
	}

	info := s.research.ResearchBrand(r.Context(), req.WebsiteURL, req.BrandName)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":  true,
		"brand_id": req.BrandID,
		"data":     info,
	})
}

func (s *Server) handleBrandResearchSimple(w http.ResponseWriter, r *http.Request) {
	var req types.BrandResearchRequest
	if !decodeRequest(s, w, r, &req) {
		return
	}

	info := s.research.ResearchBrand(r.Context(), req.WebsiteURL, req.BrandName)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"brand_id":     req.BrandID,
		"user_id":      req.UserID,
		"callback_url": req.CallbackURL,
		"updateData": map[string]any{
			"name":                  info.Name,
			"description":           info.Description,
			"tagline":               info.Tagline,
			"industry":              info.Industry,
			"target_audience":       info.TargetAudience,
			"key_products":          info.KeyProducts,
			"brand_values":          info.BrandValues,
			"unique_selling_points": info.UniqueSellingPoints,
			"tone_of_voice":         info.ToneOfVoice,
			"suggested_topics":      info.SuggestedTopics,
			"status":                "ready",
		},
	})
}

func (s *Server) handleCompetitorResearch(w http.ResponseWriter, r *http.Request) {
	var req types.CompetitorResearchRequest
	if !decodeRequest(s, w, r, &req) {
		return
	}

	analysis := s.research.ResearchCompetitors(r.Context(), req.BrandName, req.BrandDescription, req.Industry, req.Topics)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":  true,
		"brand_id": req.BrandID,
		"data":     analysis,
	})
}

func (s *Server) handleCompetitorResearchSimple(w http.ResponseWriter, r *http.Request) {
	var req types.CompetitorResearchRequest
	if !decodeRequest(s, w, r, &req) {
		return
	}

	analysis := s.research.ResearchCompetitors(r.Context(), req.BrandName, req.BrandDescription, req.Industry, req.Topics)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"brand_id":     req.BrandID,
		"user_id":      req.UserID,
		"callback_url": req.CallbackURL,
		"updateData": map[string]any{
			"competitors":           analysis.Competitors,
			"market_position":       analysis.MarketPosition,
			"competitive_landscape": analysis.CompetitiveLandscape,
			"status":                "ready",
		},
	})
}

func (s *Server) handlePromptGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.PromptGenerateRequest
	if !decodeRequest(s, w, r, &req) {
		return
	}

	result := s.research.GeneratePrompts(r.Context(), req)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":  true,
		"brand_id": req.BrandID,
		"data":     result,
	})
}

func (s *Server) handlePromptGenerateSimple(w http.ResponseWriter, r *http.Request) {
	var req types.PromptGenerateRequest
	if !decodeRequest(s, w, r, &req) {
		return
	}

	result := s.research.GeneratePrompts(r.Context(), req)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"brand_id":     req.BrandID,
		"user_id":      req.UserID,
		"callback_url": req.CallbackURL,
		"updateData": map[string]any{
			"topics":        result.Topics,
			"total_prompts": result.TotalPrompts,
			"status":        "ready",
		},
	})
}
