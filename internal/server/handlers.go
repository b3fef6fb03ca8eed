package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fylr/fylr-engine/internal/gig"
	"github.com/fylr/fylr-engine/internal/model"
	"github.com/fylr/fylr-engine/internal/service"
)

type parseExpenseRequest struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount,omitempty"`
}

type parseExpenseResponse struct {
	Success bool          `json:"success"`
	Expense model.Expense `json:"expense"`
}

func (s *Server) handleParseExpense(w http.ResponseWriter, r *http.Request) {
	var req parseExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Description == "" {
		s.respondError(w, http.StatusBadRequest, "Missing required field: description")
		return
	}

	expense := s.parser.Parse(r.Context(), req.Description, req.Amount)

	s.respondJSON(w, http.StatusOK, parseExpenseResponse{
		Success: true,
		Expense: expense,
	})
}

type assessComplexityRequest struct {
	ExpenseDescriptions []string              `json:"expense_descriptions"`
	BusinessProfile     model.BusinessProfile `json:"business_profile"`
}

func (s *Server) handleAssessComplexity(w http.ResponseWriter, r *http.Request) {
	var req assessComplexityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result := s.assessor.Assess(req.ExpenseDescriptions, req.BusinessProfile)
	s.respondJSON(w, http.StatusOK, result)
}

type optimizeStartupRequest struct {
	Expenses []model.StartupExpense `json:"expenses"`
	Revenue  float64                `json:"revenue"`
}

func (s *Server) handleOptimizeStartup(w http.ResponseWriter, r *http.Request) {
	var req optimizeStartupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result := s.optimizer.Optimize(req.Expenses, req.Revenue)
	s.respondJSON(w, http.StatusOK, result)
}

type batchParseRequest struct {
	Expenses []parseExpenseRequest `json:"expenses"`
}

type categorySummary struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type batchSummary struct {
	TotalCount  int                        `json:"total_count"`
	TotalAmount float64                    `json:"total_amount"`
	ByCategory  map[string]categorySummary `json:"by_category"`
}

type batchParseResponse struct {
	Success        bool            `json:"success"`
	ParsedExpenses []model.Expense `json:"parsed_expenses"`
	Summary        batchSummary    `json:"summary"`
}

func (s *Server) handleBatchParse(w http.ResponseWriter, r *http.Request) {
	var req batchParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Expenses) == 0 {
		s.respondError(w, http.StatusBadRequest, "No expenses provided")
		return
	}

	descriptions := make([]string, len(req.Expenses))
	for i, e := range req.Expenses {
		descriptions[i] = e.Description
	}

	parsed := s.parser.ParseBatch(r.Context(), descriptions)

	summary := batchSummary{
		TotalCount: len(parsed),
		ByCategory: make(map[string]categorySummary),
	}
	for _, exp := range parsed {
		amount := 0.0
		if exp.Amount != nil {
			amount = *exp.Amount
		}
		summary.TotalAmount += amount

		cs := summary.ByCategory[exp.CategoryKey]
		cs.Count++
		cs.Total += amount
		summary.ByCategory[exp.CategoryKey] = cs
	}

	s.respondJSON(w, http.StatusOK, batchParseResponse{
		Success:        true,
		ParsedExpenses: parsed,
		Summary:        summary,
	})
}

type quarterlyEstimateRequest struct {
	AnnualRevenue float64 `json:"annual_revenue"`
}

func (s *Server) handleQuarterlyEstimate(w http.ResponseWriter, r *http.Request) {
	if s.taxes == nil {
		s.respondError(w, http.StatusServiceUnavailable, "tax engine not configured")
		return
	}

	var req quarterlyEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s.respondJSON(w, http.StatusOK, s.taxes.QuarterlyEstimate(req.AnnualRevenue))
}

type detectPlatformRequest struct {
	Text  string  `json:"text"`
	Gross float64 `json:"gross_amount,omitempty"`
	Miles float64 `json:"miles,omitempty"`
	Year  int     `json:"year,omitempty"`
}

type detectPlatformResponse struct {
	Success          bool    `json:"success"`
	Detected         bool    `json:"detected"`
	Platform         string  `json:"platform,omitempty"`
	PlatformName     string  `json:"platform_name,omitempty"`
	Category         string  `json:"category,omitempty"`
	TaxForm          string  `json:"tax_form,omitempty"`
	IsDriver         bool    `json:"is_driver,omitempty"`
	IsIncome         bool    `json:"is_income"`
	NetEarnings      float64 `json:"net_earnings,omitempty"`
	MileageDeduction float64 `json:"mileage_deduction,omitempty"`
}

func (s *Server) handleDetectPlatform(w http.ResponseWriter, r *http.Request) {
	var req detectPlatformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == "" {
		s.respondError(w, http.StatusBadRequest, "Missing required field: text")
		return
	}

	year := req.Year
	if year == 0 {
		year = time.Now().Year()
	}

	resp := detectPlatformResponse{
		Success:  true,
		IsIncome: gig.IsIncome(req.Text),
	}

	if platform, found := gig.Detect(req.Text); found {
		resp.Detected = true
		resp.Platform = platform.Key
		resp.PlatformName = platform.Name
		resp.Category = platform.Category
		resp.TaxForm = platform.TaxForm
		resp.IsDriver = platform.IsDriver
		resp.NetEarnings = platform.NetEarnings(req.Gross)
		if platform.IsDriver {
			resp.MileageDeduction = gig.MileageDeduction(req.Miles, year)
		}
	}

	s.respondJSON(w, http.StatusOK, resp)
}

type addEntryRequest struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount,omitempty"`
	Date        string   `json:"date,omitempty"`
	ReceiptURL  string   `json:"receipt_url,omitempty"`
}

func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	if s.books == nil {
		s.respondError(w, http.StatusServiceUnavailable, "ledger not configured")
		return
	}

	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Description == "" {
		s.respondError(w, http.StatusBadRequest, "Missing required field: description")
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	result, err := s.books.Add(r.Context(), req.Description, req.Amount, date, req.ReceiptURL)
	if err != nil {
		s.logger.Error("failed to record ledger entry", "error", err)
		s.respondError(w, http.StatusInternalServerError, "failed to record expense")
		return
	}

	s.respondJSON(w, http.StatusCreated, result)
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	if s.books == nil {
		s.respondError(w, http.StatusServiceUnavailable, "ledger not configured")
		return
	}

	filter := service.EntryFilter{
		CategoryKey: r.URL.Query().Get("category"),
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			s.respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = n
	}

	entries, err := s.books.List(r.Context(), filter)
	if err != nil {
		s.logger.Error("failed to list ledger entries", "error", err)
		s.respondError(w, http.StatusInternalServerError, "failed to list entries")
		return
	}
	if entries == nil {
		entries = []model.LedgerEntry{}
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"entries": entries,
	})
}

func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	if s.books == nil {
		s.respondError(w, http.StatusServiceUnavailable, "ledger not configured")
		return
	}

	score, err := s.books.Readiness(r.Context())
	if err != nil {
		s.logger.Error("failed to compute readiness score", "error", err)
		s.respondError(w, http.StatusInternalServerError, "failed to compute readiness score")
		return
	}

	s.respondJSON(w, http.StatusOK, score)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "intake-api",
		"version": apiVersion,
	})
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorResponse{Success: false, Error: message})
}
