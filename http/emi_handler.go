package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"emi-calculator/domain"
	"emi-calculator/service"
)

// maxRequestBytes caps the body of a calculation request.
const maxRequestBytes = 4 << 10

type emiResponse struct {
	Success bool `json:"success"`
	domain.EmiResult
}

type yearlyResponse struct {
	Success       bool                 `json:"success"`
	TenureMonths  int                  `json:"tenure_months"`
	YearlySummary []domain.YearSummary `json:"yearly_summary"`
}

type EmiHandler struct {
	service *service.EmiService
}

func NewEmiHandler(service *service.EmiService) *EmiHandler {
	return &EmiHandler{service: service}
}

// calculate runs a request through parsing and the service. Every failure
// comes back as a *service.ValidationError.
func (h *EmiHandler) calculate(w http.ResponseWriter, r *http.Request) (domain.EmiResult, error) {
	var req domain.LoanRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return domain.EmiResult{}, &service.ValidationError{
			Kind: service.Unexpected,
			Err:  fmt.Errorf("decode request body: %w", err),
		}
	}

	input, err := service.ParseLoanInput(req)
	if err != nil {
		return domain.EmiResult{}, err
	}

	return h.service.CalculateEMI(r.Context(), input)
}

// writeFailure answers with the client message for err. The status stays
// 200: failure is carried by the success flag only.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	kind := service.KindOf(err)
	if kind == service.Unexpected {
		slog.Error("Calculation failed", "path", r.URL.Path, "request_id", RequestID(r.Context()), "error", err)
	} else {
		slog.Debug("Calculation rejected", "path", r.URL.Path, "kind", kind.String(), "error", err)
	}

	writeJSON(w, failureResponse{Success: false, Error: kind.Message()})
}

func (h *EmiHandler) CalculateEMI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := h.calculate(w, r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, emiResponse{Success: true, EmiResult: result})
}

func (h *EmiHandler) YearlySummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := h.calculate(w, r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, yearlyResponse{
		Success:       true,
		TenureMonths:  result.TenureMonths,
		YearlySummary: service.YearlySummary(result.Schedule),
	})
}

func (h *EmiHandler) DownloadSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := h.calculate(w, r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := service.WriteScheduleCSV(&buf, result); err != nil {
		writeFailure(w, r, &service.ValidationError{Kind: service.Unexpected, Err: err})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", service.ScheduleFilename(result)))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("Error writing response", "error", err)
	}
}
