package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/affiliate-manager-api/internal/domain"
	"github.com/vfg2006/affiliate-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/affiliate-manager-api/pkg/log"
	"github.com/vfg2006/affiliate-manager-api/pkg/utils"
)

func GetTransactionReports(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseTransactionFilters(w, r)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Debug("reports: fetching transaction reports with filters")

		reports, err := service.ListTransactionReports(filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("reports: failed to list transaction reports")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
			"reports":    len(reports),
		}).Info("reports: successfully retrieved transaction reports")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reports); err != nil {
			logger.WithField("error", err.Error()).Error("reports: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetCommissionSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseTransactionFilters(w, r)
		if !ok {
			return
		}

		summary, err := service.Summarize(filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("reports: failed to summarize commissions")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"start_date":   filters.StartDate.Format(time.DateOnly),
			"end_date":     filters.EndDate.Format(time.DateOnly),
			"transactions": summary.Transactions,
		}).Info("reports: successfully summarized commissions")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithField("error", err.Error()).Error("reports: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parseTransactionFilters monta os filtros a partir dos parâmetros da query.
// Em caso de erro a resposta já é escrita e ok retorna false.
func parseTransactionFilters(w http.ResponseWriter, r *http.Request) (*domain.TransactionFilters, bool) {
	logger := log.ForContext(r.Context())

	if r.URL.Query().Get("start_date") == "" || r.URL.Query().Get("end_date") == "" {
		http.Error(w, "os parâmetros start_date e end_date são obrigatórios", http.StatusBadRequest)
		return nil, false
	}

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": r.URL.Query().Get("start_date"),
			"error":      err.Error(),
		}).Warn("reports: invalid start_date parameter")

		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"end_date": r.URL.Query().Get("end_date"),
			"error":    err.Error(),
		}).Warn("reports: invalid end_date parameter")

		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	filters := &domain.TransactionFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if advertiserIDStr := r.URL.Query().Get("advertiser_id"); advertiserIDStr != "" {
		advertiserID, err := strconv.Atoi(advertiserIDStr)
		if err != nil {
			logger.WithFields(log.Fields{
				"advertiser_id": advertiserIDStr,
				"error":         err.Error(),
			}).Warn("reports: invalid advertiser_id parameter")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}
		filters.AdvertiserID = &advertiserID
	}

	if status := r.URL.Query().Get("status"); status != "" {
		filters.Status = &status
	}

	return filters, true
}
