package api

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"posadmin/m/domain"
	"posadmin/m/internal/logger"
)

var reportCSVHeader = []string{
	"SalesID", "CustID", "CustFName", "CustLName", "ProductID", "ProdDesc", "SalesDate",
	"CashierID", "CashierFName", "CashierLName", "SupplierID", "SupplierDesc",
}

func (h *Handler) salesReport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Report.Rows(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	if !strings.EqualFold(r.URL.Query().Get("format"), "csv") {
		respondJSON(w, http.StatusOK, rows)
		return
	}

	filename := fmt.Sprintf("sales-report-%s.csv", h.now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if err := writeReportCSV(w, rows); err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("write sales report csv")
	}
}

// writeReportCSV writes rows with dates formatted MM/DD/YY.
func writeReportCSV(out io.Writer, rows []domain.ReportRow) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(reportCSVHeader); err != nil {
		return err
	}
	for _, row := range rows {
		var supplierID, supplierDesc string
		if row.SupplierID != nil {
			supplierID = strconv.FormatInt(*row.SupplierID, 10)
		}
		if row.SupplierDesc != nil {
			supplierDesc = *row.SupplierDesc
		}
		record := []string{
			strconv.FormatInt(row.SaleID, 10),
			strconv.FormatInt(row.CustomerID, 10),
			row.CustomerFirstName,
			row.CustomerLastName,
			strconv.FormatInt(row.ProductID, 10),
			row.ProductDesc,
			row.SalesDate.Format("01/02/06"),
			strconv.FormatInt(row.CashierID, 10),
			row.CashierFirstName,
			row.CashierLastName,
			supplierID,
			supplierDesc,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
