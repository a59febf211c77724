package httpapi

import (
	"net/http"
	"strconv"
	"time"
)

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportCSV")
	defer span.End()

	out, err := h.exportService.ExportCSV(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "export csv failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	filename := "auction-" + time.Now().UTC().Format("20060102-150405") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
