package report

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=report_test

type reportService interface {
	Export(ctx context.Context, userID string, format Format) (*Export, error)
}

type Handler struct {
	service reportService
}

func NewHandler(service reportService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/reports/{format}", h.HandleExport).Methods("GET", "OPTIONS").Name("report-export")
}

func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.report.export")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	format, err := ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	export, err := h.service.Export(ctx, userID, format)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrProfileNotFound):
			http.Error(w, "profile not found", http.StatusNotFound)
		case errors.Is(err, context.Canceled):
			log.Debugf("report export for %s cancelled", userID)
		default:
			log.Errorf("export %s report for %s: %s", format, userID, err)
			http.Error(w, "failed to build report", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteAttachment(w, export.ContentType, export.FileName, export.Content)
}
