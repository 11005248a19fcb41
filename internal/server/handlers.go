package server

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/ukaji3/desde-go/pkg/desde"
	"github.com/ukaji3/desde-go/pkg/desde/models"
	"github.com/ukaji3/desde-go/pkg/desde/output"
)

// Query parameters carrying the selection.
const (
	paramDistrict = "comuna"
	paramTypology = "tipologia"
)

type dashboardPage struct {
	View   *models.View
	Plotly *output.PlotlyFigure
	Query  template.URL
}

// handleDashboard handles GET /
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	var sel *models.Selection
	if q := r.URL.Query(); q.Has(paramDistrict) || q.Has(paramTypology) {
		sel = &models.Selection{District: q.Get(paramDistrict), Typology: q.Get(paramTypology)}
	}

	view, err := s.renderView(r.Context(), sel)
	if err != nil {
		http.Error(w, "No se pudo cargar el archivo de unidades: "+err.Error(), http.StatusInternalServerError)
		return
	}

	page := dashboardPage{
		View:   view,
		Plotly: output.ChartToPlotly(view.Chart),
		Query:  selectionQuery(view.Selection),
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "dashboard.html", page); err != nil {
		s.logger.Error("template failed", zap.Error(err))
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Write(buf.Bytes())
}

// handleHealth handles GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// handleOptions handles GET /api/options
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	ds, err := desde.Load(s.cfg.Data.Path, s.opts)
	if err != nil {
		s.logger.Error("load failed", zap.String("request_id", GetRequestID(r.Context())), zap.Error(err))
		s.renderError(w, r, errLoad(err))
		return
	}

	districts, typologies := desde.FilterOptions(ds)
	render.JSON(w, r, map[string][]string{
		"districts":  districts,
		"typologies": typologies,
	})
}

// handleDesde handles GET /api/desde
func (s *Server) handleDesde(w http.ResponseWriter, r *http.Request) {
	view, ok := s.viewFromQuery(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, view)
}

// handleChartSVG handles GET /api/chart.svg
func (s *Server) handleChartSVG(w http.ResponseWriter, r *http.Request) {
	view, ok := s.viewFromQuery(w, r)
	if !ok {
		return
	}
	if view.Chart == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	if err := output.ChartToSVG(&buf, view.Chart); err != nil {
		s.logger.Error("chart render failed", zap.Error(err))
		s.renderError(w, r, errRender(err))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

// handleExport handles GET /api/export/{format}
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(chi.URLParam(r, "format"))
	switch format {
	case "csv", "xlsx", "pdf":
	default:
		s.renderError(w, r, errUnsupportedFormat(format))
		return
	}

	view, ok := s.viewFromQuery(w, r)
	if !ok {
		return
	}

	var (
		buf         bytes.Buffer
		contentType string
		err         error
	)
	switch format {
	case "csv":
		contentType = "text/csv; charset=utf-8"
		err = output.TableToCSV(&buf, view.Table, true)
	case "xlsx":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = output.TableToXLSX(&buf, view.Table, output.DefaultSheetName)
	case "pdf":
		contentType = "application/pdf"
		var data []byte
		data, err = output.TableToPDF(view.Table, "Valores 'Desde' por Proyecto", selectionTitle(view.Selection))
		buf.Write(data)
	}
	if err != nil {
		s.logger.Error("export failed", zap.String("format", format), zap.Error(err))
		s.renderError(w, r, errRender(err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportName(view.Selection, format)))
	w.Write(buf.Bytes())
}

// viewFromQuery validates the selection query and renders it. On failure the
// error response has been written and ok is false.
func (s *Server) viewFromQuery(w http.ResponseWriter, r *http.Request) (*models.View, bool) {
	q := r.URL.Query()
	sel := models.Selection{District: q.Get(paramDistrict), Typology: q.Get(paramTypology)}
	if err := s.validate.Struct(sel); err != nil {
		s.renderError(w, r, errValidation(err))
		return nil, false
	}

	view, err := s.renderView(r.Context(), &sel)
	if err != nil {
		s.renderError(w, r, errLoad(err))
		return nil, false
	}
	return view, true
}

func selectionQuery(sel models.Selection) template.URL {
	v := url.Values{}
	v.Set(paramDistrict, sel.District)
	v.Set(paramTypology, sel.Typology)
	return template.URL(v.Encode())
}

func selectionTitle(sel models.Selection) string {
	return fmt.Sprintf("Comuna: %s · Tipología: %s", sel.District, sel.Typology)
}

func exportName(sel models.Selection, ext string) string {
	clean := func(s string) string {
		return strings.Map(func(r rune) rune {
			switch {
			case r == ' ' || r == '/' || r == '\\':
				return '_'
			case r < 0x20 || r == '"':
				return -1
			}
			return r
		}, s)
	}
	return fmt.Sprintf("desde_%s_%s.%s", clean(sel.District), clean(sel.Typology), ext)
}
