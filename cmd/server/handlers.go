package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/housecost/internal/chart"
	"github.com/Simplici0/housecost/internal/estimate"
	"github.com/Simplici0/housecost/internal/export"
	"github.com/Simplici0/housecost/internal/savedconfig"
)

const savedTimeLayout = "15:04 02/01/2006"

type option struct {
	Value    string
	Label    string
	Selected bool
}

type packageOption struct {
	option
	Description string
}

type savedEntryView struct {
	ID      string
	Name    string
	SavedAt string
}

type exportLink struct {
	Name string
	Href string
}

type homeViewData struct {
	baseViewData
	Form   configForm
	Result *estimate.Result
	Chart  template.URL

	ConstructionTypes []option
	FoundationTypes   []option
	RoofTypes         []option
	PackageTypes      []packageOption
	Exports           []exportLink
	Saved             []savedEntryView
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	base := baseViewData{
		ErrorMessage:   query.Get("error"),
		SuccessMessage: query.Get("success"),
	}

	switch query.Get("preset") {
	case "example":
		s.renderHome(w, r, http.StatusOK, base, estimate.ExampleConfiguration())
		return
	case "default":
		s.renderHome(w, r, http.StatusOK, base, estimate.DefaultConfiguration())
		return
	}

	if !hasConfiguration(query) {
		s.renderHome(w, r, http.StatusOK, base, estimate.DefaultConfiguration())
		return
	}

	cfg, err := parseConfigurationForm(query)
	if err != nil {
		s.renderInvalid(w, r, query, err)
		return
	}
	s.renderHome(w, r, http.StatusOK, base, cfg)
}

func (s *server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	cfg, err := parseConfigurationForm(r.PostForm)
	if err != nil {
		s.renderInvalid(w, r, r.PostForm, err)
		return
	}
	if cfg, err = applySelections(cfg, r.PostForm); err != nil {
		s.renderInvalid(w, r, r.PostForm, err)
		return
	}

	s.renderHome(w, r, http.StatusOK, baseViewData{}, cfg)
}

func (s *server) handleAPIEstimate(w http.ResponseWriter, r *http.Request) {
	cfg := estimate.DefaultConfiguration()
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid configuration: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, estimate.Compute(cfg))
}

func (s *server) handleAPISaved(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.Load(r.Context())
	if err != nil {
		log.Printf("load saved configurations: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load saved configurations"})
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (s *server) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	cfg, err := parseConfigurationForm(r.PostForm)
	if err != nil {
		s.renderInvalid(w, r, r.PostForm, err)
		return
	}

	entry, err := s.store.Add(r.Context(), r.PostForm.Get("name"), cfg)
	if err != nil {
		log.Printf("save configuration: %v", err)
		http.Error(w, "failed to save configuration", http.StatusInternalServerError)
		return
	}

	values := encodeConfiguration(cfg)
	values.Set("success", "Đã lưu phương án \""+entry.Name+"\"")
	http.Redirect(w, r, "/?"+values.Encode(), http.StatusSeeOther)
}

func (s *server) handleSavedOpen(w http.ResponseWriter, r *http.Request) {
	entry, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, savedconfig.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("open saved configuration: %v", err)
		http.Error(w, "failed to load saved configuration", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/?"+encodeConfiguration(entry.Data).Encode(), http.StatusSeeOther)
}

func (s *server) handleSavedDelete(w http.ResponseWriter, r *http.Request) {
	err := s.store.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, savedconfig.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("delete saved configuration: %v", err)
		http.Error(w, "failed to delete saved configuration", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/?success="+url.QueryEscape("Đã xóa phương án"), http.StatusSeeOther)
}

func (s *server) handleExport(w http.ResponseWriter, r *http.Request) {
	f, err := export.Lookup(chi.URLParam(r, "format"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	cfg := estimate.DefaultConfiguration()
	if query := r.URL.Query(); hasConfiguration(query) {
		if cfg, err = parseConfigurationForm(query); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, f.Name, estimate.Compute(cfg)); err != nil {
		log.Printf("export %s: %v", f.Name, err)
		if errors.Is(err, export.ErrChart) {
			http.Error(w, "failed to render chart", http.StatusInternalServerError)
			return
		}
		http.Error(w, "failed to export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+f.Filename()+`"`)
	_, _ = buf.WriteTo(w)
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// renderInvalid shows the submitted values back with the validation message.
func (s *server) renderInvalid(w http.ResponseWriter, r *http.Request, values url.Values, validationErr error) {
	data := s.homeData(r, baseViewData{ErrorMessage: validationErr.Error()}, formFromValues(values), nil)
	s.renderTemplate(w, http.StatusBadRequest, "home.html", data)
}

func (s *server) renderHome(w http.ResponseWriter, r *http.Request, status int, base baseViewData, cfg estimate.Configuration) {
	result := estimate.Compute(cfg)
	data := s.homeData(r, base, formFromConfiguration(cfg), &result)

	query := encodeConfiguration(cfg).Encode()
	for _, name := range export.Names() {
		data.Exports = append(data.Exports, exportLink{Name: name, Href: "/export/" + name + "?" + query})
	}

	png, err := chart.RenderPNG(result, chart.Options{Width: 600, Height: 400, Scale: 1})
	switch {
	case err == nil:
		data.Chart = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
	case errors.Is(err, chart.ErrNothingToDraw):
	default:
		log.Printf("render chart: %v", err)
	}

	s.renderTemplate(w, status, "home.html", data)
}

func (s *server) homeData(r *http.Request, base baseViewData, form configForm, result *estimate.Result) homeViewData {
	data := homeViewData{
		baseViewData: base,
		Form:         form,
		Result:       result,
	}

	for _, t := range estimate.AllConstructionTypes() {
		data.ConstructionTypes = append(data.ConstructionTypes, option{t.String(), t.Label(), t.String() == form.ConstructionType})
	}
	for _, t := range estimate.AllFoundationTypes() {
		data.FoundationTypes = append(data.FoundationTypes, option{t.String(), t.Label(), t.String() == form.FoundationType})
	}
	for _, t := range estimate.AllRoofTypes() {
		data.RoofTypes = append(data.RoofTypes, option{t.String(), t.Label(), t.String() == form.RoofType})
	}
	for _, t := range estimate.AllPackageTypes() {
		data.PackageTypes = append(data.PackageTypes, packageOption{
			option:      option{t.String(), t.Label(), t.String() == form.PackageType},
			Description: t.Description(),
		})
	}

	entries, err := s.store.Load(r.Context())
	if err != nil {
		log.Printf("load saved configurations: %v", err)
		if data.ErrorMessage == "" {
			data.ErrorMessage = "Không thể tải danh sách phương án đã lưu"
		}
	}
	for _, e := range entries {
		data.Saved = append(data.Saved, savedEntryView{
			ID:      e.ID,
			Name:    e.Name,
			SavedAt: e.SavedAt().Format(savedTimeLayout),
		})
	}

	return data
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write json response: %v", err)
	}
}
