package http

import (
	"context"
	"fmt"
	"net/http"

	"contabilidad/internal/core"
	applog "contabilidad/internal/log"
	"contabilidad/internal/nav"
	"contabilidad/internal/view"
)

// invalidator is implemented by sources that keep a snapshot.
type invalidator interface {
	Invalidate()
}

type homeResponse struct {
	Title    string                 `json:"title"`
	Heading  string                 `json:"heading"`
	Selected *core.MovementCategory `json:"selected"`
	Balance  view.Balance           `json:"balance"`
	Chips    []view.Chip            `json:"chips"`
	Rows     []view.Row             `json:"rows"`
}

type categoryEntry struct {
	Category       core.MovementCategory `json:"category"`
	Classification core.Classification   `json:"classification"`
}

type menuResponse struct {
	Title string            `json:"title"`
	Menu  []view.MenuOption `json:"menu"`
	Chips []view.Chip       `json:"chips"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	NewResponse().Text("ok").Write(w)
}

// handleReady probes the movement source.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.readyWait)
	defer cancel()
	items, err := s.src.ListMovements(ctx)
	if err != nil {
		applog.FromContext(r.Context()).WarnContext(r.Context(), "Readiness probe failed",
			applog.FieldBackend, s.backend,
			applog.FieldError, err)
		NewResponse().Status(http.StatusServiceUnavailable).JSON(map[string]any{
			"status":  "unavailable",
			"backend": s.backend,
		}).Write(w)
		return
	}
	NewResponse().JSON(map[string]any{
		"status":    "ready",
		"backend":   s.backend,
		"movements": len(items),
	}).Write(w)
}

// handleMovements serves the home screen: balance, chips and filtered rows.
func (s *Server) handleMovements(w http.ResponseWriter, r *http.Request) {
	state, err := ParseFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	all, err := s.src.ListMovements(r.Context())
	if err != nil {
		upstream(w, r, err)
		return
	}

	balance, err := view.Summarize(all, s.formatter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rows, err := view.BuildRows(state.Apply(all), s.formatter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger := applog.FromContext(r.Context())
	logger.DebugContext(r.Context(), "Movements rendered",
		applog.FieldOperation, applog.OpFilter,
		applog.FieldCategory, categoryField(state),
		applog.FieldCount, len(rows))

	NewResponse().JSON(homeResponse{
		Title:    view.Title,
		Heading:  view.ListHeading(state),
		Selected: state.Selected,
		Balance:  balance,
		Chips:    view.Chips(state),
		Rows:     rows,
	}).Write(w)
}

func (s *Server) handleMovement(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	m, err := s.src.FindMovement(r.Context(), id)
	if err != nil {
		upstream(w, r, err)
		return
	}
	row, err := view.BuildRow(m, s.formatter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	applog.FromContext(r.Context()).DebugContext(r.Context(), "Movement rendered",
		applog.NewFields().
			WithOperation(applog.OpFind).
			WithMovement(m.ID, m.Category.String(), m.Amount.Cents).
			ToSlice()...)
	NewResponse().JSON(row).Write(w)
}

// handleRefresh drops any cached snapshot so the next read hits the source.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if inv, ok := s.src.(invalidator); ok {
		inv.Invalidate()
		applog.FromContext(r.Context()).InfoContext(r.Context(), "Movement cache invalidated",
			applog.FieldBackend, s.backend)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats := core.AllCategories()
	out := make([]categoryEntry, 0, len(cats))
	for _, c := range cats {
		cl, err := core.Classify(c)
		if err != nil {
			writeError(w, r, err)
			return
		}
		out = append(out, categoryEntry{Category: c, Classification: cl})
	}
	NewResponse().JSON(out).Write(w)
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	NewResponse().JSON(menuResponse{
		Title: view.Title,
		Menu:  view.Menu(),
		Chips: view.Chips(core.FilterState{}),
	}).Write(w)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	NewResponse().JSON(s.Metrics()).Write(w)
}

func (s *Server) handleAddPlaceholder(w http.ResponseWriter, r *http.Request) {
	t := nav.ParseAddType(r.PathValue("type"))
	NewResponse().Text(fmt.Sprintf("Nuevo Movimiento: %s", t)).Write(w)
}

func (s *Server) handleEditPlaceholder(w http.ResponseWriter, r *http.Request) {
	id := nav.ParseMovementID(r.PathValue("movementId"))
	NewResponse().Text(fmt.Sprintf("Editando Movimiento ID: %d", id)).Write(w)
}

func (s *Server) handleDetailPlaceholder(w http.ResponseWriter, r *http.Request) {
	id := nav.ParseMovementID(r.PathValue("movementId"))
	NewResponse().Text(fmt.Sprintf("Detalle Movimiento ID: %d", id)).Write(w)
}

func (s *Server) handleSettingsPlaceholder(w http.ResponseWriter, r *http.Request) {
	NewResponse().Text("Pantalla Configuración").Write(w)
}

func categoryField(state core.FilterState) string {
	if state.Selected == nil {
		return "all"
	}
	return state.Selected.String()
}
