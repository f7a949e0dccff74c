package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sakatsuku04/internal/application"
	"sakatsuku04/internal/domain"
	"sakatsuku04/internal/domain/entities"
	"sakatsuku04/internal/domain/lookup"
	"sakatsuku04/internal/ports/input"
	"sakatsuku04/internal/ports/output"
)

// Handler exposes the editor state and the resolver to the views over HTTP.
type Handler struct {
	resolver   input.LookupUseCase
	store      *application.Store
	loader     input.LoaderUseCase
	translator output.T
}

func NewHandler(resolver input.LookupUseCase, store *application.Store, loader input.LoaderUseCase, translator output.T) *Handler {
	return &Handler{
		resolver:   resolver,
		store:      store,
		loader:     loader,
		translator: translator,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/state", h.GetState)
	api.PUT("/locale", h.PutLocale)
	api.PUT("/mode", h.PutMode)
	api.PUT("/tab", h.PutTab)
	api.POST("/tab/default", h.PostDefaultTab)

	api.GET("/lookup/:category", h.GetOrdered)
	api.GET("/lookup/:category/:code", h.GetResolve)

	api.POST("/saves/open", h.PostOpenSave)
	api.POST("/games/select", h.PostSelectGame)
	api.POST("/memory/connect", h.PostConnectMemory)
	api.POST("/load/:kind", h.PostLoad)
	api.PUT("/entity", h.PutEntity)
	api.POST("/refresh", h.PostRefresh)
	api.POST("/reset", h.PostReset)
}

// --- HANDLERS ---

type labeledTab struct {
	Tab   domain.Tab `json:"tab"`
	Label string     `json:"label"`
}

type stateResponse struct {
	application.Snapshot
	Locale    domain.Locale `json:"locale"`
	ModeLabel string        `json:"modeLabel"`
	TabLabels []labeledTab  `json:"tabLabels"`
}

func (h *Handler) GetState(c echo.Context) error {
	return c.JSON(http.StatusOK, h.state())
}

func (h *Handler) state() stateResponse {
	snap := h.store.Snapshot()
	locale := string(h.resolver.Language())

	labels := make([]labeledTab, 0, len(snap.Tabs))
	for _, t := range snap.Tabs {
		labels = append(labels, labeledTab{Tab: t, Label: h.label(locale, "tab", string(t))})
	}
	modeKey := string(snap.Mode)
	if snap.Mode == domain.ModeNone {
		modeKey = "none"
	}
	return stateResponse{
		Snapshot:  snap,
		Locale:    h.resolver.Language(),
		ModeLabel: h.label(locale, "mode", modeKey),
		TabLabels: labels,
	}
}

// label translates section.name, showing name itself when no label exists.
func (h *Handler) label(locale, section, name string) string {
	if s := h.translator.T(locale, section+"."+name, nil); s != "" {
		return s
	}
	return name
}

type localeRequest struct {
	Locale string `json:"locale"`
}

func (h *Handler) PutLocale(c echo.Context) error {
	var req localeRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, http.StatusBadRequest, err)
	}
	locale, err := domain.ParseLocale(req.Locale)
	if err != nil {
		return h.fail(c, 0, err)
	}
	if err := h.resolver.SetLanguage(locale); err != nil {
		return h.fail(c, 0, err)
	}
	return c.JSON(http.StatusOK, h.state())
}

type modeRequest struct {
	Mode domain.Mode `json:"mode"`
}

func (h *Handler) PutMode(c echo.Context) error {
	var req modeRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, http.StatusBadRequest, err)
	}
	if err := h.store.SetMode(req.Mode); err != nil {
		return h.fail(c, 0, err)
	}
	return c.JSON(http.StatusOK, h.state())
}

type tabRequest struct {
	Tab domain.Tab `json:"tab"`
}

func (h *Handler) PutTab(c echo.Context) error {
	var req tabRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, http.StatusBadRequest, err)
	}
	if err := h.store.SetSelectedTab(req.Tab); err != nil {
		return h.fail(c, 0, err)
	}
	return c.JSON(http.StatusOK, h.state())
}

func (h *Handler) PostDefaultTab(c echo.Context) error {
	h.store.SetDefaultTab()
	return c.JSON(http.StatusOK, h.state())
}

func (h *Handler) category(c echo.Context) (lookup.Category, error) {
	category := lookup.Category(c.Param("category"))
	if _, ok := lookup.Definitions[category]; !ok {
		return "", domain.ErrUnknownCategory
	}
	return category, nil
}

func (h *Handler) GetOrdered(c echo.Context) error {
	category, err := h.category(c)
	if err != nil {
		return h.fail(c, http.StatusNotFound, err)
	}
	entries := h.resolver.ResolveOrdered(category)
	if entries == nil {
		entries = []lookup.Entry{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"category": category,
		"locale":   h.resolver.Language(),
		"entries":  entries,
	})
}

// GetResolve resolves one code. The code is decimal unless ?hex=true, in
// which case it is decoded from its hex key first.
func (h *Handler) GetResolve(c echo.Context) error {
	category, err := h.category(c)
	if err != nil {
		return h.fail(c, http.StatusNotFound, err)
	}
	raw := c.Param("code")
	var code int
	if c.QueryParam("hex") == "true" {
		code, err = lookup.Decode(raw)
	} else {
		code, err = strconv.Atoi(raw)
	}
	if err != nil {
		return h.fail(c, http.StatusBadRequest, err)
	}
	resp := map[string]any{
		"category": category,
		"code":     code,
		"key":      lookup.Definitions[category].Key(code),
		"text":     h.resolver.Resolve(category, code),
	}
	if category == lookup.Position {
		resp["color"] = lookup.PositionColor(code)
	}
	return c.JSON(http.StatusOK, resp)
}

type openRequest struct {
	Path string `json:"path"`
}

func (h *Handler) PostOpenSave(c echo.Context) error {
	var req openRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, http.StatusBadRequest, err)
	}
	if _, err := h.loader.OpenSave(c.Request().Context(), req.Path); err != nil {
		return h.fail(c, 0, err)
	}
	return c.JSON(http.StatusOK, h.state())
}

type gameRequest struct {
	Game string `json:"game"`
}

func (h *Handler) PostSelectGame(c echo.Context) error {
	var req gameRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, http.StatusBadRequest, err)
	}
	if err := h.loader.SelectGame(c.Request().Context(), req.Game); err != nil {
		return h.fail(c, 0, err)
	}
	return c.JSON(http.StatusOK, h.state())
}

func (h *Handler) PostConnectMemory(c echo.Context) error {
	ok, err := h.loader.ConnectMemory(c.Request().Context())
	if err != nil {
		return h.fail(c, 0, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"connected": ok, "state": h.state()})
}

type loadRequest struct {
	Method string            `json:"method"`
	Args   []json.RawMessage `json:"args"`
	List   bool              `json:"list"`
}

func rawArgs(raws []json.RawMessage) []any {
	args := make([]any, len(raws))
	for i, r := range raws {
		args[i] = r
	}
	return args
}

func (h *Handler) PostLoad(c echo.Context) error {
	kind := entities.Kind(c.Param("kind"))
	var req loadRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, http.StatusBadRequest, err)
	}
	ctx := c.Request().Context()
	if req.List {
		rows, err := h.loader.LoadList(ctx, kind, req.Method, rawArgs(req.Args)...)
		if err != nil {
			return h.fail(c, 0, err)
		}
		return c.JSON(http.StatusOK, map[string]any{"kind": kind, "rows": rows})
	}
	if _, err := h.loader.Load(ctx, kind, req.Method, rawArgs(req.Args)...); err != nil {
		return h.fail(c, 0, err)
	}
	return c.JSON(http.StatusOK, h.state())
}

type entityRequest struct {
	Kind   entities.Kind     `json:"kind"`
	Method string            `json:"method"`
	Entity json.RawMessage   `json:"entity"`
	Args   []json.RawMessage `json:"args"`
}

func (h *Handler) PutEntity(c echo.Context) error {
	var req entityRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, http.StatusBadRequest, err)
	}
	e, err := entities.Decode(req.Kind, req.Entity)
	if err != nil {
		return h.fail(c, http.StatusBadRequest, err)
	}
	if err := h.loader.Save(c.Request().Context(), req.Method, e, rawArgs(req.Args)...); err != nil {
		return h.fail(c, 0, err)
	}
	return c.JSON(http.StatusOK, h.state())
}

func (h *Handler) PostRefresh(c echo.Context) error {
	h.store.SetRefreshRequested(true)
	if err := h.loader.ServiceRefresh(c.Request().Context()); err != nil {
		return h.fail(c, 0, err)
	}
	return c.JSON(http.StatusOK, h.state())
}

func (h *Handler) PostReset(c echo.Context) error {
	if err := h.loader.Reset(c.Request().Context()); err != nil {
		return h.fail(c, 0, err)
	}
	return c.JSON(http.StatusOK, h.state())
}
