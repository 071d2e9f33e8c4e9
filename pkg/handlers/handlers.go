package handlers

import (
	"go.uber.org/zap"

	"github.com/whiskeynotes/go-whiskey-api/pkg/catalog"
	"github.com/whiskeynotes/go-whiskey-api/pkg/middleware"
	"github.com/whiskeynotes/go-whiskey-api/pkg/store"
)

// Handler carries the stores each handler needs. The composition root in cmd
// builds one and wires its methods into the router - no package-level state.
type Handler struct {
	Catalog catalog.Catalog
	Store   *store.Store
	Owner   *middleware.OwnerGate
	Logger  *zap.Logger
}

func New(c catalog.Catalog, s *store.Store, g *middleware.OwnerGate, l *zap.Logger) *Handler {
	return &Handler{Catalog: c, Store: s, Owner: g, Logger: l}
}
