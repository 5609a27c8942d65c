package module

import (
	catdom "herdbook/internal/services/catalog/domain"
)

// Ports exposed by the catalog module for cross-module consumption
type Ports struct {
	Reader catdom.ReaderPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
