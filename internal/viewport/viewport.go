// Package viewport tracks the host window size and keeps the drawing surface
// in step with it.
package viewport

import (
	"go.uber.org/zap"

	"github.com/iburimskiy/radial-morph/internal/logging"
)

// Surface is a backing drawing surface that can be resized.
type Surface interface {
	SetSize(width, height int)
}

// Manager resizes its surface on every size change. It does not touch
// geometry; shapes generated for the old size keep morphing until the next
// cycle boundary picks up the new size.
type Manager struct {
	width, height int
	surface       Surface
	log           *zap.Logger
}

// New records the initial size and sizes surface to match. surface may be nil
// when the host owns sizing itself.
func New(width, height int, surface Surface, log *zap.Logger) *Manager {
	m := &Manager{width: width, height: height, surface: surface, log: logging.OrNop(log)}
	if surface != nil {
		surface.SetSize(width, height)
	}
	return m
}

// Resize applies a new window size. It reports whether the size changed.
func (m *Manager) Resize(width, height int) bool {
	if width == m.width && height == m.height {
		return false
	}
	m.log.Info("viewport resized",
		zap.Int("from_width", m.width), zap.Int("from_height", m.height),
		zap.Int("width", width), zap.Int("height", height))
	m.width, m.height = width, height
	if m.surface != nil {
		m.surface.SetSize(width, height)
	}
	return true
}

func (m *Manager) Size() (int, int) { return m.width, m.height }

// Center is the translation that puts the origin in the middle of the surface.
func (m *Manager) Center() (float64, float64) {
	return float64(m.width) / 2, float64(m.height) / 2
}

// Empty reports a degenerate viewport that should draw nothing.
func (m *Manager) Empty() bool {
	return m.width <= 0 || m.height <= 0
}
