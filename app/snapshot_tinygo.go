//go:build tinygo

package app

import "glint/hal"

// snapshot is a no-op on boards; frames only go to the panel.
type snapshot struct{}

func newSnapshot(w, h int) *snapshot { return &snapshot{} }

func (s *snapshot) addTile(fb hal.Framebuffer, tx, ty int) {}

func (s *snapshot) save(path string) error { return hal.ErrNotImplemented }
