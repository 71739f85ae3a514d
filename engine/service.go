package engine

import (
	"fmt"

	"keyhook/keybind"
	"keyhook/log"
	"keyhook/notify"
)

// Binding is one entry of a batch registration, with keys given by name.
type Binding struct {
	ID     string
	Keys   []string
	Action string
}

// Service is the command surface exposed to the host application. Each
// method may be called from any goroutine.
type Service struct {
	registry *keybind.Registry
	sink     notify.Sink
}

func NewService(r *keybind.Registry, sink notify.Sink) *Service {
	if sink == nil {
		sink = notify.Discard
	}
	return &Service{registry: r, sink: sink}
}

func (s *Service) Registry() *keybind.Registry { return s.registry }

// AddKeybind registers or replaces a keybind. It fails with
// keys.ErrUnknownKey when a name does not resolve.
func (s *Service) AddKeybind(id string, names []string, action string) error {
	kb, err := keybind.Parse(id, names, action)
	if err != nil {
		return fmt.Errorf("add keybind %q: %w", id, err)
	}
	return s.registry.Add(kb)
}

func (s *Service) RemoveKeybind(id string) error {
	return s.registry.Remove(id)
}

// AddKeybindsBatch adds the bindings in order and stops at the first one
// that fails. Bindings before it stay registered.
func (s *Service) AddKeybindsBatch(bs []Binding) error {
	kbs := make([]keybind.Keybind, 0, len(bs))
	var parseErr error
	for _, b := range bs {
		kb, err := keybind.Parse(b.ID, b.Keys, b.Action)
		if err != nil {
			parseErr = fmt.Errorf("add keybind %q: %w", b.ID, err)
			break
		}
		kbs = append(kbs, kb)
	}
	if err := s.registry.AddBatch(kbs); err != nil {
		return err
	}
	return parseErr
}

func (s *Service) RemoveAllKeybinds() { s.registry.Clear() }
func (s *Service) EnableKeybinds()    { s.registry.Enable() }
func (s *Service) DisableKeybinds()   { s.registry.Disable() }

// SetEnabled flips the gate, for callers holding a boolean.
func (s *Service) SetEnabled(on bool) {
	if on {
		s.registry.Enable()
	} else {
		s.registry.Disable()
	}
}

// HandleShortcutAction is the manual trigger path: it reports name as
// triggered without consulting the keyboard state, and returns a
// confirmation for the caller to display.
func (s *Service) HandleShortcutAction(name string) string {
	if err := notify.Safe(s.sink, notify.EventKeybindTriggered, name); err != nil {
		log.NotifyFailed(notify.EventKeybindTriggered, err)
	}
	log.ShortcutHandled(name)
	return fmt.Sprintf("Shortcut %s was triggered successfully", name)
}

// ApplyProfile replaces the registry contents with bs. The gate is closed
// while the registry is rebuilt and stays closed if an entry fails.
func (s *Service) ApplyProfile(bs []Binding, enabled bool) error {
	s.registry.Disable()
	s.registry.Clear()
	if err := s.AddKeybindsBatch(bs); err != nil {
		return err
	}
	if enabled {
		s.registry.Enable()
	}
	log.KeybindsApplied(s.registry.Len(), enabled)
	return nil
}
