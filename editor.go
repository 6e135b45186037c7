package sketch

import (
	"fmt"

	"go.uber.org/zap"
)

// Undoer records the state of the document so that the next change can be
// undone.
type Undoer interface {
	Remember()
}

// UndoFunc adapts a function to the [Undoer] interface.
type UndoFunc func()

func (f UndoFunc) Remember() { f() }

// Later collects work deferred until the current operation has finished.
type Later struct {
	// GenerateAll requests that the solver regenerate the whole document.
	GenerateAll bool
}

// Editor runs editing operations on a sketch.
//
// Every operation validates its inputs before touching the sketch. It either
// fails without mutating anything, or calls Undo.Remember exactly once and
// then commits.
type Editor struct {
	Sketch *Sketch
	Config Config
	// Undo is told to remember the document before each committed operation.
	// It may be nil.
	Undo Undoer
	// Scale is the current zoom factor of the view.
	Scale float64
	Later Later

	log *zap.Logger
}

// NewEditor returns an editor operating on s. A nil cfg means
// [DefaultConfig]. Any other cfg must pass [Config.Validate].
func NewEditor(s *Sketch, cfg *Config) (*Editor, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid editor config: %w", err)
	}
	return &Editor{
		Sketch: s,
		Config: *cfg,
		Scale:  cfg.ViewScale,
		log:    s.Logger().Named("editor"),
	}, nil
}

func (ed *Editor) remember() {
	if ed.Undo != nil {
		ed.Undo.Remember()
	}
}

// rewire moves constraints from a point that is about to be deleted to its
// replacement.
func (ed *Editor) rewire(oldPt, newPt EntityHandle) {
	if ed.Config.RewireAllConstraintKinds {
		ed.Sketch.ReplacePointInAllConstraints(oldPt, newPt)
	} else {
		ed.Sketch.ReplacePointInConstraints(oldPt, newPt)
	}
}
