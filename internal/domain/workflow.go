package domain

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/sortviz/internal/adapter"
	"github.com/mouse-blink/sortviz/internal/controller"
	m "github.com/mouse-blink/sortviz/internal/model"
)

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	// Visualize runs one full sort-replay-validate cycle for a single
	// algorithm and animates it through the UI.
	Visualize(args VisualizeArgs) error
	// Compare runs every algorithm over one shared input and shows
	// their counters side by side.
	Compare(args CompareArgs) error
	// List shows the supported algorithms.
	List() error
}

// VisualizeArgs parameterizes a visualization run.
type VisualizeArgs struct {
	Algorithm m.Algorithm
	Count     int
	Columns   int
	Rows      int
}

// CompareArgs parameterizes a comparison run.
type CompareArgs struct {
	Count int
}

type workflow struct {
	source  adapter.Source
	engine  Engine
	ui      controller.UI
	session *Session
}

// NewWorkflow creates a Workflow instance with the provided
// collaborators.
func NewWorkflow(source adapter.Source, engine Engine, ui controller.UI) Workflow {
	return &workflow{
		source: source,
		engine: engine,
		ui:     ui,
	}
}

// Visualize generates a fresh array, sorts it while recording moves,
// replays the log through the UI at the tick cadence, and validates
// the result. Exactly one run may be in flight at a time; a second
// request while a session is active is a caller error.
func (w *workflow) Visualize(args VisualizeArgs) error {
	if w.session != nil && !w.session.Done() {
		return fmt.Errorf("run already in flight (phase %s)", w.session.Phase())
	}

	values := w.source.Generate(args.Count)

	session, err := NewSession(w.engine, args.Algorithm, values, args.Columns, args.Rows)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	w.session = session

	if err := w.ui.Animate(session.Run(), session); err != nil {
		return fmt.Errorf("animate: %w", err)
	}

	return w.ui.DisplaySummary(session.Run())
}

// Compare sorts copies of one generated array with every algorithm,
// one goroutine per algorithm. Each run owns its own working array,
// recorder, and log, so the runs never share mutable state.
func (w *workflow) Compare(args CompareArgs) error {
	values := w.source.Generate(args.Count)
	algorithms := m.Algorithms()
	runs := make([]m.Run, len(algorithms))

	var g errgroup.Group

	for i, algorithm := range algorithms {
		i, algorithm := i, algorithm

		g.Go(func() error {
			run, err := w.engine.Run(algorithm, values)
			if err != nil {
				return fmt.Errorf("run %s: %w", algorithm, err)
			}

			runs[i] = run

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return w.ui.DisplayComparison(runs)
}

// List shows the supported algorithms and their properties.
func (w *workflow) List() error {
	return w.ui.DisplayAlgorithms(m.AlgorithmInfos())
}
