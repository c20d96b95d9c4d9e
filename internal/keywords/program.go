package keywords

import (
	"fmt"
	"io"

	"github.com/obsops/calseq/models"
)

// Options controls how a program is assembled from a set of requests.
type Options struct {
	// Repeats is how many times the whole set of requests is visited.
	// Values below 1 are treated as 1.
	Repeats int

	// LampsOff appends power-off steps for every powered lamp at the end
	// of the program.
	LampsOff bool
}

// PowerStep is a lamp power transition via the kpfpower service.
type PowerStep struct {
	Source models.OctagonSource
	Outlet string
}

// Visit is the application of one request within one repeat of the program:
// its keyword assignments followed by Exposures triggered exposures.
type Visit struct {
	// Repeat is the one-based repeat this visit belongs to.
	Repeat int

	// Index is the one-based position of the request within the repeat.
	Index int

	// Request is the exposure request being applied.
	Request models.ExposureRequest

	// Assignments are the keyword writes that apply the request.
	Assignments []Assignment

	// Exposures is the number of exposures started with these settings.
	Exposures int
}

// Program is the ordered, render-only description of the keyword writes a
// sequencer would perform for a set of requests: lamp power-on steps, a
// single warm-up wait sized by the slowest lamp, the repeat-expanded visits,
// and an optional power-off epilogue.
type Program struct {
	PowerOn  []PowerStep
	WarmUp   int
	Visits   []Visit
	PowerOff []PowerStep
}

// BuildProgram assembles the program for reqs. Lamp power steps are emitted
// once per distinct powered source, in first-use order; the warm-up wait is
// the maximum WarmUp across all requests.
func BuildProgram(reqs []models.ExposureRequest, opts Options) *Program {
	repeats := opts.Repeats
	if repeats < 1 {
		repeats = 1
	}

	p := &Program{}

	seenLamp := make(map[models.OctagonSource]bool)
	for _, req := range reqs {
		if req.WarmUp > p.WarmUp {
			p.WarmUp = req.WarmUp
		}
		if seenLamp[req.OctagonSource] {
			continue
		}
		seenLamp[req.OctagonSource] = true
		if outlet, ok := Outlet(req.OctagonSource); ok {
			p.PowerOn = append(p.PowerOn, PowerStep{Source: req.OctagonSource, Outlet: outlet})
		}
	}

	for repeat := 1; repeat <= repeats; repeat++ {
		for i, req := range reqs {
			p.Visits = append(p.Visits, Visit{
				Repeat:      repeat,
				Index:       i + 1,
				Request:     req,
				Assignments: Translate(req),
				Exposures:   req.NExp,
			})
		}
	}

	if opts.LampsOff {
		p.PowerOff = append(p.PowerOff, p.PowerOn...)
	}

	return p
}

// Render writes a human-readable listing of the program to w.
func (p *Program) Render(w io.Writer) error {
	repeats := 0
	perRepeat := 0
	for _, v := range p.Visits {
		if v.Repeat > repeats {
			repeats = v.Repeat
		}
		if v.Index > perRepeat {
			perRepeat = v.Index
		}
	}

	for _, step := range p.PowerOn {
		if err := renderLine(w, "power on %s (%s.%s)\n", step.Source, ServicePower, step.Outlet); err != nil {
			return err
		}
	}
	if p.WarmUp > 0 {
		if err := renderLine(w, "wait %d s for lamp warm-up\n", p.WarmUp); err != nil {
			return err
		}
	}

	for _, v := range p.Visits {
		file := v.Request.SourceFile
		if file == "" {
			file = v.Request.ID.String()
		}
		if err := renderLine(w, "repeat %d/%d, sequence %d/%d (%s):\n", v.Repeat, repeats, v.Index, perRepeat, file); err != nil {
			return err
		}
		for _, a := range v.Assignments {
			if err := renderLine(w, "  %s\n", a); err != nil {
				return err
			}
		}
		for exp := 1; exp <= v.Exposures; exp++ {
			if err := renderLine(w, "  start exposure %d/%d (%g s)\n", exp, v.Exposures, v.Request.Exptime); err != nil {
				return err
			}
		}
	}

	for _, step := range p.PowerOff {
		if err := renderLine(w, "power off %s (%s.%s)\n", step.Source, ServicePower, step.Outlet); err != nil {
			return err
		}
	}

	return nil
}

func renderLine(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("error rendering program: %w", err)
	}

	return nil
}
