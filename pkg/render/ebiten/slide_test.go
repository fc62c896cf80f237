// Slide-state reconciliation between the widget's hidden bit and the
// overlay animation.
package ebiten

import (
	"testing"
	"time"

	"dropconsole/pkg/console"
)

// finishSlide backdates the animation so the next updateSlide call lands
// on its end state.
func finishSlide(r *Renderer) {
	r.slideStart = time.Now().UnixMilli() - 2*slideDuration
}

func TestReconcileSlide_ClosesAfterWidgetHiddenThroughAPI(t *testing.T) {
	r := New()
	w := console.New()
	w.Init(r)
	r.RenderFrame(w)
	if got := r.updateSlide(); got != 1.0 {
		t.Fatalf("visible widget settled at progress %v, want 1.0", got)
	}

	// Hidden through the API, the way a registered "hide" command does
	// it; the hotkey path never runs.
	w.Toggle(true)
	r.reconcileSlide()
	if !r.slideAnimating || r.slideTarget {
		t.Fatalf("reconcile did not start a close slide: animating=%v target=%v",
			r.slideAnimating, r.slideTarget)
	}

	finishSlide(r)
	if got := r.updateSlide(); got != 0.0 {
		t.Errorf("progress = %v for a hidden widget, want 0.0 (overlay must not stay painted)", got)
	}
}

func TestReconcileSlide_OpensAfterWidgetShownThroughAPI(t *testing.T) {
	r := New()
	w := console.New()
	w.Init(r)
	w.Toggle(true)
	r.RenderFrame(w)
	if got := r.updateSlide(); got != 0.0 {
		t.Fatalf("hidden widget settled at progress %v, want 0.0", got)
	}

	w.Toggle(false)
	r.reconcileSlide()
	if !r.slideAnimating || !r.slideTarget {
		t.Fatalf("reconcile did not start an open slide: animating=%v target=%v",
			r.slideAnimating, r.slideTarget)
	}

	finishSlide(r)
	if got := r.updateSlide(); got != 1.0 {
		t.Errorf("progress = %v for a visible widget, want 1.0", got)
	}
}

func TestReconcileSlide_SteadyStateStartsNothing(t *testing.T) {
	r := New()
	w := console.New()
	w.Init(r)
	r.RenderFrame(w)

	r.reconcileSlide()
	r.reconcileSlide()
	if r.slideAnimating {
		t.Error("reconcile restarted the slide although visibility never changed")
	}
	if got := r.updateSlide(); got != 1.0 {
		t.Errorf("steady-state progress = %v, want 1.0", got)
	}
}
