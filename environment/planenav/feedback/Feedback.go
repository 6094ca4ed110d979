// Package feedback implements cosmetic visual feedback for episode
// outcomes.
//
// A Flash is purely decorative: it listens for episode lifecycle
// signals, reads nothing but the outcome snapshot it is handed, and
// never touches environment state. It may therefore run concurrently
// with the decision loop. Flashes are driven by the same external tick
// clock as the environment and fade back to a neutral colour over a
// fixed duration. Each episode end starts a fresh flash, superseding
// any flash still in progress.
package feedback

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/samuelfneumann/gonav/environment/planenav"
	"github.com/samuelfneumann/gonav/utils/floatutils"
)

// Flash fades from an outcome colour back to a neutral colour. Flash
// implements the planenav.Listener interface.
type Flash struct {
	mu sync.Mutex

	successShade color.Color
	failureShade color.Color
	neutralShade color.Color

	duration float64 // seconds a flash takes to fade

	// current flash, if any
	shade   color.Color
	elapsed float64
	active  bool
}

// NewFlash returns a new Flash fading from the outcome shades to
// neutral over duration seconds
func NewFlash(duration float64, success, failure,
	neutral color.Color) (*Flash, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("newFlash: duration must be positive, got %v",
			duration)
	}

	return &Flash{
		successShade: success,
		failureShade: failure,
		neutralShade: neutral,
		duration:     duration,
	}, nil
}

// EpisodeBegan implements the planenav.Listener interface. A flash
// started at the previous episode's end keeps fading into the new
// episode.
func (f *Flash) EpisodeBegan() {}

// EpisodeEnded implements the planenav.Listener interface, starting a
// new flash for the episode's outcome. Any flash still fading is
// superseded.
func (f *Flash) EpisodeEnded(outcome planenav.Outcome, _ float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.elapsed = 0.0
	f.active = true

	switch outcome {
	case planenav.Success:
		f.shade = f.successShade
	case planenav.Failure:
		f.shade = f.failureShade
	default:
		f.shade = f.neutralShade
	}
}

// Tick advances the flash by dt seconds of the external tick clock
func (f *Flash) Tick(dt float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.active {
		return
	}

	f.elapsed += dt
	if f.elapsed >= f.duration {
		f.active = false
	}
}

// Cancel stops any flash in progress, returning the colour to neutral
// immediately
func (f *Flash) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.active = false
}

// Active returns whether a flash is currently fading
func (f *Flash) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.active
}

// Colour returns the current flash colour: the outcome shade
// interpolated towards neutral by the fraction of the fade elapsed
func (f *Flash) Colour() color.Color {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.active {
		return f.neutralShade
	}

	fraction := floatutils.Clip(f.elapsed/f.duration, 0.0, 1.0)
	return lerpColour(f.shade, f.neutralShade, fraction)
}

// lerpColour linearly interpolates between two colours. A fraction of
// 0 returns from, and a fraction of 1 returns to.
func lerpColour(from, to color.Color, fraction float64) color.Color {
	fr, fg, fb, fa := from.RGBA()
	tr, tg, tb, ta := to.RGBA()

	lerp := func(a, b uint32) uint8 {
		// RGBA returns 16-bit channels
		return uint8((float64(a) + fraction*(float64(b)-float64(a))) / 257.0)
	}

	return color.RGBA{
		R: lerp(fr, tr),
		G: lerp(fg, tg),
		B: lerp(fb, tb),
		A: lerp(fa, ta),
	}
}
