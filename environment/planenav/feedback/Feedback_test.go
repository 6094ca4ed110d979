package feedback

import (
	"image/color"
	"testing"

	"github.com/samuelfneumann/gonav/environment/planenav"
)

var (
	success = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	failure = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	neutral = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

func rgba(c color.Color) (uint8, uint8, uint8, uint8) {
	r, g, b, a := c.RGBA()
	return uint8(r / 257), uint8(g / 257), uint8(b / 257), uint8(a / 257)
}

// TestFlashOutcomeShade checks that a flash starts at the shade of the
// episode's outcome
func TestFlashOutcomeShade(t *testing.T) {
	flash, err := NewFlash(1.0, success, failure, neutral)
	if err != nil {
		t.Fatalf("could not create flash: %v", err)
	}

	if flash.Active() {
		t.Error("flash active before any episode ended")
	}
	if r, g, b, _ := rgba(flash.Colour()); r != 128 || g != 128 || b != 128 {
		t.Errorf("expected neutral before any episode ended, got (%v %v %v)",
			r, g, b)
	}

	flash.EpisodeEnded(planenav.Success, 0.9)
	if !flash.Active() {
		t.Error("flash not active after episode end")
	}
	if _, g, _, _ := rgba(flash.Colour()); g != 255 {
		t.Errorf("expected the success shade at fade start, got green %v", g)
	}

	flash.EpisodeEnded(planenav.Failure, -0.2)
	if r, _, _, _ := rgba(flash.Colour()); r != 255 {
		t.Errorf("expected the failure shade at fade start, got red %v", r)
	}
}

// TestFlashFadesToNeutral checks that ticking a flash past its
// duration deactivates it and returns the neutral colour
func TestFlashFadesToNeutral(t *testing.T) {
	flash, err := NewFlash(0.5, success, failure, neutral)
	if err != nil {
		t.Fatalf("could not create flash: %v", err)
	}
	flash.EpisodeEnded(planenav.Success, 1.0)

	// Halfway through the fade, the colour lies between the shades
	flash.Tick(0.25)
	if !flash.Active() {
		t.Fatal("flash ended halfway through its duration")
	}
	r, g, _, _ := rgba(flash.Colour())
	if g <= 128 || g >= 255 {
		t.Errorf("expected green between 128 and 255 mid-fade, got %v", g)
	}
	if r <= 0 || r >= 128 {
		t.Errorf("expected red between 0 and 128 mid-fade, got %v", r)
	}

	flash.Tick(0.25)
	if flash.Active() {
		t.Error("flash still active after its full duration")
	}
	if r, g, b, _ := rgba(flash.Colour()); r != 128 || g != 128 || b != 128 {
		t.Errorf("expected neutral after the fade, got (%v %v %v)", r, g, b)
	}
}

// TestFlashSuperseded checks that an episode ending mid-fade restarts
// the flash with the new outcome's shade
func TestFlashSuperseded(t *testing.T) {
	flash, err := NewFlash(1.0, success, failure, neutral)
	if err != nil {
		t.Fatalf("could not create flash: %v", err)
	}

	flash.EpisodeEnded(planenav.Success, 1.0)
	flash.Tick(0.9)

	flash.EpisodeEnded(planenav.Failure, -0.2)
	if !flash.Active() {
		t.Fatal("superseding episode end left the flash inactive")
	}
	if r, _, _, _ := rgba(flash.Colour()); r != 255 {
		t.Errorf("expected a fresh failure fade, got red %v", r)
	}

	// The superseded fade's elapsed time must not carry over
	flash.Tick(0.2)
	if !flash.Active() {
		t.Error("superseding flash inherited the old fade's elapsed time")
	}
}

// TestFlashCancel checks that Cancel returns the colour to neutral
// immediately
func TestFlashCancel(t *testing.T) {
	flash, err := NewFlash(1.0, success, failure, neutral)
	if err != nil {
		t.Fatalf("could not create flash: %v", err)
	}

	flash.EpisodeEnded(planenav.Failure, -0.2)
	flash.Cancel()

	if flash.Active() {
		t.Error("flash still active after Cancel")
	}
	if r, g, b, _ := rgba(flash.Colour()); r != 128 || g != 128 || b != 128 {
		t.Errorf("expected neutral after Cancel, got (%v %v %v)", r, g, b)
	}
}

// TestNewFlashValidation checks constructor validation of the fade
// duration
func TestNewFlashValidation(t *testing.T) {
	if _, err := NewFlash(0.0, success, failure, neutral); err == nil {
		t.Error("expected an error for a non-positive duration")
	}
	if _, err := NewFlash(-1.0, success, failure, neutral); err == nil {
		t.Error("expected an error for a negative duration")
	}
}
