package trackers

import (
	"encoding/gob"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	ts "github.com/samuelfneumann/gonav/timestep"
)

func obs() *mat.VecDense {
	return mat.NewVecDense(5, nil)
}

// episode feeds a tracker a synthetic episode of the given length with
// the given per-step reward, ending with endType
func episode(tracker Tracker, length int, reward float64,
	endType ts.EndType) {
	step := ts.New(ts.First, 0.0, 1.0, obs(), 0)
	tracker.Track(step)

	for i := 1; i <= length; i++ {
		stepType := ts.Mid
		if i == length {
			stepType = ts.Last
		}

		step = ts.New(stepType, reward, 1.0, obs(), i)
		if i == length {
			step.SetEnd(endType)
		}
		tracker.Track(step)
	}
}

// TestReturnTracksEpisodicReturns checks that the Return tracker caches
// one total per finished episode and drops partial episodes
func TestReturnTracksEpisodicReturns(t *testing.T) {
	tracker := NewReturn(filepath.Join(t.TempDir(), "returns.bin"))

	episode(tracker, 10, -0.004, ts.Timeout)
	episode(tracker, 4, 0.25, ts.TerminalStateReached)

	// An unfinished episode contributes nothing
	tracker.Track(ts.New(ts.Mid, 100.0, 1.0, obs(), 1))

	returns := tracker.Returns()
	if len(returns) != 2 {
		t.Fatalf("expected 2 episodic returns, got %v", len(returns))
	}
	if math.Abs(returns[0]-(-0.04)) > 1e-12 {
		t.Errorf("expected first return -0.04, got %v", returns[0])
	}
	if math.Abs(returns[1]-1.0) > 1e-12 {
		t.Errorf("expected second return 1.0, got %v", returns[1])
	}
}

// TestEpisodeLengthTracks checks that the EpisodeLength tracker caches
// the final step number of each finished episode
func TestEpisodeLengthTracks(t *testing.T) {
	tracker := NewEpisodeLength(filepath.Join(t.TempDir(), "lengths.bin"))

	episode(tracker, 7, 0.0, ts.Timeout)
	episode(tracker, 31, 0.0, ts.TerminalStateReached)

	lengths := tracker.Lengths()
	if len(lengths) != 2 || lengths[0] != 7 || lengths[1] != 31 {
		t.Errorf("expected lengths [7 31], got %v", lengths)
	}
}

// TestSuccessTracksAndRates checks that the Success tracker
// distinguishes terminal-state episodes from timeouts
func TestSuccessTracksAndRates(t *testing.T) {
	tracker := NewSuccess(filepath.Join(t.TempDir(), "successes.bin"))

	if tracker.Rate() != 0.0 {
		t.Errorf("expected rate 0 with no episodes, got %v", tracker.Rate())
	}

	episode(tracker, 5, 0.0, ts.TerminalStateReached)
	episode(tracker, 5, 0.0, ts.Timeout)
	episode(tracker, 5, 0.0, ts.TerminalStateReached)
	episode(tracker, 5, 0.0, ts.TerminalStateReached)

	successes := tracker.Successes()
	want := []bool{true, false, true, true}
	if len(successes) != len(want) {
		t.Fatalf("expected %v outcomes, got %v", len(want), len(successes))
	}
	for i := range want {
		if successes[i] != want[i] {
			t.Errorf("episode %v: expected success %v, got %v", i, want[i],
				successes[i])
		}
	}

	if math.Abs(tracker.Rate()-0.75) > 1e-12 {
		t.Errorf("expected success rate 0.75, got %v", tracker.Rate())
	}
}

// TestSaveRoundTrip checks that saved tracker data can be decoded back
// from disk
func TestSaveRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "returns.bin")
	tracker := NewReturn(filename)

	episode(tracker, 3, 0.5, ts.TerminalStateReached)
	episode(tracker, 2, -0.5, ts.Timeout)

	if err := tracker.Save(); err != nil {
		t.Fatalf("could not save tracker data: %v", err)
	}

	file, err := os.Open(filename)
	if err != nil {
		t.Fatalf("could not open saved data: %v", err)
	}
	defer file.Close()

	var decoded []float64
	if err := gob.NewDecoder(file).Decode(&decoded); err != nil {
		t.Fatalf("could not decode saved data: %v", err)
	}

	returns := tracker.Returns()
	if len(decoded) != len(returns) {
		t.Fatalf("expected %v saved returns, got %v", len(returns),
			len(decoded))
	}
	for i := range returns {
		if decoded[i] != returns[i] {
			t.Errorf("return %v: expected %v, got %v", i, returns[i],
				decoded[i])
		}
	}
}
