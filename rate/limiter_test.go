package rate

import (
	"testing"
	"time"
)

func TestLimiter(t *testing.T) {
	burst := 1

	interval := 10 * time.Millisecond
	lim := Every(interval)
	r := NewLimiter(burst, 100, lim)
	defer r.Stop()

	tooshort := 1 * time.Millisecond

	client := "10.0.0.1"
	expected := []bool{true, false, true, true, false, false}
	waits := []time.Duration{tooshort, interval, interval, tooshort, tooshort, tooshort}
	for i, exp := range expected {
		if got := r.Check(client); got != exp {
			t.Fatalf("iteration %d: expected %v, but got %v", i, exp, got)
		}
		time.Sleep(waits[i])
	}
}

func TestLimiterWithBurst(t *testing.T) {
	client := "10.0.0.1"
	burst := 10

	interval := 100 * time.Millisecond
	lim := Every(interval)

	tooshort := 10 * time.Millisecond

	shortest := 1 * time.Millisecond

	expected := []bool{true, true, true, true, true, true, true, true, true, true}
	waits := []time.Duration{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	expected = append(expected, false, true, true, false, false, false)
	waits = append(waits, interval, interval, tooshort, tooshort, shortest, shortest)

	rr := NewLimiter(burst, 100, lim)
	defer rr.Stop()
	for i, exp := range expected {
		if got := rr.Check(client); got != exp {
			t.Fatalf("iteration %d: expected %v, but got %v", i, exp, got)
		}
		time.Sleep(waits[i])
	}
}

func TestLimiterSweep(t *testing.T) {
	r := NewLimiter(1, 0, Every(time.Second))
	r.Stop()
	r.Stop()

	r.Check("10.0.0.1")
	r.Check("10.0.0.2")
	if n := r.size(); n != 2 {
		t.Fatalf("expected 2 tracked clients, got %d", n)
	}

	time.Sleep(2 * time.Millisecond)
	r.sweep()

	if n := r.size(); n != 0 {
		t.Fatalf("expected expired clients to be dropped, got %d", n)
	}
}
