package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/Aayush01055/File-tracking-system/internal/core/domain"
)

const testTTL = 40 * time.Millisecond

func TestNotifier_ShowAndExpire(t *testing.T) {
	n := NewNotifier(testTTL)

	n.Show("saved", domain.NotifySuccess)
	got, ok := n.Current()
	if !ok || got.Message != "saved" || got.Kind != domain.NotifySuccess {
		t.Fatalf("current = %+v (%v)", got, ok)
	}

	time.Sleep(3 * testTTL)
	if _, ok := n.Current(); ok {
		t.Fatalf("notification still live past its display duration")
	}
}

func TestNotifier_ReplacementRestartsExpiry(t *testing.T) {
	n := NewNotifier(testTTL)

	var changes atomic.Int32
	n.OnChange(func() { changes.Add(1) })

	n.Show("A", domain.NotifySuccess)
	time.Sleep(testTTL / 2)
	n.Show("B", domain.NotifyError)

	// A's timer must be invalidated: at no inspection point may A reappear.
	got, ok := n.Current()
	if !ok || got.Message != "B" || got.Kind != domain.NotifyError {
		t.Fatalf("current = %+v (%v), want B", got, ok)
	}

	// B is still live shortly before its own full TTL elapses.
	time.Sleep(3 * testTTL / 4)
	if got, ok := n.Current(); !ok || got.Message != "B" {
		t.Fatalf("B expired early: %+v (%v)", got, ok)
	}

	time.Sleep(testTTL)
	if _, ok := n.Current(); ok {
		t.Fatalf("B still live past its display duration")
	}

	// show A, show B, single expiry: exactly three change callbacks.
	if c := changes.Load(); c != 3 {
		t.Fatalf("expected 3 change callbacks (clear fired once), got %d", c)
	}
}

func TestNotifier_ClearCancelsExpiry(t *testing.T) {
	n := NewNotifier(testTTL)

	var changes atomic.Int32
	n.OnChange(func() { changes.Add(1) })

	n.Show("pending", domain.NotifySuccess)
	n.Clear()
	if _, ok := n.Current(); ok {
		t.Fatalf("notification live after explicit clear")
	}

	time.Sleep(2 * testTTL)
	if c := changes.Load(); c != 2 {
		t.Fatalf("cancelled timer still fired: %d callbacks", c)
	}
}

func TestNotifier_ShowAfterExpiry(t *testing.T) {
	n := NewNotifier(testTTL)

	n.Show("first", domain.NotifySuccess)
	time.Sleep(2 * testTTL)

	n.Show("second", domain.NotifyError)
	if got, ok := n.Current(); !ok || got.Message != "second" {
		t.Fatalf("current = %+v (%v), want second", got, ok)
	}
}

func TestNotifier_Helpers(t *testing.T) {
	n := NewNotifier(time.Minute)

	n.Success("ok")
	if got, _ := n.Current(); got.Kind != domain.NotifySuccess {
		t.Fatalf("Success kind = %s", got.Kind)
	}
	n.Error("boom")
	if got, _ := n.Current(); got.Kind != domain.NotifyError || got.Message != "boom" {
		t.Fatalf("Error notification = %+v", got)
	}
}

func TestNotifier_ZeroTTLUsesDefault(t *testing.T) {
	n := NewNotifier(0)
	if n.ttl != DefaultNotifyTTL {
		t.Fatalf("ttl = %v, want %v", n.ttl, DefaultNotifyTTL)
	}
}
