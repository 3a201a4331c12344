package balance

import (
	"sync"
	"testing"
)

func TestLedgerCredit(t *testing.T) {
	tests := []struct {
		name        string
		initial     int64
		credits     []int
		wantBalance int64
		wantCredits int64
	}{
		{"empty", 0, nil, 0, 0},
		{"single", 0, []int{10}, 10, 1},
		{"accumulates", 5, []int{10, 500}, 515, 2},
		{"ignores non-positive", 0, []int{0, -20, 30}, 30, 1},
		{"negative initial clamps", -100, []int{10}, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger(tt.initial)
			for _, c := range tt.credits {
				l.Credit(c)
			}
			if got := l.Balance(); got != tt.wantBalance {
				t.Errorf("Balance() = %d, want %d", got, tt.wantBalance)
			}
			if got := l.Credits(); got != tt.wantCredits {
				t.Errorf("Credits() = %d, want %d", got, tt.wantCredits)
			}
		})
	}
}

// TestLedgerConcurrentCredit verifies credits from the loop and helpers do not race
func TestLedgerConcurrentCredit(t *testing.T) {
	l := NewLedger(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Credit(2)
		}()
	}
	wg.Wait()

	if got := l.Balance(); got != 100 {
		t.Errorf("Balance() = %d, want 100", got)
	}
}
