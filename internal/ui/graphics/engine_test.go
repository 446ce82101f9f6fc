package graphics

import (
	"fmt"
	"sync"
	"testing"

	"systemsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type statusScreen struct {
	message  string
	errorMsg string
	draws    int
}

func (s *statusScreen) Update() types.UIEvent {
	return types.UIEvent{Type: types.UIEventNone}
}

func (s *statusScreen) Draw(screen *ebiten.Image) {
	s.draws++
	_ = len(s.message) + len(s.errorMsg)
}

func (s *statusScreen) OnEnter() {}
func (s *statusScreen) OnExit()  {}

func (s *statusScreen) SetStatus(message, errorMsg string) {
	s.message = message
	s.errorMsg = errorMsg
}

func TestStatusReachesScreenOnlyInDraw(t *testing.T) {
	e := NewEngine(nil)
	screen := &statusScreen{}
	e.RegisterScreens(screen)

	e.SetMessage("HIGH_SCORE 10")
	if screen.message != "" {
		t.Fatalf("message = %q before Draw, want empty", screen.message)
	}

	e.Draw(nil)
	if screen.message != "HIGH_SCORE 10" || screen.errorMsg != "" {
		t.Errorf("status = %q/%q, want HIGH_SCORE 10/empty", screen.message, screen.errorMsg)
	}

	e.SetError("SAVE_FAILED")
	e.Draw(nil)
	if screen.message != "" || screen.errorMsg != "SAVE_FAILED" {
		t.Errorf("status = %q/%q, want empty/SAVE_FAILED", screen.message, screen.errorMsg)
	}
}

func TestStatusFromAnotherGoroutine(t *testing.T) {
	e := NewEngine(nil)
	screen := &statusScreen{}
	e.RegisterScreens(screen)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if i%2 == 0 {
				e.SetMessage(fmt.Sprintf("HIGH_SCORE %d", i))
			} else {
				e.SetError(fmt.Sprintf("ERR %d", i))
			}
		}
	}()

	for i := 0; i < 500; i++ {
		e.Draw(nil)
	}
	wg.Wait()
	e.Draw(nil)

	if screen.errorMsg != "ERR 499" || screen.message != "" {
		t.Errorf("final status = %q/%q, want empty/ERR 499", screen.message, screen.errorMsg)
	}
	if screen.draws != 501 {
		t.Errorf("draws = %d, want 501", screen.draws)
	}
}
