package input

import (
	"testing"

	"github.com/dshills/termfield/internal/input/key"
	"github.com/dshills/termfield/internal/input/mouse"
)

func TestEventConstructors(t *testing.T) {
	k := NewKeyEvent(key.NewSpecialEvent(key.KeyEnter, key.ModAlt))
	if k.Type != EventKey || k.Key.Key != key.KeyEnter {
		t.Errorf("NewKeyEvent = %+v", k)
	}
	m := NewMouseEvent(mouse.NewPress(mouse.ButtonLeft, 2, 5))
	if m.Type != EventMouse || !m.Mouse.IsLeftPress() {
		t.Errorf("NewMouseEvent = %+v", m)
	}
	r := NewResizeEvent(80, 24)
	if r.Type != EventResize || r.Width != 80 || r.Height != 24 {
		t.Errorf("NewResizeEvent = %+v", r)
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Event{}, "none"},
		{NewKeyEvent(key.NewSpecialEvent(key.KeyEnter, key.ModAlt)), "key Alt+Enter"},
		{NewMouseEvent(mouse.NewPress(mouse.ButtonLeft, 2, 5)), "mouse left press at 2,5"},
		{NewResizeEvent(80, 24), "resize 80x24"},
	}
	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
