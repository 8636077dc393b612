package ui

import "github.com/hajimehoshi/ebiten/v2"

// Screen is the interface for all UI screens (Gallery, Viewer).
type Screen interface {
	// Update handles input and logic. Return a non-nil ScreenTransition to change screens.
	Update() (*ScreenTransition, error)
	// Draw renders the screen.
	Draw(dst *ebiten.Image)
	// OnEnter is called when the screen becomes active.
	OnEnter()
	// OnExit is called when the screen is removed.
	OnExit()
	// Name returns the screen name for debugging.
	Name() string
}

// Resizer is implemented by screens that lay themselves out for the window
// size. Resize is called before OnEnter and again on every size change.
type Resizer interface {
	Resize(width, height int)
}

// DebugLiner is implemented by screens that contribute to the debug overlay.
type DebugLiner interface {
	DebugLines() []string
}

type TransitionType int

const (
	TransitionPush TransitionType = iota
	TransitionPop
	TransitionReplace
)

type ScreenTransition struct {
	Type   TransitionType
	Screen Screen // nil for Pop
}

// ScreenManager manages a stack of screens.
type ScreenManager struct {
	stack         []Screen
	width, height int
}

func NewScreenManager() *ScreenManager {
	return &ScreenManager{}
}

// Resize records the window size and passes it to the visible screen. Screens
// further down the stack are resized when they are revealed.
func (sm *ScreenManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	sm.resize(sm.Current())
}

// Size returns the last size passed to Resize.
func (sm *ScreenManager) Size() (int, int) {
	return sm.width, sm.height
}

func (sm *ScreenManager) resize(s Screen) {
	if r, ok := s.(Resizer); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
}

func (sm *ScreenManager) Push(s Screen) {
	sm.stack = append(sm.stack, s)
	sm.resize(s)
	s.OnEnter()
}

func (sm *ScreenManager) Pop() {
	if len(sm.stack) == 0 {
		return
	}
	top := sm.stack[len(sm.stack)-1]
	top.OnExit()
	sm.stack = sm.stack[:len(sm.stack)-1]
	if len(sm.stack) > 0 {
		next := sm.stack[len(sm.stack)-1]
		sm.resize(next)
		next.OnEnter()
	}
}

func (sm *ScreenManager) Replace(s Screen) {
	if len(sm.stack) > 0 {
		top := sm.stack[len(sm.stack)-1]
		top.OnExit()
		sm.stack[len(sm.stack)-1] = s
	} else {
		sm.stack = append(sm.stack, s)
	}
	sm.resize(s)
	s.OnEnter()
}

// ClearStack exits and removes all screens from the stack.
func (sm *ScreenManager) ClearStack() {
	for len(sm.stack) > 0 {
		top := sm.stack[len(sm.stack)-1]
		top.OnExit()
		sm.stack = sm.stack[:len(sm.stack)-1]
	}
}

func (sm *ScreenManager) Current() Screen {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *ScreenManager) Update() error {
	s := sm.Current()
	if s == nil {
		return nil
	}

	tr, err := s.Update()
	if err != nil {
		return err
	}
	sm.apply(tr)
	return nil
}

func (sm *ScreenManager) apply(tr *ScreenTransition) {
	if tr == nil {
		return
	}
	switch tr.Type {
	case TransitionPush:
		sm.Push(tr.Screen)
	case TransitionPop:
		sm.Pop()
	case TransitionReplace:
		sm.Replace(tr.Screen)
	}
}

func (sm *ScreenManager) Draw(dst *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(dst)
	}
}

// DebugLines returns the visible screen's debug overlay lines, if any.
func (sm *ScreenManager) DebugLines() []string {
	if dl, ok := sm.Current().(DebugLiner); ok {
		return dl.DebugLines()
	}
	return nil
}

func (sm *ScreenManager) StackSize() int {
	return len(sm.stack)
}
