// Package sdldriver implements the raw-device Driver on top of SDL2.
//
// The caller owns the SDL event loop: pump events once per frame (any
// sdl.PollEvent loop does) and feed wheel events through HandleEvent, since
// SDL only reports scroll as events.
package sdldriver

import (
	"fmt"
	"math"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/inputkit/pkg/input"
	"github.com/Faultbox/inputkit/pkg/input/driver"
)

// Driver polls SDL2 for keyboard, mouse and game-controller state. Only the
// first connected controller is polled; when it detaches the driver fails
// over to the next connected one on the following poll.
type Driver struct {
	log        *zap.Logger
	controller *sdl.GameController
	wheel      float64
}

// New initializes the SDL joystick and game-controller subsystems. SDL video
// (and with it, keyboard focus) is the window's job, not ours.
func New(log *zap.Logger) (*Driver, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := sdl.InitSubSystem(sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER); err != nil {
		return nil, fmt.Errorf("sdldriver: init subsystems: %w", err)
	}
	return &Driver{log: log}, nil
}

// Close releases the active controller, if any.
func (d *Driver) Close() {
	if d.controller != nil {
		d.controller.Close()
		d.controller = nil
	}
	sdl.QuitSubSystem(sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER)
}

// HandleEvent accumulates mouse wheel events into the running wheel total.
// Call it for every event pulled off the SDL event queue.
func (d *Driver) HandleEvent(event sdl.Event) {
	if e, ok := event.(*sdl.MouseWheelEvent); ok {
		amount := float64(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			amount = -amount
		}
		d.wheel += amount
	}
}

// scancodeKeys maps SDL scancodes onto engine key indices.
var scancodeKeys = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_A: input.KeyA, sdl.SCANCODE_B: input.KeyB,
	sdl.SCANCODE_C: input.KeyC, sdl.SCANCODE_D: input.KeyD,
	sdl.SCANCODE_E: input.KeyE, sdl.SCANCODE_F: input.KeyF,
	sdl.SCANCODE_G: input.KeyG, sdl.SCANCODE_H: input.KeyH,
	sdl.SCANCODE_I: input.KeyI, sdl.SCANCODE_J: input.KeyJ,
	sdl.SCANCODE_K: input.KeyK, sdl.SCANCODE_L: input.KeyL,
	sdl.SCANCODE_M: input.KeyM, sdl.SCANCODE_N: input.KeyN,
	sdl.SCANCODE_O: input.KeyO, sdl.SCANCODE_P: input.KeyP,
	sdl.SCANCODE_Q: input.KeyQ, sdl.SCANCODE_R: input.KeyR,
	sdl.SCANCODE_S: input.KeyS, sdl.SCANCODE_T: input.KeyT,
	sdl.SCANCODE_U: input.KeyU, sdl.SCANCODE_V: input.KeyV,
	sdl.SCANCODE_W: input.KeyW, sdl.SCANCODE_X: input.KeyX,
	sdl.SCANCODE_Y: input.KeyY, sdl.SCANCODE_Z: input.KeyZ,

	sdl.SCANCODE_0: input.Key0, sdl.SCANCODE_1: input.Key1,
	sdl.SCANCODE_2: input.Key2, sdl.SCANCODE_3: input.Key3,
	sdl.SCANCODE_4: input.Key4, sdl.SCANCODE_5: input.Key5,
	sdl.SCANCODE_6: input.Key6, sdl.SCANCODE_7: input.Key7,
	sdl.SCANCODE_8: input.Key8, sdl.SCANCODE_9: input.Key9,

	sdl.SCANCODE_F1: input.KeyF1, sdl.SCANCODE_F2: input.KeyF2,
	sdl.SCANCODE_F3: input.KeyF3, sdl.SCANCODE_F4: input.KeyF4,
	sdl.SCANCODE_F5: input.KeyF5, sdl.SCANCODE_F6: input.KeyF6,
	sdl.SCANCODE_F7: input.KeyF7, sdl.SCANCODE_F8: input.KeyF8,
	sdl.SCANCODE_F9: input.KeyF9, sdl.SCANCODE_F10: input.KeyF10,
	sdl.SCANCODE_F11: input.KeyF11, sdl.SCANCODE_F12: input.KeyF12,

	sdl.SCANCODE_ESCAPE:    input.KeyEscape,
	sdl.SCANCODE_TAB:       input.KeyTab,
	sdl.SCANCODE_CAPSLOCK:  input.KeyCapsLock,
	sdl.SCANCODE_LSHIFT:    input.KeyLeftShift,
	sdl.SCANCODE_RSHIFT:    input.KeyRightShift,
	sdl.SCANCODE_LCTRL:     input.KeyLeftControl,
	sdl.SCANCODE_RCTRL:     input.KeyRightControl,
	sdl.SCANCODE_LALT:      input.KeyLeftAlt,
	sdl.SCANCODE_RALT:      input.KeyRightAlt,
	sdl.SCANCODE_LGUI:      input.KeyLeftSuper,
	sdl.SCANCODE_RGUI:      input.KeyRightSuper,
	sdl.SCANCODE_SPACE:     input.KeySpace,
	sdl.SCANCODE_RETURN:    input.KeyEnter,
	sdl.SCANCODE_BACKSPACE: input.KeyBackspace,

	sdl.SCANCODE_UP:    input.KeyUp,
	sdl.SCANCODE_DOWN:  input.KeyDown,
	sdl.SCANCODE_LEFT:  input.KeyLeft,
	sdl.SCANCODE_RIGHT: input.KeyRight,

	sdl.SCANCODE_INSERT:      input.KeyInsert,
	sdl.SCANCODE_DELETE:      input.KeyDelete,
	sdl.SCANCODE_HOME:        input.KeyHome,
	sdl.SCANCODE_END:         input.KeyEnd,
	sdl.SCANCODE_PAGEUP:      input.KeyPageUp,
	sdl.SCANCODE_PAGEDOWN:    input.KeyPageDown,
	sdl.SCANCODE_PRINTSCREEN: input.KeyPrintScreen,
	sdl.SCANCODE_SCROLLLOCK:  input.KeyScrollLock,
	sdl.SCANCODE_PAUSE:       input.KeyPause,

	sdl.SCANCODE_GRAVE:        input.KeyGrave,
	sdl.SCANCODE_MINUS:        input.KeyMinus,
	sdl.SCANCODE_EQUALS:       input.KeyEquals,
	sdl.SCANCODE_LEFTBRACKET:  input.KeyLeftBracket,
	sdl.SCANCODE_RIGHTBRACKET: input.KeyRightBracket,
	sdl.SCANCODE_BACKSLASH:    input.KeyBackslash,
	sdl.SCANCODE_SEMICOLON:    input.KeySemicolon,
	sdl.SCANCODE_APOSTROPHE:   input.KeyApostrophe,
	sdl.SCANCODE_COMMA:        input.KeyComma,
	sdl.SCANCODE_PERIOD:       input.KeyPeriod,
	sdl.SCANCODE_SLASH:        input.KeySlash,

	sdl.SCANCODE_NUMLOCKCLEAR: input.KeyNumLock,
	sdl.SCANCODE_KP_0:         input.KeyNumpad0,
	sdl.SCANCODE_KP_1:         input.KeyNumpad1,
	sdl.SCANCODE_KP_2:         input.KeyNumpad2,
	sdl.SCANCODE_KP_3:         input.KeyNumpad3,
	sdl.SCANCODE_KP_4:         input.KeyNumpad4,
	sdl.SCANCODE_KP_5:         input.KeyNumpad5,
	sdl.SCANCODE_KP_6:         input.KeyNumpad6,
	sdl.SCANCODE_KP_7:         input.KeyNumpad7,
	sdl.SCANCODE_KP_8:         input.KeyNumpad8,
	sdl.SCANCODE_KP_9:         input.KeyNumpad9,
	sdl.SCANCODE_KP_DIVIDE:    input.KeyNumpadDivide,
	sdl.SCANCODE_KP_MULTIPLY:  input.KeyNumpadMultiply,
	sdl.SCANCODE_KP_MINUS:     input.KeyNumpadMinus,
	sdl.SCANCODE_KP_PLUS:      input.KeyNumpadPlus,
	sdl.SCANCODE_KP_ENTER:     input.KeyNumpadEnter,
	sdl.SCANCODE_KP_PERIOD:    input.KeyNumpadPeriod,
}

func (d *Driver) PollKeyboard() driver.KeyboardState {
	state := sdl.GetKeyboardState()
	keys := make([]bool, input.KeyCount)
	for sc, k := range scancodeKeys {
		if int(sc) < len(state) && state[sc] != 0 {
			keys[k] = true
		}
	}
	return driver.KeyboardState{Keys: keys}
}

// mouseButtons orders SDL button flags by engine button index.
var mouseButtons = [...]uint32{
	input.MouseLeft:   sdl.BUTTON_LEFT,
	input.MouseMiddle: sdl.BUTTON_MIDDLE,
	input.MouseRight:  sdl.BUTTON_RIGHT,
	input.MouseX1:     sdl.BUTTON_X1,
	input.MouseX2:     sdl.BUTTON_X2,
}

func (d *Driver) PollMouse() driver.MouseState {
	x, y, state := sdl.GetMouseState()
	gx, gy, _ := sdl.GetGlobalMouseState()
	buttons := make([]bool, len(mouseButtons))
	for i, flag := range mouseButtons {
		buttons[i] = state&(1<<(flag-1)) != 0
	}
	return driver.MouseState{
		Buttons:  buttons,
		X:        float64(x),
		Y:        float64(y),
		DesktopX: float64(gx),
		DesktopY: float64(gy),
		Wheel:    d.wheel,
	}
}

// controllerButtons orders SDL controller buttons by engine button index.
var controllerButtons = [...]sdl.GameControllerButton{
	input.JoyA:             sdl.CONTROLLER_BUTTON_A,
	input.JoyB:             sdl.CONTROLLER_BUTTON_B,
	input.JoyX:             sdl.CONTROLLER_BUTTON_X,
	input.JoyY:             sdl.CONTROLLER_BUTTON_Y,
	input.JoyLeftShoulder:  sdl.CONTROLLER_BUTTON_LEFTSHOULDER,
	input.JoyRightShoulder: sdl.CONTROLLER_BUTTON_RIGHTSHOULDER,
	input.JoyBack:          sdl.CONTROLLER_BUTTON_BACK,
	input.JoyStart:         sdl.CONTROLLER_BUTTON_START,
	input.JoyGuide:         sdl.CONTROLLER_BUTTON_GUIDE,
	input.JoyLeftStick:     sdl.CONTROLLER_BUTTON_LEFTSTICK,
	input.JoyRightStick:    sdl.CONTROLLER_BUTTON_RIGHTSTICK,
	input.JoyDPadUp:        sdl.CONTROLLER_BUTTON_DPAD_UP,
	input.JoyDPadDown:      sdl.CONTROLLER_BUTTON_DPAD_DOWN,
	input.JoyDPadLeft:      sdl.CONTROLLER_BUTTON_DPAD_LEFT,
	input.JoyDPadRight:     sdl.CONTROLLER_BUTTON_DPAD_RIGHT,
}

// controllerAxes orders SDL controller axes by engine axis index.
var controllerAxes = [...]sdl.GameControllerAxis{
	input.JoyLeftStickX:   sdl.CONTROLLER_AXIS_LEFTX,
	input.JoyLeftStickY:   sdl.CONTROLLER_AXIS_LEFTY,
	input.JoyRightStickX:  sdl.CONTROLLER_AXIS_RIGHTX,
	input.JoyRightStickY:  sdl.CONTROLLER_AXIS_RIGHTY,
	input.JoyLeftTrigger:  sdl.CONTROLLER_AXIS_TRIGGERLEFT,
	input.JoyRightTrigger: sdl.CONTROLLER_AXIS_TRIGGERRIGHT,
}

func (d *Driver) PollJoystick() driver.JoystickState {
	d.ensureController()
	if d.controller == nil {
		return driver.JoystickState{}
	}
	buttons := make([]bool, len(controllerButtons))
	for i, btn := range controllerButtons {
		buttons[i] = d.controller.Button(btn) != 0
	}
	axes := make([]float64, len(controllerAxes))
	for i, axis := range controllerAxes {
		axes[i] = normalizeAxis(d.controller.Axis(axis))
	}
	return driver.JoystickState{Connected: true, Buttons: buttons, Axes: axes}
}

// ensureController keeps the first connected controller open, failing over
// to the next one when the active controller detaches.
func (d *Driver) ensureController() {
	if d.controller != nil {
		if d.controller.Attached() {
			return
		}
		d.log.Info("controller detached", zap.String("name", d.controller.Name()))
		d.controller.Close()
		d.controller = nil
	}
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		gc := sdl.GameControllerOpen(i)
		if gc == nil {
			continue
		}
		d.log.Info("controller attached", zap.String("name", gc.Name()))
		d.controller = gc
		return
	}
}

func normalizeAxis(v int16) float64 {
	f := float64(v) / 32767.0
	return math.Max(-1, math.Min(1, f))
}
