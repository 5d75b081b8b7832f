package monocle

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Key    Key    `json:"key,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Button int    `json:"button,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"key": true, "keydown": true, "keyup": true,
	"mousemove": true, "click": true,
	"wait": true, "screenshot": true, "quit": true,
}

// InputScript sequences injected input and screenshots across frames for
// automated runs. Attach to an Engine with SetInputScript.
type InputScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadInputScript parses a JSON input script:
//
//	{"steps": [{"action": "key", "key": 27}, {"action": "wait", "frames": 10}]}
func LoadInputScript(jsonData []byte) (*InputScript, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("monocle: parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("monocle: parse input script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("monocle: parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &InputScript{steps: script.Steps}, nil
}

// SetInputScript attaches s to the engine. It is stepped once per frame,
// before the frame's input is gathered.
func (e *Engine) SetInputScript(s *InputScript) {
	e.script = s
}

// Done reports whether every step has been executed.
func (s *InputScript) Done() bool {
	return s.done
}

// step advances the script by one frame.
func (s *InputScript) step(e *Engine) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "key":
		e.InjectKey(st.Key)
	case "keydown":
		e.InjectKeyDown(st.Key)
	case "keyup":
		e.InjectKeyUp(st.Key)
	case "mousemove":
		e.InjectMouseMove(st.X, st.Y)
	case "click":
		button := st.Button
		if button == 0 {
			button = MouseLeft
		}
		e.InjectClick(st.X, st.Y, button)
	case "screenshot":
		e.Screenshot(st.Label)
	case "quit":
		e.InjectQuit()
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(e.injectQueue) == 0 {
		s.done = true
	}
}
