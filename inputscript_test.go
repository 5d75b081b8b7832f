package monocle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectQueueOrder(t *testing.T) {
	e := newTestEngine(t)
	e.InjectKey(KeyA)
	e.InjectClick(3, 4, MouseRight)
	e.InjectQuit()

	var got []RawEvent
	for {
		ev, ok := e.popInjected()
		if !ok {
			break
		}
		got = append(got, ev)
	}
	assert.Equal(t, []RawEvent{
		{Kind: EventKeyDown, Key: KeyA},
		{Kind: EventKeyUp, Key: KeyA},
		{Kind: EventMouseMove, MouseX: 3, MouseY: 4},
		{Kind: EventMouseButtonDown, MouseButton: MouseRight},
		{Kind: EventMouseButtonUp, MouseButton: MouseRight},
		{Kind: EventQuit},
	}, got)
}

func TestLoadInputScript(t *testing.T) {
	s, err := LoadInputScript([]byte(`{"steps": [
		{"action": "key", "key": 27},
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "after"}
	]}`))
	require.NoError(t, err)
	assert.Len(t, s.steps, 3)
	assert.False(t, s.Done())
}

func TestLoadInputScriptErrors(t *testing.T) {
	for _, doc := range []string{
		`not json`,
		`{"steps": []}`,
		`{"steps": [{"action": "dance"}]}`,
	} {
		_, err := LoadInputScript([]byte(doc))
		assert.Error(t, err, doc)
	}
}

// inputEvents pops events until Quit or the frame limit, returning the
// input events keyed by the frame they arrived in.
func inputEvents(t *testing.T, e *Engine, frames uint64) map[uint64][]RawEvent {
	t.Helper()
	out := make(map[uint64][]RawEvent)
	for e.Frame() < frames {
		ev := e.PopRawEvent()
		switch ev.Kind {
		case EventKeyDown, EventKeyUp, EventMouseMove, EventMouseButtonDown, EventMouseButtonUp:
			out[e.Frame()] = append(out[e.Frame()], ev)
		case EventQuit:
			out[e.Frame()] = append(out[e.Frame()], ev)
			return out
		}
	}
	return out
}

func TestInputScriptDrivesEngine(t *testing.T) {
	e := newTestEngine(t)
	s, err := LoadInputScript([]byte(`{"steps": [
		{"action": "key", "key": 97},
		{"action": "wait", "frames": 2},
		{"action": "mousemove", "x": 7, "y": 8},
		{"action": "quit"}
	]}`))
	require.NoError(t, err)
	e.SetInputScript(s)

	got := inputEvents(t, e, 20)
	assert.Equal(t, map[uint64][]RawEvent{
		0: {{Kind: EventKeyDown, Key: KeyA}},
		1: {{Kind: EventKeyUp, Key: KeyA}},
		4: {{Kind: EventMouseMove, MouseX: 7, MouseY: 8}},
		5: {{Kind: EventQuit}},
	}, got)
	assert.Equal(t, len(s.steps), s.cursor)
}

func TestInputScriptScreenshotQueues(t *testing.T) {
	e := newTestEngine(t)
	s, err := LoadInputScript([]byte(`{"steps": [{"action": "screenshot", "label": "start"}]}`))
	require.NoError(t, err)
	e.SetInputScript(s)

	e.PopRawEvent() // Init
	e.PopRawEvent() // PreInput; the script steps when input is gathered
	e.PopRawEvent()
	assert.Equal(t, []string{"start"}, e.screenshotQueue)
	assert.True(t, s.Done())
}
