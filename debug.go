package monocle

import (
	"time"

	"go.uber.org/zap"
)

// frameStats holds per-frame event and draw metrics. Only logged when the
// engine is in debug mode.
type frameStats struct {
	frame    uint64
	start    time.Time
	events   [eventKindCount]int
	objects  int
	commands int
}

func (s *frameStats) reset(frame uint64) {
	*s = frameStats{frame: frame, start: time.Now()}
}

func (s *frameStats) count(k EventKind) {
	if k < eventKindCount {
		s.events[k]++
	}
}

// SetDebugMode turns per-frame statistics logging on or off.
func (e *Engine) SetDebugMode(on bool) {
	e.debug = on
}

// debugLog logs the finished frame's statistics at debug level.
func (e *Engine) debugLog(s *frameStats) {
	if !e.debug {
		return
	}
	input := 0
	for k := EventKeyDown; k <= EventJoyHatMove; k++ {
		input += s.events[k]
	}
	Logger().Debug("frame",
		zap.Uint64("frame", s.frame),
		zap.Duration("elapsed", time.Since(s.start)),
		zap.Int("objects", s.objects),
		zap.Int("input_events", input),
		zap.Int("ticks", s.events[EventPreInput]+s.events[EventPrePhysics]+s.events[EventPreRender]+s.events[EventRender]),
		zap.Int("draw_commands", s.commands),
	)
}
