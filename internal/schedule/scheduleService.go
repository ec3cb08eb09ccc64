package schedule

import (
	"github.com/charmbracelet/log"
	"github.com/wheelibin/glow/internal/colour"
	"github.com/wheelibin/glow/internal/models"
)

type ScheduleService struct {
	logger *log.Logger
}

func NewScheduleService(logger *log.Logger) *ScheduleService {
	return &ScheduleService{logger: logger}
}

// GetActiveInterval scans the windows in their stored order and returns the
// first one containing now along with its phase.
func (s *ScheduleService) GetActiveInterval(cfg models.TimerConfig, now int) (*Interval, Phase, float64) {
	if !cfg.Enabled || len(cfg.Windows) == 0 {
		return nil, PhaseNone, 0
	}

	for idx, w := range cfg.Windows {
		interval, err := NewInterval(w)
		if err != nil {
			s.logger.Warn("skipping malformed timer window", "index", idx, "err", err)
			continue
		}

		phase, factor := interval.Classify(now)
		if phase == PhaseNone {
			continue
		}

		s.logger.Debug("The currently active timer window is",
			"index", idx,
			"phase", phase,
			"from", w.FadeInStart,
			"to", w.FadeOutEnd,
		)
		return &interval, phase, factor
	}

	return nil, PhaseNone, 0
}

// ComputeTimerColour returns the colour produced by the timers at now, nil when
// disabled or no window is active.
func (s *ScheduleService) ComputeTimerColour(now int, cfg models.TimerConfig, brightness int) *colour.RGB {
	interval, _, factor := s.GetActiveInterval(cfg, now)
	if interval == nil {
		return nil
	}
	c := colour.Scale(interval.Color, factor, brightness)
	return &c
}
