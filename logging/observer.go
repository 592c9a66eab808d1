package logging

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/fireworks/sim"
)

// RocketEvents logs rocket lifecycle events at debug level
type RocketEvents struct {
	Log *zap.Logger
}

func (e RocketEvents) RocketLaunched(r *sim.Rocket) {
	e.Log.Debug("rocket launched",
		zap.Stringer("kind", r.Kind),
		zap.String("payload", r.Payload),
		zap.Float64("x", r.Pos.X),
		zap.Float64("target_y", r.Target.Y),
		zap.String("color", r.Color.Hex()),
	)
}

func (e RocketEvents) RocketExploded(r *sim.Rocket, spawned int) {
	e.Log.Debug("rocket exploded",
		zap.Stringer("kind", r.Kind),
		zap.String("payload", r.Payload),
		zap.Int("particles", spawned),
		zap.Float64("x", r.Pos.X),
		zap.Float64("y", r.Pos.Y),
	)
}
