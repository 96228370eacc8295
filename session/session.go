package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/oomph-ac/milieu/actor"
	"github.com/oomph-ac/milieu/selection"
	"github.com/oomph-ac/milieu/settings"
	"github.com/oomph-ac/milieu/tool"
	"github.com/oomph-ac/milieu/world"
)

// Config holds the optional collaborators of a Session.
type Config struct {
	Logger *slog.Logger
	// Metrics receives store activity. If it also has a Tick method, that is called once per tick.
	Metrics world.Metrics
}

// Frame is the outcome of a single tick, ready to be drawn.
type Frame struct {
	Tick     uint64
	Geometry world.Geometry
	Camera   actor.Camera
	// Target is the block under the cursor. Its highlight is restored before geometry is collected, so
	// Geometry always carries unhighlighted light and renderers use Target to draw the cursor.
	Target   selection.Target
	Movement actor.TickResult
	// Action is the edit the tool made, if any.
	Action *tool.Action
	Debug  [3]actor.AxisDebug
}

// Session ties together the voxel store, the actor walking through it and the tool editing it.
type Session struct {
	id       uuid.UUID
	settings settings.Settings

	store *world.Milieu
	actor *actor.Actor
	tool  *tool.Tool

	ticks  uint64
	onTick func()
	logger *slog.Logger
}

// New creates a session over a fresh store using gen to materialise voxels, and carves out the start region
// configured in s.
func New(s settings.Settings, gen world.Generator, conf Config) *Session {
	id := uuid.New()
	if conf.Logger == nil {
		conf.Logger = slog.New(slog.DiscardHandler)
	}
	logger := conf.Logger.With("session", id.String())

	sess := &Session{
		id:       id,
		settings: s,
		store:    world.New(gen, world.Config{Logger: logger, Metrics: conf.Metrics}),
		tool:     tool.New(s.Tool.Cooldown),
		logger:   logger,
	}
	if t, ok := conf.Metrics.(interface{ Tick() }); ok {
		sess.onTick = t.Tick
	}

	opts := actor.Options{PassUnexplored: s.World.PassUnexplored}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		opts.Debugf = func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		}
	}
	sess.actor = actor.New(mgl64.Vec3(s.World.PlayerStart), s.Actor, opts)
	sess.tool.Blocked = sess.occupied

	sess.carve()
	logger.Info("session started", "chunks", sess.store.World().Len(), "start", sess.actor.Position())
	return sess
}

// ID returns the unique identifier of the session.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Store returns the voxel store of the session.
func (s *Session) Store() *world.Milieu {
	return s.store
}

// Actor returns the actor of the session.
func (s *Session) Actor() *actor.Actor {
	return s.actor
}

// Tool returns the tool of the session.
func (s *Session) Tool() *tool.Tool {
	return s.tool
}

// Tick applies in, then targets, edits and moves for dt seconds and collects the resulting frame. The
// targeted block is highlighted in place but the highlight does not reach Frame.Geometry.
func (s *Session) Tick(dt float64, in Input) Frame {
	s.ticks++
	s.handleInput(in)

	cam := s.actor.Camera()
	origin, dir := cam.Ray()
	target := selection.Viewcast(s.store, origin, dir, s.settings.Tool.Reach)
	if target.Solid != nil {
		s.store.SetHighlight(*target.Solid, s.settings.Tool.HighlightFactor)
	}

	f := Frame{Tick: s.ticks, Target: target}
	if act, ok := s.tool.Tick(dt, target, s.store); ok {
		f.Action = &act
		s.logger.Debug("tool edit", "state", act.State, "pos", act.Pos)
	}

	f.Movement = s.actor.Tick(dt, s.store)
	f.Camera = s.actor.Camera()
	f.Debug = s.actor.Debug()
	f.Geometry = s.store.CollectGeometry()

	if s.onTick != nil {
		s.onTick()
	}
	return f
}

// carve reveals the start region so that the session begins in an open cave.
func (s *Session) carve() {
	s.store.Reveal(cube.Pos{1, 0, 0})

	lo, hi := s.settings.World.CarveMin, s.settings.World.CarveMax
	for x := lo[0]; x < hi[0]; x++ {
		for y := lo[1]; y < hi[1]; y++ {
			for z := lo[2]; z < hi[2]; z++ {
				s.store.Reveal(cube.Pos{x, y, z})
			}
		}
	}
}

// occupied reports whether the actor's hitbox overlaps the voxel at pos.
func (s *Session) occupied(pos cube.Pos) bool {
	box := cube.Box(float64(pos[0]), float64(pos[1]), float64(pos[2]), float64(pos[0]+1), float64(pos[1]+1), float64(pos[2]+1))
	return s.actor.BoundingBox().IntersectsWith(box)
}
