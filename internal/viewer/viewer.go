// Package viewer runs the navigation core headless: it builds an
// in-memory depot scene from the catalog, wires every component and drives
// them from a fixed-step frame loop.
package viewer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/depot-nav/internal/catalog"
	"github.com/Faultbox/depot-nav/internal/config"
	"github.com/Faultbox/depot-nav/internal/icons"
	"github.com/Faultbox/depot-nav/internal/logger"
	"github.com/Faultbox/depot-nav/internal/nav"
	"github.com/Faultbox/depot-nav/internal/panel"
	"github.com/Faultbox/depot-nav/internal/scene"
	"github.com/Faultbox/depot-nav/internal/scene/memscene"
	"github.com/Faultbox/depot-nav/internal/tour"
	"github.com/Faultbox/depot-nav/pkg/math"
)

// Half-size of the placeholder box built for every building.
var buildingExtent = math.Vec3{X: 10, Y: 5, Z: 10}

// Viewer is one headless navigation session.
type Viewer struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	world   *memscene.World
	nav     *nav.Context
	orch    *nav.Orchestrator
	panel   *panel.Controller
	tour    *tour.Player
	icons   *icons.Manager
	session *catalog.Session
	log     *zap.Logger

	frames int
}

// New builds the scene and wires the navigation components.
func New(cfg *config.Config) (*Viewer, error) {
	log := logger.Named("viewer")

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		var err error
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
	}

	world := memscene.New()
	world.AddCamera(memscene.NewCamera(cfg.Navigation.CameraName, scene.Pose{}))
	for _, b := range cat.Buildings() {
		name := b.Mesh
		if name == "" {
			name = b.ID
		}
		world.AddMesh(memscene.NewMesh(name, buildingExtent.Scale(-1), buildingExtent, b.Position))
	}

	navCtx, err := nav.NewContext(world, world, cfg.Navigation.CameraName, logger.Named("nav"))
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		cfg:     cfg,
		catalog: cat,
		world:   world,
		nav:     navCtx,
		session: catalog.NewSession(),
		log:     log,
	}

	hl := nav.NewHighlight(navCtx, scene.Yellow)
	v.panel = nav.NewPanel(navCtx, world,
		panel.CatalogSource{Catalog: cat, Lift: cfg.Panel.AnchorLift},
		panel.SettingsFromConfig(cfg.Panel))
	v.orch = nav.NewOrchestrator(navCtx, cat, hl, v.panel, nav.SettingsFromConfig(cfg.Navigation))
	v.tour = tour.New(navCtx, cat, tour.SettingsFromConfig(cfg.Tour))

	v.icons = icons.New(world, navCtx.Bus, cfg.Icons, logger.Named("icons"))
	if err := v.icons.Init(cat.Buildings()); err != nil {
		navCtx.Close()
		return nil, err
	}
	navCtx.OnClose(v.icons.Close)

	log.Info("viewer initialized",
		zap.Int("buildings", len(cat.Buildings())),
		zap.Int("viewpoints", len(cat.Viewpoints())))
	return v, nil
}

// Step advances the session by one frame.
func (v *Viewer) Step(dt time.Duration) {
	v.nav.Update(dt)
	v.frames++
}

// Now returns the session's frame clock.
func (v *Viewer) Now() time.Duration {
	return v.nav.Scheduler.Now()
}

// Pose returns a copy of the camera pose.
func (v *Viewer) Pose() scene.Pose {
	return *v.nav.Camera.Pose()
}

// Run plays the scripted session until the configured duration of frame
// time has passed or ctx is cancelled. Camera samples are logged from a
// second goroutine so the frame loop never blocks on output.
func (v *Viewer) Run(ctx context.Context) error {
	v.Script()

	samples := make(chan sample, 16)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(samples)
		return v.loop(ctx, samples)
	})
	g.Go(func() error {
		for s := range samples {
			v.log.Info("camera",
				zap.Duration("t", s.at),
				zap.Float64("x", s.pose.Position.X),
				zap.Float64("y", s.pose.Position.Y),
				zap.Float64("z", s.pose.Position.Z),
				zap.Float64("yaw", s.pose.Rotation.Y),
				zap.Bool("touring", s.touring),
				zap.String("panel", s.panel))
		}
		return nil
	})

	return g.Wait()
}

type sample struct {
	at      time.Duration
	pose    scene.Pose
	touring bool
	panel   string
}

func (v *Viewer) loop(ctx context.Context, samples chan<- sample) error {
	dt := time.Second / time.Duration(v.cfg.Runner.FPS)
	ticker := time.NewTicker(dt)
	defer ticker.Stop()

	nextSample := time.Duration(0)
	for {
		select {
		case <-ctx.Done():
			v.log.Info("session interrupted", zap.Duration("t", v.Now()))
			return nil
		case <-ticker.C:
		}

		v.Step(dt)

		if v.Now() >= nextSample {
			nextSample += time.Second
			s := sample{at: v.Now(), pose: v.Pose(), touring: v.tour.IsPlaying(), panel: v.panel.Current()}
			select {
			case samples <- s:
			default:
				v.log.Debug("dropping camera sample")
			}
		}

		if d := v.cfg.Runner.Duration; d > 0 && v.Now() >= d {
			v.log.Info("session finished", zap.Int("frames", v.frames))
			return nil
		}
	}
}

// Close tears the session down.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")
	v.nav.Close()
}
