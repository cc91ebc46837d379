package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/gorustyt/gocrowd/common"
	"github.com/gorustyt/gocrowd/config"
	"github.com/gorustyt/gocrowd/crowd"
	"github.com/gorustyt/gocrowd/debug_utils"
)

var (
	ticks   = flag.Int("ticks", 300, "simulation ticks to run")
	dt      = flag.Float64("dt", 1.0/60.0, "tick duration in seconds")
	agents  = flag.Int("agents", 20, "agents per column")
	outPNG  = flag.String("out", "", "write a debug overlay PNG to this path after the run")
	logPath = flag.String("log", "", "also log to this file")
)

// Two opposing columns walk through each other across the arena. Agents in
// the left column head right, agents in the right column head left, forcing
// the avoidance solver to thread them past one another.
func main() {
	flag.Parse()

	log := common.InitLogger(*logPath, zap.InfoLevel)
	defer log.Sync()

	grid := crowd.NewGrid(50, 50, 10, 25)
	cw := crowd.NewCrowd(grid)
	cw.SetLogger(log)

	cfg := config.NewConfig()
	cfg.DrawSpatialGrid = *outPNG != ""
	cfg.DrawSensorRange = *outPNG != ""

	eastDest := mgl32.Vec3{200, 0, 0}
	westDest := mgl32.Vec3{-200, 0, 0}
	east := crowd.NewFlowGroup(eastDest, crowd.DirectionFunc(func(pos mgl32.Vec3) mgl32.Vec2 {
		return common.NormalizeOrZero2D(common.XZ(eastDest.Sub(pos)))
	}))
	west := crowd.NewFlowGroup(westDest, crowd.DirectionFunc(func(pos mgl32.Vec3) mgl32.Vec2 {
		return common.NormalizeOrZero2D(common.XZ(westDest.Sub(pos)))
	}))

	for i := 0; i < *agents; i++ {
		z := float32(i-*agents/2) * 7
		east.AddUnits(cw.AddAgent(mgl32.Vec3{-150, 0, z}, cfg.Tuning))
		west.AddUnits(cw.AddAgent(mgl32.Vec3{150, 0, z + 3}, cfg.Tuning))
	}
	cw.AddGroup(east)
	cw.AddGroup(west)

	step := float32(*dt)
	for tick := 0; tick < *ticks; tick++ {
		cfg.Apply(cw)
		cw.Update(step)
		for _, ag := range cw.Agents() {
			ag.Position = ag.Position.Add(ag.Velocity.Mul(step))
		}
		if tick%60 == 0 {
			log.Info("tick", zap.Int("n", tick), zap.Int("agents", cw.AgentCount()))
		}
	}

	if *outPNG != "" {
		if err := dumpOverlay(cw, cfg, *outPNG); err != nil {
			log.Error("overlay dump failed", zap.Error(err))
			os.Exit(1)
		}
		log.Info("overlay written", zap.String("path", *outPNG))
	}

	for _, ag := range cw.Agents() {
		fmt.Printf("agent %d pos=(%.1f, %.1f) vel=(%.1f, %.1f)\n",
			ag.ID, ag.Position[0], ag.Position[2], ag.Velocity[0], ag.Velocity[2])
	}
}

func dumpOverlay(cw *crowd.Crowd, cfg *config.Config, path string) error {
	g := cw.Grid()
	half := g.Width() / 2
	dd := debug_utils.NewImageDebugDraw(1024, 1024, -half, -half, half, half)

	if cfg.DrawSpatialGrid {
		debug_utils.DuDebugDrawProximityGrid(dd, cw, debug_utils.DuRGBA(64, 64, 64, 255), 1)
	}
	if cfg.DrawSensorRange {
		debug_utils.DuDebugDrawSensorRanges(dd, cw, debug_utils.DuRGBA(48, 96, 48, 255), 1)
	}
	debug_utils.DuDebugDrawAgents(dd, cw,
		debug_utils.DuRGBA(220, 220, 64, 255),
		debug_utils.DuRGBA(64, 160, 255, 255), 2)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dd.WritePNG(f)
}
