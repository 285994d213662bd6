package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// SchedulerPanel shows frame timings and per-system execution statistics.
type SchedulerPanel struct {
	scheduler     *loop.Scheduler
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewSchedulerPanel(scheduler *loop.Scheduler, historyFrames int) *SchedulerPanel {
	return &SchedulerPanel{
		scheduler:     scheduler,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (p *SchedulerPanel) Render(frame *loop.Frame) {
	if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	p.frameHistory[p.frameIndex] = float32(frame.Seconds() * 1000.0)
	p.frameIndex = (p.frameIndex + 1) % p.historyFrames

	var avgFrameTime float32
	for _, ft := range p.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(p.historyFrames)

	stats := p.scheduler.Stats()
	imgui.Text(fmt.Sprintf("Frames: %d", stats.FrameCount))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &p.frameHistory[0], int32(len(p.frameHistory)))

	if imgui.TreeNodeStr("System Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
