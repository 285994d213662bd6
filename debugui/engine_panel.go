package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// EnginePanel shows the session, the piece statistics and the board, and has
// buttons that queue lifecycle actions.
type EnginePanel struct {
	// Gravity, when set, gets a pause checkbox.
	Gravity *loop.GravitySystem
}

func (p *EnginePanel) Render(frame *loop.Frame) {
	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := frame.Engine.Snapshot()
	s := snap.Session

	imgui.Text(fmt.Sprintf("Status: %s", s.Status))
	imgui.Text(fmt.Sprintf("Score: %d  Best: %d", s.Score, s.Best))
	imgui.Text(fmt.Sprintf("Lines: %d", s.Lines))
	imgui.Text(fmt.Sprintf("Drop Interval: %s", s.DropInterval))
	if snap.Piece != nil {
		imgui.Text(fmt.Sprintf("Piece: %s rot %d at (%d, %d) ghost %d",
			snap.Piece.Kind, snap.Piece.Rotation, snap.Piece.X, snap.Piece.Y, snap.GhostY))
	} else {
		imgui.Text("Piece: none")
	}

	if imgui.Button("Start") {
		frame.Commands.Apply(tetris.ActionStart)
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		frame.Commands.Apply(tetris.ActionReset)
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		frame.Commands.Apply(tetris.ActionRestart)
	}
	if p.Gravity != nil {
		imgui.Checkbox("Pause gravity", &p.Gravity.Paused)
	}

	imgui.Separator()

	if imgui.TreeNodeStr("Pieces Dealt") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("DealtTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()
			for _, k := range tetris.AllKinds {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(k.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", snap.Dealt[k]))
			}
			imgui.EndTable()
		}
		for n, count := range snap.Clears {
			imgui.BulletText(fmt.Sprintf("%d-line locks: %d", n, count))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Board") {
		for y := 0; y < tetris.Rows; y++ {
			var row strings.Builder
			for x := 0; x < tetris.Cols; x++ {
				row.WriteString(snap.Cell(x, y).String())
			}
			imgui.Text(fmt.Sprintf("%2d %s", y, row.String()))
		}
		imgui.TreePop()
	}

	imgui.End()
}
