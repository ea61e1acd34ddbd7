package keyfall

import (
	"fmt"

	"github.com/vovakirdan/keyfall/internal/config"
	platformcore "github.com/vovakirdan/keyfall/internal/core"
	"github.com/vovakirdan/keyfall/internal/games/keyfall/core"
)

// Render draws the HUD, the grid and any overlay.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	switch {
	case g.sim == nil:
		g.renderOverlay(dst, "Level failed to load", errorLine(g.err))
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderGrid(dst)

	if g.paused {
		g.renderOverlay(dst, "PAUSED", "Press P to resume")
	}
}

// renderHUD draws the status line and a separator.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hudColor := platformcore.Color(g.cfg.Theme.HUD)

	hud := " Keyfall"
	if g.sim != nil {
		px, py := g.sim.PlayerPosition()
		hud = fmt.Sprintf(" Keyfall | Tick: %d | Player: %d,%d", g.sim.Ticks(), px, py)
	}
	dst.DrawText(0, 0, hud, hudColor)
	dst.DrawHLine(0, 1, dst.Width(), platformcore.Cell{Rune: '─', Color: hudColor})
}

// renderGrid draws every tile, then the player on top at the tracked
// position.
func (g *Game) renderGrid(dst *platformcore.Screen) {
	g.sim.ForEachCell(func(t core.Tile, x, y int) {
		if t.IsPlayer() {
			return
		}
		g.drawCell(dst, x, y, g.tileGlyph(t), g.tileColor(t))
	})

	px, py := g.sim.PlayerPosition()
	g.drawCell(dst, px, py, g.playerGlyph(), platformcore.Color(g.cfg.Theme.Player))
}

// drawCell fills one grid cell, CellWidth columns wide. In ascii mode the
// glyph is drawn once and padded.
func (g *Game) drawCell(dst *platformcore.Screen, x, y int, glyph rune, c platformcore.Color) {
	sx := g.gridOffsetX + x*g.cfg.Render.CellWidth
	sy := g.gridOffsetY + y
	for i := 0; i < g.cfg.Render.CellWidth; i++ {
		r := glyph
		if i > 0 && g.cfg.Render.Mode == config.RenderASCII {
			r = ' '
		}
		dst.Put(sx+i, sy, platformcore.Cell{Rune: r, Color: c})
	}
}

func (g *Game) tileGlyph(t core.Tile) rune {
	if t.IsAir() {
		return ' '
	}
	if g.cfg.Render.Mode == config.RenderASCII {
		return core.Glyph(t.Raw())
	}
	return g.cfg.Render.GlyphRune()
}

func (g *Game) playerGlyph() rune {
	if g.cfg.Render.Mode == config.RenderASCII {
		return core.Glyph(core.RawPlayer)
	}
	return g.cfg.Render.GlyphRune()
}

// tileColor picks the themed color of a tile. Keys and locks take the
// color of their key configuration, which Reset builds from the theme.
func (g *Game) tileColor(t core.Tile) platformcore.Color {
	switch t.Kind() {
	case core.KindFlux:
		return platformcore.Color(g.cfg.Theme.Flux)
	case core.KindUnbreakable:
		return platformcore.Color(g.cfg.Theme.Unbreakable)
	case core.KindStone:
		return platformcore.Color(g.cfg.Theme.Stone)
	case core.KindBox:
		return platformcore.Color(g.cfg.Theme.Box)
	case core.KindKey, core.KindLock:
		return platformcore.Color(t.Color(g.sim.Keys()))
	default:
		return platformcore.ColorDefault
	}
}

// renderOverlay draws a boxed two-line message in the middle of the screen.
func (g *Game) renderOverlay(dst *platformcore.Screen, title, subtitle string) {
	hudColor := platformcore.Color(g.cfg.Theme.HUD)
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.FillRect(box, platformcore.Blank)
	dst.DrawBox(box, hudColor)

	titleX := box.X + (boxW-len([]rune(title)))/2
	dst.DrawText(titleX, box.Y+1, title, platformcore.ColorDefault)

	subtitleX := box.X + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, box.Y+3, subtitle, platformcore.ColorDefault)
}

func errorLine(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
