//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"ledsail/internal/animate"
	"ledsail/internal/config"
	"ledsail/internal/crash"
	"ledsail/internal/export"
	"ledsail/internal/layout"
	applog "ledsail/internal/log"
	"ledsail/internal/session"
	"ledsail/internal/version"
)

// Run starts the Fyne desktop UI: the sail rendering on the left and the
// density, strand and style controls on the right.
func Run(opts Options) error {
	opts = opts.withDefaults()
	l := applog.WithComponent("ui")
	l.Info("starting UI", slog.String("version", version.String()))

	sess, err := session.New(opts.Params)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer crash.Recover(opts.CrashDir, sess)

	player, err := NewPlayer(opts.Animation, sess.Result(), opts.Style)
	if err != nil {
		return err
	}

	fyneApp := app.NewWithID("ledsail")
	w := fyneApp.NewWindow("LED Sail")
	// Restore window size from preferences (with sane minimums)
	prefs := fyneApp.Preferences()
	winW := max(prefs.IntWithFallback("window.width", 1400), 800)
	winH := max(prefs.IntWithFallback("window.height", 900), 600)
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	status := widget.NewLabel("Ready")
	sc := NewSailCanvas()

	redraw := func() {
		d := player.Drawing()
		sc.SetImage(export.RenderImage(d, export.PNGOptions{Scale: 1}), d.Width, d.Height)
	}

	// Info labels
	strandsLbl := widget.NewLabel("")
	totalLbl := widget.NewLabel("")
	spacingLbl := widget.NewLabel("")
	perStrandLbl := widget.NewLabel("")
	densityLbl := widget.NewLabel("")
	strandCountLbl := widget.NewLabel("")
	styleLbl := widget.NewLabel("")

	var strandBtns []*widget.Button
	var undoBtn, redoBtn *widget.Button
	var mathCheck *widget.Check

	refreshPanel := func() {
		pn := PanelFor(sess)
		strandsLbl.SetText("Strands: " + pn.Strands)
		totalLbl.SetText("Total LEDs: " + pn.TotalLEDs)
		spacingLbl.SetText("Spacing: " + pn.Spacing)
		perStrandLbl.SetText("LEDs per strand: " + pn.LEDsPerStrand)
		densityLbl.SetText("Density: " + pn.Density)
		strandCountLbl.SetText("Strand count: " + pn.StrandCount)
		styleLbl.SetText("Style: " + pn.Style)
		for _, b := range strandBtns {
			if pn.StrandsEnabled {
				b.Enable()
			} else {
				b.Disable()
			}
		}
		setEnabled(undoBtn, pn.CanUndo)
		setEnabled(redoBtn, pn.CanRedo)
		if mathCheck.Checked != pn.MathMode {
			mathCheck.SetChecked(pn.MathMode)
		}
	}

	sess.OnChange(func(res layout.Result) {
		fyne.Do(func() {
			if err := player.SetResult(res); err != nil {
				l.Error("player update failed", slog.Any("err", err))
			}
			redraw()
			refreshPanel()
		})
	})

	// run applies a control and reports rejected changes in the status bar.
	run := func(op string, fn func() (bool, error)) func() {
		return func() {
			changed, err := fn()
			switch {
			case err != nil:
				status.SetText(fmt.Sprintf("%s: %v", op, err))
			case changed:
				status.SetText(op)
			}
		}
	}

	moreLEDs := widget.NewButton("More LEDs", run("more LEDs", sess.MoreLEDs))
	lessLEDs := widget.NewButton("Less LEDs", run("less LEDs", sess.LessLEDs))
	resetLEDs := widget.NewButton("Reset", run("reset LEDs", sess.ResetLEDs))
	moreStrands := widget.NewButton("More strands", run("more strands", sess.MoreStrands))
	lessStrands := widget.NewButton("Less strands", run("less strands", sess.LessStrands))
	resetStrands := widget.NewButton("Reset", run("reset strands", sess.ResetStrands))
	strandBtns = []*widget.Button{moreStrands, lessStrands, resetStrands}
	styleBtn := widget.NewButton("Toggle style", run("toggle style", sess.ToggleStyle))
	mathCheck = widget.NewCheck("Math mode", func(on bool) {
		if on != sess.Params().MathMode {
			run("math mode", sess.ToggleMathMode)()
		}
	})
	mathCheck.Checked = sess.Params().MathMode
	undoBtn = widget.NewButton("Undo", func() {
		if sess.Undo() {
			status.SetText("undo")
		}
	})
	redoBtn = widget.NewButton("Redo", func() {
		if sess.Redo() {
			status.SetText("redo")
		}
	})
	resetAllBtn := widget.NewButton("Reset all", func() {
		if err := sess.ResetAll(); err != nil {
			status.SetText(fmt.Sprintf("reset: %v", err))
			return
		}
		status.SetText("reset")
	})
	fitBtn := widget.NewButton("Fit to window", func() {
		sc.ResetView()
		run("resize", func() (bool, error) { return sess.Resize(float64(sc.Size().Width)) })()
	})

	animSelect := widget.NewSelect([]string{string(animate.KindNone), string(animate.KindFan), string(animate.KindRipple)}, func(s string) {
		k, err := animate.ParseKind(s)
		if err == nil {
			err = player.SetKind(k)
		}
		if err != nil {
			status.SetText(err.Error())
			return
		}
		redraw()
	})
	animSelect.SetSelected(string(player.Kind()))

	right := container.NewVBox(
		widget.NewLabelWithStyle("Layout", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		strandsLbl, totalLbl, spacingLbl, perStrandLbl,
		widget.NewSeparator(),
		densityLbl,
		container.NewHBox(moreLEDs, lessLEDs, resetLEDs),
		strandCountLbl,
		container.NewHBox(moreStrands, lessStrands, resetStrands),
		widget.NewSeparator(),
		styleLbl, styleBtn, mathCheck,
		widget.NewLabel("Animation"), animSelect,
		widget.NewSeparator(),
		container.NewHBox(undoBtn, redoBtn, resetAllBtn), fitBtn,
	)

	exportTo := func(ext string, write func(path string, d export.Drawing) error) func() {
		return func() {
			dlg := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
				if err != nil {
					dialog.ShowError(err, w)
					return
				}
				if wc == nil {
					return
				}
				path := wc.URI().Path()
				_ = wc.Close()
				if !strings.EqualFold(filepath.Ext(path), ext) {
					path += ext
				}
				if err := write(path, player.Drawing()); err != nil {
					l.Error("export failed", slog.Any("err", err), slog.String("path", path))
					dialog.ShowError(err, w)
					return
				}
				status.SetText("Exported " + path)
			}, w)
			dlg.SetFileName("ledsail" + ext)
			dlg.Show()
		}
	}
	res := func() layout.Result { return sess.Result() }
	svgItem := fyne.NewMenuItem("Export SVG…", exportTo(".svg", export.ExportSVG))
	pngItem := fyne.NewMenuItem("Export PNG…", exportTo(".png", func(path string, d export.Drawing) error {
		return export.ExportPNG(path, d, export.PNGOptions{Scale: 2, Caption: true})
	}))
	pdfItem := fyne.NewMenuItem("Export PDF…", exportTo(".pdf", func(path string, d export.Drawing) error {
		return export.ExportPDF(path, d, res().Info, export.PDFOptions{InfoBlock: true})
	}))
	jsonItem := fyne.NewMenuItem("Export layout JSON…", exportTo(".json", func(path string, _ export.Drawing) error {
		return export.ExportJSON(path, res())
	}))
	saveItem := fyne.NewMenuItem("Save as defaults", func() {
		path, err := config.SaveParams(sess.Params())
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		status.SetText("Saved " + path)
	})
	undoItem := fyne.NewMenuItem("Undo", func() { undoBtn.OnTapped() })
	redoItem := fyne.NewMenuItem("Redo", func() { redoBtn.OnTapped() })
	undoItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl}
	redoItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierControl}
	w.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File", svgItem, pngItem, pdfItem, jsonItem, fyne.NewMenuItemSeparator(), saveItem),
		fyne.NewMenu("Edit", undoItem, redoItem),
	))
	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { undoBtn.OnTapped() })
	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { redoBtn.OnTapped() })

	w.SetContent(container.NewBorder(nil, status, nil, container.NewPadded(right), sc))
	refreshPanel()
	redraw()

	// Frame ticker; only redraws while an effect is selected.
	stop := make(chan struct{})
	go func() {
		t := time.NewTicker(time.Second / time.Duration(opts.FPS))
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				fyne.Do(func() {
					if !player.Animated() {
						return
					}
					player.Advance()
					redraw()
				})
			}
		}
	}()
	w.SetOnClosed(func() {
		close(stop)
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
	})

	w.ShowAndRun()
	return nil
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

// SailCanvas shows a rendered sail image. Drag pans, the wheel zooms.
type SailCanvas struct {
	widget.BaseWidget
	zoom    float32
	offsetX float32
	offsetY float32
	// logical drawing size
	drawW, drawH float32

	img *canvas.Image
}

func NewSailCanvas() *SailCanvas {
	sc := &SailCanvas{zoom: 1, drawW: 1000, drawH: 850}
	sc.img = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	sc.img.FillMode = canvas.ImageFillStretch
	sc.ExtendBaseWidget(sc)
	return sc
}

// SetImage replaces the rendering; w and h are its logical size.
func (s *SailCanvas) SetImage(img image.Image, w, h float64) {
	s.img.Image = img
	s.drawW, s.drawH = float32(w), float32(h)
	s.img.Refresh()
	s.Refresh()
}

// ResetView clears pan and zoom.
func (s *SailCanvas) ResetView() {
	s.zoom, s.offsetX, s.offsetY = 1, 0, 0
	s.Refresh()
}

func (s *SailCanvas) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.RGBA{R: 30, G: 30, B: 34, A: 255})
	return &sailCanvasRenderer{sc: s, bg: bg, objects: []fyne.CanvasObject{bg, s.img}}
}

func (s *SailCanvas) PreferredSize() fyne.Size { return fyne.NewSize(800, 680) }

func (s *SailCanvas) Dragged(e *fyne.DragEvent) {
	s.offsetX += e.Dragged.DX
	s.offsetY += e.Dragged.DY
	s.Refresh()
}

func (s *SailCanvas) DragEnd() {}

func (s *SailCanvas) Scrolled(e *fyne.ScrollEvent) {
	s.zoom += e.Scrolled.DY * 0.05
	if s.zoom < 0.1 {
		s.zoom = 0.1
	}
	if s.zoom > 4.0 {
		s.zoom = 4.0
	}
	s.Refresh()
}

// origin is the top-left corner of the drawing in widget coordinates.
func (s *SailCanvas) origin(size fyne.Size) fyne.Position {
	return fyne.NewPos(
		size.Width/2-s.drawW*s.zoom/2+s.offsetX,
		size.Height/2-s.drawH*s.zoom/2+s.offsetY,
	)
}

type sailCanvasRenderer struct {
	sc      *SailCanvas
	bg      *canvas.Rectangle
	objects []fyne.CanvasObject
}

func (r *sailCanvasRenderer) Destroy()                     {}
func (r *sailCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *sailCanvasRenderer) MinSize() fyne.Size           { return fyne.NewSize(200, 170) }
func (r *sailCanvasRenderer) Refresh()                     { r.Layout(r.sc.Size()); canvas.Refresh(r.sc) }

func (r *sailCanvasRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
	r.sc.img.Resize(fyne.NewSize(r.sc.drawW*r.sc.zoom, r.sc.drawH*r.sc.zoom))
	r.sc.img.Move(r.sc.origin(size))
}
