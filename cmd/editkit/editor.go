package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/editkit/editkit/internal/clipboard"
	"github.com/editkit/editkit/internal/config"
	"github.com/editkit/editkit/internal/field"
	"github.com/editkit/editkit/internal/textbuf"
	"github.com/editkit/editkit/internal/wrap"
)

var errQuit = errors.New("quit")

// blinkTick and reloadConfig are posted into the tcell event queue so
// the field, which is single-owner, is only touched from the loop
// goroutine.
type blinkTick struct{}

type reloadConfig struct{ opts config.Options }

type editor struct {
	screen   tcell.Screen
	fld      *field.Field
	filePath string
	watcher  *config.Watcher
	cancel   context.CancelFunc
	dirty    bool
	status   string
}

func newEditor(filePath, configPath string, cfg config.Options) (*editor, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	text := ""
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil && !os.IsNotExist(err) {
			screen.Fini()
			return nil, fmt.Errorf("read %s: %w", filePath, err)
		}
		text = string(data)
	}

	w, h := screen.Size()
	ed := &editor{screen: screen, filePath: filePath}

	cfg.GutterWidthPx = gutterWidth(text)
	ed.fld = field.New(w, h-1, // bottom row is the status line
		field.WithText(text),
		field.WithMetrics(wrap.CellMetrics()),
		field.WithClipboard(clipboard.NewSystem()),
		field.WithOptions(cfg),
		field.WithSource(filePath),
	)
	ed.fld.Focus()

	ctx, cancel := context.WithCancel(context.Background())
	ed.cancel = cancel

	if configPath != "" {
		ed.watcher = config.NewWatcher(configPath, func(opts config.Options) {
			_ = screen.PostEvent(tcell.NewEventInterrupt(reloadConfig{opts: opts}))
		})
		ed.watcher.Start(ctx)
	}

	blink := cfg.Normalize().BlinkIntervalMs
	go func() {
		ticker := time.NewTicker(time.Duration(blink) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = screen.PostEvent(tcell.NewEventInterrupt(blinkTick{}))
			}
		}
	}()

	return ed, nil
}

func (ed *editor) shutdown() {
	ed.cancel()
	if ed.watcher != nil {
		ed.watcher.Stop()
	}
	ed.screen.Fini()
}

func (ed *editor) quit() {
	_ = ed.screen.PostEvent(tcell.NewEventInterrupt(errQuit))
}

func (ed *editor) loop() error {
	for {
		ed.draw()
		ev := ed.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if err := ed.handleKey(ev); err != nil {
				return err
			}
		case *tcell.EventMouse:
			ed.handleMouse(ev)
		case *tcell.EventResize:
			w, h := ev.Size()
			ed.fld.Resize(w, h-1)
			ed.screen.Sync()
		case *tcell.EventInterrupt:
			switch data := ev.Data().(type) {
			case blinkTick:
				ed.fld.Tick()
			case reloadConfig:
				opts := data.opts
				opts.GutterWidthPx = gutterWidth(ed.fld.Text())
				ed.fld.SetOptions(opts)
				ed.status = "config reloaded"
			case error:
				return data
			}
		}
	}
}

func (ed *editor) handleKey(ev *tcell.EventKey) error {
	extend := ev.Modifiers()&tcell.ModShift != 0
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	f := ed.fld
	ed.status = ""

	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC:
		return errQuit
	case tcell.KeyCtrlS:
		ed.save()
	case tcell.KeyCtrlA:
		f.SelectAll()
	case tcell.KeyCtrlX:
		f.Cut()
		ed.dirty = true
	case tcell.KeyCtrlV:
		f.Paste()
		ed.dirty = true
	case tcell.KeyLeft:
		f.MoveCursor(field.Left, extend)
	case tcell.KeyRight:
		f.MoveCursor(field.Right, extend)
	case tcell.KeyUp:
		f.MoveCursor(field.Up, extend)
	case tcell.KeyDown:
		f.MoveCursor(field.Down, extend)
	case tcell.KeyHome:
		if ctrl {
			f.DocStart(extend)
		} else {
			f.Home(extend)
		}
	case tcell.KeyEnd:
		if ctrl {
			f.DocEnd(extend)
		} else {
			f.End(extend)
		}
	case tcell.KeyPgUp:
		f.PageUp()
	case tcell.KeyPgDn:
		f.PageDown()
	case tcell.KeyEnter:
		f.InsertNewline()
		ed.dirty = true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		f.Backspace()
		ed.dirty = true
	case tcell.KeyDelete:
		f.Delete()
		ed.dirty = true
	case tcell.KeyTab:
		f.InsertText(tabSpaces(f.Options().TabWidth))
		ed.dirty = true
	case tcell.KeyRune:
		f.InsertText(string(ev.Rune()))
		ed.dirty = true
	}
	return nil
}

func (ed *editor) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	f := ed.fld
	gutter := f.Options().GutterWidthPx

	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		f.ScrollLines(-3)
	case ev.Buttons()&tcell.WheelDown != 0:
		f.ScrollLines(3)
	case ev.Buttons()&tcell.Button1 != 0:
		tx := x - gutter
		if tx < 0 {
			tx = 0
		}
		f.Click(tx, y, ev.Modifiers()&tcell.ModShift != 0)
	}
}

func (ed *editor) save() {
	if ed.filePath == "" {
		ed.status = "no file to save"
		return
	}
	if err := os.WriteFile(ed.filePath, []byte(ed.fld.Text()), 0o644); err != nil {
		ed.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	ed.dirty = false
	ed.status = "saved " + ed.filePath
}

func (ed *editor) draw() {
	ed.screen.Clear()
	f := ed.fld

	gutter := f.Options().GutterWidthPx
	scroll := f.Scroll()
	_, _ = f.VisibleRange()

	gutterStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle := tcell.StyleDefault
	selStyle := tcell.StyleDefault.Reverse(true)

	sel, hasSel := f.Selection()
	layout := f.Layout()
	metrics := wrap.CellMetrics()
	_, h := ed.screen.Size()

	for _, row := range f.VisibleRows() {
		y := row.Index - 1 - scroll.Y
		if y < 0 || y >= h-1 {
			continue
		}

		// Line number on the first display row of each line.
		r, _ := layout.Row(row.Index)
		if gutter > 0 && r.StartCol == 1 {
			num := strconv.Itoa(row.Line)
			for i, ch := range num {
				ed.screen.SetContent(gutter-1-len(num)+i, y, ch, nil, gutterStyle)
			}
		}

		x := gutter - scroll.X
		col := r.StartCol
		for _, cl := range textbuf.Graphemes(row.Text) {
			style := textStyle
			if hasSel && sel.Contains(textbuf.Position{Line: row.Line, Col: col}) {
				style = selStyle
			}
			if x >= gutter {
				rs := []rune(cl)
				ed.screen.SetContent(x, y, rs[0], rs[1:], style)
			}
			x += metrics.MeasureText(cl)
			col++
		}
	}

	cx, cy := f.CursorPixel()
	sx := cx - scroll.X + gutter
	sy := cy - scroll.Y
	if f.CursorVisible() && sx >= gutter && sy >= 0 && sy < h-1 {
		ed.screen.ShowCursor(sx, sy)
	} else {
		ed.screen.HideCursor()
	}

	ed.drawStatus()
	ed.screen.Show()
}

func (ed *editor) drawStatus() {
	w, h := ed.screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	y := h - 1

	name := ed.filePath
	if name == "" {
		name = "[scratch]"
	}
	mark := ""
	if ed.dirty {
		mark = " [+]"
	}
	cur := ed.fld.Cursor()
	left := fmt.Sprintf(" %s%s  %d:%d", name, mark, cur.Line, cur.Col)
	if ed.status != "" {
		left += "  " + ed.status
	}

	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(left) {
			ch = rune(left[x])
		}
		ed.screen.SetContent(x, y, ch, nil, style)
	}
}

func gutterWidth(text string) int {
	lines := 1
	for _, b := range []byte(text) {
		if b == '\n' {
			lines++
		}
	}
	return len(strconv.Itoa(lines)) + 1
}

func tabSpaces(n int) string {
	if n < 1 {
		n = 4
	}
	s := make([]byte, n)
	for i := range s {
		s[i] = ' '
	}
	return string(s)
}
