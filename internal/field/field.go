package field

import (
	"github.com/editkit/editkit/internal/clipboard"
	"github.com/editkit/editkit/internal/config"
	"github.com/editkit/editkit/internal/event"
	"github.com/editkit/editkit/internal/textbuf"
	"github.com/editkit/editkit/internal/viewport"
	"github.com/editkit/editkit/internal/wrap"
)

// State is the focus state of a field.
type State int

const (
	// StateUnfocused rejects keyboard operations.
	StateUnfocused State = iota

	// StateFocused accepts keyboard operations.
	StateFocused
)

// String returns the state name.
func (s State) String() string {
	if s == StateFocused {
		return "focused"
	}
	return "unfocused"
}

// Field is one editing surface.
type Field struct {
	source string

	buf textbuf.Buffer
	cur textbuf.Position
	sel *textbuf.Selection

	state      State
	singleLine bool

	opts    config.Options
	metrics wrap.FontMetrics
	wrapper *wrap.Wrapper
	layout  *wrap.Layout
	scroll  *viewport.Controller
	bus     *event.Bus
	clip    clipboard.Clipboard

	blinkOn bool
	goalX   int // preferred cursor x for vertical motion; -1 when unset
}

// Option configures a Field.
type Option func(*Field)

// WithText sets the initial content.
func WithText(text string) Option {
	return func(f *Field) {
		f.buf = textbuf.FromString(text)
	}
}

// WithSingleLine makes Enter emit an event instead of splitting the
// line, and flattens newlines out of inserted text.
func WithSingleLine() Option {
	return func(f *Field) {
		f.singleLine = true
	}
}

// WithMetrics sets the font metrics used for measuring and row
// geometry. Host metrics are the source of truth for wrapping; the
// default is the deterministic fixed-width fallback.
func WithMetrics(m wrap.FontMetrics) Option {
	return func(f *Field) {
		if m != nil {
			f.metrics = m
		}
	}
}

// WithClipboard sets the clipboard implementation.
func WithClipboard(c clipboard.Clipboard) Option {
	return func(f *Field) {
		if c != nil {
			f.clip = c
		}
	}
}

// WithBus sets the event bus notifications are published on.
func WithBus(b *event.Bus) Option {
	return func(f *Field) {
		if b != nil {
			f.bus = b
		}
	}
}

// WithOptions applies editor options.
func WithOptions(o config.Options) Option {
	return func(f *Field) {
		f.opts = o.Normalize()
	}
}

// WithSource sets the source identifier attached to published events.
func WithSource(source string) Option {
	return func(f *Field) {
		if source != "" {
			f.source = source
		}
	}
}

// New creates a field with a viewport of the given pixel size.
func New(width, height int, opts ...Option) *Field {
	f := &Field{
		source:  "field",
		buf:     textbuf.New(),
		cur:     textbuf.Start(),
		opts:    config.Default(),
		metrics: wrap.DefaultMetrics(),
		clip:    clipboard.NewMemory(),
		bus:     event.NewBus(),
		blinkOn: true,
		goalX:   -1,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.singleLine {
		f.opts.SingleLine = true
	}
	f.singleLine = f.opts.SingleLine

	f.wrapper = wrap.New(
		wrap.ParseMode(f.opts.WrapMode),
		textWidth(width, f.opts.GutterWidthPx),
		f.metrics,
	)
	f.scroll = viewport.NewController(width, height,
		viewport.WithRowHeight(f.metrics.LineHeight()),
		viewport.WithCharWidth(f.metrics.MeasureText("0")),
		viewport.WithGutterWidth(f.opts.GutterWidthPx),
		viewport.WithRightMargin(f.opts.RightMarginPx),
		viewport.WithMargin(f.opts.CullMargin),
	)

	f.cur = f.cur.Clamp(f.buf)
	f.relayout()
	return f
}

func textWidth(width, gutter int) int {
	w := width - gutter
	if w < 1 {
		w = 1
	}
	return w
}

// Bus returns the event bus hosts subscribe on.
func (f *Field) Bus() *event.Bus {
	return f.bus
}

// Text returns the full buffer content.
func (f *Field) Text() string {
	return f.buf.Text()
}

// Buffer returns the current buffer snapshot.
func (f *Field) Buffer() textbuf.Buffer {
	return f.buf
}

// Cursor returns the current cursor position.
func (f *Field) Cursor() textbuf.Position {
	return f.cur
}

// Selection returns the active selection, if any.
func (f *Field) Selection() (textbuf.Selection, bool) {
	if f.sel == nil {
		return textbuf.Selection{}, false
	}
	return *f.sel, true
}

// State returns the focus state.
func (f *Field) State() State {
	return f.state
}

// Focused reports whether keyboard operations are accepted.
func (f *Field) Focused() bool {
	return f.state == StateFocused
}

// Options returns the active editor options.
func (f *Field) Options() config.Options {
	return f.opts
}

// SetOptions applies new editor options, rewrapping if needed.
func (f *Field) SetOptions(o config.Options) {
	f.opts = o.Normalize()
	f.singleLine = f.opts.SingleLine

	w, h := f.scroll.Size()
	f.scroll = viewport.NewController(w, h,
		viewport.WithRowHeight(f.metrics.LineHeight()),
		viewport.WithCharWidth(f.metrics.MeasureText("0")),
		viewport.WithGutterWidth(f.opts.GutterWidthPx),
		viewport.WithRightMargin(f.opts.RightMarginPx),
		viewport.WithMargin(f.opts.CullMargin),
	)
	f.wrapper.SetMode(wrap.ParseMode(f.opts.WrapMode))
	f.wrapper.SetMaxWidth(textWidth(w, f.opts.GutterWidthPx))
	f.relayout()
	f.ensureCursorVisible()
}

// Resize updates the viewport size, rewrapping to the new width.
func (f *Field) Resize(width, height int) {
	f.scroll.Resize(width, height)
	f.wrapper.SetMaxWidth(textWidth(width, f.opts.GutterWidthPx))
	f.relayout()
	f.ensureCursorVisible()
}

// relayout recomputes display rows and the content extent. Display
// state is fully derived, so it is rebuilt on every change.
func (f *Field) relayout() {
	f.layout = f.wrapper.Layout(f.buf)

	widest := 0
	for i := 1; i <= f.layout.RowCount(); i++ {
		if w := f.metrics.MeasureText(f.layout.RowText(i)); w > widest {
			widest = w
		}
	}
	f.scroll.SetContent(f.layout.RowCount(), widest)
}

// Layout returns the current display-row layout.
func (f *Field) Layout() *wrap.Layout {
	return f.layout
}

// Scroll returns the current scroll offsets.
func (f *Field) Scroll() viewport.ScrollState {
	return f.scroll.Scroll()
}

// VisibleRange returns the inclusive display-row interval the host
// should render.
func (f *Field) VisibleRange() (first, last int) {
	return f.scroll.VisibleRange()
}

// VisibleRow is one display row prepared for rendering.
type VisibleRow struct {
	Index int    // 1-based display row
	Line  int    // 1-based logical line
	Text  string // rendered text, wrap spaces trimmed
}

// VisibleRows materializes the rows in the visible range.
func (f *Field) VisibleRows() []VisibleRow {
	first, last := f.VisibleRange()
	rows := f.layout.Rows(first, last)
	out := make([]VisibleRow, 0, len(rows))
	for i, r := range rows {
		out = append(out, VisibleRow{
			Index: first + i,
			Line:  r.Line,
			Text:  f.layout.RowText(first + i),
		})
	}
	return out
}

// CursorDisplay returns the cursor's display position.
func (f *Field) CursorDisplay() wrap.DisplayPos {
	return f.layout.ToDisplay(f.cur)
}

// CursorPixel returns the cursor's pixel position: x within the text
// area and y at the top of its display row, both before scrolling.
func (f *Field) CursorPixel() (x, y int) {
	dp := f.layout.ToDisplay(f.cur)
	r, _ := f.layout.Row(dp.Row)
	prefix := textbuf.SliceGraphemes(f.buf.Line(r.Line), r.StartCol, r.StartCol+dp.Col-1)
	return f.metrics.MeasureText(prefix), (dp.Row - 1) * f.metrics.LineHeight()
}

// ScrollLines scrolls vertically by n display rows.
func (f *Field) ScrollLines(n int) {
	f.scroll.ScrollLines(n)
}

// ScrollChars scrolls horizontally by n character advances.
func (f *Field) ScrollChars(n int) {
	f.scroll.ScrollChars(n)
}

// ScrollBy scrolls by a pixel delta.
func (f *Field) ScrollBy(dx, dy int) {
	f.scroll.ScrollBy(dx, dy)
}

// PageUp scrolls up by one viewport height minus a row of overlap.
func (f *Field) PageUp() {
	f.scroll.PageUp()
}

// PageDown scrolls down by one viewport height minus a row of overlap.
func (f *Field) PageDown() {
	f.scroll.PageDown()
}

// Tick advances the cursor blink phase. It has no effect on buffer
// state.
func (f *Field) Tick() {
	f.blinkOn = !f.blinkOn
}

// CursorVisible reports whether the cursor should be drawn this frame.
func (f *Field) CursorVisible() bool {
	return f.Focused() && f.blinkOn
}

func (f *Field) ensureCursorVisible() {
	x, y := f.CursorPixel()
	f.scroll.EnsureCursorVisible(x, y)
}

func (f *Field) publish(t event.Type, payload any) {
	f.bus.Publish(event.New(t, payload, f.source))
}

func (f *Field) publishCursorMoved() {
	dp := f.layout.ToDisplay(f.cur)
	x, y := f.CursorPixel()
	f.publish(event.CursorMoved, event.CursorMovedPayload{
		Row: dp.Row,
		Col: dp.Col,
		X:   x,
		Y:   y,
	})
}
