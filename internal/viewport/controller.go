package viewport

// ScrollState holds the scroll offsets in pixels. Both offsets are
// always in [0, maxScroll] for their axis.
type ScrollState struct {
	X int
	Y int
}

// Controller tracks scroll offsets for one editing surface and adjusts
// them against the current content and viewport extents.
type Controller struct {
	scroll ScrollState

	width  int // viewport width in px, including the gutter
	height int // viewport height in px

	rowHeight   int
	charWidth   int // horizontal advance used by ScrollChars
	gutterWidth int
	rightMargin int // px kept free right of the cursor
	margin      int // cull margin in rows

	totalRows    int
	contentWidth int // widest row in px
}

// Option configures a Controller.
type Option func(*Controller)

// WithRowHeight sets the display-row height in pixels.
func WithRowHeight(px int) Option {
	return func(c *Controller) {
		if px > 0 {
			c.rowHeight = px
		}
	}
}

// WithCharWidth sets the horizontal advance used by ScrollChars.
func WithCharWidth(px int) Option {
	return func(c *Controller) {
		if px > 0 {
			c.charWidth = px
		}
	}
}

// WithGutterWidth sets the gutter width in pixels. The gutter is
// subtracted from the viewport width when scrolling horizontally.
func WithGutterWidth(px int) Option {
	return func(c *Controller) {
		if px >= 0 {
			c.gutterWidth = px
		}
	}
}

// WithRightMargin sets the pixel margin kept free to the right of the
// cursor during auto-scroll.
func WithRightMargin(px int) Option {
	return func(c *Controller) {
		if px >= 0 {
			c.rightMargin = px
		}
	}
}

// WithMargin sets the cull margin in rows.
func WithMargin(rows int) Option {
	return func(c *Controller) {
		if rows >= 0 {
			c.margin = rows
		}
	}
}

// NewController creates a controller for a viewport of the given pixel
// size. Width and height are clamped to a minimum of 1.
func NewController(width, height int, opts ...Option) *Controller {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	c := &Controller{
		width:       width,
		height:      height,
		rowHeight:   16,
		charWidth:   8,
		rightMargin: 20,
		margin:      5,
		totalRows:   1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Scroll returns the current scroll offsets.
func (c *Controller) Scroll() ScrollState {
	return c.scroll
}

// Margin returns the cull margin in rows.
func (c *Controller) Margin() int {
	return c.margin
}

// RowHeight returns the display-row height in pixels.
func (c *Controller) RowHeight() int {
	return c.rowHeight
}

// Size returns the viewport size in pixels.
func (c *Controller) Size() (width, height int) {
	return c.width, c.height
}

// Resize updates the viewport size and re-clamps the offsets.
func (c *Controller) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.width = width
	c.height = height
	c.clamp()
}

// SetContent updates the content extent: the number of display rows
// and the widest row in pixels. Offsets are re-clamped because the
// maximum scroll derives from the content extent.
func (c *Controller) SetContent(totalRows, contentWidth int) {
	if totalRows < 1 {
		totalRows = 1
	}
	if contentWidth < 0 {
		contentWidth = 0
	}
	c.totalRows = totalRows
	c.contentWidth = contentWidth
	c.clamp()
}

// SetGutterWidth updates the gutter width and re-clamps.
func (c *Controller) SetGutterWidth(px int) {
	if px < 0 {
		px = 0
	}
	c.gutterWidth = px
	c.clamp()
}

// textWidth returns the pixel width available to text.
func (c *Controller) textWidth() int {
	w := c.width - c.gutterWidth
	if w < 1 {
		w = 1
	}
	return w
}

// maxScrollY returns the maximum vertical offset: content extent minus
// viewport extent, never negative.
func (c *Controller) maxScrollY() int {
	max := c.totalRows*c.rowHeight - c.height
	if max < 0 {
		max = 0
	}
	return max
}

// maxScrollX returns the maximum horizontal offset.
func (c *Controller) maxScrollX() int {
	max := c.contentWidth + c.rightMargin - c.textWidth()
	if max < 0 {
		max = 0
	}
	return max
}

func (c *Controller) clamp() {
	if c.scroll.Y < 0 {
		c.scroll.Y = 0
	}
	if max := c.maxScrollY(); c.scroll.Y > max {
		c.scroll.Y = max
	}
	if c.scroll.X < 0 {
		c.scroll.X = 0
	}
	if max := c.maxScrollX(); c.scroll.X > max {
		c.scroll.X = max
	}
}

// ScrollBy adjusts the offsets by a pixel delta, clamped to the valid
// range in each axis.
func (c *Controller) ScrollBy(dx, dy int) {
	c.scroll.X += dx
	c.scroll.Y += dy
	c.clamp()
}

// ScrollLines scrolls vertically by n display rows.
func (c *Controller) ScrollLines(n int) {
	c.ScrollBy(0, n*c.rowHeight)
}

// ScrollChars scrolls horizontally by n character advances.
func (c *Controller) ScrollChars(n int) {
	c.ScrollBy(n*c.charWidth, 0)
}

// PageDown scrolls down by one viewport height minus one row of
// overlap.
func (c *Controller) PageDown() {
	c.ScrollBy(0, c.pageSize())
}

// PageUp scrolls up by one viewport height minus one row of overlap.
func (c *Controller) PageUp() {
	c.ScrollBy(0, -c.pageSize())
}

func (c *Controller) pageSize() int {
	page := c.height - c.rowHeight
	if page < c.rowHeight {
		page = c.rowHeight
	}
	return page
}

// ScrollToTop resets the vertical offset.
func (c *Controller) ScrollToTop() {
	c.scroll.Y = 0
}

// ScrollToBottom scrolls to the maximum vertical offset.
func (c *Controller) ScrollToBottom() {
	c.scroll.Y = c.maxScrollY()
}

// EnsureCursorVisible adjusts the offsets so the cursor is fully
// inside the viewport. x is the cursor's horizontal pixel offset
// within the text area (gutter excluded); y is the top of the cursor's
// display row. Returns true if the offsets changed.
func (c *Controller) EnsureCursorVisible(x, y int) bool {
	before := c.scroll

	if y < c.scroll.Y {
		// Above the top edge: cursor row becomes the first visible row.
		c.scroll.Y = y
	} else if y+c.rowHeight > c.scroll.Y+c.height {
		// Below the bottom edge: cursor row becomes the last visible row.
		c.scroll.Y = y + c.rowHeight - c.height
	}

	if x < c.scroll.X {
		c.scroll.X = x
	} else if x > c.scroll.X+c.textWidth()-c.rightMargin {
		c.scroll.X = x - c.textWidth() + c.rightMargin
	}

	c.clamp()
	return c.scroll != before
}

// VisibleRange returns the display-row interval the host should
// materialize for the current scroll state.
func (c *Controller) VisibleRange() (first, last int) {
	return VisibleRange(c.scroll.Y, c.height, c.rowHeight, c.totalRows, c.margin)
}
