package viewport

import "testing"

// testController returns a 200px-tall viewport over 1000 rows of 20px.
func testController() *Controller {
	c := NewController(400, 200, WithRowHeight(20), WithCharWidth(10))
	c.SetContent(1000, 0)
	return c
}

func TestNewControllerDefaults(t *testing.T) {
	c := NewController(0, -5)
	if w, h := c.Size(); w != 1 || h != 1 {
		t.Errorf("size should clamp to 1x1, got %dx%d", w, h)
	}
	if c.Scroll() != (ScrollState{}) {
		t.Errorf("initial scroll should be zero, got %+v", c.Scroll())
	}
	if c.Margin() != 5 {
		t.Errorf("default margin should be 5, got %d", c.Margin())
	}
}

func TestScrollByClamps(t *testing.T) {
	c := testController()

	c.ScrollBy(0, -100)
	if c.Scroll().Y != 0 {
		t.Errorf("scroll above top should clamp to 0, got %d", c.Scroll().Y)
	}

	c.ScrollBy(0, 999999)
	if got := c.Scroll().Y; got != 1000*20-200 {
		t.Errorf("scroll past end should clamp to %d, got %d", 1000*20-200, got)
	}
}

func TestMaxScrollZeroWhenContentFits(t *testing.T) {
	c := NewController(400, 200, WithRowHeight(20))
	c.SetContent(5, 100) // 100px of 5 rows in a 400x200 viewport

	c.ScrollBy(500, 500)
	if c.Scroll() != (ScrollState{}) {
		t.Errorf("content smaller than viewport should pin scroll at 0, got %+v", c.Scroll())
	}
}

func TestScrollLinesAndChars(t *testing.T) {
	c := testController()

	c.ScrollLines(3)
	if c.Scroll().Y != 60 {
		t.Errorf("ScrollLines(3): expected 60, got %d", c.Scroll().Y)
	}
	c.ScrollLines(-1)
	if c.Scroll().Y != 40 {
		t.Errorf("ScrollLines(-1): expected 40, got %d", c.Scroll().Y)
	}

	c.SetContent(1000, 2000)
	c.ScrollChars(4)
	if c.Scroll().X != 40 {
		t.Errorf("ScrollChars(4): expected 40, got %d", c.Scroll().X)
	}
}

func TestPaging(t *testing.T) {
	c := testController()

	c.PageDown()
	if got := c.Scroll().Y; got != 180 {
		t.Errorf("PageDown: expected 180 (height minus one row), got %d", got)
	}
	c.PageUp()
	if got := c.Scroll().Y; got != 0 {
		t.Errorf("PageUp: expected 0, got %d", got)
	}

	c.ScrollToBottom()
	if got := c.Scroll().Y; got != 19800 {
		t.Errorf("ScrollToBottom: expected 19800, got %d", got)
	}
	c.ScrollToTop()
	if got := c.Scroll().Y; got != 0 {
		t.Errorf("ScrollToTop: expected 0, got %d", got)
	}
}

func TestEnsureCursorVisibleVertical(t *testing.T) {
	c := testController()

	// Row 50 sits below the 200px window.
	moved := c.EnsureCursorVisible(0, 49*20)
	if !moved {
		t.Fatal("expected a scroll adjustment")
	}
	if got := c.Scroll().Y; got != 49*20+20-200 {
		t.Errorf("cursor row should become last visible: expected %d, got %d", 49*20+20-200, got)
	}

	first, last := c.VisibleRange()
	if first > 50 || last < 50 {
		t.Errorf("visible range [%d, %d] should contain row 50", first, last)
	}

	// Scrolling back up: cursor row becomes the first visible row.
	c.EnsureCursorVisible(0, 10*20)
	if got := c.Scroll().Y; got != 200 {
		t.Errorf("expected 200, got %d", got)
	}

	// Already visible: no change.
	if c.EnsureCursorVisible(0, 12*20) {
		t.Error("visible cursor should not move the viewport")
	}
}

func TestEnsureCursorVisibleHorizontal(t *testing.T) {
	c := NewController(120, 200, WithRowHeight(20), WithRightMargin(20), WithGutterWidth(20))
	c.SetContent(10, 1000)

	// Text area is 100px wide; cursor at 300px needs the right margin.
	c.EnsureCursorVisible(300, 0)
	if got := c.Scroll().X; got != 300-100+20 {
		t.Errorf("expected %d, got %d", 300-100+20, got)
	}

	// Cursor left of the window scrolls back.
	c.EnsureCursorVisible(50, 0)
	if got := c.Scroll().X; got != 50 {
		t.Errorf("expected 50, got %d", got)
	}
}

func TestControllerVisibleRange(t *testing.T) {
	c := testController()
	first, last := c.VisibleRange()
	if first != 1 || last != 15 {
		t.Errorf("expected [1, 15], got [%d, %d]", first, last)
	}
}

func TestResizeReclamps(t *testing.T) {
	c := testController()
	c.ScrollToBottom()

	c.Resize(400, 20000) // viewport now larger than content
	if c.Scroll().Y != 0 {
		t.Errorf("resize should reclamp scroll, got %d", c.Scroll().Y)
	}
}

func TestSetContentReclamps(t *testing.T) {
	c := testController()
	c.ScrollToBottom()

	c.SetContent(5, 0)
	if c.Scroll().Y != 0 {
		t.Errorf("shrinking content should reclamp scroll, got %d", c.Scroll().Y)
	}
}
