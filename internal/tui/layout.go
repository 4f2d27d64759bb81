package tui

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	sidebarWidth   int
	sidebarHeight  int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 16,
		sidebarWidth:   sidebarWidth,
		sidebarHeight:  18,
	}
}

// Update splits the window into the note viewport and the history sidebar.
func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	l.sidebarWidth = sidebarWidth
	if width < 100 {
		l.sidebarWidth = narrowSidebarWidth
	}
	inner := width - l.sidebarWidth - viewportHorizontalPadding
	if inner < minViewportWidth {
		inner = minViewportWidth
	}
	l.viewportWidth = inner
	content := height - chromeHeight
	if content < minViewportHeight {
		content = minViewportHeight
	}
	l.viewportHeight = content
	l.sidebarHeight = content + 2
}
