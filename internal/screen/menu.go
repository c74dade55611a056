package screen

// Menu tracks the highlighted row of a vertical list. The cursor stops at
// both ends.
type Menu struct {
	cursor int
	size   int
}

func (m *Menu) Up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Menu) Down() {
	if m.cursor < m.size-1 {
		m.cursor++
	}
}

func (m *Menu) Cursor() int {
	return m.cursor
}

// SetSize changes the row count and pulls the cursor back into range.
func (m *Menu) SetSize(size int) {
	if size < 0 {
		size = 0
	}
	m.size = size
	if m.cursor >= size {
		m.cursor = size - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Menu) Reset() {
	m.cursor = 0
}

func (m *Menu) Empty() bool {
	return m.size == 0
}

// move handles the arrow keys shared by every list-like screen.
func (m *Menu) move(key string) bool {
	switch key {
	case "up", "k":
		m.Up()
	case "down", "j":
		m.Down()
	default:
		return false
	}
	return true
}
