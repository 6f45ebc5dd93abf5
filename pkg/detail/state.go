package detail

// State tracks the cursor over a panel's sections and items.
type State struct {
	panel Panel
	// position inside sections
	sectionIndex int
	itemIndex    int
	// scroll offset in rows; a section is a title row plus one row per item
	scrollOffset int
	viewHeight   int
}

// NewState constructs an empty state.
func NewState() *State {
	return &State{}
}

// SetPanel replaces the panel, keeping the cursor on the same record when it
// survives.
func (s *State) SetPanel(p Panel) {
	prev, hadPrev := s.Selected()
	s.panel = p
	if len(p.Sections) == 0 {
		s.sectionIndex, s.itemIndex, s.scrollOffset = 0, 0, 0
		return
	}
	if hadPrev {
		s.SetActive(prev.Kind, prev.ID)
		return
	}
	if s.sectionIndex >= len(p.Sections) {
		s.sectionIndex = len(p.Sections) - 1
	}
	s.clampItem()
	s.ensureScrollVisible()
}

// Panel returns the loaded panel.
func (s *State) Panel() Panel { return s.panel }

// Cursor returns the active section and item indices.
func (s *State) Cursor() (int, int) {
	return s.sectionIndex, s.itemIndex
}

// Selected returns the item under the cursor.
func (s *State) Selected() (Item, bool) {
	if len(s.panel.Sections) == 0 {
		return Item{}, false
	}
	items := s.panel.Sections[s.sectionIndex].Items
	if len(items) == 0 {
		return Item{}, false
	}
	return items[s.itemIndex], true
}

// MoveItem moves the cursor, crossing section boundaries.
func (s *State) MoveItem(delta int) bool {
	if len(s.panel.Sections) == 0 {
		return false
	}
	s.itemIndex += delta
	for {
		items := len(s.panel.Sections[s.sectionIndex].Items)
		if s.itemIndex >= 0 && s.itemIndex < items {
			break
		}
		if s.itemIndex < 0 {
			if s.sectionIndex == 0 {
				s.itemIndex = 0
				break
			}
			s.sectionIndex--
			s.itemIndex = max(len(s.panel.Sections[s.sectionIndex].Items)-1, 0)
			continue
		}
		if s.sectionIndex == len(s.panel.Sections)-1 {
			s.itemIndex = max(items-1, 0)
			break
		}
		s.sectionIndex++
		s.itemIndex = 0
	}
	s.ensureScrollVisible()
	return true
}

// MoveSection jumps to another section and resets the item index.
func (s *State) MoveSection(delta int) bool {
	if len(s.panel.Sections) == 0 {
		return false
	}
	s.sectionIndex += delta
	if s.sectionIndex < 0 {
		s.sectionIndex = 0
	}
	if s.sectionIndex >= len(s.panel.Sections) {
		s.sectionIndex = len(s.panel.Sections) - 1
	}
	s.itemIndex = 0
	s.ensureScrollVisible()
	return true
}

// SetActive moves the cursor to the given record if present.
func (s *State) SetActive(k Kind, id string) {
	for si, sec := range s.panel.Sections {
		for ii, it := range sec.Items {
			if it.Kind == k && it.ID == id {
				s.sectionIndex, s.itemIndex = si, ii
				s.ensureScrollVisible()
				return
			}
		}
	}
	if s.sectionIndex >= len(s.panel.Sections) {
		s.sectionIndex = len(s.panel.Sections) - 1
	}
	s.clampItem()
	s.ensureScrollVisible()
}

// SetViewHeight sets the number of rows available.
func (s *State) SetViewHeight(h int) {
	s.viewHeight = h
	if len(s.panel.Sections) > 0 {
		s.ensureScrollVisible()
	}
}

// ScrollOffset returns the first visible row.
func (s *State) ScrollOffset() int { return s.scrollOffset }

func (s *State) clampItem() {
	if s.sectionIndex < 0 {
		s.sectionIndex = 0
	}
	if len(s.panel.Sections) == 0 {
		s.itemIndex = 0
		return
	}
	items := len(s.panel.Sections[s.sectionIndex].Items)
	if s.itemIndex >= items {
		s.itemIndex = items - 1
	}
	if s.itemIndex < 0 {
		s.itemIndex = 0
	}
}

// CursorRow is the row of the selected item within the rendered panel.
func (s *State) CursorRow() int {
	row := 0
	for i := 0; i < s.sectionIndex; i++ {
		row += 1 + len(s.panel.Sections[i].Items)
	}
	return row + 1 + s.itemIndex
}

func (s *State) ensureScrollVisible() {
	height := s.viewHeight
	if height <= 0 {
		height = 25
	}
	row := s.CursorRow()
	if row < s.scrollOffset {
		s.scrollOffset = row
	}
	if bottom := s.scrollOffset + height - 1; row > bottom {
		s.scrollOffset = row - height + 1
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}
