package components

import "github.com/yohamta/donburi"

// MenuData tracks character-select state
type MenuData struct {
	SelectedIndex int
	Options       []string // character keys, displayed in order
}

var Menu = donburi.NewComponentType[MenuData]()
