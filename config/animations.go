package config

// ClipDef describes one animation clip within a character's sprite sheets.
type ClipDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // ticks per frame
	// Hold keeps the final frame on screen after the clip finishes
	// instead of looping back to the first frame.
	Hold bool
}

// Characters lists the selectable character keys in menu order.
var Characters = []string{"scout", "ranger"}

// CharacterClips maps a character key to its clip definitions. Idle and
// Running loop; Jump plays once and holds its last pose until the
// controller reports a landing.
var CharacterClips = map[string]map[StateID]ClipDef{
	"scout": {
		Idle:    {First: 0, Last: 6, Step: 1, Speed: 5},
		Running: {First: 0, Last: 7, Step: 1, Speed: 5},
		Jump:    {First: 0, Last: 2, Step: 1, Speed: 10, Hold: true},
	},
	"ranger": {
		Idle:    {First: 0, Last: 5, Step: 1, Speed: 6},
		Running: {First: 0, Last: 7, Step: 1, Speed: 4},
		Jump:    {First: 0, Last: 3, Step: 1, Speed: 8, Hold: true},
	},
}
