package mdtabs

import "strconv"

// Pass is the state carried across fence renders within one document.
// A zero Pass is ready to use.
type Pass struct {
	currentGroup string
	isNewGroup   bool
	blocks       int
}

// NewPass returns state for a new document render.
func NewPass() *Pass {
	return &Pass{}
}

// Enter records that a block of group is being rendered and reports whether
// it is the first block of that group since another group was rendered.
func (p *Pass) Enter(group string) bool {
	p.isNewGroup = group != p.currentGroup
	p.currentGroup = group
	return p.isNewGroup
}

// CurrentGroup returns the normalized name of the last rendered group.
func (p *Pass) CurrentGroup() string {
	return p.currentGroup
}

// IsNewGroup reports the result of the last Enter.
func (p *Pass) IsNewGroup() bool {
	return p.isNewGroup
}

// NextBlockID returns a block identifier unique within the pass.
func (p *Pass) NextBlockID() string {
	id := BlockID(p.blocks)
	p.blocks++
	return id
}

// BlockID formats the identifier shared by a block wrapper and its copy button.
func BlockID(n int) string {
	return "code-" + strconv.Itoa(n)
}
