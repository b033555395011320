package component

type Visibility uint8

const (
	VisibilityInherited Visibility = iota
	VisibilityVisible
	VisibilityHidden
)

var VisibilityComponent = NewComponent[Visibility]()

func (v Visibility) String() string {
	switch v {
	case VisibilityVisible:
		return "visible"
	case VisibilityHidden:
		return "hidden"
	default:
		return "inherited"
	}
}
