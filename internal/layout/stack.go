package layout

// StackMode mirrors the value axis "stacked" option, which is tri-state.
type StackMode uint8

const (
	// StackedUnset is the default: members sharing a stack id collapse,
	// but every member without a stack id takes its own slot.
	StackedUnset StackMode = iota
	// Stacked collapses members sharing a stack id, including the unset id.
	Stacked
	// Unstacked gives every qualifying member its own slot.
	Unstacked
)

// StackModeOf converts an optional boolean option into a StackMode.
func StackModeOf(stacked *bool) StackMode {
	switch {
	case stacked == nil:
		return StackedUnset
	case *stacked:
		return Stacked
	default:
		return Unstacked
	}
}

// String returns the option spelling of the mode.
func (m StackMode) String() string {
	switch m {
	case Stacked:
		return "true"
	case Unstacked:
		return "false"
	default:
		return "unset"
	}
}

// StackID names the stack a series belongs to. The zero value is the unset
// id; all unset ids are equal to each other.
type StackID struct {
	name string
	set  bool
}

// Stack returns a StackID with the given name.
func Stack(name string) StackID {
	return StackID{name: name, set: true}
}

// NoStack returns the unset StackID.
func NoStack() StackID {
	return StackID{}
}

// IsSet returns true if the id was given a name.
func (s StackID) IsSet() bool {
	return s.set
}

// Name returns the stack name ("" when unset).
func (s StackID) Name() string {
	return s.name
}

// String returns the stack name, or "<unset>".
func (s StackID) String() string {
	if !s.set {
		return "<unset>"
	}
	return s.name
}

// StackMember is the per-series metadata the stack engine looks at.
type StackMember struct {
	Stack   StackID
	YAxisID string
	Bar     bool
	Visible bool
}

func (m StackMember) qualifies(axisID string) bool {
	return m.Bar && m.Visible && m.YAxisID == axisID
}

// admits reports whether a member with the given id opens a new slot.
func admits(mode StackMode, id StackID, recorded []StackID) bool {
	switch mode {
	case Unstacked:
		return true
	case Stacked:
		return !containsStack(recorded, id)
	default:
		return !id.IsSet() || !containsStack(recorded, id)
	}
}

func containsStack(recorded []StackID, id StackID) bool {
	for _, s := range recorded {
		if s == id {
			return true
		}
	}
	return false
}

// StackCount returns the number of distinct slots needed by the visible
// bar-like members on axisID. Members are visited in declaration order.
func StackCount(members []StackMember, axisID string, mode StackMode) int {
	var stacks []StackID
	for _, m := range members {
		if m.qualifies(axisID) && admits(mode, m.Stack, stacks) {
			stacks = append(stacks, m.Stack)
		}
	}
	return len(stacks)
}

// StackIndex returns the 0-based slot of the member at seriesIndex among
// the slots formed by itself and every preceding qualifying member on the
// same value axis. Out of range indexes return 0.
func StackIndex(members []StackMember, seriesIndex int, mode StackMode) int {
	if seriesIndex < 0 || seriesIndex >= len(members) {
		return 0
	}
	target := members[seriesIndex]
	stacks := []StackID{target.Stack}
	for _, m := range members[:seriesIndex] {
		if m.qualifies(target.YAxisID) && admits(mode, m.Stack, stacks) {
			stacks = append(stacks, m.Stack)
		}
	}
	return len(stacks) - 1
}
