package ui

// Flag identifies one stale aspect of a component's state.
// Components may define their own flags alongside the predefined ones.
type Flag string

const (
	// FlagAll marks every aspect stale. It subsumes all other flags.
	FlagAll      Flag = "all"
	FlagState    Flag = "state"
	FlagSize     Flag = "size"
	FlagStyles   Flag = "styles"
	FlagSkin     Flag = "skin"
	FlagLayout   Flag = "layout"
	FlagData     Flag = "data"
	FlagScroll   Flag = "scroll"
	FlagSelected Flag = "selected"
	FlagFocus    Flag = "focus"
)

// flagSet tracks which flags are set. The all bit is kept apart from the
// named flags so that FlagAll never has to be stored in the map.
type flagSet struct {
	all   bool
	flags map[Flag]struct{}
}

// add sets flag. Adding a flag that is already set is a no-op.
func (s *flagSet) add(flag Flag) {
	if flag == FlagAll {
		s.all = true
		return
	}
	if s.flags == nil {
		s.flags = make(map[Flag]struct{})
	}
	s.flags[flag] = struct{}{}
}

// has reports whether flag is set. FlagAll matches only the all bit; every
// named flag also matches when the all bit is set.
func (s *flagSet) has(flag Flag) bool {
	if s.all {
		return true
	}
	if flag == FlagAll {
		return false
	}
	_, ok := s.flags[flag]
	return ok
}

// any reports whether any flag is set.
func (s *flagSet) any() bool {
	return s.all || len(s.flags) > 0
}

func (s *flagSet) clear() {
	s.all = false
	clear(s.flags)
}

// merge adds every flag of other to s.
func (s *flagSet) merge(other *flagSet) {
	if other.all {
		s.all = true
	}
	for f := range other.flags {
		s.add(f)
	}
}
