package main

import (
	"fmt"
	"os"
	"strconv"

	ui "github.com/grindlemire/go-ui"
	"gopkg.in/yaml.v3"
)

// Scenario describes one container and its items.
type Scenario struct {
	Name        string   `yaml:"name"`
	Direction   string   `yaml:"direction"` // "row" or "column"
	Gap         float64  `yaml:"gap"`
	FirstGap    *float64 `yaml:"first_gap,omitempty"`
	LastGap     *float64 `yaml:"last_gap,omitempty"`
	Padding     Padding  `yaml:"padding"`
	Align       string   `yaml:"align,omitempty"`
	CrossAlign  string   `yaml:"cross_align,omitempty"`
	Distributed bool     `yaml:"distributed"`

	Width     *float64 `yaml:"width,omitempty"`
	Height    *float64 `yaml:"height,omitempty"`
	MinWidth  float64  `yaml:"min_width,omitempty"`
	MinHeight float64  `yaml:"min_height,omitempty"`
	MaxWidth  *float64 `yaml:"max_width,omitempty"`
	MaxHeight *float64 `yaml:"max_height,omitempty"`

	Items   []ItemSpec   `yaml:"items"`
	Virtual *VirtualSpec `yaml:"virtual,omitempty"`
}

// Padding is the container padding in CSS order.
type Padding struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// ItemSpec describes one item of a non-virtual scenario.
type ItemSpec struct {
	Label string `yaml:"label"`

	// Natural size. Without one the item measures its label.
	Width  *float64 `yaml:"width,omitempty"`
	Height *float64 `yaml:"height,omitempty"`

	PercentWidth  *float64 `yaml:"percent_width,omitempty"`
	PercentHeight *float64 `yaml:"percent_height,omitempty"`
	MinWidth      float64  `yaml:"min_width,omitempty"`
	MinHeight     float64  `yaml:"min_height,omitempty"`
	MaxWidth      *float64 `yaml:"max_width,omitempty"`
	MaxHeight     *float64 `yaml:"max_height,omitempty"`
	Exclude       bool     `yaml:"exclude,omitempty"`
}

// VirtualSpec turns the scenario into a virtualized list.
type VirtualSpec struct {
	Count          int             `yaml:"count"`
	TypicalWidth   float64         `yaml:"typical_width"`
	TypicalHeight  float64         `yaml:"typical_height"`
	VariableSize   bool            `yaml:"variable_size"`
	Sizes          map[int]float64 `yaml:"sizes,omitempty"` // on-axis size by index
	ScrollX        float64         `yaml:"scroll_x,omitempty"`
	ScrollY        float64         `yaml:"scroll_y,omitempty"`
	ScrollAlign    string          `yaml:"scroll_align,omitempty"`
	RequestedCount int             `yaml:"requested_count,omitempty"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks enumerated fields and counts.
func (s *Scenario) Validate() error {
	if _, err := s.direction(); err != nil {
		return err
	}
	if _, err := parseAlign("align", s.Align); err != nil {
		return err
	}
	if _, err := parseAlign("cross_align", s.CrossAlign); err != nil {
		return err
	}
	if s.Virtual != nil {
		if s.Virtual.Count < 0 {
			return fmt.Errorf("virtual.count must not be negative, got %d", s.Virtual.Count)
		}
		if _, err := parseAlign("virtual.scroll_align", s.Virtual.ScrollAlign); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scenario) direction() (ui.Direction, error) {
	switch s.Direction {
	case "", "row", "horizontal":
		return ui.Row, nil
	case "column", "vertical":
		return ui.Column, nil
	}
	return ui.Row, fmt.Errorf("unknown direction %q", s.Direction)
}

func parseAlign(field, value string) (ui.Align, error) {
	if value == "" {
		return ui.AlignStart, nil
	}
	a, ok := ui.ParseAlign(value)
	if !ok {
		return ui.AlignStart, fmt.Errorf("unknown %s %q", field, value)
	}
	return a, nil
}

// layoutOptions converts the container settings into layout options.
// Validate must have succeeded.
func (s *Scenario) layoutOptions() []ui.LayoutOption {
	dir, _ := s.direction()
	align, _ := parseAlign("align", s.Align)
	crossAlign, _ := parseAlign("cross_align", s.CrossAlign)
	opts := []ui.LayoutOption{
		ui.WithDirection(dir),
		ui.WithGap(s.Gap),
		ui.WithPadding(ui.EdgeTRBL(s.Padding.Top, s.Padding.Right, s.Padding.Bottom, s.Padding.Left)),
		ui.WithAlign(align),
		ui.WithCrossAlign(crossAlign),
		ui.WithDistributed(s.Distributed),
	}
	if s.FirstGap != nil {
		opts = append(opts, ui.WithFirstGap(*s.FirstGap))
	}
	if s.LastGap != nil {
		opts = append(opts, ui.WithLastGap(*s.LastGap))
	}
	if v := s.Virtual; v != nil {
		scrollAlign, _ := parseAlign("virtual.scroll_align", v.ScrollAlign)
		opts = append(opts,
			ui.WithVariableSize(v.VariableSize),
			ui.WithScrollAlign(scrollAlign),
			ui.WithRequestedCount(v.RequestedCount),
		)
	}
	return opts
}

// containerOptions converts the container's own size constraints.
func (s *Scenario) containerOptions() []ui.Option {
	opts := []ui.Option{ui.WithName(s.Name), ui.WithMinWidth(s.MinWidth), ui.WithMinHeight(s.MinHeight)}
	if s.MaxWidth != nil {
		opts = append(opts, ui.WithMaxWidth(*s.MaxWidth))
	}
	if s.MaxHeight != nil {
		opts = append(opts, ui.WithMaxHeight(*s.MaxHeight))
	}
	return opts
}

// Build creates the scenario's container. The result is either a
// *ui.LayoutGroup or, for virtual scenarios, a *ui.ListView.
func (s *Scenario) Build() ui.Widget {
	var w ui.Widget
	if s.Virtual != nil {
		w = s.buildList()
	} else {
		w = s.buildGroup()
	}
	for _, opt := range s.containerOptions() {
		opt(w.Base())
	}
	if s.Width != nil {
		w.Base().SetWidth(*s.Width)
	}
	if s.Height != nil {
		w.Base().SetHeight(*s.Height)
	}
	return w
}

func (s *Scenario) buildGroup() *ui.LayoutGroup {
	dir, _ := s.direction()
	g := ui.NewLayoutGroup(dir, s.layoutOptions()...)
	for i, item := range s.Items {
		g.AddChild(item.build(i))
	}
	return g
}

func (item ItemSpec) build(index int) *ui.Box {
	label := item.Label
	if label == "" {
		label = "item " + strconv.Itoa(index)
	}
	opts := []ui.Option{ui.WithName(label), ui.WithMinWidth(item.MinWidth), ui.WithMinHeight(item.MinHeight)}
	if item.PercentWidth != nil {
		opts = append(opts, ui.WithWidthPercent(*item.PercentWidth))
	}
	if item.PercentHeight != nil {
		opts = append(opts, ui.WithHeightPercent(*item.PercentHeight))
	}
	if item.MaxWidth != nil {
		opts = append(opts, ui.WithMaxWidth(*item.MaxWidth))
	}
	if item.MaxHeight != nil {
		opts = append(opts, ui.WithMaxHeight(*item.MaxHeight))
	}
	if item.Exclude {
		opts = append(opts, ui.WithIncludeInLayout(false))
	}

	b := ui.NewLabel(label, opts...)
	if item.Width != nil || item.Height != nil {
		natW, natH := b.NaturalSize()
		if item.Width != nil {
			natW = *item.Width
		}
		if item.Height != nil {
			natH = *item.Height
		}
		b.SetNaturalSize(natW, natH)
	}
	return b
}

func (s *Scenario) buildList() *ui.ListView {
	v := s.Virtual
	dir, _ := s.direction()
	factory := func() ui.Widget {
		return ui.NewBox(v.TypicalWidth, v.TypicalHeight)
	}
	bind := func(w ui.Widget, index int) {
		b := w.(*ui.Box)
		b.SetLabel("item " + strconv.Itoa(index))
		size, ok := v.Sizes[index]
		if !ok || !v.VariableSize {
			b.SetNaturalSize(v.TypicalWidth, v.TypicalHeight)
			return
		}
		if dir == ui.Column {
			b.SetNaturalSize(v.TypicalWidth, size)
		} else {
			b.SetNaturalSize(size, v.TypicalHeight)
		}
	}
	list := ui.NewListView(dir, factory, bind, s.layoutOptions()...)
	list.SetCount(v.Count)
	list.SetScroll(v.ScrollX, v.ScrollY)
	return list
}

// Linear returns a bare layout engine configured like the scenario's
// container, with a typical item for virtual scenarios.
func (s *Scenario) Linear() *ui.Linear {
	dir, _ := s.direction()
	l := ui.NewLinear(dir)
	for _, opt := range s.layoutOptions() {
		opt(l)
	}
	if v := s.Virtual; v != nil {
		l.Virtual = true
		typical := ui.NewBox(v.TypicalWidth, v.TypicalHeight)
		l.TypicalItem = typical
		for index, size := range v.Sizes {
			if index >= 0 && index < v.Count && v.VariableSize {
				l.SetCachedSize(index, size)
			}
		}
	}
	return l
}

// ViewPortBounds returns the container's bounds as layout input.
func (s *Scenario) ViewPortBounds() ui.ViewPortBounds {
	b := ui.ViewPortBounds{MinWidth: s.MinWidth, MinHeight: s.MinHeight}
	if s.Width != nil {
		b.ExplicitWidth = ui.Explicit(*s.Width)
	}
	if s.Height != nil {
		b.ExplicitHeight = ui.Explicit(*s.Height)
	}
	if s.MaxWidth != nil {
		b.MaxWidth = ui.Explicit(*s.MaxWidth)
	}
	if s.MaxHeight != nil {
		b.MaxHeight = ui.Explicit(*s.MaxHeight)
	}
	if v := s.Virtual; v != nil {
		b.ScrollX, b.ScrollY = v.ScrollX, v.ScrollY
	}
	return b
}
