package ui

import (
	"image"
	"math"
	"strconv"

	"thermal-heatmap/internal/core"
)

const (
	panelPadding = 12
	controlsTop  = 34
	lineHeight   = 28
	buttonSize   = 20
	buttonGap    = 6
)

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlPanel tracks the adjustable parameters of a source and applies
// +/- presses through its setters.
type controlPanel struct {
	states      []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

func newControlPanel(source any, width int) *controlPanel {
	p := &controlPanel{}
	if provider, ok := source.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		p.states = make([]controlState, len(controls))
		for i, ctrl := range controls {
			p.states[i] = controlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := source.(core.IntParameterSetter); ok {
		p.intSetter = setter
	}
	if setter, ok := source.(core.FloatParameterSetter); ok {
		p.floatSetter = setter
	}
	p.layout(width)
	return p
}

func (p *controlPanel) layout(width int) {
	for i := range p.states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		p.states[i].top = top
		p.states[i].minusRect = minus
		p.states[i].plusRect = plus
	}
}

// bottom returns the first y below the control rows.
func (p *controlPanel) bottom() int {
	return controlsTop + len(p.states)*lineHeight
}

// refresh copies the current values of the controlled parameters out of
// snapshot.
func (p *controlPanel) refresh(snapshot core.ParameterSnapshot) {
	values := map[string]string{}
	for _, group := range snapshot.Groups {
		for _, param := range group.Params {
			values[param.Key] = param.Value
		}
	}
	for i := range p.states {
		state := &p.states[i]
		state.hasValue = false
		state.value = "--"
		raw, ok := values[state.control.Key]
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

// target returns the value one step in direction, clamped to the control's
// bounds, and whether it differs from the current value.
func (p *controlPanel) target(state *controlState, direction int) (float64, bool) {
	switch state.control.Type {
	case core.ParamTypeInt:
		if p.intSetter == nil {
			return 0, false
		}
		step := int(math.Round(state.control.Step))
		if step <= 0 {
			step = 1
		}
		t := int(math.Round(state.control.Clamp(float64(state.intValue + direction*step))))
		return float64(t), t != state.intValue
	case core.ParamTypeFloat:
		if p.floatSetter == nil {
			return 0, false
		}
		step := state.control.Step
		if step <= 0 {
			step = 0.05
		}
		t := state.control.Clamp(state.floatValue + float64(direction)*step)
		return t, math.Abs(t-state.floatValue) >= 1e-9
	}
	return 0, false
}

func (p *controlPanel) canAdjust(i, direction int) bool {
	if i < 0 || i >= len(p.states) || direction == 0 || !p.states[i].hasValue {
		return false
	}
	_, ok := p.target(&p.states[i], direction)
	return ok
}

// adjust moves control i one step in direction and reports whether the
// setter accepted the new value.
func (p *controlPanel) adjust(i, direction int) bool {
	if !p.canAdjust(i, direction) {
		return false
	}
	state := &p.states[i]
	t, _ := p.target(state, direction)
	switch state.control.Type {
	case core.ParamTypeInt:
		if !p.intSetter.SetIntParameter(state.control.Key, int(t)) {
			return false
		}
		state.intValue = int(t)
		state.floatValue = t
		state.value = strconv.Itoa(int(t))
	case core.ParamTypeFloat:
		if !p.floatSetter.SetFloatParameter(state.control.Key, t) {
			return false
		}
		state.floatValue = t
		state.value = formatFloat(state.control, t)
	}
	return true
}

// click handles a press at (x, y) in panel coordinates.
func (p *controlPanel) click(x, y int) bool {
	pt := image.Pt(x, y)
	for i := range p.states {
		if pt.In(p.states[i].minusRect) {
			return p.adjust(i, -1)
		}
		if pt.In(p.states[i].plusRect) {
			return p.adjust(i, 1)
		}
	}
	return false
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
