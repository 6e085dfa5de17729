package theme

import (
	"gitlab.com/tinyland/lab/boxkit/pkg/style"
	"gitlab.com/tinyland/lab/boxkit/pkg/tooltip"
)

// Tooltip fills the colours o leaves unset: a text colour, a background
// and the colour of a zero-coloured border. Everything else is kept.
func (t Theme) Tooltip(o tooltip.Options) tooltip.Options {
	if o.TextColor == 0 {
		o.TextColor = t.TooltipForeground
	}
	if o.Style.Background == nil {
		o.Style.Background = &style.BackgroundSpec{Color: t.TooltipBackground}
	}
	if o.Style.Border != nil && o.Style.Border.Color == 0 {
		b := *o.Style.Border
		b.Color = t.TooltipBorder
		o.Style.Border = &b
	}
	return o
}
