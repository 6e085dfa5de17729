package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thGruvboxTheme(),
		thNordTheme(),
		thCatppuccinTheme(),
		thDraculaTheme(),
		thTokyoNightTheme(),
	} {
		Register(t)
	}
}

// thDefaultTheme returns the dark neutral theme with purple accent.
func thDefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: 0x1e1e1e,
		Foreground: 0xd4d4d4,
		Dim:        0x6b6b6b,
		Accent:     0x7c3aed,

		Surface: 0x2a2a2a,
		Border:  0x3e3e3e,
		Shadow:  0x000000,

		TooltipBackground: 0x5b21b6,
		TooltipForeground: 0xf9e2af,
		TooltipBorder:     0x7c3aed,
	}
}

// thGruvboxTheme returns the warm retro Gruvbox theme.
func thGruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: 0x282828,
		Foreground: 0xebdbb2,
		Dim:        0x928374,
		Accent:     0xfe8019,

		Surface: 0x3c3836,
		Border:  0x504945,
		Shadow:  0x1d2021,

		TooltipBackground: 0xd65d0e,
		TooltipForeground: 0xfbf1c7,
		TooltipBorder:     0xfe8019,
	}
}

// thNordTheme returns the arctic Nord theme.
func thNordTheme() Theme {
	return Theme{
		Name:       "nord",
		Background: 0x2e3440,
		Foreground: 0xeceff4,
		Dim:        0x4c566a,
		Accent:     0x88c0d0,

		Surface: 0x3b4252,
		Border:  0x434c5e,
		Shadow:  0x242933,

		TooltipBackground: 0x5e81ac,
		TooltipForeground: 0xeceff4,
		TooltipBorder:     0x88c0d0,
	}
}

// thCatppuccinTheme returns the Catppuccin Mocha theme.
func thCatppuccinTheme() Theme {
	return Theme{
		Name:       "catppuccin",
		Background: 0x1e1e2e,
		Foreground: 0xcdd6f4,
		Dim:        0x6c7086,
		Accent:     0xcba6f7,

		Surface: 0x313244,
		Border:  0x45475a,
		Shadow:  0x11111b,

		TooltipBackground: 0x9399b2,
		TooltipForeground: 0x1e1e2e,
		TooltipBorder:     0xcba6f7,
	}
}

// thDraculaTheme returns the Dracula theme.
func thDraculaTheme() Theme {
	return Theme{
		Name:       "dracula",
		Background: 0x282a36,
		Foreground: 0xf8f8f2,
		Dim:        0x6272a4,
		Accent:     0xbd93f9,

		Surface: 0x44475a,
		Border:  0x6272a4,
		Shadow:  0x191a21,

		TooltipBackground: 0x8be9fd,
		TooltipForeground: 0x282a36,
		TooltipBorder:     0xbd93f9,
	}
}

// thTokyoNightTheme returns the Tokyo Night theme.
func thTokyoNightTheme() Theme {
	return Theme{
		Name:       "tokyo-night",
		Background: 0x1a1b26,
		Foreground: 0xc0caf5,
		Dim:        0x565f89,
		Accent:     0x7aa2f7,

		Surface: 0x24283b,
		Border:  0x292e42,
		Shadow:  0x16161e,

		TooltipBackground: 0x7dcfff,
		TooltipForeground: 0x1a1b26,
		TooltipBorder:     0x7aa2f7,
	}
}
