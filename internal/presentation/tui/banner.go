package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the karibu ASCII art banner with the version under it.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient from indigo to pink.
	s1 := termenv.String("  _  __          _ _          ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String(" | |/ /__ _ _ __(_) |__ _   _ ").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(" | ' // _` | '__| | '_ \\ | | |").Foreground(p.Color("#c084fc"))
	s4 := termenv.String(" | . \\ (_| | |  | | |_) | |_| |").Foreground(p.Color("#e879f9"))
	s5 := termenv.String(" |_|\\_\\__,_|_|  |_|_.__/ \\__,_|").Foreground(p.Color("#f472b6"))
	ver := termenv.String("  karibu " + version).Foreground(p.Color("#9ca3af"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(ver)
	fmt.Println()
}
