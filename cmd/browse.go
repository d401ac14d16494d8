package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"refmap/internal/types"
)

// browseRegions presents the aggregated rows as a list the user can move
// through with the arrow keys; Enter opens the detail panel for the
// selected region, Esc leaves.
func browseRegions(results []types.RegionResultRow) {
	if len(results) == 0 {
		return
	}

	enableVT()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Println("(interactive browsing not supported on this terminal)")
		return
	}
	defer term.Restore(fd, oldState)

	lines := make([]string, len(results))
	for i, r := range results {
		share := "    n/a"
		if r.Expressed() > 0 {
			share = fmt.Sprintf("%6.1f%%", 100*choiceAShare(r))
		}
		lines[i] = fmt.Sprintf("%-4s %-32s Choice A %s", r.RegionCode, truncate(r.RegionName, 32), share)
	}

	reader := bufio.NewReader(os.Stdin)
	selected := 0

	redraw := func() {
		// ANSI cursor home + clear screen
		fmt.Print("\033[H\033[2J")
		for i, l := range lines {
			prefix := "  "
			if i == selected {
				prefix = "> "
			}
			fmt.Println(prefix + l)
		}
		fmt.Println("(↑/↓ to navigate, Enter for region detail, Esc to quit)")
	}

	showDetail := func() {
		term.Restore(fd, oldState)
		fmt.Println()
		renderRegionDetail(os.Stdout, results[selected])

		fmt.Print("\n(press Enter to return)")
		_, _ = bufio.NewReader(os.Stdin).ReadBytes('\n')

		oldState, err = term.MakeRaw(fd)
		if err != nil {
			return
		}
		reader = bufio.NewReader(os.Stdin)
		redraw()
	}

	redraw()

	for {
		b1, err := reader.ReadByte()
		if err != nil {
			return
		}
		// Windows console arrow sequences (0 or 224, then a code byte)
		if b1 == 0 || b1 == 224 {
			b2, _ := reader.ReadByte()
			switch b2 {
			case 72: // up
				if selected > 0 {
					selected--
					redraw()
				}
			case 80: // down
				if selected < len(results)-1 {
					selected++
					redraw()
				}
			case 13: // Enter
				showDetail()
			}
			continue
		}

		switch b1 {
		case 27: // ESC or start of an ANSI sequence
			if reader.Buffered() == 0 {
				fmt.Println()
				return
			}
			b2, _ := reader.ReadByte()
			if b2 != '[' || reader.Buffered() == 0 {
				continue
			}
			b3, _ := reader.ReadByte()
			switch b3 {
			case 'A': // up
				if selected > 0 {
					selected--
					redraw()
				}
			case 'B': // down
				if selected < len(results)-1 {
					selected++
					redraw()
				}
			}
		case '\r', '\n':
			showDetail()
		case 3: // Ctrl-C
			fmt.Println()
			return
		}
	}
}
