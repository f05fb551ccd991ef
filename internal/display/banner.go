package display

import (
	"fmt"
	"os"

	"github.com/backmassage/reframe/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____      _____
|  _ \ ___|  ___| __ __ _ _ __ ___   ___
| |_) / _ \ |_ | '__/ _` + "`" + ` | '_ ` + "`" + ` _ \ / _ \
|  _ <  __/  _|| | | (_| | | | | | |  __/
|_| \_\___|_|  |_|  \__,_|_| |_| |_|\___|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
