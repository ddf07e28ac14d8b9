package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/uno/uno/card/color"
)

// Delay is the pause after every printed line so automated turns can be
// followed.
var Delay = 1 * time.Second

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Printlns(lines []string) {
	Println(strings.Join(lines, "\n"))
}

func Println(args ...interface{}) {
	fmt.Fprintln(color.Stdout, args...)
	time.Sleep(Delay)
}

// Print writes text that already ends with a newline.
func Print(text string) {
	if text == "" {
		return
	}
	fmt.Fprint(color.Stdout, text)
	time.Sleep(Delay)
}
