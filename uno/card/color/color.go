package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Color of a card. None is the zero value and means "not set"; it is what
// the active color holds while a wild is waiting for a declaration.
type Color int

const (
	None Color = iota
	Red
	Yellow
	Green
	Blue
	Black
)

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var palette = map[Color]colorStruct{
	None:   {name: "none", colorFunction: fmt.Sprintf},
	Red:    {name: "red", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Yellow: {name: "yellow", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
	Green:  {name: "green", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Blue:   {name: "blue", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
	Black:  {name: "black", colorFunction: color.New(color.FgHiWhite, color.BgBlack).SprintfFunc()},
}

// Playables lists the four colors a wild may declare, in display order.
var Playables = []Color{Red, Yellow, Green, Blue}

var Stdout io.Writer = color.Output

var colors = map[string]Color{
	"red":    Red,
	"yellow": Yellow,
	"green":  Green,
	"blue":   Blue,
	"black":  Black,
}

func (c Color) Name() string {
	if s, ok := palette[c]; ok {
		return s.name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (c Color) String() string {
	return c.Name()
}

// Playable reports whether c can be matched against or declared.
func (c Color) Playable() bool {
	return c >= Red && c <= Blue
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(text string, args ...interface{}) string {
	s, ok := palette[c]
	if !ok {
		return fmt.Sprintf(text, args...)
	}
	return s.colorFunction(text, args...)
}

func ByName(name string) (Color, error) {
	c, ok := colors[name]
	if !ok {
		return None, fmt.Errorf("invalid color '%s'", name)
	}
	return c, nil
}
