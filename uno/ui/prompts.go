package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ratel-online/uno/uno/card/color"
)

var Stdin io.Reader = os.Stdin

func PromptString(message string) (string, error) {
	for {
		Println(message)
		var input string
		_, err := fmt.Fscanln(Stdin, &input)
		if err == io.EOF {
			return "", err
		}
		if err != nil {
			Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

func promptUppercaseString(message string) (string, error) {
	input, err := PromptString(message)
	return strings.ToUpper(input), err
}

func promptLowercaseString(message string) (string, error) {
	input, err := PromptString(message)
	return strings.ToLower(input), err
}

// Option is one menu entry.
type Option struct {
	Text  string
	Value interface{}
}

// PromptSelection labels options A, B, C... in order and returns the value of
// the chosen one.
func PromptSelection(title string, options []Option) (interface{}, error) {
	values := make(map[string]interface{}, len(options))
	lines := []string{title}
	for i, option := range options {
		label := optionLabel(i)
		values[label] = option.Value
		lines = append(lines, fmt.Sprintf("%s (enter %s)", option.Text, label))
	}
	message := strings.Join(lines, "\n")

	for {
		selected, err := promptUppercaseString(message)
		if err != nil {
			return nil, err
		}
		value, found := values[selected]
		if !found {
			Printfln("No option assigned to '%s'", selected)
			continue
		}
		return value, nil
	}
}

func PromptColor() (color.Color, error) {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red.Paint(color.Red.Name()),
		color.Yellow.Paint(color.Yellow.Name()),
		color.Green.Paint(color.Green.Name()),
		color.Blue.Paint(color.Blue.Name()),
	)
	for {
		colorName, err := promptLowercaseString(colorMessage)
		if err != nil {
			return color.None, err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil || !chosenColor.Playable() {
			Printfln("Unknown color '%s'", colorName)
			continue
		}
		return chosenColor, nil
	}
}

// optionLabel is A..Z, then AA, AB and so on.
func optionLabel(index int) string {
	label := ""
	for index >= 0 {
		label = string(rune('A'+index%26)) + label
		index = index/26 - 1
	}
	return label
}
