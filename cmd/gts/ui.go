package main

import (
	"github.com/fatih/color"
)

// success/failure/header colors: red for failure and for detail lines,
// green for success, cyan for headers. Disabled wholesale when --no-color
// is set.
var (
	okColor      = color.New(color.FgGreen, color.Bold)
	invalidColor = color.New(color.FgRed, color.Bold)
	detailColor  = color.New(color.FgRed)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

// applyNoColor disables every UI color once cobra has parsed
// --no-color; called from the print helpers below rather than package
// init, since flag values are not populated until Execute runs.
func applyNoColor() {
	if !noColorFlag {
		return
	}
	okColor.DisableColor()
	invalidColor.DisableColor()
	detailColor.DisableColor()
	headerColor.DisableColor()
}

func printOK() {
	applyNoColor()
	okColor.Println("ok")
}

func printInvalid(err error) {
	applyNoColor()
	invalidColor.Printf("invalid: %v\n", err)
}

func printValidationError(pointer, message string) {
	detailColor.Printf("  %s: %s\n", pointer, message)
}

func printVerdict(backward, forward, full bool) {
	applyNoColor()
	headerColor.Println("compatibility verdict:")
	printBool("backward", backward)
	printBool("forward", forward)
	printBool("full", full)
}

func printBool(label string, ok bool) {
	c := okColor
	if !ok {
		c = invalidColor
	}
	c.Printf("  %s: %v\n", label, ok)
}
