// Command paneldemo shows the layout and focus machinery on a small
// settings screen: a grid shell, nested stacks, text input and a
// confirmation dialog.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"pane"
)

var (
	flagTheme    string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	root := &cobra.Command{
		Use:   "paneldemo",
		Short: "Interactive demo of the pane layout and focus system",
		RunE:  run,
	}
	root.Flags().StringVar(&flagTheme, "theme", "dark", "color theme: dark, light or mono")
	root.Flags().StringVar(&flagLogFile, "log-file", "", "write debug logs to this file")
	root.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn or error")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagLogFile != "" {
		level := slog.LevelInfo
		switch flagLogLevel {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
		closeLog, err := pane.LogToFile(flagLogFile, level)
		if err != nil {
			return err
		}
		defer closeLog()
	}

	return buildUI().Theme(pane.LookupTheme(flagTheme)).Run()
}

func buildUI() *pane.App {
	status := pane.NewLabel("Tab cycles focus, Enter activates, Ctrl-Q quits").
		Color("text.muted")

	name := pane.NewTextBox("name")
	name.Placeholder("your name")
	name.OnChange = func(s string) {
		if s == "" {
			status.SetText("waiting for a name")
			return
		}
		status.SetText("hello, " + s)
	}

	help := pane.NewTextView("help").Color("text.muted")
	help.SetText("Use Tab and Shift-Tab to move between fields. " +
		"Press Save to confirm your changes, or Quit to leave without saving.")
	help.Height(3)

	form := pane.NewStack("form", pane.Vertical).Spacing(1)
	form.Border(pane.BorderSingle).Title("Profile").Padding(1)
	form.AddChild(pane.NewLabel("Name"))
	form.AddChild(name)
	form.AddChild(pane.NewSpacer(1))
	form.AddChild(help)

	shell := pane.NewGrid("shell").
		Rows("1*", "3").
		Columns("1*")
	shell.Border(pane.BorderSingle).Title("paneldemo")

	var app *pane.App

	save := pane.NewButton("Save", func() {
		d := pane.NewDialog("Confirm", "Save profile for "+name.Value()+"?", "OK", "Cancel")
		d.OnClose = func(choice string) {
			if choice == "OK" {
				status.SetText("saved " + name.Value())
			} else {
				status.SetText("discarded")
			}
		}
		app.ShowDialog(d)
	})
	quit := pane.NewButton("Quit", func() { app.Quit() })

	buttons := pane.HStack(save, quit).Spacing(2).
		AlignHorizontal(pane.AlignHCenter).AlignVertical(pane.AlignTop)
	buttons.Height(1)
	form.AddChild(buttons)

	footer := pane.VStack(status).AlignVertical(pane.AlignVCenter)

	shell.AddItem(form, pane.GridProps{Row: 0, Col: 0})
	shell.AddItem(footer, pane.GridProps{Row: 1, Col: 0})

	app = pane.NewApp(shell)
	return app
}
