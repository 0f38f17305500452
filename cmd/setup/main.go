package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"web-messenger/internal"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
)

var errFileExists = errors.New("refusing to overwrite existing file, use -force")

var firebaseSteps = []string{
	"Go to https://console.firebase.google.com/",
	"Create a new project or select an existing one",
	"Open Project Settings, then the General tab",
	"Under \"Your apps\", add a web app if none exists",
	"Copy the configuration values into the variables below",
	"For push notifications, download a service account key and set FIREBASE_CREDENTIALS_FILE",
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "setup:", err)
		os.Exit(1)
	}
}

// run prints the Firebase setup guide and the .env template, optionally writing it to disk.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("setup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	path := fs.String("write", "", "write the template to this .env file")
	force := fs.Bool("force", false, "overwrite an existing file")
	noColour := fs.Bool("no-color", false, "disable colored output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	title := func(s string) string {
		if *noColour {
			return s
		}
		return color.New(color.BgBlack, color.FgGreen).Render(s)
	}

	fmt.Fprintln(out, title("Firebase Setup Guide"))
	fmt.Fprintln(out, "====================")
	fmt.Fprintln(out)
	for i, step := range firebaseSteps {
		fmt.Fprintf(out, "%d. %s\n", i+1, step)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, title("Environment template"))
	fmt.Fprintln(out)
	for _, section := range internal.EnvTemplate() {
		fmt.Fprintf(out, "# %s\n", section.Title)
		for _, entry := range section.Entries {
			fmt.Fprintf(out, "%s=%s\n", entry.Key, entry.Value)
		}
		fmt.Fprintln(out)
	}

	if *path == "" {
		fmt.Fprintln(out, "Copy the values above into a .env file, or rerun with -write .env")
		return nil
	}
	if _, err := os.Stat(*path); err == nil && !*force {
		return fmt.Errorf("%w: %s", errFileExists, *path)
	}
	if err := godotenv.Write(internal.EnvTemplateMap(), *path); err != nil {
		return fmt.Errorf("writing %s: %w", *path, err)
	}
	fmt.Fprintf(out, "Wrote %s, replace the placeholder values before starting the client\n", *path)
	return nil
}
