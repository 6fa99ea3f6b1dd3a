package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rhartert/metro-ls/config"
	"github.com/rhartert/metro-ls/internal"
	"github.com/rhartert/metro-ls/metro"
	"github.com/rhartert/metro-ls/metro/records"
)

var flagConfigFile = flag.String(
	"config",
	config.DefaultPath,
	"Path to the YAML configuration file",
)

var flagDataFile = flag.String(
	"data",
	"",
	"Path to the metro data file (overrides the configuration)",
)

var flagInterchange = flag.String(
	"interchange",
	"",
	"Name of the interchange station (overrides the configuration)",
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] <command> [args]\n\nCommands:\n", os.Args[0])
	for _, c := range commands {
		fmt.Fprintf(out, "  %-15s %s\n", c.name, c.usage)
	}
	fmt.Fprintf(out, "\nFlags:\n")
	flag.PrintDefaults()
}

func validateFlags() error {
	if flag.NArg() == 0 {
		return fmt.Errorf("missing command")
	}
	if _, ok := findCommand(flag.Arg(0)); !ok {
		return fmt.Errorf("unknown command %q", flag.Arg(0))
	}
	return nil
}

func loadConfig() *config.Config {
	// The default configuration file is optional, an explicit one is not.
	optional := *flagConfigFile == config.DefaultPath
	cfg, err := config.Load(*flagConfigFile, optional)
	if err != nil {
		log.Fatalf("Error loading configuration: %s", err)
	}
	if *flagDataFile != "" {
		cfg.DataFile = *flagDataFile
	}
	if *flagInterchange != "" {
		cfg.Interchange = *flagInterchange
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Error validating configuration: %s", err)
	}
	return cfg
}

func main() {
	internal.InitLogging()
	flag.Usage = usage
	flag.Parse()
	if err := validateFlags(); err != nil {
		flag.Usage()
		log.Fatalf("Error validating flags: %s", err)
	}

	cfg := loadConfig()
	catalog, fellBack, err := records.LoadCatalog(cfg.DataFile, cfg.Interchange)
	if err != nil {
		log.Fatalf("Error loading data: %s", err)
	}
	if fellBack {
		log.Printf("Using default topology with interchange %q", catalog.Interchange())
	}

	ed := metro.NewEditor(catalog, records.File{Path: cfg.DataFile}, cfg.MetroPricing())
	cmd, _ := findCommand(flag.Arg(0))
	if err := cmd.exec(ed, flag.Args()[1:], os.Stdout); err != nil {
		log.Fatalf("%s: %s", cmd.name, err)
	}
}
