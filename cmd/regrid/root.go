package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/domonda/go-regrid/internal/log"
)

func init() {
	// Query the terminal background before bubbletea takes over stdin
	_ = lipgloss.HasDarkBackground()
}

// app holds the state shared by all commands.
type app struct {
	cfgFile string
	logFile string
	cfg     Config
	v       *viper.Viper
	source  sourceFlags
	remap   remapFlags

	closeLog func()
}

func newRootCmd(version string) *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "regrid [file]",
		Short: "Sort, filter and browse tabular data",
		Long: `regrid loads CSV, Excel and SQLite data into a table
with sortable rows and selectable columns.

Without sub-command the file is opened in the terminal browser.`,
		Version:           version,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.teardown() },
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.runBrowse(cmd, args[0], false)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: .regrid/config.yaml or ~/.config/regrid/config.yaml)")
	flags.StringVar(&a.logFile, "debug", "", "write a debug log to this file")
	a.source.register(flags)
	a.remap.register(flags)

	rootCmd.AddCommand(
		a.newShowCmd(),
		a.newExportCmd(),
		a.newBrowseCmd(),
		a.newConfigCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.initLog(); err != nil {
		return err
	}
	if cmd.Name() == "init" && cmd.HasParent() && cmd.Parent().Name() == "config" {
		// The config file to create may not exist yet
		return nil
	}
	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) initLog() error {
	if a.logFile == "" || a.closeLog != nil {
		return nil
	}
	closeLog, err := log.InitWithTeaLog(a.logFile, "regrid")
	if err != nil {
		return err
	}
	a.closeLog = closeLog
	log.Info(log.CatConfig, "Debug logging enabled", "path", a.logFile)
	return nil
}

func (a *app) teardown() {
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
}
