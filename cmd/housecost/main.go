package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/Simplici0/housecost/internal/savedconfig"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "housecost",
		Short:        "Estimate house construction cost from a configuration",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(calcCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(savedCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func calcCmd() *cobra.Command {
	var example, asJSON bool

	cmd := &cobra.Command{
		Use:   "calc [config.yaml]",
		Short: "Compute and print the area breakdown and total cost",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(args, example)
			if err != nil {
				return err
			}
			return runCalc(cmd.OutOrStdout(), cfg, asJSON)
		},
	}

	cmd.Flags().BoolVar(&example, "example", false, "use the worked example instead of a file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func exportCmd() *cobra.Command {
	var example bool
	var formatName, out string

	cmd := &cobra.Command{
		Use:   "export [config.yaml]",
		Short: "Write the estimate as csv, xls, doc, xlsx, pdf or png",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(args, example)
			if err != nil {
				return err
			}
			path, err := runExport(cfg, formatName, out)
			if err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&example, "example", false, "use the worked example instead of a file")
	cmd.Flags().StringVarP(&formatName, "format", "f", "csv", "export format")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (defaults to the format's file name)")
	return cmd
}

func savedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved configurations in the configured store",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved configurations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd.Context(), func(store *savedconfig.Store) error {
				return runSavedList(cmd.Context(), cmd.OutOrStdout(), store)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show ID",
		Short: "Print the estimate of a saved configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(store *savedconfig.Store) error {
				return runSavedShow(cmd.Context(), cmd.OutOrStdout(), store, args[0])
			})
		},
	})

	var name string
	save := &cobra.Command{
		Use:   "save [config.yaml]",
		Short: "Save a configuration under a name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(args, false)
			if err != nil {
				return err
			}
			return withStore(cmd.Context(), func(store *savedconfig.Store) error {
				return runSavedSave(cmd.Context(), cmd.OutOrStdout(), store, name, cfg)
			})
		},
	}
	save.Flags().StringVarP(&name, "name", "n", "", "name of the saved configuration")
	cmd.AddCommand(save)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(store *savedconfig.Store) error {
				return runSavedDelete(cmd.Context(), cmd.OutOrStdout(), store, args[0])
			})
		},
	})

	return cmd
}
