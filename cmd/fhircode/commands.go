package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ehr/fhircode/internal/codegen"
	"github.com/ehr/fhircode/internal/domain/terminology"
	"github.com/ehr/fhircode/internal/platform/db"
	"github.com/ehr/fhircode/internal/platform/fhir"
	"github.com/ehr/fhircode/migrations"
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the code system schema",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()
			if rt.pool == nil {
				return fmt.Errorf("DATABASE_URL is required for migrations")
			}
			n, err := db.NewMigrator(rt.pool, migrations.FS).Up(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()
			if rt.pool == nil {
				return fmt.Errorf("DATABASE_URL is required for migrations")
			}
			statuses, err := db.NewMigrator(rt.pool, migrations.FS).Status(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tNAME\tSTATUS\tAPPLIED AT")
			for _, s := range statuses {
				state, at := "pending", "-"
				if s.Applied {
					state = "applied"
					if s.AppliedAt != nil {
						at = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Fprintf(tw, "%03d\t%s\t%s\t%s\n", s.Version, s.Name, state, at)
			}
			return tw.Flush()
		},
	})
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE...",
		Short: "Import CodeSystem resources or Bundles from JSON files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()
			imported, err := rt.svc.ImportFiles(cmd.Context(), args...)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), imported)
		},
	}
}

func lookupCmd() *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   "lookup SYSTEM CODE",
		Short: "Look up a code in a code system",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()
			res, err := rt.svc.Lookup(cmd.Context(), terminology.LookupRequest{
				System:  args[0],
				Version: version,
				Code:    args[1],
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res.Parameters())
		},
	}
	cmd.Flags().StringVar(&version, "version", "", "required code system version")
	return cmd
}

func validateCmd() *cobra.Command {
	var display, valueSet string
	cmd := &cobra.Command{
		Use:   "validate SYSTEM CODE",
		Short: "Check that a code belongs to a code system or value set",
		Long: "Check that a code belongs to a code system. With --value-set, SYSTEM\n" +
			"may be empty and the code is checked against the value set instead.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			var res *fhir.ValidateCodeResult
			if valueSet != "" {
				res, err = rt.svc.ValidateValueSetCode(cmd.Context(), terminology.ValueSetValidateRequest{
					URL: valueSet, System: args[0], Code: args[1], Display: display,
				})
			} else {
				res, err = rt.svc.ValidateCode(cmd.Context(), terminology.ValidateCodeRequest{
					System: args[0], Code: args[1], Display: display,
				})
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res.Parameters())
		},
	}
	cmd.Flags().StringVar(&display, "display", "", "display text to check")
	cmd.Flags().StringVar(&valueSet, "value-set", "", "validate against this value set")
	return cmd
}

func listCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known code systems",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()
			// limit 0 falls back to the service default; ask for everything.
			systems, _, err := rt.svc.ListCodeSystems(cmd.Context(), terminology.ListFilter{Name: name}, 1<<20, 0)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tURL\tCODES\tSTATUS")
			for _, s := range systems {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.Name, s.URL, s.Count, s.Status)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "filter by name prefix")
	return cmd
}

func generateCmd() *cobra.Command {
	var manifest, out string
	var inputs []string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go bindings for code systems listed in a manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := codegen.LoadManifest(manifest)
			if err != nil {
				return err
			}
			sources, err := codegen.LoadSources(inputs...)
			if err != nil {
				return err
			}
			files, err := codegen.Generate(m, sources)
			if err != nil {
				return err
			}
			if err := codegen.WriteFiles(out, files); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "generated %d file(s) in %s\n", len(files), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&manifest, "manifest", "codegen.yaml", "manifest listing the code systems to bind")
	cmd.Flags().StringArrayVar(&inputs, "input", nil, "CodeSystem or Bundle JSON file (repeatable)")
	cmd.Flags().StringVar(&out, "out", ".", "output directory")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
