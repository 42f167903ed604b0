package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/oarrow/go/oarrow/pkg/logging"
	"github.com/provide-io/oarrow/go/oarrow/pkg/oarrow"
	"github.com/provide-io/oarrow/go/oarrow/pkg/paramset"
)

type rootOptions struct {
	logLevel    string
	versionFlag bool
}

func (o *rootOptions) logger(cmd *cobra.Command) hclog.Logger {
	return logging.NewLogger("oarrow-ids", logging.GetLogLevel(o.logLevel), cmd.ErrOrStderr())
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "oarrow-ids",
		Short:         "Inspect the arrow primitive parameter identifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.versionFlag {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	root.Flags().BoolVarP(&opts.versionFlag, "version", "V", false, "Show version information")

	root.AddCommand(
		newListCmd(),
		newLookupCmd(),
		newNameCmd(),
		newGroupCmd(),
		newCheckCmd(opts),
		newHeaderCmd(opts),
		newParamsCmd(opts),
	)
	return root
}

func newListCmd() *cobra.Command {
	var (
		asJSON bool
		group  string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every identifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			descs := oarrow.Descriptors()
			if group != "" {
				g, ok := oarrow.ParseGroup(group)
				if !ok {
					return fmt.Errorf("unknown group %q (root, shape, base, tip, bevel)", group)
				}
				filtered := descs[:0]
				for _, d := range descs {
					if d.Group == g {
						filtered = append(filtered, d)
					}
				}
				descs = filtered
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, descs)
			}
			for _, d := range descs {
				fmt.Fprintf(out, "%-26s %8d  %-5s  %-5s  %s\n", d.Name, int32(d.ID), d.Group, d.Kind, d.Path())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print descriptors as JSON")
	cmd.Flags().StringVar(&group, "group", "", "Only list one group (root, shape, base, tip, bevel)")
	return cmd
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup NAME...",
		Short: "Print the code of each name or document path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				id, err := oarrow.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", id, int32(id))
			}
			return nil
		},
	}
}

func newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name CODE...",
		Short: "Print the symbolic name of each code",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				id, err := parseCode(arg)
				if err != nil {
					return err
				}
				d, err := oarrow.Describe(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", int32(id), d.Name)
			}
			return nil
		},
	}
}

func newGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "group CODE...",
		Short: "Classify codes by numeric band",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				id, err := parseCode(arg)
				if err != nil {
					return err
				}
				note := ""
				switch {
				case oarrow.IsGroupMarker(id):
					note = "\tmarker"
				case !oarrow.IsKnown(id):
					note = "\tundeclared"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s%s\n", int32(id), oarrow.GroupOf(id), note)
			}
			return nil
		},
	}
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Audit the registry for duplicate, out-of-band or unrecoverable codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd)
			logger.Debug("🔍 Auditing registry", "identifiers", len(oarrow.IDs()))

			if err := oarrow.Audit(); err != nil {
				logger.Error("❌ Registry audit failed", "error", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ registry OK (%d identifiers)\n", len(oarrow.IDs()))
			return nil
		},
	}
}

func newHeaderCmd(opts *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "header",
		Short: "Write the C description header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd)
			if output == "" {
				return oarrow.WriteHeader(cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create header %s: %w", output, err)
			}
			if err := oarrow.WriteHeader(f); err != nil {
				f.Close()
				return fmt.Errorf("failed to write header %s: %w", output, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close header %s: %w", output, err)
			}
			logger.Info("📝 Header written", "path", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (defaults to stdout)")
	return cmd
}

func newParamsCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "params FILE",
		Short: "Load an HCL parameter document and print its values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd)
			set, err := paramset.LoadFile(args[0], logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				for _, id := range set.IDs() {
					v, _ := set.Get(id)
					fmt.Fprintf(out, "%-26s %6d  %v\n", id, int32(id), v)
				}
				return nil
			case "json":
				return writeJSON(out, set)
			case "hcl":
				return paramset.WriteHCL(out, set)
			default:
				return fmt.Errorf("unknown format %q (text, json, hcl)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, hcl)")
	return cmd
}

func parseCode(arg string) (oarrow.ParamID, error) {
	n, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code %q: %w", arg, err)
	}
	return oarrow.ParamID(n), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
