package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/dayboard/internal/storage"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every stored task to stdout",
		Long: `Writes the whole collection. The json format is byte-for-byte the stored
blob, so it can be pasted into another dayboard or the browser widget.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			tasks, err := a.store.Load(cmd.Context())
			if err != nil {
				return err
			}
			var out []byte
			switch format {
			case "json":
				out, err = storage.EncodeTasks(tasks)
				out = append(out, '\n')
			case "yaml", "yml":
				out, err = yaml.Marshal(tasks)
			default:
				return fmt.Errorf("unknown export format %q (json, yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("encode %s: %w", format, err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	return cmd
}
