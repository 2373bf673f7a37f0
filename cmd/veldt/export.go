package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/veldt-dev/veldt/pkg/export"
	"github.com/veldt-dev/veldt/pkg/reactive"
)

func exportCmd() *cobra.Command {
	var (
		outDir string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a static HTML snapshot of the demo component",
		RunE: func(cmd *cobra.Command, args []string) error {
			state := reactive.NewDictionary(demoState())
			comp, opts := newDemo(state)

			e := export.New(export.FileStore{Dir: outDir})
			return e.Snapshot(context.Background(), name, comp, opts)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
	cmd.Flags().StringVar(&name, "name", "index.html", "snapshot file name")
	return cmd
}
