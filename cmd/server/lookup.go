package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/warp/employee-portal/api"
)

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <id>",
		Short: "Print one employee's record as JSON",
		Long: `Fetch every sheet once, build the record for the given employee ID
and print it in the same shape the HTTP API returns.

The ID is used exactly as given; quote it if it has spaces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.lookup(cmd, args[0])
		},
	}
}

func (a *app) lookup(cmd *cobra.Command, id string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	agg, err := a.newService(nil).Lookup(ctx, id)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(api.ToEmployeeDTO(agg))
}
