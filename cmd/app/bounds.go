package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osse101/MarketBot_Go/internal/domain"
)

var boundsCmd = &cobra.Command{
	Use:   "bounds",
	Short: "Manage per-item price bounds",
}

var boundsSetHashName string

var boundsSetCmd = &cobra.Command{
	Use:   "set <item-id> <floor> <ceiling>",
	Short: "Set the floor and ceiling for one item (fixed-point, price x 1000)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		floor, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid floor %q: %w", args[1], err)
		}
		ceiling, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ceiling %q: %w", args[2], err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, pool, err := openBounds(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if pool != nil {
			defer pool.Close()
		}

		saved, err := svc.Save(cmd.Context(), domain.PriceBounds{
			ItemID:       args[0],
			HashName:     boundsSetHashName,
			FloorPrice:   floor,
			CeilingPrice: ceiling,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s floor=%d ceiling=%d\n", saved.ItemID, saved.FloorPrice, saved.CeilingPrice)
		return nil
	},
}

func init() {
	boundsSetCmd.Flags().StringVar(&boundsSetHashName, "hash-name", "", "market hash name to store with the bounds")
	boundsCmd.AddCommand(boundsSetCmd)
}
