package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"storedesk/internal/console"
	applog "storedesk/internal/log"
)

var (
	priceProductID int64
	priceValue     float64
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Update smartphone prices",
	Long: `With --id and --price, set that product's price if it is a smartphone
(other categories are left unchanged). Without them, raise every smartphone
price by 10%.`,
	Args: cobra.NoArgs,
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().Int64Var(&priceProductID, "id", 0, "product id")
	priceCmd.Flags().Float64Var(&priceValue, "price", 0, "new price")
	rootCmd.AddCommand(priceCmd)
}

func runPrice(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx := cmd.Context()
	if err := sess.Store.InitSchema(ctx); err != nil {
		return err
	}
	n, err := sess.Store.Pricing.UpdatePrice(ctx, priceProductID, priceValue)
	if err != nil {
		return err
	}
	applog.Audit("price.update", map[string]any{"product_id": priceProductID, "price": priceValue, "rows": n})
	fmt.Fprintln(cmd.OutOrStdout(), console.PriceUpdated)
	return nil
}
