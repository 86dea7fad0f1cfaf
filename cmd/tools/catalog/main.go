package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/david/pathly/internal/catalog"
	"github.com/david/pathly/internal/models"
	"github.com/david/pathly/internal/pathway"
	"github.com/david/pathly/internal/seed"
	"github.com/david/pathly/internal/tokens"
)

var seedFile string

func main() {
	root := &cobra.Command{
		Use:          "catalog",
		Short:        "Inspect the Pathly demo dataset",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&seedFile, "seed", "", "seed YAML file (defaults to the embedded dataset)")

	root.AddCommand(searchCmd(), tiersCmd(), rewardsCmd(), pathwayCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func dataset() *seed.Dataset {
	var (
		ds  *seed.Dataset
		err error
	)
	if seedFile != "" {
		ds, err = seed.LoadFile(seedFile)
	} else {
		ds, err = seed.Load()
	}
	if err != nil {
		log.Fatal(err)
	}
	return ds
}

func newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(header)
	return t
}

func searchCmd() *cobra.Command {
	var query, category string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter opportunities by text and category",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := models.ParseCategory(category)
			if err != nil {
				return err
			}
			res := catalog.New(dataset().Catalog).Search(query, cat)

			t := newTable(table.Row{"ID", "Title", "Category", "Provider", "Amount", "Deadline"})
			for _, o := range res.Opportunities {
				t.AppendRow(table.Row{o.ID, o.Title, o.Category, o.Provider, o.Amount, o.Deadline})
			}
			t.AppendFooter(table.Row{"", fmt.Sprintf("Showing %d opportunities", res.Total)})
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive text matched against title and provider")
	cmd.Flags().StringVarP(&category, "category", "c", "all", "all, scholarship or certification")
	return cmd
}

func tiersCmd() *cobra.Command {
	var balance int
	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Show discount tiers unlocked at a balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := dataset()
			if !cmd.Flags().Changed("balance") {
				balance = ds.User.Tokens
			}
			t := newTable(table.Row{"Tier", "Discount", "Requires", "Status"})
			for _, ts := range tokens.EvaluateTiers(ds.Tiers, balance) {
				status := "Unlocked"
				if !ts.Unlocked {
					status = fmt.Sprintf("%d more needed", ts.Remaining)
				}
				t.AppendRow(table.Row{ts.Label, fmt.Sprintf("%d%%", ts.DiscountPercent), ts.TokensRequired, status})
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().IntVarP(&balance, "balance", "b", 0, "token balance (defaults to the demo user's)")
	return cmd
}

func rewardsCmd() *cobra.Command {
	var balance int
	cmd := &cobra.Command{
		Use:   "rewards",
		Short: "Show which rewards a balance can redeem",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := dataset()
			if !cmd.Flags().Changed("balance") {
				balance = ds.User.Tokens
			}
			t := newTable(table.Row{"ID", "Reward", "Cost", "Redeemable"})
			for _, rs := range tokens.EvaluateRewards(ds.Rewards, balance) {
				t.AppendRow(table.Row{rs.ID, rs.Title, rs.TokensRequired, rs.CanRedeem})
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().IntVarP(&balance, "balance", "b", 0, "token balance (defaults to the demo user's)")
	return cmd
}

func pathwayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pathway",
		Short: "Summarize the learning pathway",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := dataset()
			sum := pathway.New(ds.Pathway.Steps, ds.Pathway.Preview, ds.Pathway.HoursPerWeek).Summary()

			t := newTable(table.Row{"Step", "Type", "Weeks", "Status", "Progress", "Action"})
			for _, st := range sum.Steps {
				t.AppendRow(table.Row{st.Title, st.Type, st.DurationWeeks, st.Status, fmt.Sprintf("%d%%", st.Progress), st.Action})
			}
			t.AppendFooter(table.Row{
				fmt.Sprintf("%d of %d completed", sum.Completed, sum.Total),
				"", sum.EstimatedWeeks, "", fmt.Sprintf("%d%%", sum.OverallProgress), "",
			})
			t.Render()
			return nil
		},
	}
}
