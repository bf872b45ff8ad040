package main

import (
	"fmt"

	"github.com/limbo/tabebui/pkg/entity"
	"github.com/spf13/cobra"
)

type partView struct {
	entity.Part
	Eaten bool `json:"eaten"`
}

func newPartsCmd(opts *rootOptions) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "parts [animal]",
		Short: "List catalog parts and mark the ones you have eaten",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, userID, err := opts.resolve()
			if err != nil {
				return err
			}
			animals := a.serv.Catalog().AnimalTypes()
			if len(args) == 1 {
				animals = []entity.AnimalType{entity.AnimalType(args[0])}
			}
			eaten, err := a.serv.EatenParts(cmd.Context(), userID)
			if err != nil {
				return err
			}
			views := make([]partView, 0)
			for _, animal := range animals {
				parts, err := a.serv.Catalog().ListPartsByCategory(animal, entity.PartCategory(category))
				if err != nil {
					return err
				}
				for _, p := range parts {
					views = append(views, partView{Part: p, Eaten: eaten[p.ID]})
				}
			}
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return printJSON(out, views)
			}
			var current entity.AnimalType
			for _, v := range views {
				if v.Animal != current {
					current = v.Animal
					fmt.Fprintf(out, "== %s ==\n", current)
				}
				mark := "[ ]"
				if v.Eaten {
					mark = "[x]"
				}
				fmt.Fprintf(out, "%s %-11s %s (%s) %s %s, %s\n", mark, v.ID, v.Name, v.NameKana, stars(v.Rarity), v.Rarity, v.Category)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list parts of this category (meat or offal)")
	return cmd
}
