package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pocamind/deep-go/config"
	"github.com/pocamind/deep-go/shrine"
	"github.com/pocamind/deep-go/stat"
	"github.com/pocamind/deep-go/statmap"
)

var (
	shrinePreFlags    []string
	shrineRacialFlags []string
	shrinePresetName  string
)

var shrineCmd = &cobra.Command{
	Use:   "shrine",
	Short: "Run the shrine-order stat redistribution algorithm",
	RunE: func(cmd *cobra.Command, args []string) error {
		pre, err := parseStatAssignments(shrinePreFlags)
		if err != nil {
			return err
		}

		racial, err := parseStatAssignments(shrineRacialFlags)
		if err != nil {
			return err
		}

		doc, err := config.LoadOrCreateSettings(false)
		if err != nil {
			return err
		}

		if shrinePresetName != "" {
			preset, ok := doc.Presets.Lookup(shrinePresetName)
			if !ok {
				return fmt.Errorf("no racial preset named %q", shrinePresetName)
			}
			racial = preset
		}

		out := shrine.Order(pre, racial, doc.Settings.ShrineCaps())
		for _, s := range out.Stats() {
			fmt.Printf("%s: %d\n", s.ShortName(), out.Get(s))
		}
		fmt.Printf("remaining: %d\n", doc.Settings.Remaining(out))
		return nil
	},
}

func init() {
	shrineCmd.Flags().StringArrayVar(&shrinePreFlags, "pre", nil, "stat=value pair in the desired allocation (repeatable)")
	shrineCmd.Flags().StringArrayVar(&shrineRacialFlags, "racial", nil, "stat=value pair in the racial baseline (repeatable)")
	shrineCmd.Flags().StringVar(&shrinePresetName, "preset", "", "named racial preset from the settings document, overrides --racial")
	rootCmd.AddCommand(shrineCmd)
}

func parseStatAssignments(assignments []string) (statmap.StatMap, error) {
	sm := statmap.New()
	for _, assignment := range assignments {
		name, valueStr, ok := strings.Cut(assignment, "=")
		if !ok {
			return statmap.StatMap{}, fmt.Errorf("invalid stat assignment %q, expected STAT=value", assignment)
		}

		s, ok := stat.FromShortName(name)
		if !ok {
			return statmap.StatMap{}, fmt.Errorf("unrecognized stat %q", name)
		}

		value, err := strconv.Atoi(valueStr)
		if err != nil {
			return statmap.StatMap{}, errors.Wrapf(err, "invalid value in %q", assignment)
		}

		sm.Set(s, value)
	}
	return sm, nil
}
