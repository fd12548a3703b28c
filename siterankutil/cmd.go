/*
Copyright © 2025 the SiteRank authors.
This file is part of SiteRank.

SiteRank is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SiteRank is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SiteRank.  If not, see <http://www.gnu.org/licenses/>.
*/

package siterankutil

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gridwatt/siterank"
	"github.com/gridwatt/siterank/params"
)

var (
	configFile string
	outputFile string
	persona    string
	limit      int
	source     string
	enrich     bool
)

// Root is the main command of the siterank tool.
var Root = &cobra.Command{
	Use:   "siterank",
	Short: "Rank energy and data-center sites against infrastructure layers",
	Long: `siterank scores candidate sites against substation, transmission,
fiber, internet-exchange, and water layers, producing persona-weighted
investment ratings as GeoJSON.`,
	SilenceUsage: true,
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score projects from the feature store and write GeoJSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, err := newEngine()
		if err != nil {
			return err
		}
		if persona == "" {
			persona = cfg.Persona
		}
		if source == "" {
			source = cfg.SourceTable
		}
		fc, err := eng.ScoreProjects(cmd.Context(), siterank.ProjectsRequest{
			Persona:     persona,
			Limit:       limit,
			SourceTable: source,
			EnrichTNUoS: enrich,
		})
		if err != nil {
			return err
		}
		return writeJSON(outputFile, fc)
	},
}

var sitesCmd = &cobra.Command{
	Use:   "sites [sites.json]",
	Short: "Score user-submitted sites from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var sites []siterank.Site
		if err := json.Unmarshal(data, &sites); err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}
		eng, _, err := newEngine()
		if err != nil {
			return err
		}
		resp, err := eng.ScoreSites(cmd.Context(), sites, persona)
		if err != nil {
			return err
		}
		return writeJSON(outputFile, resp)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare persona-weighted and TOPSIS rankings",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}
		cmp, err := eng.CompareScoringSystems(cmd.Context(), limit, persona)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "SITE\tRATING\tRANK\tTOPSIS\tRANK\tDIFF")
		for _, p := range cmp.Projects {
			fmt.Fprintf(w, "%s\t%.1f\t%d\t%.3f\t%d\t%+d\n",
				p.SiteName, p.PersonaRating, p.PersonaRank,
				p.TOPSISCloseness, p.TOPSISRank, p.RankDifference)
		}
		return w.Flush()
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Load the infrastructure catalog and print layer counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}
		counts, loadedAt, err := eng.CatalogInfo(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("loaded at %s\n", loadedAt.Format("2006-01-02 15:04:05"))
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		for layer, n := range counts {
			fmt.Fprintf(w, "%s\t%d\n", layer, n)
		}
		return w.Flush()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the scoring algorithm version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(params.AlgorithmVersion)
	},
}

func init() {
	Root.PersistentFlags().StringVar(&configFile, "config", "", "path to TOML configuration file")
	Root.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file (default stdout)")
	Root.PersistentFlags().StringVarP(&persona, "persona", "p", "", "operator persona")
	Root.PersistentFlags().IntVarP(&limit, "limit", "n", 100, "maximum records to fetch")
	scoreCmd.Flags().StringVar(&source, "source", "", "source table (renewable_projects or tec_connections)")
	scoreCmd.Flags().BoolVar(&enrich, "tnuos", false, "run top-25 TNUoS zone enrichment")
	Root.AddCommand(scoreCmd, sitesCmd, compareCmd, catalogCmd, versionCmd)
}

func newEngine() (*siterank.Engine, *Config, error) {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return nil, nil, err
	}
	log := logrus.StandardLogger()
	store, err := cfg.OpenStore(context.Background(), log)
	if err != nil {
		return nil, nil, err
	}
	return siterank.NewEngine(store, cfg.CacheTTL(), log), cfg, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
