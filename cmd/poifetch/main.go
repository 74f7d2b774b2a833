// This file is part of poifetch (https://github.com/riskatlas/poifetch).
// Copyright (C) 2025 the poifetch authors (https://github.com/riskatlas).
//
// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the
// Free Software Foundation, version 3 of the License.
//
// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU Affero General Public License for more
// details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/riskatlas/poifetch/internal/config"
	"github.com/riskatlas/poifetch/pkg/export"
	"github.com/riskatlas/poifetch/pkg/geo"
	"github.com/riskatlas/poifetch/pkg/overpass"
	"github.com/riskatlas/poifetch/pkg/poi"
)

var rootCmd = &cobra.Command{
	Use:   "poifetch",
	Short: "Download points of interest from OpenStreetMap",
	Long:  `Query the Overpass API for POIs within a bounding box and write them to GeoJSON, CSV or KML files.`,
	Run: func(cmd *cobra.Command, args []string) {
		tStart := time.Now()

		if list, _ := cmd.Flags().GetBool("list-categories"); list {
			for _, c := range overpass.Categories() {
				fmt.Printf("%-20s %s=%s\n", c.Name, c.Key, c.Value)
			}
			return
		}

		cfg := loadConfig(cmd)
		if cfg == nil {
			return
		}
		if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
			log.SetLevel(lvl)
		}

		categories, _ := cmd.Flags().GetStringArray("category")
		input, _ := cmd.Flags().GetString("input")
		bboxArg, _ := cmd.Flags().GetString("bbox")

		var bbox geo.BoundingBox
		haveBBox := bboxArg != ""
		if haveBBox {
			var err error
			bbox, err = geo.ParseBoundingBox(bboxArg)
			if err == nil {
				err = bbox.Validate()
			}
			if err != nil {
				log.WithError(err).Error("invalid bounding box")
				return
			}
		}

		// get a response from the network or a saved file
		var resp *overpass.Response
		var err error
		switch {
		case input != "":
			resp, err = overpass.LoadResponse(input)
		case !haveBBox:
			log.Error("need --bbox (or --input for offline mode)")
			return
		case len(categories) == 0:
			log.Error("need at least one --category")
			return
		case len(categories) == 1:
			resp, err = newClient(cfg).Fetch(bbox, categories[0], cfg.MaxAttempts)
		default:
			resp, err = newClient(cfg).FetchBatch(bbox, categories)
		}
		if err != nil {
			log.WithError(err).Error("could not get POI data")
			return
		}
		timeTrack(tStart, "download")

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = "pois." + cfg.Format
		}

		if len(categories) > 1 {
			// batch: one file per category bucket, scanned in table order
			buckets := overpass.ParseBatchFeatures(resp)
			if len(buckets) == 0 {
				log.Warn("no features matched any category")
				return
			}
			total := 0
			for _, c := range overpass.Categories() {
				features, ok := buckets[c.Name]
				if !ok {
					continue
				}
				total += len(features)
				logStats(c.Name, features, bbox, haveBBox)

				path := categoryPath(out, c.Name)
				if err := writeOutput(path, cfg.Format, features); err != nil {
					log.WithError(err).Errorf("could not write %s", path)
					return
				}
				log.Infof("wrote %s (%d features)", path, len(features))
			}
			log.Infof("done: %d features across %d categories", total, len(buckets))
		} else {
			features := overpass.ParseFeatures(resp)
			if len(features) == 0 {
				log.Warn("no features found")
				return
			}
			label := "pois"
			if len(categories) == 1 {
				label = categories[0]
			}
			logStats(label, features, bbox, haveBBox)

			if err := writeOutput(out, cfg.Format, features); err != nil {
				log.WithError(err).Errorf("could not write %s", out)
				return
			}
			log.Infof("wrote %s (%d features)", out, len(features))
		}

		timeTrack(tStart, "total")
	},
}

func loadConfig(cmd *cobra.Command) *config.Config {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.WithError(err).Error("could not load config")
		return nil
	}

	// flags win over config file and environment
	if cmd.Flags().Changed("endpoint") {
		cfg.Endpoint, _ = cmd.Flags().GetString("endpoint")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	if cmd.Flags().Changed("batch-timeout") {
		cfg.BatchTimeout, _ = cmd.Flags().GetDuration("batch-timeout")
	}
	if cmd.Flags().Changed("max-attempts") {
		cfg.MaxAttempts, _ = cmd.Flags().GetInt("max-attempts")
	}
	if cmd.Flags().Changed("format") {
		cfg.Format, _ = cmd.Flags().GetString("format")
	}

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Error("invalid configuration")
		return nil
	}
	return cfg
}

func newClient(cfg *config.Config) *overpass.Client {
	client := overpass.NewClient(cfg.Timeout, cfg.BatchTimeout)
	client.Endpoint = cfg.Endpoint
	return client
}

func logStats(label string, features []poi.Feature, bbox geo.BoundingBox, haveBBox bool) {
	if !haveBBox {
		// offline mode has no selection box, fall back to the data envelope
		if fb, ok := geo.FeatureBounds(features); ok {
			bbox = fb
		}
	}
	s := geo.Collect(features, bbox)
	log.Infof("%s: %d POIs in %.3f km² (%.2f per km²)", label, s.Total, s.AreaKm2, s.Density)
}

func writeOutput(path, format string, features []poi.Feature) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "geojson":
		return export.WriteGeoJSON(f, features)
	case "csv":
		return export.WriteCSV(f, features)
	case "kml":
		return export.WriteKML(f, docName(path), features)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// docName derives the KML document name from the output filename.
func docName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// categoryPath puts the category into the filename: pois.kml plus
// "gas station" becomes pois-gas-station.kml.
func categoryPath(path, category string) string {
	ext := filepath.Ext(path)
	slug := strings.ReplaceAll(category, " ", "-")
	return strings.TrimSuffix(path, ext) + "-" + slug + ext
}

// from: https://coderwall.com/p/cp5fya/measuring-execution-time-in-go
func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Printf("> %s took %s", name, elapsed)
}

func main() {
	rootCmd.PersistentFlags().StringP("bbox", "b", "", "bounding box as south,west,north,east (WGS84 degrees)")
	rootCmd.PersistentFlags().StringArrayP("category", "c", []string{}, "POI category, repeat for a batched multi-category query")
	rootCmd.PersistentFlags().StringP("input", "i", "", "saved Overpass JSON file to parse instead of downloading")
	rootCmd.PersistentFlags().StringP("out", "o", "", "output file (default pois.<format>)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "output format: geojson, csv or kml")
	rootCmd.PersistentFlags().Duration("timeout", 0, "wait budget per single-category attempt")
	rootCmd.PersistentFlags().Duration("batch-timeout", 0, "wait budget for the batch request")
	rootCmd.PersistentFlags().Int("max-attempts", 0, "attempt budget for single-category downloads")
	rootCmd.PersistentFlags().String("endpoint", "", "Overpass interpreter URL")
	rootCmd.PersistentFlags().String("config", "", "config file (default ./poifetch.yaml)")
	rootCmd.PersistentFlags().Bool("list-categories", false, "print the known categories and exit")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
