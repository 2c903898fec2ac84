/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/oberth/graphics"
	"github.com/notargets/oberth/nozzle"
)

type NozzleRun struct {
	Config   nozzle.Config
	Graph    bool
	PNGFile  string
	JSONFile string // "-" writes to stdout
}

// NozzleCmd represents the nozzle command
var NozzleCmd = &cobra.Command{
	Use:   "nozzle",
	Short: "Bell nozzle contour and characteristic mesh",
	Long: `
Generates the divergent wall contour of a bell nozzle for an expansion ratio
and connects the throat center to evenly spaced wall stations.

oberth nozzle -e 25 -l 20 --json nozzle.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		nr := &NozzleRun{
			Config: nozzle.Config{
				ExpansionRatio: viper.GetFloat64("nozzle.expansionRatio"),
				Gamma:          viper.GetFloat64("nozzle.gamma"),
				Lines:          viper.GetInt("nozzle.lines"),
				Geometry: nozzle.Geometry{
					ThroatRadius: viper.GetFloat64("nozzle.throatRadius"),
					Samples:      viper.GetInt("nozzle.samples"),
				},
			},
		}
		nr.Graph, _ = cmd.Flags().GetBool("graph")
		nr.PNGFile, _ = cmd.Flags().GetString("png")
		nr.JSONFile, _ = cmd.Flags().GetString("json")
		return RunNozzle(nr)
	},
}

func init() {
	rootCmd.AddCommand(NozzleCmd)
	var (
		nc = nozzle.DefaultConfig()
	)
	NozzleCmd.Flags().Float64P("expansionRatio", "e", nc.ExpansionRatio, "exit to throat area ratio, at least 1")
	NozzleCmd.Flags().Float64("gamma", nc.Gamma, "ratio of specific heats, used for the exit flow estimate")
	NozzleCmd.Flags().IntP("lines", "l", nc.Lines, "number of characteristic lines")
	NozzleCmd.Flags().IntP("samples", "s", nc.Samples, "number of wall contour samples")
	NozzleCmd.Flags().Float64("throatRadius", nc.ThroatRadius, "throat radius, sets the length unit")
	NozzleCmd.Flags().BoolP("graph", "g", false, "display the contour and mesh in a chart window")
	NozzleCmd.Flags().String("png", "", "write the contour and mesh to a PNG file")
	NozzleCmd.Flags().String("json", "", "write the contour and mesh as JSON to a file, - for stdout")
	bindFlags(NozzleCmd, "expansionRatio", "gamma", "lines", "samples", "throatRadius")
}

func RunNozzle(nr *NozzleRun) (err error) {
	var r nozzle.Result
	if r, err = nozzle.Solve(nr.Config); err != nil {
		return
	}
	r.Print()
	if len(nr.JSONFile) != 0 {
		if err = writeJSONFile(nr.JSONFile, r.Wire()); err != nil {
			return
		}
	}
	if len(nr.PNGFile) != 0 {
		if err = graphics.SaveNozzlePNG(r, nr.PNGFile); err != nil {
			return
		}
		log.WithField("file", nr.PNGFile).Info("wrote nozzle plot")
	}
	if nr.Graph {
		graphics.PlotNozzle(r)
		waitForInterrupt()
	}
	return
}

func writeJSONFile(path string, v interface{}) (err error) {
	var data []byte
	if data, err = json.MarshalIndent(v, "", "  "); err != nil {
		return
	}
	if path == "-" {
		_, err = fmt.Println(string(data))
		return
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return
	}
	log.WithField("file", path).Info("wrote json")
	return
}

// waitForInterrupt keeps chart windows open until the user interrupts
func waitForInterrupt() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	fmt.Println("Press Ctrl-C to exit")
	<-ctx.Done()
}
