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
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/oberth/graphics"
	"github.com/notargets/oberth/performance"
)

type PerformanceRun struct {
	Engine      performance.Engine
	Propellants []string
	OFRange     [2]float64
	Graph       bool
	PNGFile     string
}

// PerformanceCmd represents the performance command
var PerformanceCmd = &cobra.Command{
	Use:   "performance",
	Short: "Specific impulse over a range of mixture ratios",
	Long: `
Scans the specific impulse of a propellant combination over a range of
oxidizer to fuel ratios and reports the peak.

oberth performance -p LOX,LH2 --ofMin 3 --ofMax 8`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		pr := &PerformanceRun{
			Engine: performance.NewEngine(
				viper.GetFloat64("performance.pc"),
				viper.GetFloat64("performance.pe")),
		}
		if pr.Propellants, err = cmd.Flags().GetStringSlice("propellants"); err != nil {
			return
		}
		pr.OFRange = [2]float64{
			viper.GetFloat64("performance.ofMin"),
			viper.GetFloat64("performance.ofMax"),
		}
		pr.Graph, _ = cmd.Flags().GetBool("graph")
		pr.PNGFile, _ = cmd.Flags().GetString("png")
		return RunPerformance(pr)
	},
}

func init() {
	rootCmd.AddCommand(PerformanceCmd)
	var (
		eng = performance.NewEngine()
	)
	PerformanceCmd.Flags().Float64("pc", eng.ChamberPressure, "chamber pressure, Pa")
	PerformanceCmd.Flags().Float64("pe", eng.ExitPressure, "exit pressure, Pa")
	PerformanceCmd.Flags().StringSliceP("propellants", "p", []string{"LOX", "RP-1"}, "propellant combination")
	PerformanceCmd.Flags().Float64("ofMin", 1.5, "lowest mixture ratio of the scan")
	PerformanceCmd.Flags().Float64("ofMax", 4.0, "highest mixture ratio of the scan")
	PerformanceCmd.Flags().BoolP("graph", "g", false, "display the Isp curve in a chart window")
	PerformanceCmd.Flags().String("png", "", "write the Isp curve to a PNG file")
	bindFlags(PerformanceCmd, "pc", "pe", "ofMin", "ofMax")
}

func RunPerformance(pr *PerformanceRun) (err error) {
	var s performance.Scan
	if s, err = pr.Engine.ScanMixtureRatio(pr.Propellants, pr.OFRange); err != nil {
		return
	}
	fmt.Printf("%8.5g\t\t= Chamber Pressure (Pa)\n", pr.Engine.ChamberPressure)
	fmt.Printf("%8.5g\t\t= Exit Pressure (Pa)\n", pr.Engine.ExitPressure)
	s.Print()
	if len(pr.PNGFile) != 0 {
		if err = graphics.SaveIspPNG(s, pr.PNGFile); err != nil {
			return
		}
		log.WithField("file", pr.PNGFile).Info("wrote Isp plot")
	}
	if pr.Graph {
		graphics.PlotIsp(s)
		waitForInterrupt()
	}
	return
}
