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
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/oberth/InputParameters"
	"github.com/notargets/oberth/cooling"
	"github.com/notargets/oberth/graphics"
	"github.com/notargets/oberth/mission"
	"github.com/notargets/oberth/nozzle"
	"github.com/notargets/oberth/performance"
)

// DesignReport collects the results of one design cycle
type DesignReport struct {
	Title       string            `json:"title"`
	Performance performance.Scan  `json:"performance"`
	Nozzle      nozzle.Wire       `json:"nozzle"`
	ThroatHg    float64           `json:"throat_hg"` // W/m^2 K
	Cooling     []cooling.Station `json:"cooling"`
	DeltaV      float64           `json:"delta_v"` // m/s
}

// DesignCmd represents the design command
var DesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Full engine design cycle from a YAML input file",
	Long: `
Runs the mixture ratio scan, nozzle contour and mesh, wall heat transfer and
staging estimate for the design case in the input file.

oberth design -I case.yaml -o out`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			dc     *InputParameters.DesignCase
			outDir string
		)
		icFile, _ := cmd.Flags().GetString("inputConditionsFile")
		if dc, err = processInput(icFile); err != nil {
			return
		}
		outDir, _ = cmd.Flags().GetString("outDir")
		_, err = RunDesign(dc, outDir)
		return
	},
}

func init() {
	rootCmd.AddCommand(DesignCmd)
	DesignCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for the design case")
	DesignCmd.Flags().StringP("outDir", "o", "", "directory for design.json and the nozzle and Isp plots")
}

func processInput(icFile string) (dc *InputParameters.DesignCase, err error) {
	if len(icFile) == 0 {
		fmt.Printf("Example File:%s\n", InputParameters.ExampleFile)
		return nil, fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
	}
	return InputParameters.ReadFile(icFile)
}

func RunDesign(dc *InputParameters.DesignCase, outDir string) (rep DesignReport, err error) {
	var (
		scan performance.Scan
		r    nozzle.Result
	)
	dc.Print()
	rep.Title = dc.Title
	fmt.Println("\n# Performance")
	if scan, err = dc.Engine().ScanMixtureRatio(dc.Propellants, dc.OFRange); err != nil {
		return
	}
	scan.Print()
	rep.Performance = scan

	fmt.Println("\n# Nozzle")
	if r, err = nozzle.Solve(dc.NozzleConfig()); err != nil {
		return
	}
	r.Print()
	rep.Nozzle = r.Wire()

	fmt.Println("\n# Cooling")
	if rep.ThroatHg, err = cooling.HeatTransferCoefficient(cooling.BartzInput{
		Diameter:        dc.ThroatDiameter,
		Mach:            1,
		ChamberPressure: dc.ChamberPressure,
		CStar:           dc.CStar,
		ThroatDiameter:  dc.ThroatDiameter,
		CurvatureRadius: dc.ThroatDiameter / 2,
		Gas:             dc.Gas,
	}); err != nil {
		return
	}
	if rep.Cooling, err = cooling.Profile(r.Contour, dc.ThroatDiameter, dc.ChamberPressure,
		dc.CStar, dc.Gas); err != nil {
		return
	}
	fmt.Printf("%10.4g\t\t= Throat hg (W/m^2 K)\n", rep.ThroatHg)
	last := rep.Cooling[len(rep.Cooling)-1]
	fmt.Printf("%10.4g\t\t= Exit hg (W/m^2 K)\n", last.Hg)

	if len(dc.Stages) != 0 {
		fmt.Println("\n# Staging")
		v := mission.Vehicle(dc.Stages)
		v.Print()
		rep.DeltaV = v.DeltaV()
	}

	if len(outDir) == 0 {
		return
	}
	if err = os.MkdirAll(outDir, 0755); err != nil {
		return
	}
	if err = writeJSONFile(filepath.Join(outDir, "design.json"), rep); err != nil {
		return
	}
	if err = graphics.SaveNozzlePNG(r, filepath.Join(outDir, "nozzle.png")); err != nil {
		return
	}
	if err = graphics.SaveIspPNG(scan, filepath.Join(outDir, "isp.png")); err != nil {
		return
	}
	log.WithField("dir", outDir).Info("wrote design outputs")
	return
}
