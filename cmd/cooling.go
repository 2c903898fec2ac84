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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/oberth/cooling"
	"github.com/notargets/oberth/nozzle"
)

type CoolingRun struct {
	Input cooling.BartzInput
	// Expansion ratio of the contour evaluated with AlongContour
	ExpansionRatio float64
	AlongContour   bool
}

// CoolingCmd represents the cooling command
var CoolingCmd = &cobra.Command{
	Use:   "cooling",
	Short: "Bartz gas side heat transfer coefficient",
	Long: `
Evaluates the Bartz correlation at one station, or along the wall of a bell
nozzle scaled to the throat diameter.

oberth cooling --diameter 0.1 --throatDiameter 0.1 -m 1
oberth cooling --alongContour -e 25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cr := &CoolingRun{
			Input: cooling.BartzInput{
				Diameter:        viper.GetFloat64("cooling.diameter"),
				Mach:            viper.GetFloat64("cooling.mach"),
				ChamberPressure: viper.GetFloat64("cooling.pc"),
				CStar:           viper.GetFloat64("cooling.cStar"),
				ThroatDiameter:  viper.GetFloat64("cooling.throatDiameter"),
				CurvatureRadius: viper.GetFloat64("cooling.curvatureRadius"),
				Gas: cooling.GasProperties{
					Viscosity: viper.GetFloat64("cooling.viscosity"),
					Cp:        viper.GetFloat64("cooling.cp"),
					Prandtl:   viper.GetFloat64("cooling.prandtl"),
					Gamma:     viper.GetFloat64("cooling.gamma"),
				},
			},
			ExpansionRatio: viper.GetFloat64("cooling.expansionRatio"),
		}
		cr.AlongContour, _ = cmd.Flags().GetBool("alongContour")
		return RunCooling(cr)
	},
}

func init() {
	rootCmd.AddCommand(CoolingCmd)
	var (
		gas = cooling.DefaultGas()
	)
	CoolingCmd.Flags().Float64("diameter", 0.1, "local diameter, m")
	CoolingCmd.Flags().Float64P("mach", "m", 1, "local Mach number")
	CoolingCmd.Flags().Float64("pc", 100e5, "chamber pressure, Pa")
	CoolingCmd.Flags().Float64("cStar", 1700, "characteristic velocity, m/s")
	CoolingCmd.Flags().Float64("throatDiameter", 0.1, "throat diameter, m")
	CoolingCmd.Flags().Float64("curvatureRadius", 0, "throat radius of curvature, m, 0 uses the throat diameter")
	CoolingCmd.Flags().Float64("viscosity", gas.Viscosity, "gas viscosity, Pa s")
	CoolingCmd.Flags().Float64("cp", gas.Cp, "gas specific heat, J/kg K")
	CoolingCmd.Flags().Float64("prandtl", gas.Prandtl, "gas Prandtl number")
	CoolingCmd.Flags().Float64("gamma", gas.Gamma, "gas ratio of specific heats")
	CoolingCmd.Flags().Float64P("expansionRatio", "e", nozzle.DefaultExpansionRatio, "nozzle expansion ratio for --alongContour")
	CoolingCmd.Flags().Bool("alongContour", false, "evaluate along the wall of a bell nozzle")
	bindFlags(CoolingCmd, "diameter", "mach", "pc", "cStar", "throatDiameter", "curvatureRadius",
		"viscosity", "cp", "prandtl", "gamma", "expansionRatio")
}

func RunCooling(cr *CoolingRun) (err error) {
	if !cr.AlongContour {
		var hg float64
		if hg, err = cooling.HeatTransferCoefficient(cr.Input); err != nil {
			return
		}
		fmt.Printf("[%s]\n", cr.Input)
		fmt.Printf("%10.4g\t\t= hg (W/m^2 K)\n", hg)
		return
	}
	var (
		c        nozzle.Contour
		stations []cooling.Station
	)
	if c, err = nozzle.GenerateContour(cr.ExpansionRatio); err != nil {
		return
	}
	if stations, err = cooling.Profile(c, cr.Input.ThroatDiameter, cr.Input.ChamberPressure,
		cr.Input.CStar, cr.Input.Gas); err != nil {
		return
	}
	fmt.Printf("%10s %10s %8s %12s\n", "x (m)", "D (m)", "Mach", "hg (W/m^2 K)")
	for _, st := range stations {
		fmt.Printf("%10.5f %10.5f %8.4f %12.5g\n", st.X, st.Diameter, st.Mach, st.Hg)
	}
	return
}
