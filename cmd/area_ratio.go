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

	"github.com/notargets/oberth/isentropic"
	"github.com/notargets/oberth/nozzle"
	"github.com/notargets/oberth/utils"
)

// AreaRatioCmd represents the area-ratio command
var AreaRatioCmd = &cobra.Command{
	Use:   "area-ratio",
	Short: "Isentropic area ratio and stagnation ratios at a Mach number",
	Long: `
Evaluates the isentropic area-Mach relation and the stagnation ratios. With
--ratio the relation is inverted for the Mach number instead.

oberth area-ratio -m 2 --gamma 1.4
oberth area-ratio --ratio 25 --gamma 1.2`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			gamma = viper.GetFloat64("area-ratio.gamma")
			mach  = viper.GetFloat64("area-ratio.mach")
		)
		if cmd.Flags().Changed("ratio") {
			ratio, _ := cmd.Flags().GetFloat64("ratio")
			regime := isentropic.Supersonic
			if sub, _ := cmd.Flags().GetBool("subsonic"); sub {
				regime = isentropic.Subsonic
			}
			if mach, err = isentropic.MachFromAreaRatio(ratio, gamma, regime); err != nil {
				return
			}
			fmt.Printf("%8.5f\t\t= Area Ratio\n", ratio)
			fmt.Printf("[%s]\t= Regime\n", regime)
		}
		return RunAreaRatio(mach, gamma)
	},
}

func init() {
	rootCmd.AddCommand(AreaRatioCmd)
	AreaRatioCmd.Flags().Float64P("mach", "m", 1, "Mach number, at least 0")
	AreaRatioCmd.Flags().Float64("gamma", nozzle.DefaultGamma, "ratio of specific heats")
	AreaRatioCmd.Flags().Float64P("ratio", "r", 1, "solve for the Mach number at this area ratio")
	AreaRatioCmd.Flags().Bool("subsonic", false, "use the subsonic root with --ratio")
	bindFlags(AreaRatioCmd, "mach", "gamma")
}

func RunAreaRatio(mach, gamma float64) (err error) {
	var (
		ar             isentropic.AreaRatio
		pr, tr, dr, mu float64
	)
	if ar, err = isentropic.AreaRatioOf(mach, gamma); err != nil {
		return
	}
	if pr, err = isentropic.PressureRatio(mach, gamma); err != nil {
		return
	}
	if tr, err = isentropic.TemperatureRatio(mach, gamma); err != nil {
		return
	}
	if dr, err = isentropic.DensityRatio(mach, gamma); err != nil {
		return
	}
	fmt.Printf("%8.5f\t\t= Mach\n", mach)
	fmt.Printf("%8.5f\t\t= Gamma\n", gamma)
	fmt.Printf("%8s\t\t= A/A*\n", ar)
	fmt.Printf("%8.5f\t\t= p/p0\n", pr)
	fmt.Printf("%8.5f\t\t= T/T0\n", tr)
	fmt.Printf("%8.5f\t\t= rho/rho0\n", dr)
	if mach < 1 {
		return
	}
	var nu float64
	if nu, err = isentropic.PrandtlMeyer(mach, gamma); err != nil {
		return
	}
	if mu, err = isentropic.MachAngle(mach); err != nil {
		return
	}
	fmt.Printf("%8.5f\t\t= Prandtl-Meyer Angle (deg)\n", utils.Deg(nu))
	fmt.Printf("%8.5f\t\t= Mach Angle (deg)\n", utils.Deg(mu))
	return
}
