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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notargets/oberth/mission"
)

type MissionRun struct {
	Vehicle mission.Vehicle
	// Circular orbit radii for a Hohmann transfer, m. Zero skips the transfer.
	R1, R2 float64
}

// MissionCmd represents the mission command
var MissionCmd = &cobra.Command{
	Use:   "mission",
	Short: "Stage delta-v and Hohmann transfer budgets",
	Long: `
Sums the rocket equation delta-v of a stack of stages, each given as
isp,wetMass,dryMass, and optionally the impulsive cost of a Hohmann transfer
between two circular Earth orbits.

oberth mission --stage 300,100000,8000 --stage 350,20000,2000 --r1 6678e3 --r2 42164e3`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		mr := &MissionRun{}
		stages, _ := cmd.Flags().GetStringArray("stage")
		for _, arg := range stages {
			var s mission.Stage
			if s, err = parseStage(arg); err != nil {
				return
			}
			mr.Vehicle = append(mr.Vehicle, s)
		}
		mr.R1, _ = cmd.Flags().GetFloat64("r1")
		mr.R2, _ = cmd.Flags().GetFloat64("r2")
		return RunMission(mr)
	},
}

func init() {
	rootCmd.AddCommand(MissionCmd)
	MissionCmd.Flags().StringArrayP("stage", "s", nil, "stage as isp,wetMass,dryMass (s, kg, kg), repeatable")
	MissionCmd.Flags().Float64("r1", 0, "departure orbit radius, m")
	MissionCmd.Flags().Float64("r2", 0, "arrival orbit radius, m")
}

func parseStage(arg string) (s mission.Stage, err error) {
	fields := strings.Split(arg, ",")
	if len(fields) != 3 {
		err = fmt.Errorf("stage %q: want isp,wetMass,dryMass", arg)
		return
	}
	var vals [3]float64
	for i, f := range fields {
		if vals[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
			err = fmt.Errorf("stage %q: %w", arg, err)
			return
		}
	}
	s = mission.Stage{Isp: vals[0], WetMass: vals[1], DryMass: vals[2]}
	return
}

func RunMission(mr *MissionRun) (err error) {
	if len(mr.Vehicle) == 0 && mr.R1 == 0 && mr.R2 == 0 {
		return fmt.Errorf("nothing to compute, supply --stage or --r1 and --r2")
	}
	if len(mr.Vehicle) != 0 {
		mr.Vehicle.Print()
	}
	if mr.R1 == 0 && mr.R2 == 0 {
		return
	}
	var tr mission.Transfer
	if tr, err = mission.HohmannTransfer(mr.R1, mr.R2); err != nil {
		return
	}
	fmt.Printf("%9.1f\t\t= Departure Burn (m/s)\n", tr.Departure)
	fmt.Printf("%9.1f\t\t= Arrival Burn (m/s)\n", tr.Arrival)
	fmt.Printf("%9.1f\t\t= Transfer Total (m/s)\n", tr.Total)
	if len(mr.Vehicle) != 0 {
		fmt.Printf("%9.1f\t\t= Margin (m/s)\n", mr.Vehicle.DeltaV()-tr.Total)
	}
	return
}
