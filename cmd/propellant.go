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

	"github.com/notargets/oberth/propellants"
)

// PropellantCmd represents the propellant command
var PropellantCmd = &cobra.Command{
	Use:   "propellant [name...]",
	Short: "Propellant property table",
	Long: `
Prints the properties of the named propellants, by ID, common name or full
name. Without arguments the whole table is printed.

oberth propellant lox kerosene`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunPropellant(args)
	},
}

func init() {
	rootCmd.AddCommand(PropellantCmd)
}

func RunPropellant(names []string) error {
	if len(names) == 0 {
		names = propellants.Names()
	}
	for _, name := range names {
		p, ok := propellants.Lookup(name)
		if !ok {
			return fmt.Errorf("propellant %q not found", name)
		}
		p.Print()
	}
	return nil
}
