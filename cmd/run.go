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
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HinnyTsang/Bootes/InputParameters"
	"github.com/HinnyTsang/Bootes/model_problems/Dust"
	"github.com/HinnyTsang/Bootes/utils"
)

type RunModel struct {
	ICFile  string
	Procs   int
	Verbose bool
	Profile string // cpu, mem or empty
	Perf    bool
}

const exampleFile = `
########################################
Title: "Dust drift"
Case: drift # Can be "settling" or "sod"
Coordinates: cartesian
Dim: 1
Nx: [128]
XMin: [0]
XMax: [1]
BCs:
  x1: [periodic]
GasDensity: 1.
GasPressure: 1.
GasVelocity: [1., 0, 0]
DustToGas: [0.01]
StoppingTimes: [0.1]
TimeStep: 0.001
FinalTime: 1.
########################################
`

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a gas and dust model problem described by a YAML input file",
	Long:  `Run a gas and dust model problem described by a YAML input file`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			ip  *InputParameters.InputParametersDust
		)
		rm := &RunModel{}
		if rm.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		rm.Procs = viper.GetInt("procs")
		rm.Verbose = viper.GetBool("verbose")
		rm.Profile, _ = cmd.Flags().GetString("profile")
		rm.Perf, _ = cmd.Flags().GetBool("perf")
		if ip, err = processInput(rm); err != nil {
			log.Fatalf("error: %s", err)
		}
		if rm.Verbose {
			ip.Print()
		}
		if _, err = RunDust(rm, ip); err != nil {
			log.Fatalf("error: %s", err)
		}
	},
}

func processInput(rm *RunModel) (ip *InputParameters.InputParametersDust, err error) {
	if len(rm.ICFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format, example:%s",
			exampleFile)
		return
	}
	var data []byte
	if data, err = os.ReadFile(rm.ICFile); err != nil {
		return
	}
	ip = &InputParameters.InputParametersDust{}
	if err = ip.Parse(data); err != nil {
		return nil, err
	}
	if err = ip.Validate(); err != nil {
		return nil, err
	}
	return
}

func RunDust(rm *RunModel, ip *InputParameters.InputParametersDust) (sum Dust.Summary, err error) {
	switch rm.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		err = fmt.Errorf("unknown profile %q, must be cpu or mem", rm.Profile)
		return
	}
	np := utils.ParallelDegree(rm.Procs)
	c, err := Dust.NewDust(ip, np, rm.Verbose)
	if err != nil {
		return
	}
	if rm.Verbose {
		fmt.Printf("Running on %d workers\n", np)
	}
	run := func() (err error) {
		sum, err = c.Run()
		return
	}
	if rm.Perf {
		err = measureInstructions(run)
	} else {
		err = run()
	}
	if err != nil {
		return
	}
	fmt.Printf("%s: %d steps, Time = %8.4f, dt = %8.6g\n", c.Case.Print(), sum.Steps, sum.Time, sum.Dt)
	return
}

func init() {
	rootCmd.AddCommand(RunCmd)
	RunCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Case\n\t- Nx\n\t- DustToGas")
	RunCmd.Flags().IntP("procs", "p", 0, "number of parallel workers, 0 = one per CPU")
	RunCmd.Flags().BoolP("verbose", "v", false, "print progress and floor diagnostics")
	RunCmd.Flags().String("profile", "", "write a cpu or mem profile to the current directory")
	RunCmd.Flags().Bool("perf", false, "count the CPU instructions of the run (linux)")
	_ = viper.BindPFlag("procs", RunCmd.Flags().Lookup("procs"))
	_ = viper.BindPFlag("verbose", RunCmd.Flags().Lookup("verbose"))
}
