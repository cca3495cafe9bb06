package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hbradburn/satyr/internal/checker"
	"github.com/hbradburn/satyr/internal/dimacs"
	"github.com/hbradburn/satyr/internal/sat"
)

const banner = `c            ___       __
c  ___ ___ _/ /___ __ / /____
c (_-</ _ \/ __/ // / __/ __/
c/___/\_,_/\__/\_, /\__/_/
c             /___/  CDCL SAT solver`

var (
	flagHeuristic      string
	flagRestartPolicy  string
	flagNoInprocessing bool
	flagProof          string
	flagCPUProfile     string
	flagMemProfile     string
)

func main() {
	exitCode := 1
	root := &cobra.Command{
		Use:           "satyr <instance.cnf>",
		Short:         "A conflict-driven clause-learning SAT solver",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := run(cmd, args)
			exitCode = code
			return err
		},
	}
	root.Flags().StringVar(&flagHeuristic, "heuristic", "vsids", "branching heuristic: vsids|vmtf|decay|true-first")
	root.Flags().StringVar(&flagRestartPolicy, "restart-policy", "glucose-ema", "restart policy: glucose-ema|luby|geometric|fixed-interval|no-restarts")
	root.Flags().BoolVar(&flagNoInprocessing, "no-inprocessing", false, "disable bounded variable elimination inprocessing")
	root.Flags().StringVar(&flagProof, "proof", "", "write a DRAT proof to this path on UNSAT")
	root.Flags().StringVar(&flagCPUProfile, "cpuprofile", "", "write a pprof CPU profile to this path")
	root.Flags().StringVar(&flagMemProfile, "memprofile", "", "write a pprof heap profile to this path")

	if err := root.Execute(); err != nil {
		logrus.WithError(err).Error("satyr failed")
		fmt.Println(err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func parseHeuristic(name string) (sat.HeuristicKind, error) {
	switch name {
	case "vsids":
		return sat.VSIDSHeuristicKind, nil
	case "vmtf":
		return sat.VMTFHeuristicKind, nil
	case "decay":
		return sat.DecayHeuristicKind, nil
	case "true-first":
		return sat.TrueFirstHeuristicKind, nil
	default:
		return 0, fmt.Errorf("unknown heuristic %q", name)
	}
}

func parseRestartPolicy(name string) (sat.RestartPolicy, error) {
	switch name {
	case "glucose-ema":
		return sat.GlucoseEMA, nil
	case "luby":
		return sat.Luby, nil
	case "geometric":
		return sat.Geometric, nil
	case "fixed-interval":
		return sat.FixedInterval, nil
	case "no-restarts":
		return sat.NoRestarts, nil
	default:
		return 0, fmt.Errorf("unknown restart policy %q", name)
	}
}

// run does the actual work and reports the process exit code it wants,
// rather than calling os.Exit itself: os.Exit skips deferred calls, and
// the CPU-profile defer below is what flushes pprof.StartCPUProfile's
// pending data and writes its trailer. main calls os.Exit once run (and
// its deferred cleanup) has returned.
func run(cmd *cobra.Command, args []string) (int, error) {
	if flagCPUProfile != "" {
		f, err := os.Create(flagCPUProfile)
		if err != nil {
			return 0, fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return 0, fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	instancePath := args[0]
	cnf, err := dimacs.ParseFile(instancePath)
	if err != nil {
		return 0, fmt.Errorf("could not parse instance: %w", err)
	}

	heuristic, err := parseHeuristic(flagHeuristic)
	if err != nil {
		return 0, err
	}
	restartPolicy, err := parseRestartPolicy(flagRestartPolicy)
	if err != nil {
		return 0, err
	}

	cfg := sat.DefaultConfig()
	cfg.Heuristic = heuristic
	cfg.RestartPolicy = restartPolicy
	cfg.Inprocessing = !flagNoInprocessing
	cfg.ProgressWriter = os.Stdout

	var proofFile *os.File
	if flagProof != "" {
		proofFile, err = os.Create(flagProof)
		if err != nil {
			return 0, fmt.Errorf("could not create proof file: %w", err)
		}
		defer proofFile.Close()
		cfg.ProofWriter = proofFile
	}

	fmt.Println(banner)
	fmt.Printf("c instance:   %s\n", instancePath)
	fmt.Printf("c variables:  %d\n", cnf.NumVars)
	fmt.Printf("c clauses:    %d\n", len(cnf.Clauses))

	solver := sat.NewSolver(cnf.NumVars, cnf.Clauses, cfg)

	start := time.Now()
	status, model := solver.Solve()
	elapsed := time.Since(start)

	if err := solver.FlushProof(); err != nil {
		return 0, fmt.Errorf("could not flush proof: %w", err)
	}

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d\n", solver.Stats.Conflicts)
	fmt.Printf("c status:     %s\n", status)

	switch status {
	case sat.Satisfiable:
		if checker.Verify(cnf.Clauses, model) {
			fmt.Fprintln(os.Stdout, color.GreenString("c solution verified"))
		} else {
			fmt.Fprintln(os.Stderr, color.RedString("c WRONG SOLUTION"))
			logrus.Error("solver returned a model that does not satisfy the input instance")
			return 1, nil
		}
	case sat.Unsatisfiable:
		if flagProof != "" {
			fmt.Printf("c proof written to: %s\n", flagProof)
		}
	}

	if err := dimacs.WriteSolution(os.Stdout, status, model); err != nil {
		return 0, fmt.Errorf("could not write solution: %w", err)
	}

	if flagMemProfile != "" {
		f, err := os.Create(flagMemProfile)
		if err != nil {
			return 0, fmt.Errorf("could not create memory profile: %w", err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return 0, fmt.Errorf("could not write memory profile: %w", err)
		}
	}

	if status == sat.Satisfiable {
		return 10, nil
	}
	return 20, nil
}
