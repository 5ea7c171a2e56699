package main

import (
	"fmt"
	"os"
	"strings"

	"orf_buddy_go/benchmark"
	version_control "orf_buddy_go/config"
	"orf_buddy_go/orf_finder"
	"orf_buddy_go/ran_dna_gen"
	"orf_buddy_go/sanity_check"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`ORF Buddy - Custom Help Menu
Usage:
  orf_buddy <tool> [options]

Tools:
  orf_finder		Find open reading frames on both strands and translate them
  ran_dna_gen		Generate random DNA sequence
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information`)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("ORF Buddy - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tORF Buddy:\t\t%s\n", version_control.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tORF Finder:\t\t%s\n", version_control.ORF_Finder)
	fmt.Printf("\tORF Store:\t\t%s\n", version_control.ORF_Store)
	fmt.Printf("\tGenetic Codes:\t\t%s\n", version_control.Gencode)
	fmt.Printf("\tRandom DNA Generator:\t%s\n", version_control.Ran_DNA_Gen)
	fmt.Printf("\tSanity Check:\t\t%s\n", version_control.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", version_control.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Executable-level help only when no tool is named
	if len(os.Args) == 2 && (os.Args[1] == "-h" || os.Args[1] == "-help") {
		printCustomHelp()
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "orf_finder":
			orf_finder.Run(cleanedArgs)
		case "ran_dna_gen":
			ran_dna_gen.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("orf_buddy %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
