package version_control

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.1.0"

	// Modular tools
	Benchmark    = "v1.0.0"
	ORF_Finder   = "v2.0.0"
	Ran_DNA_Gen  = "v1.1.0"
	Sanity_check = "v1.1.0"
	ORF_Store    = "v1.0.0"
	Gencode      = "v1.0.0"
)
