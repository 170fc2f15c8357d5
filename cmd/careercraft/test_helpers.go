package main

// resetFlags restores the package-level flag variables between test runs so
// one command invocation cannot leak state into the next.
func resetFlags() {
	rootConfig = ""
	rootCatalog = ""
	rootVerbose = false

	matchesProfile, matchesOutput, matchesSort = "", "", ""
	gapsProfile, gapsOutput = "", ""
	recommendProfile, recommendOutput = "", ""
	readinessProfile, readinessOutput = "", ""
	consultProfile, consultMessage, consultOutput = "", "", ""
	catalogOutput = ""
	servePort = 0
}
