package version

// Version of the commandry command line tool.
const Version = "0.4.0"
