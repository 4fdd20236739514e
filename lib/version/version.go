package version

// Release binaries have this set during build.
var Version = "v0.3.0-HEAD"
