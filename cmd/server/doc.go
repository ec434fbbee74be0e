// Command server runs the synthesis service: it accepts structured app
// descriptions over HTTP and returns importable project archives.
package main
